// Package store provides the durable key-value medium behind all
// collections. Each collection is one JSON-encoded array stored under a
// fixed string key; reads and writes are synchronous and whole-collection.
package store

import (
	"encoding/json"
	"log"
)

// Collection keys. The seeded marker lives alongside them but is only
// touched by SeedOnce.
const (
	KeyProducts = "products"
	KeyCashiers = "cashiers"
	KeyOrders   = "orders"

	keySeeded = "seeded"
)

// Store is a synchronous, string-keyed byte store. Get returns nil for
// an absent key; neither call exposes partial writes.
type Store interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
	Close() error
}

// ReadCollection decodes the JSON array stored under key. A missing key
// or malformed payload yields an empty collection, never an error: the
// store favors availability over strict durability.
func ReadCollection[T any](s Store, key string) ([]T, error) {
	raw, err := s.Get(key)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return []T{}, nil
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		log.Printf("store: discarding malformed data under %q: %v", key, err)
		return []T{}, nil
	}
	return items, nil
}

// WriteCollection replaces the collection stored under key.
func WriteCollection[T any](s Store, key string, items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.Put(key, raw)
}
