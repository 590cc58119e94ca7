package store

import (
	"time"

	bolt "go.etcd.io/bbolt"
)

var bucketCollections = []byte("collections")

type boltStore struct {
	db *bolt.DB
}

// OpenBolt opens (or creates) the store file at path. The open timeout
// guards against another process holding the file lock.
func OpenBolt(path string) (Store, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketCollections)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &boltStore{db: db}, nil
}

func (s *boltStore) Get(key string) ([]byte, error) {
	var out []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(bucketCollections).Get([]byte(key))
		if raw != nil {
			out = make([]byte, len(raw))
			copy(out, raw)
		}
		return nil
	})
	return out, err
}

func (s *boltStore) Put(key string, value []byte) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketCollections).Put([]byte(key), value)
	})
}

func (s *boltStore) Close() error {
	return s.db.Close()
}
