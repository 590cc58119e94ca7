package store

import (
	"time"

	"github.com/google/uuid"

	"swiftpos/internal/model"
)

// defaultProducts is the catalog a fresh installation starts with.
func defaultProducts() []model.Product {
	return []model.Product{
		{ID: uuid.New(), Name: "Visa Gift Card $25", SKU: "VISA25", Barcode: "10001", Price: 25, Stock: 100, Category: "Gift Cards"},
		{ID: uuid.New(), Name: "Visa Gift Card $50", SKU: "VISA50", Barcode: "10002", Price: 50, Stock: 80, Category: "Gift Cards"},
		{ID: uuid.New(), Name: "USB-C Cable 1m", SKU: "CAB-USB-C-1M", Barcode: "20001", Price: 9.99, Stock: 50, Category: "Accessories"},
		{ID: uuid.New(), Name: "Wireless Mouse", SKU: "MOU-WLS", Barcode: "30001", Price: 19.99, Stock: 30, Category: "Peripherals"},
	}
}

func defaultCashiers() []model.Cashier {
	return []model.Cashier{
		{ID: uuid.New(), Username: "cashier1", Password: "pass123", Name: "Cashier One", CreatedAt: time.Now()},
	}
}

// SeedOnce populates the three collections with defaults exactly once
// per installation, guarded by a separate marker key. Re-invocation is a
// no-op. Returns true when seeding actually ran.
func SeedOnce(s Store) (bool, error) {
	marker, err := s.Get(keySeeded)
	if err != nil {
		return false, err
	}
	if marker != nil {
		return false, nil
	}

	if err := WriteCollection(s, KeyProducts, defaultProducts()); err != nil {
		return false, err
	}
	if err := WriteCollection(s, KeyCashiers, defaultCashiers()); err != nil {
		return false, err
	}
	if err := WriteCollection(s, KeyOrders, []model.Order{}); err != nil {
		return false, err
	}
	if err := s.Put(keySeeded, []byte("1")); err != nil {
		return false, err
	}
	return true, nil
}
