package repository

import (
	"swiftpos/internal/model"
	"swiftpos/internal/store"

	"github.com/google/uuid"
)

// ProductRepository owns the products collection. Find methods return
// (nil, nil) when no record matches.
type ProductRepository interface {
	FindAll() ([]model.Product, error)
	FindByID(id uuid.UUID) (*model.Product, error)
	FindByBarcode(code string) (*model.Product, error)
	Create(product *model.Product) error
	Update(product *model.Product) error
	Delete(id uuid.UUID) error
}

type productRepo struct {
	store store.Store
}

func NewProductRepo(s store.Store) ProductRepository {
	return &productRepo{store: s}
}

func (r *productRepo) FindAll() ([]model.Product, error) {
	return store.ReadCollection[model.Product](r.store, store.KeyProducts)
}

func (r *productRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	products, err := r.FindAll()
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			p := products[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (r *productRepo) FindByBarcode(code string) (*model.Product, error) {
	products, err := r.FindAll()
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].Barcode == code {
			p := products[i]
			return &p, nil
		}
	}
	return nil, nil
}

// Create prepends so the newest product shows first in catalog listings.
func (r *productRepo) Create(product *model.Product) error {
	products, err := r.FindAll()
	if err != nil {
		return err
	}
	products = append([]model.Product{*product}, products...)
	return store.WriteCollection(r.store, store.KeyProducts, products)
}

func (r *productRepo) Update(product *model.Product) error {
	products, err := r.FindAll()
	if err != nil {
		return err
	}
	for i := range products {
		if products[i].ID == product.ID {
			products[i] = *product
			return store.WriteCollection(r.store, store.KeyProducts, products)
		}
	}
	return ErrRecordNotFound
}

func (r *productRepo) Delete(id uuid.UUID) error {
	products, err := r.FindAll()
	if err != nil {
		return err
	}
	kept := products[:0]
	found := false
	for _, p := range products {
		if p.ID == id {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	if !found {
		return ErrRecordNotFound
	}
	return store.WriteCollection(r.store, store.KeyProducts, kept)
}
