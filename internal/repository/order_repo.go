package repository

import (
	"swiftpos/internal/model"
	"swiftpos/internal/store"
)

// OrderRepository owns the orders collection. The collection is
// append-only: committed orders are never updated or removed.
type OrderRepository interface {
	FindAll() ([]model.Order, error)
	Append(order *model.Order) error
}

type orderRepo struct {
	store store.Store
}

func NewOrderRepo(s store.Store) OrderRepository {
	return &orderRepo{store: s}
}

func (r *orderRepo) FindAll() ([]model.Order, error) {
	return store.ReadCollection[model.Order](r.store, store.KeyOrders)
}

func (r *orderRepo) Append(order *model.Order) error {
	orders, err := r.FindAll()
	if err != nil {
		return err
	}
	orders = append(orders, *order)
	return store.WriteCollection(r.store, store.KeyOrders, orders)
}
