package repository

import (
	"swiftpos/internal/model"
	"swiftpos/internal/store"

	"github.com/google/uuid"
)

// CashierRepository owns the cashiers collection.
type CashierRepository interface {
	FindAll() ([]model.Cashier, error)
	FindByID(id uuid.UUID) (*model.Cashier, error)
	FindByUsername(username string) (*model.Cashier, error)
	Create(cashier *model.Cashier) error
	Update(cashier *model.Cashier) error
	Delete(id uuid.UUID) error
}

type cashierRepo struct {
	store store.Store
}

func NewCashierRepo(s store.Store) CashierRepository {
	return &cashierRepo{store: s}
}

func (r *cashierRepo) FindAll() ([]model.Cashier, error) {
	return store.ReadCollection[model.Cashier](r.store, store.KeyCashiers)
}

func (r *cashierRepo) FindByID(id uuid.UUID) (*model.Cashier, error) {
	cashiers, err := r.FindAll()
	if err != nil {
		return nil, err
	}
	for i := range cashiers {
		if cashiers[i].ID == id {
			c := cashiers[i]
			return &c, nil
		}
	}
	return nil, nil
}

// FindByUsername matches case-sensitively; username uniqueness is
// enforced against exactly this comparison.
func (r *cashierRepo) FindByUsername(username string) (*model.Cashier, error) {
	cashiers, err := r.FindAll()
	if err != nil {
		return nil, err
	}
	for i := range cashiers {
		if cashiers[i].Username == username {
			c := cashiers[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (r *cashierRepo) Create(cashier *model.Cashier) error {
	cashiers, err := r.FindAll()
	if err != nil {
		return err
	}
	cashiers = append(cashiers, *cashier)
	return store.WriteCollection(r.store, store.KeyCashiers, cashiers)
}

func (r *cashierRepo) Update(cashier *model.Cashier) error {
	cashiers, err := r.FindAll()
	if err != nil {
		return err
	}
	for i := range cashiers {
		if cashiers[i].ID == cashier.ID {
			cashiers[i] = *cashier
			return store.WriteCollection(r.store, store.KeyCashiers, cashiers)
		}
	}
	return ErrRecordNotFound
}

func (r *cashierRepo) Delete(id uuid.UUID) error {
	cashiers, err := r.FindAll()
	if err != nil {
		return err
	}
	kept := cashiers[:0]
	found := false
	for _, c := range cashiers {
		if c.ID == id {
			found = true
			continue
		}
		kept = append(kept, c)
	}
	if !found {
		return ErrRecordNotFound
	}
	return store.WriteCollection(r.store, store.KeyCashiers, kept)
}
