package model

import "github.com/google/uuid"

// Product is a sellable catalog entry. Stock is the only field the
// checkout path mutates; everything else is edited by an administrator.
type Product struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name" validate:"required"`
	SKU      string    `json:"sku"`
	Barcode  string    `json:"barcode"`
	Price    float64   `json:"price" validate:"gte=0"`
	Stock    int       `json:"stock" validate:"gte=0"`
	Category string    `json:"category"`
}
