package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderItem is a snapshot of one cart line at commit time. Name and
// price are copied, not referenced, so the order stays readable after
// catalog edits or product deletion.
type OrderItem struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Qty       int       `json:"qty"`
	Price     float64   `json:"price"`
}

// Order is one committed sale in the ledger. Orders are append-only;
// no update or delete operation exists.
type Order struct {
	ID          uuid.UUID   `json:"id"`
	CreatedAt   time.Time   `json:"created_at"`
	Items       []OrderItem `json:"items"`
	Subtotal    float64     `json:"subtotal"`
	Tax         float64     `json:"tax"`
	Total       float64     `json:"total"`
	CashierID   uuid.UUID   `json:"cashier_id"`
	CashierName string      `json:"cashier_name"`
}

// ItemCount sums the quantities across all lines.
func (o *Order) ItemCount() int {
	n := 0
	for _, it := range o.Items {
		n += it.Qty
	}
	return n
}
