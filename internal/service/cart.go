package service

import (
	"swiftpos/internal/model"

	"github.com/google/uuid"
)

// CartItem is one line of an in-progress checkout. Price and StockCap
// are snapshots taken when the line was (re)added; Qty stays within
// [1, StockCap].
type CartItem struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Qty       int       `json:"qty"`
	StockCap  int       `json:"stock_cap"`
}

// Totals is the money summary of a cart.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// Cart holds one checkout session's selection, keyed by product id with
// no duplicate lines. It lives in memory only and is discarded after a
// successful checkout or on session end.
type Cart struct {
	taxRate float64
	items   []CartItem
}

func NewCart(taxRate float64) *Cart {
	return &Cart{taxRate: taxRate}
}

// Add inserts a new line with qty 1, or bumps an existing line by one.
// Either way StockCap is refreshed to the product's live stock and the
// quantity is clamped to it (never below 1).
func (c *Cart) Add(p model.Product) {
	for i := range c.items {
		if c.items[i].ProductID == p.ID {
			c.items[i].StockCap = p.Stock
			c.items[i].Qty = clampQty(c.items[i].Qty+1, p.Stock)
			return
		}
	}
	c.items = append(c.items, CartItem{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Qty:       1,
		StockCap:  p.Stock,
	})
}

// SetQty clamps qty to [1, StockCap] regardless of the requested value.
// Unknown product ids are ignored.
func (c *Cart) SetQty(productID uuid.UUID, qty int) {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items[i].Qty = clampQty(qty, c.items[i].StockCap)
			return
		}
	}
}

func (c *Cart) Remove(productID uuid.UUID) {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Items returns a copy of the lines in insertion order.
func (c *Cart) Items() []CartItem {
	out := make([]CartItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Len() int { return len(c.items) }

// Totals is a pure function of the current cart state.
func (c *Cart) Totals() Totals {
	var subtotal float64
	for _, it := range c.items {
		subtotal += it.Price * float64(it.Qty)
	}
	tax := subtotal * c.taxRate
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal + tax,
	}
}

func clampQty(qty, stockCap int) int {
	if qty > stockCap {
		qty = stockCap
	}
	if qty < 1 {
		qty = 1
	}
	return qty
}
