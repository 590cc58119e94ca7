package service

import (
	"testing"

	"swiftpos/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func giftCard(stock int) model.Product {
	return model.Product{
		ID:    uuid.New(),
		Name:  "Visa Gift Card $25",
		SKU:   "VISA25",
		Price: 25,
		Stock: stock,
	}
}

func TestCart_AddNewLine(t *testing.T) {
	cart := NewCart(0.10)
	p := giftCard(10)

	cart.Add(p)

	items := cart.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, p.ID, items[0].ProductID)
	assert.Equal(t, 1, items[0].Qty)
	assert.Equal(t, 10, items[0].StockCap)
	assert.Equal(t, 25.0, items[0].Price)
}

func TestCart_AddExistingIncrementsInsteadOfDuplicating(t *testing.T) {
	cart := NewCart(0.10)
	p := giftCard(10)

	cart.Add(p)
	cart.Add(p)
	cart.Add(p)

	items := cart.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Qty)
}

func TestCart_AddCapsAtLiveStock(t *testing.T) {
	cart := NewCart(0.10)
	p := giftCard(2)

	for i := 0; i < 5; i++ {
		cart.Add(p)
	}

	assert.Equal(t, 2, cart.Items()[0].Qty)
}

func TestCart_AddRefreshesStockCap(t *testing.T) {
	cart := NewCart(0.10)
	p := giftCard(10)
	cart.Add(p)

	p.Stock = 3
	cart.Add(p)

	items := cart.Items()
	assert.Equal(t, 3, items[0].StockCap)
	assert.Equal(t, 2, items[0].Qty)
}

func TestCart_SetQtyClamps(t *testing.T) {
	cart := NewCart(0.10)
	p := giftCard(5)
	cart.Add(p)

	tests := []struct {
		name string
		qty  int
		want int
	}{
		{"within range", 4, 4},
		{"above stock cap", 99, 5},
		{"zero", 0, 1},
		{"negative", -7, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart.SetQty(p.ID, tt.qty)
			assert.Equal(t, tt.want, cart.Items()[0].Qty)
		})
	}
}

func TestCart_SetQtyUnknownProductIgnored(t *testing.T) {
	cart := NewCart(0.10)
	cart.Add(giftCard(5))

	cart.SetQty(uuid.New(), 3)

	assert.Equal(t, 1, cart.Items()[0].Qty)
}

func TestCart_Remove(t *testing.T) {
	cart := NewCart(0.10)
	a := giftCard(5)
	b := model.Product{ID: uuid.New(), Name: "Wireless Mouse", Price: 19.99, Stock: 30}
	cart.Add(a)
	cart.Add(b)

	cart.Remove(a.ID)

	items := cart.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, b.ID, items[0].ProductID)
}

func TestCart_Totals(t *testing.T) {
	cart := NewCart(0.10)
	p := model.Product{ID: uuid.New(), Name: "Widget", Price: 10.00, Stock: 3}
	cart.Add(p)
	cart.Add(p)
	cart.Add(p)

	totals := cart.Totals()
	assert.InDelta(t, 30.00, totals.Subtotal, 0.01)
	assert.InDelta(t, 3.00, totals.Tax, 0.01)
	assert.InDelta(t, 33.00, totals.Total, 0.01)
}

func TestCart_TotalsIsPure(t *testing.T) {
	cart := NewCart(0.10)
	cart.Add(giftCard(5))

	first := cart.Totals()
	second := cart.Totals()

	assert.Equal(t, first, second)
	assert.Len(t, cart.Items(), 1)
}

func TestCart_TotalsEmpty(t *testing.T) {
	cart := NewCart(0.10)

	totals := cart.Totals()
	assert.Zero(t, totals.Subtotal)
	assert.Zero(t, totals.Tax)
	assert.Zero(t, totals.Total)
}
