package service

import (
	"errors"
	"strings"
	"sync"
	"time"

	"swiftpos/internal/model"
	"swiftpos/internal/repository"

	"github.com/google/uuid"
)

var ErrEmptyCart = errors.New("cart is empty")

// InsufficientStockError names the products whose live stock no longer
// covers the cart, in cart order.
type InsufficientStockError struct {
	Products []string
}

func (e *InsufficientStockError) Error() string {
	return "insufficient stock for " + strings.Join(e.Products, ", ")
}

// CheckoutService turns a cart into an immutable order. The outcome is
// atomic: either every line's stock is decremented and one order is
// appended, or nothing changes.
type CheckoutService interface {
	Checkout(cart *Cart, session *model.Session) (*model.Order, error)
}

type checkoutService struct {
	catalog CatalogService
	orders  repository.OrderRepository
	hub     Broadcaster

	// Serializes validate+commit so two concurrent checkouts cannot both
	// observe sufficient stock for the same units.
	mu sync.Mutex
}

func NewCheckoutService(catalog CatalogService, orders repository.OrderRepository, hub Broadcaster) CheckoutService {
	return &checkoutService{catalog: catalog, orders: orders, hub: hub}
}

func (s *checkoutService) Checkout(cart *Cart, session *model.Session) (*model.Order, error) {
	items := cart.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Phase 1: re-validate every line against live stock, not the
	// stale StockCap snapshot. Any shortfall aborts the whole cart.
	var short []string
	for _, it := range items {
		product, err := s.catalog.Get(it.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil || product.Stock < it.Qty {
			short = append(short, it.Name)
		}
	}
	if len(short) > 0 {
		return nil, &InsufficientStockError{Products: short}
	}

	// Phase 2: decrement stock per line, then append the order.
	for i, it := range items {
		if _, err := s.catalog.AdjustStock(it.ProductID, -it.Qty); err != nil {
			s.restock(items[:i])
			return nil, err
		}
	}

	totals := cart.Totals()
	order := &model.Order{
		ID:          uuid.New(),
		CreatedAt:   time.Now(),
		Items:       make([]model.OrderItem, 0, len(items)),
		Subtotal:    totals.Subtotal,
		Tax:         totals.Tax,
		Total:       totals.Total,
		CashierID:   session.CashierID,
		CashierName: session.DisplayName(),
	}
	for _, it := range items {
		order.Items = append(order.Items, model.OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Qty:       it.Qty,
			Price:     it.Price,
		})
	}

	if err := s.orders.Append(order); err != nil {
		s.restock(items)
		return nil, err
	}

	if s.hub != nil {
		s.hub.Publish(map[string]interface{}{
			"type":   "ledger_update",
			"action": "order_created",
			"order": map[string]interface{}{
				"id":           order.ID,
				"total":        order.Total,
				"items":        order.ItemCount(),
				"cashier_name": order.CashierName,
			},
		})
	}
	return order, nil
}

// restock undoes decrements already applied when a later step fails, so
// a partial commit is never left behind.
func (s *checkoutService) restock(items []CartItem) {
	for _, it := range items {
		s.catalog.AdjustStock(it.ProductID, it.Qty)
	}
}
