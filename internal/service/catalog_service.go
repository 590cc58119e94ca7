package service

import (
	"errors"
	"fmt"
	"strings"

	"swiftpos/internal/model"
	"swiftpos/internal/repository"
	"swiftpos/pkg/validator"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrStockBelowZero  = errors.New("stock cannot go below zero")
)

// Broadcaster pushes events to connected dashboard clients. Services
// treat a nil broadcaster as "nobody listening".
type Broadcaster interface {
	Publish(event interface{})
}

type CatalogService interface {
	Search(query string, limit int) ([]model.Product, error)
	Get(id uuid.UUID) (*model.Product, error)
	FindByBarcode(code string) (*model.Product, error)
	Upsert(product *model.Product) (*model.Product, error)
	Delete(id uuid.UUID) error
	AdjustStock(id uuid.UUID, delta int) (*model.Product, error)
}

type catalogService struct {
	products repository.ProductRepository
	hub      Broadcaster
}

func NewCatalogService(products repository.ProductRepository, hub Broadcaster) CatalogService {
	return &catalogService{products: products, hub: hub}
}

// Search matches case-insensitively against name, SKU, barcode and
// category substrings. An empty query returns the collection head in
// insertion order. limit <= 0 means unbounded.
func (s *catalogService) Search(query string, limit int) ([]model.Product, error) {
	products, err := s.products.FindAll()
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	matched := products
	if q != "" {
		matched = make([]model.Product, 0, len(products))
		for _, p := range products {
			if matchesQuery(&p, q) {
				matched = append(matched, p)
			}
		}
	}

	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func matchesQuery(p *model.Product, q string) bool {
	for _, field := range []string{p.Name, p.SKU, p.Barcode, p.Category} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

func (s *catalogService) Get(id uuid.UUID) (*model.Product, error) {
	return s.products.FindByID(id)
}

// FindByBarcode is the scan-to-add lookup: exact match, no substrings.
func (s *catalogService) FindByBarcode(code string) (*model.Product, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, nil
	}
	return s.products.FindByBarcode(code)
}

// Upsert creates the product with a fresh id when none is supplied,
// otherwise replaces the record with the matching id in full. There are
// no merge semantics.
func (s *catalogService) Upsert(product *model.Product) (*model.Product, error) {
	if errs := validator.ValidateStruct(product); len(errs) > 0 {
		first := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", first.FailedField, first.Tag)
	}

	if product.ID == uuid.Nil {
		product.ID = uuid.New()
		if err := s.products.Create(product); err != nil {
			return nil, err
		}
		s.publishProductEvent("product_created", product)
		return product, nil
	}

	if err := s.products.Update(product); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	s.publishProductEvent("product_updated", product)
	return product, nil
}

// Delete is unconditional: historical orders hold snapshots, not
// references, so they stay readable after the product is gone.
func (s *catalogService) Delete(id uuid.UUID) error {
	if err := s.products.Delete(id); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return err
	}
	if s.hub != nil {
		s.hub.Publish(map[string]interface{}{
			"type":       "catalog_update",
			"action":     "product_deleted",
			"product_id": id,
		})
	}
	return nil
}

// AdjustStock applies delta to the product's stock, rejecting any result
// below zero and leaving stock unchanged in that case. The checkout path
// depends on exactly this behavior.
func (s *catalogService) AdjustStock(id uuid.UUID, delta int) (*model.Product, error) {
	product, err := s.products.FindByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	newStock := product.Stock + delta
	if newStock < 0 {
		return nil, ErrStockBelowZero
	}

	oldStock := product.Stock
	product.Stock = newStock
	if err := s.products.Update(product); err != nil {
		return nil, err
	}

	if s.hub != nil {
		s.hub.Publish(map[string]interface{}{
			"type":   "stock_update",
			"action": "stock_adjusted",
			"product": map[string]interface{}{
				"id":        product.ID,
				"sku":       product.SKU,
				"name":      product.Name,
				"old_stock": oldStock,
				"new_stock": product.Stock,
			},
		})
	}
	return product, nil
}

func (s *catalogService) publishProductEvent(action string, p *model.Product) {
	if s.hub == nil {
		return
	}
	s.hub.Publish(map[string]interface{}{
		"type":   "catalog_update",
		"action": action,
		"product": map[string]interface{}{
			"id":       p.ID,
			"sku":      p.SKU,
			"name":     p.Name,
			"barcode":  p.Barcode,
			"price":    p.Price,
			"stock":    p.Stock,
			"category": p.Category,
		},
	})
}
