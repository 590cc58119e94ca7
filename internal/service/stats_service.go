package service

import (
	"sort"
	"time"

	"swiftpos/internal/model"
	"swiftpos/internal/repository"
	"swiftpos/pkg/money"
)

// DefaultRecentLimit bounds the recent-orders listing when the caller
// does not ask for a specific size.
const DefaultRecentLimit = 50

// DailyStats is the admin dashboard summary. LowStock counts against
// the whole catalog, independent of the time window.
type DailyStats struct {
	Revenue   float64 `json:"revenue"`
	Orders    int     `json:"orders"`
	ItemsSold int     `json:"items_sold"`
	LowStock  int     `json:"low_stock"`
}

// StatsService derives statistics from the order ledger and catalog.
// Everything is recomputed on demand; there is no cached aggregate
// state to drift out of sync.
type StatsService interface {
	DailyStats(now time.Time) (*DailyStats, error)
	Recent(limit int) ([]model.Order, error)
}

type statsService struct {
	orders            repository.OrderRepository
	products          repository.ProductRepository
	lowStockThreshold int
}

func NewStatsService(orders repository.OrderRepository, products repository.ProductRepository, lowStockThreshold int) StatsService {
	return &statsService{
		orders:            orders,
		products:          products,
		lowStockThreshold: lowStockThreshold,
	}
}

// DailyStats covers orders created in [start of now's local day, now).
func (s *statsService) DailyStats(now time.Time) (*DailyStats, error) {
	orders, err := s.orders.FindAll()
	if err != nil {
		return nil, err
	}
	products, err := s.products.FindAll()
	if err != nil {
		return nil, err
	}

	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	stats := &DailyStats{}
	var revenue float64
	for _, o := range orders {
		if o.CreatedAt.Before(start) || !o.CreatedAt.Before(now) {
			continue
		}
		revenue += o.Total
		stats.Orders++
		stats.ItemsSold += o.ItemCount()
	}
	stats.Revenue = money.Round2(revenue)

	for _, p := range products {
		if p.Stock <= s.lowStockThreshold {
			stats.LowStock++
		}
	}
	return stats, nil
}

// Recent returns the most recently created orders, most-recent-first,
// truncated to limit (DefaultRecentLimit when limit <= 0).
func (s *statsService) Recent(limit int) ([]model.Order, error) {
	orders, err := s.orders.FindAll()
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	sorted := make([]model.Order, len(orders))
	copy(sorted, orders)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted, nil
}
