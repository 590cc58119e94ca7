package service

import (
	"testing"
	"time"

	"swiftpos/internal/model"
	"swiftpos/internal/repository"
	"swiftpos/internal/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStatsFixture(t *testing.T) (StatsService, repository.OrderRepository, repository.ProductRepository) {
	t.Helper()
	kv := store.NewMemory()
	orders := repository.NewOrderRepo(kv)
	products := repository.NewProductRepo(kv)
	return NewStatsService(orders, products, 5), orders, products
}

func orderAt(createdAt time.Time, total float64, qty int) *model.Order {
	return &model.Order{
		ID:        uuid.New(),
		CreatedAt: createdAt,
		Items: []model.OrderItem{
			{ProductID: uuid.New(), Name: "Item", Qty: qty, Price: total / float64(qty)},
		},
		Subtotal:    total,
		Total:       total,
		CashierName: "Cashier One",
	}
}

func TestStats_DailyWindow(t *testing.T) {
	stats, orders, _ := newStatsFixture(t)

	now := time.Date(2024, 6, 15, 14, 0, 0, 0, time.Local)
	require.NoError(t, orders.Append(orderAt(now.Add(-2*time.Hour), 33.00, 3)))     // today
	require.NoError(t, orders.Append(orderAt(now.Add(-10*time.Hour), 11.00, 1)))    // today, early morning
	require.NoError(t, orders.Append(orderAt(now.Add(-24*time.Hour), 99.00, 9)))    // yesterday
	require.NoError(t, orders.Append(orderAt(now.Add(time.Hour), 50.00, 2)))        // future, outside [start, now)

	got, err := stats.DailyStats(now)
	require.NoError(t, err)
	assert.InDelta(t, 44.00, got.Revenue, 0.01)
	assert.Equal(t, 2, got.Orders)
	assert.Equal(t, 4, got.ItemsSold)
}

func TestStats_LowStockIgnoresTimeWindow(t *testing.T) {
	stats, _, products := newStatsFixture(t)

	seed := []model.Product{
		{ID: uuid.New(), Name: "Empty", Stock: 0},
		{ID: uuid.New(), Name: "At threshold", Stock: 5},
		{ID: uuid.New(), Name: "Just above", Stock: 6},
		{ID: uuid.New(), Name: "Plenty", Stock: 100},
	}
	for i := range seed {
		require.NoError(t, products.Create(&seed[i]))
	}

	got, err := stats.DailyStats(time.Now())
	require.NoError(t, err)
	assert.Equal(t, 2, got.LowStock)
	assert.Zero(t, got.Orders)
}

func TestStats_EmptyLedger(t *testing.T) {
	stats, _, _ := newStatsFixture(t)

	got, err := stats.DailyStats(time.Now())
	require.NoError(t, err)
	assert.Zero(t, got.Revenue)
	assert.Zero(t, got.Orders)
	assert.Zero(t, got.ItemsSold)
	assert.Zero(t, got.LowStock)
}

func TestStats_RecentMostRecentFirst(t *testing.T) {
	stats, orders, _ := newStatsFixture(t)

	base := time.Date(2024, 6, 15, 9, 0, 0, 0, time.Local)
	for i := 0; i < 5; i++ {
		require.NoError(t, orders.Append(orderAt(base.Add(time.Duration(i)*time.Minute), 10.00, 1)))
	}

	got, err := stats.Recent(3)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.True(t, got[0].CreatedAt.After(got[1].CreatedAt))
	assert.True(t, got[1].CreatedAt.After(got[2].CreatedAt))
	assert.Equal(t, base.Add(4*time.Minute), got[0].CreatedAt)
}

func TestStats_RecentDefaultLimit(t *testing.T) {
	stats, orders, _ := newStatsFixture(t)

	base := time.Now().Add(-2 * time.Hour)
	for i := 0; i < DefaultRecentLimit+10; i++ {
		require.NoError(t, orders.Append(orderAt(base.Add(time.Duration(i)*time.Second), 1.00, 1)))
	}

	got, err := stats.Recent(0)
	require.NoError(t, err)
	assert.Len(t, got, DefaultRecentLimit)
}
