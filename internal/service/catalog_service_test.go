package service

import (
	"testing"

	"swiftpos/internal/model"
	"swiftpos/internal/repository"
	"swiftpos/internal/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogFixture(t *testing.T, seed ...model.Product) (CatalogService, repository.ProductRepository) {
	t.Helper()
	kv := store.NewMemory()
	products := repository.NewProductRepo(kv)
	// Seed in reverse so insertion order matches the argument order
	// (Create prepends).
	for i := len(seed) - 1; i >= 0; i-- {
		require.NoError(t, products.Create(&seed[i]))
	}
	return NewCatalogService(products, nil), products
}

func demoCatalog() []model.Product {
	return []model.Product{
		{ID: uuid.New(), Name: "Visa Gift Card $25", SKU: "VISA25", Barcode: "10001", Price: 25, Stock: 100, Category: "Gift Cards"},
		{ID: uuid.New(), Name: "Visa Gift Card $50", SKU: "VISA50", Barcode: "10002", Price: 50, Stock: 80, Category: "Gift Cards"},
		{ID: uuid.New(), Name: "USB-C Cable 1m", SKU: "CAB-USB-C-1M", Barcode: "20001", Price: 9.99, Stock: 50, Category: "Accessories"},
		{ID: uuid.New(), Name: "Wireless Mouse", SKU: "MOU-WLS", Barcode: "30001", Price: 19.99, Stock: 30, Category: "Peripherals"},
	}
}

func TestCatalog_SearchEmptyQueryReturnsHead(t *testing.T) {
	catalog, _ := newCatalogFixture(t, demoCatalog()...)

	results, err := catalog.Search("", 2)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Visa Gift Card $25", results[0].Name)
	assert.Equal(t, "Visa Gift Card $50", results[1].Name)
}

func TestCatalog_SearchUnboundedWhenLimitZero(t *testing.T) {
	catalog, _ := newCatalogFixture(t, demoCatalog()...)

	results, err := catalog.Search("", 0)
	require.NoError(t, err)
	assert.Len(t, results, 4)
}

func TestCatalog_SearchMatchesAllFields(t *testing.T) {
	catalog, _ := newCatalogFixture(t, demoCatalog()...)

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"by name substring", "gift card", 2},
		{"by sku", "mou-wls", 1},
		{"by barcode", "20001", 1},
		{"by category", "peripherals", 1},
		{"case insensitive", "USB-c", 1},
		{"no match", "espresso", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := catalog.Search(tt.query, 0)
			require.NoError(t, err)
			assert.Len(t, results, tt.want)
		})
	}
}

func TestCatalog_FindByBarcodeExactOnly(t *testing.T) {
	catalog, _ := newCatalogFixture(t, demoCatalog()...)

	p, err := catalog.FindByBarcode("10001")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Visa Gift Card $25", p.Name)

	// Substrings do not scan.
	p, err = catalog.FindByBarcode("1000")
	require.NoError(t, err)
	assert.Nil(t, p)

	p, err = catalog.FindByBarcode("")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestCatalog_UpsertMintsID(t *testing.T) {
	catalog, products := newCatalogFixture(t)

	created, err := catalog.Upsert(&model.Product{Name: "New Thing", Price: 5, Stock: 10})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)

	live, err := products.FindByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, live)
	assert.Equal(t, "New Thing", live.Name)
}

func TestCatalog_UpsertReplacesWholeRecord(t *testing.T) {
	seed := model.Product{ID: uuid.New(), Name: "Old", SKU: "OLD", Barcode: "111", Price: 1, Stock: 1, Category: "A"}
	catalog, products := newCatalogFixture(t, seed)

	replacement := model.Product{ID: seed.ID, Name: "New", Price: 2, Stock: 3}
	_, err := catalog.Upsert(&replacement)
	require.NoError(t, err)

	live, err := products.FindByID(seed.ID)
	require.NoError(t, err)
	assert.Equal(t, "New", live.Name)
	// Full replacement, not a merge: the old SKU is gone.
	assert.Empty(t, live.SKU)
	assert.Empty(t, live.Category)
}

func TestCatalog_UpsertUnknownIDFails(t *testing.T) {
	catalog, _ := newCatalogFixture(t)

	_, err := catalog.Upsert(&model.Product{ID: uuid.New(), Name: "Nope", Price: 1, Stock: 1})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestCatalog_UpsertValidates(t *testing.T) {
	catalog, _ := newCatalogFixture(t)

	_, err := catalog.Upsert(&model.Product{Name: "", Price: 5, Stock: 1})
	assert.Error(t, err)

	_, err = catalog.Upsert(&model.Product{Name: "Negative", Price: -1, Stock: 1})
	assert.Error(t, err)
}

func TestCatalog_Delete(t *testing.T) {
	seed := demoCatalog()
	catalog, products := newCatalogFixture(t, seed...)

	require.NoError(t, catalog.Delete(seed[0].ID))

	live, err := products.FindByID(seed[0].ID)
	require.NoError(t, err)
	assert.Nil(t, live)

	assert.ErrorIs(t, catalog.Delete(seed[0].ID), ErrProductNotFound)
}

func TestCatalog_AdjustStock(t *testing.T) {
	seed := model.Product{ID: uuid.New(), Name: "Widget", Price: 10, Stock: 3}
	catalog, products := newCatalogFixture(t, seed)

	updated, err := catalog.AdjustStock(seed.ID, -2)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.Stock)

	updated, err = catalog.AdjustStock(seed.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, 6, updated.Stock)

	// A delta that would go negative is rejected and stock is unchanged.
	_, err = catalog.AdjustStock(seed.ID, -7)
	assert.ErrorIs(t, err, ErrStockBelowZero)

	live, err := products.FindByID(seed.ID)
	require.NoError(t, err)
	assert.Equal(t, 6, live.Stock)
}

func TestCatalog_AdjustStockUnknownProduct(t *testing.T) {
	catalog, _ := newCatalogFixture(t)

	_, err := catalog.AdjustStock(uuid.New(), -1)
	assert.ErrorIs(t, err, ErrProductNotFound)
}
