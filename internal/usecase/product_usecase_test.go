package usecase

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/ledjassa/marketplace-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeCache struct {
	data map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string][]byte)}
}

func (c *fakeCache) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	raw, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (c *fakeCache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = raw
	return nil
}

func newProductTestEnv(cache CatalogCache) (*fakeStore, *DefaultProductUsecase) {
	store := newFakeStore()
	return store, NewDefaultProductUsecase(store, cache, zap.NewNop())
}

func TestCreateProduct(t *testing.T) {
	store, uc := newProductTestEnv(nil)
	seedSeller(store, "s1")

	product, err := uc.CreateProduct(&CreateProductInput{
		SellerID:  "s1",
		Name:      "Solar lamp",
		Price:     4500,
		Condition: domain.ConditionNew,
		Stock:     10,
		ImageURLs: []string{"https://cdn.test/lamp.jpg"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, product.ID)
	require.Len(t, product.Images, 1)
	assert.Equal(t, "https://cdn.test/lamp.jpg", product.FirstImageURL())

	stored, err := store.GetProductByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Solar lamp", stored.Name)
}

func TestCreateProduct_Validation(t *testing.T) {
	_, uc := newProductTestEnv(nil)

	_, err := uc.CreateProduct(&CreateProductInput{SellerID: "s1", Condition: domain.ConditionNew})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = uc.CreateProduct(&CreateProductInput{
		SellerID: "s1", Name: "x", Condition: domain.ProductCondition("broken"),
	})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = uc.CreateProduct(&CreateProductInput{
		SellerID: "s1", Name: "x", Condition: domain.ConditionNew, Stock: -1,
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUpdateProduct_OwnershipEnforced(t *testing.T) {
	store, uc := newProductTestEnv(nil)
	seedSeller(store, "s1")
	seedSeller(store, "s2")
	seedProduct(store, "p1", "s1", 1000, 5)

	_, err := uc.UpdateProduct(&UpdateProductInput{
		ProductID: "p1", SellerID: "s2",
		Name: "Hijacked", Price: 1, Condition: domain.ConditionNew,
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	updated, err := uc.UpdateProduct(&UpdateProductInput{
		ProductID: "p1", SellerID: "s1",
		Name: "Renamed", Price: 1200, Condition: domain.ConditionUsed, Stock: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, 3, updated.Stock)
}

func TestDeleteProduct_OwnershipEnforced(t *testing.T) {
	store, uc := newProductTestEnv(nil)
	seedSeller(store, "s1")
	seedProduct(store, "p1", "s1", 1000, 5)

	assert.ErrorIs(t, uc.DeleteProduct("p1", "s2"), domain.ErrForbidden)
	require.NoError(t, uc.DeleteProduct("p1", "s1"))

	_, err := uc.GetProductByID("p1")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestSearchProducts(t *testing.T) {
	store, uc := newProductTestEnv(nil)
	seedSeller(store, "s1")
	lamp := seedProduct(store, "p1", "s1", 1000, 5)
	lamp.Name = "Solar lamp"
	store.UpdateProduct(lamp)
	phone := seedProduct(store, "p2", "s1", 90000, 2)
	phone.Name = "Smartphone"
	phone.CategoryID = "cat-electronics"
	store.UpdateProduct(phone)

	results, err := uc.SearchProducts("lamp", nil)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "p1", results[0].ID)

	results, err = uc.SearchProducts("", []string{"cat-electronics"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "p2", results[0].ID)
}

func TestListCategories_UsesCache(t *testing.T) {
	store, uc := newProductTestEnv(newFakeCache())
	store.categories = []*domain.Category{
		{ID: "c1", Name: "Electronics"},
		{ID: "c2", Name: "Fashion"},
	}

	first, err := uc.ListCategories()
	require.NoError(t, err)
	assert.Len(t, first, 2)

	second, err := uc.ListCategories()
	require.NoError(t, err)
	assert.Len(t, second, 2)

	// Second read served from cache.
	assert.Equal(t, 1, store.categoryListCalls)
}

func TestGetSellerStatistics_Ranking(t *testing.T) {
	store, uc := newProductTestEnv(nil)
	seedSeller(store, "s1")
	seedProduct(store, "p1", "s1", 1000, 5)
	seedProduct(store, "p2", "s1", 2000, 5)
	store.sales = []*domain.SellerSales{
		{SellerID: "s1", TotalSales: 7, Revenue: 9000},
		{SellerID: "s2", TotalSales: 12, Revenue: 40000},
		{SellerID: "s3", TotalSales: 7, Revenue: 15000},
	}

	stats, err := uc.GetSellerStatistics("s1")
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.PublishedCount)
	assert.Equal(t, int64(7), stats.TotalSales)
	assert.Equal(t, 9000.0, stats.TotalRevenue)
	// s2 first, then s3 and s1 share sales but s3 wins on revenue.
	assert.Equal(t, 3, stats.Rank)
	assert.Equal(t, "You are ranked 3rd best seller with 7 sales!", stats.RankMessage)
}

func TestGetSellerStatistics_TiedSellersShareRank(t *testing.T) {
	store, uc := newProductTestEnv(nil)
	store.sales = []*domain.SellerSales{
		{SellerID: "s1", TotalSales: 5, Revenue: 5000},
		{SellerID: "s2", TotalSales: 5, Revenue: 5000},
		{SellerID: "s3", TotalSales: 1, Revenue: 100},
	}

	first, err := uc.GetSellerStatistics("s1")
	require.NoError(t, err)
	second, err := uc.GetSellerStatistics("s2")
	require.NoError(t, err)
	third, err := uc.GetSellerStatistics("s3")
	require.NoError(t, err)

	assert.Equal(t, 1, first.Rank)
	assert.Equal(t, 1, second.Rank)
	assert.Equal(t, 3, third.Rank)
}

func TestGetSellerStatistics_NoSales(t *testing.T) {
	store, uc := newProductTestEnv(nil)
	seedSeller(store, "s1")

	stats, err := uc.GetSellerStatistics("s1")
	require.NoError(t, err)
	assert.Zero(t, stats.TotalSales)
	assert.Equal(t, "Start selling to appear in the leaderboard!", stats.RankMessage)
}

func TestOrdinalSuffix(t *testing.T) {
	testCases := map[int]string{
		1: "st", 2: "nd", 3: "rd", 4: "th",
		11: "th", 12: "th", 13: "th",
		21: "st", 22: "nd", 23: "rd",
		101: "st", 111: "th",
	}
	for rank, want := range testCases {
		assert.Equal(t, want, ordinalSuffix(rank), "rank %d", rank)
	}
}
