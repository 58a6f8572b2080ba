package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/ledjassa/marketplace-service/internal/domain"
	"go.uber.org/zap"
)

// CatalogCache is a read-through cache for slow-moving catalog data. A nil
// cache disables caching; lookups are failure tolerant.
type CatalogCache interface {
	GetJSON(ctx context.Context, key string, dest any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

const categoriesCacheKey = "catalog:categories"

type CreateProductInput struct {
	SellerID    string
	Name        string
	Description string
	Price       float64
	Condition   domain.ProductCondition
	Location    string
	Stock       int
	CategoryID  string
	ImageURLs   []string
}

type UpdateProductInput struct {
	ProductID   string
	SellerID    string
	Name        string
	Description string
	Price       float64
	Condition   domain.ProductCondition
	Location    string
	Stock       int
	CategoryID  string
}

// SellerStatistics is the leaderboard view for one seller.
type SellerStatistics struct {
	PublishedCount int64   `json:"published_count"`
	SoldCount      int64   `json:"sold_count"`
	TotalRevenue   float64 `json:"total_revenue"`
	Rank           int     `json:"rank,omitempty"`
	TotalSales     int64   `json:"total_sales"`
	RankMessage    string  `json:"rank_message"`
}

type ProductUsecase interface {
	CreateProduct(input *CreateProductInput) (*domain.Product, error)
	GetProductByID(productID string) (*domain.Product, error)
	ListProducts() ([]*domain.Product, error)
	ListSellerProducts(sellerID string) ([]*domain.Product, error)
	UpdateProduct(input *UpdateProductInput) (*domain.Product, error)
	DeleteProduct(productID, sellerID string) error
	SearchProducts(query string, categoryIDs []string) ([]*domain.Product, error)
	ListCategories() ([]*domain.Category, error)
	GetSellerStatistics(sellerID string) (*SellerStatistics, error)
}

type DefaultProductUsecase struct {
	Store  domain.Store
	Cache  CatalogCache
	Logger *zap.Logger
}

func NewDefaultProductUsecase(store domain.Store, cache CatalogCache, logger *zap.Logger) *DefaultProductUsecase {
	return &DefaultProductUsecase{Store: store, Cache: cache, Logger: logger}
}

func (uc *DefaultProductUsecase) CreateProduct(input *CreateProductInput) (*domain.Product, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: product name is required", domain.ErrValidation)
	}
	if !input.Condition.Valid() {
		return nil, fmt.Errorf("%w: unknown condition %q", domain.ErrValidation, input.Condition)
	}
	if input.Stock < 0 {
		return nil, fmt.Errorf("%w: stock must not be negative", domain.ErrValidation)
	}

	product := &domain.Product{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Condition:   input.Condition,
		Location:    input.Location,
		Stock:       input.Stock,
		SellerID:    input.SellerID,
		CategoryID:  input.CategoryID,
		CreatedAt:   time.Now(),
	}
	for _, url := range input.ImageURLs {
		product.Images = append(product.Images, domain.ProductImage{
			ID:        uuid.NewString(),
			ProductID: product.ID,
			URL:       url,
		})
	}

	if err := uc.Store.Products().CreateProduct(product); err != nil {
		return nil, err
	}

	uc.Logger.Info("product published",
		zap.String("product_id", product.ID),
		zap.String("seller_id", product.SellerID),
	)
	return product, nil
}

func (uc *DefaultProductUsecase) GetProductByID(productID string) (*domain.Product, error) {
	return uc.Store.Products().GetProductByID(productID)
}

func (uc *DefaultProductUsecase) ListProducts() ([]*domain.Product, error) {
	return uc.Store.Products().ListProducts()
}

func (uc *DefaultProductUsecase) ListSellerProducts(sellerID string) ([]*domain.Product, error) {
	return uc.Store.Products().ListProductsBySellerID(sellerID)
}

func (uc *DefaultProductUsecase) UpdateProduct(input *UpdateProductInput) (*domain.Product, error) {
	product, err := uc.Store.Products().GetProductByID(input.ProductID)
	if err != nil {
		return nil, err
	}
	if product.SellerID != input.SellerID {
		return nil, domain.ErrForbidden
	}
	if !input.Condition.Valid() {
		return nil, fmt.Errorf("%w: unknown condition %q", domain.ErrValidation, input.Condition)
	}
	if input.Stock < 0 {
		return nil, fmt.Errorf("%w: stock must not be negative", domain.ErrValidation)
	}

	product.Name = input.Name
	product.Description = input.Description
	product.Price = input.Price
	product.Condition = input.Condition
	product.Location = input.Location
	product.Stock = input.Stock
	product.CategoryID = input.CategoryID

	if err := uc.Store.Products().UpdateProduct(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (uc *DefaultProductUsecase) DeleteProduct(productID, sellerID string) error {
	product, err := uc.Store.Products().GetProductByID(productID)
	if err != nil {
		return err
	}
	if product.SellerID != sellerID {
		return domain.ErrForbidden
	}
	return uc.Store.Products().DeleteProduct(productID)
}

func (uc *DefaultProductUsecase) SearchProducts(query string, categoryIDs []string) ([]*domain.Product, error) {
	return uc.Store.Products().SearchProducts(query, categoryIDs)
}

func (uc *DefaultProductUsecase) ListCategories() ([]*domain.Category, error) {
	ctx := context.Background()

	if uc.Cache != nil {
		var cached []*domain.Category
		if ok, err := uc.Cache.GetJSON(ctx, categoriesCacheKey, &cached); err == nil && ok {
			return cached, nil
		}
	}

	categories, err := uc.Store.Products().ListCategories()
	if err != nil {
		return nil, err
	}

	if uc.Cache != nil {
		if err := uc.Cache.SetJSON(ctx, categoriesCacheKey, categories, 10*time.Minute); err != nil {
			uc.Logger.Warn("category cache write failed", zap.Error(err))
		}
	}
	return categories, nil
}

// GetSellerStatistics ranks sellers by delivered sales then revenue
// (competition ranking: ties share a rank) and reports the caller's slice of
// the leaderboard. Computed on every read.
func (uc *DefaultProductUsecase) GetSellerStatistics(sellerID string) (*SellerStatistics, error) {
	published, err := uc.Store.Products().CountProductsBySellerID(sellerID)
	if err != nil {
		return nil, err
	}

	sales, err := uc.Store.Products().GetSellerSales()
	if err != nil {
		return nil, err
	}

	sort.Slice(sales, func(i, j int) bool {
		if sales[i].TotalSales != sales[j].TotalSales {
			return sales[i].TotalSales > sales[j].TotalSales
		}
		return sales[i].Revenue > sales[j].Revenue
	})

	stats := &SellerStatistics{PublishedCount: published}
	rank := 1
	for i, row := range sales {
		if i > 0 && (sales[i-1].TotalSales > row.TotalSales || sales[i-1].Revenue > row.Revenue) {
			rank = i + 1
		}
		if row.SellerID == sellerID {
			stats.SoldCount = row.TotalSales
			stats.TotalSales = row.TotalSales
			stats.TotalRevenue = row.Revenue
			stats.Rank = rank
			break
		}
	}

	if stats.TotalSales > 0 {
		stats.RankMessage = fmt.Sprintf(
			"You are ranked %d%s best seller with %d sales!",
			stats.Rank, ordinalSuffix(stats.Rank), stats.TotalSales,
		)
	} else {
		stats.RankMessage = "Start selling to appear in the leaderboard!"
	}
	return stats, nil
}

func ordinalSuffix(rank int) string {
	if r := rank % 100; r >= 11 && r <= 13 {
		return "th"
	}
	switch rank % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}
