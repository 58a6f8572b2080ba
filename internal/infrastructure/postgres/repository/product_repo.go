package repository

import (
	"errors"
	"fmt"

	"github.com/ledjassa/marketplace-service/internal/domain"
	"github.com/ledjassa/marketplace-service/internal/infrastructure/postgres/mappers"
	"github.com/ledjassa/marketplace-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultProductRepository struct {
	DB *gorm.DB
}

func NewDefaultProductRepository(db *gorm.DB) *DefaultProductRepository {
	return &DefaultProductRepository{DB: db}
}

func (r *DefaultProductRepository) CreateProduct(product *domain.Product) error {
	productModel := mappers.ToGORMProduct(product)
	if err := r.DB.Create(productModel).Error; err != nil {
		return fmt.Errorf("create product: %w", err)
	}
	return nil
}

func (r *DefaultProductRepository) GetProductByID(productID string) (*domain.Product, error) {
	var productModel models.ProductModel
	err := r.DB.
		Preload("Seller").
		Preload("Category").
		Preload("Images").
		First(&productModel, "id = ?", productID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	return mappers.ToDomainProduct(&productModel), nil
}

func (r *DefaultProductRepository) ListProducts() ([]*domain.Product, error) {
	var productModels []models.ProductModel
	err := r.DB.
		Preload("Category").
		Preload("Images").
		Order("created_at DESC").
		Find(&productModels).Error
	if err != nil {
		return nil, err
	}
	return toDomainProducts(productModels), nil
}

func (r *DefaultProductRepository) ListProductsBySellerID(sellerID string) ([]*domain.Product, error) {
	var productModels []models.ProductModel
	err := r.DB.
		Preload("Category").
		Preload("Images").
		Where("seller_id = ?", sellerID).
		Order("created_at DESC").
		Find(&productModels).Error
	if err != nil {
		return nil, err
	}
	return toDomainProducts(productModels), nil
}

func (r *DefaultProductRepository) CountProductsBySellerID(sellerID string) (int64, error) {
	var count int64
	err := r.DB.
		Model(&models.ProductModel{}).
		Where("seller_id = ?", sellerID).
		Count(&count).Error
	return count, err
}

func (r *DefaultProductRepository) UpdateProduct(product *domain.Product) error {
	err := r.DB.
		Model(&models.ProductModel{ID: product.ID}).
		Select("name", "description", "price", "condition", "location", "stock", "sold", "category_id").
		Updates(mappers.ToGORMProduct(product)).Error
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

func (r *DefaultProductRepository) DeleteProduct(productID string) error {
	res := r.DB.Delete(&models.ProductModel{}, "id = ?", productID)
	if res.Error != nil {
		return fmt.Errorf("delete product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *DefaultProductRepository) SearchProducts(query string, categoryIDs []string) ([]*domain.Product, error) {
	q := r.DB.
		Preload("Category").
		Preload("Images").
		Where("name ILIKE ?", "%"+query+"%")
	if len(categoryIDs) > 0 {
		q = q.Where("category_id IN ?", categoryIDs)
	}

	var productModels []models.ProductModel
	if err := q.Order("created_at DESC").Find(&productModels).Error; err != nil {
		return nil, err
	}
	return toDomainProducts(productModels), nil
}

// DecrementStock is the only decrement path for stock: a single guarded
// UPDATE, so concurrent orders against the same product cannot oversell.
func (r *DefaultProductRepository) DecrementStock(productID string, qty int) error {
	res := r.DB.
		Model(&models.ProductModel{}).
		Where("id = ? AND stock >= ?", productID, qty).
		UpdateColumn("stock", gorm.Expr("stock - ?", qty))
	if res.Error != nil {
		return fmt.Errorf("decrement stock: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		// Either the product vanished or a concurrent order won the
		// remaining stock; re-read to tell the two apart.
		product, err := r.GetProductByID(productID)
		if err != nil {
			return err
		}
		return &domain.InsufficientStockError{
			ProductName: product.Name,
			Available:   product.Stock,
			Requested:   qty,
		}
	}
	return nil
}

// RestoreStock returns quantity to a product on order cancellation; the
// exact paired increment of DecrementStock.
func (r *DefaultProductRepository) RestoreStock(productID string, qty int) error {
	res := r.DB.
		Model(&models.ProductModel{}).
		Where("id = ?", productID).
		UpdateColumn("stock", gorm.Expr("stock + ?", qty))
	if res.Error != nil {
		return fmt.Errorf("restore stock: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *DefaultProductRepository) ListCategories() ([]*domain.Category, error) {
	var categoryModels []models.CategoryModel
	if err := r.DB.Order("name ASC").Find(&categoryModels).Error; err != nil {
		return nil, err
	}

	categories := make([]*domain.Category, len(categoryModels))
	for i := range categoryModels {
		categories[i] = mappers.ToDomainCategory(&categoryModels[i])
	}
	return categories, nil
}

// GetSellerSales aggregates delivered orders per seller for the leaderboard.
func (r *DefaultProductRepository) GetSellerSales() ([]*domain.SellerSales, error) {
	type salesRow struct {
		SellerID   string
		TotalSales int64
		Revenue    float64
	}

	var rows []salesRow
	err := r.DB.
		Model(&models.OrderModel{}).
		Select("products.seller_id AS seller_id, COUNT(orders.id) AS total_sales, COALESCE(SUM(orders.total_amount), 0) AS revenue").
		Joins("JOIN products ON products.id = orders.product_id").
		Where("orders.status = ?", string(domain.StatusDelivered)).
		Group("products.seller_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("aggregate seller sales: %w", err)
	}

	sales := make([]*domain.SellerSales, len(rows))
	for i, row := range rows {
		sales[i] = &domain.SellerSales{
			SellerID:   row.SellerID,
			TotalSales: row.TotalSales,
			Revenue:    row.Revenue,
		}
	}
	return sales, nil
}

func toDomainProducts(productModels []models.ProductModel) []*domain.Product {
	products := make([]*domain.Product, len(productModels))
	for i := range productModels {
		products[i] = mappers.ToDomainProduct(&productModels[i])
	}
	return products
}
