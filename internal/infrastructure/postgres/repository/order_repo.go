package repository

import (
	"errors"
	"fmt"

	"github.com/ledjassa/marketplace-service/internal/domain"
	"github.com/ledjassa/marketplace-service/internal/infrastructure/postgres/mappers"
	"github.com/ledjassa/marketplace-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultOrderRepository struct {
	DB   *gorm.DB
	InTx bool
}

func NewDefaultOrderRepository(db *gorm.DB) *DefaultOrderRepository {
	return &DefaultOrderRepository{DB: db}
}

func (r *DefaultOrderRepository) CreateOrder(order *domain.Order) error {
	orderModel := mappers.ToGORMOrder(order)
	if err := r.DB.Omit(clause.Associations).Create(orderModel).Error; err != nil {
		return fmt.Errorf("create order: %w", err)
	}
	return nil
}

func (r *DefaultOrderRepository) GetOrderByID(orderID string) (*domain.Order, error) {
	var orderModel models.OrderModel
	err := r.DB.
		Preload("Buyer").
		Preload("Product").
		Preload("Product.Seller").
		Preload("Product.Images").
		First(&orderModel, "id = ?", orderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return mappers.ToDomainOrder(&orderModel), nil
}

// GetOrderForSeller scopes the lookup to orders whose product belongs to
// sellerID. Inside a transaction the order row is locked FOR UPDATE so
// concurrent transitions serialize; ownership is checked via a subquery to
// keep the lock on the orders table only.
func (r *DefaultOrderRepository) GetOrderForSeller(orderID, sellerID string) (*domain.Order, error) {
	query := r.DB.
		Preload("Buyer").
		Preload("Product").
		Preload("Product.Seller").
		Where("id = ?", orderID).
		Where("product_id IN (?)",
			r.DB.Session(&gorm.Session{NewDB: true}).
				Model(&models.ProductModel{}).
				Select("id").
				Where("seller_id = ?", sellerID),
		)
	if r.InTx {
		query = query.Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: "orders"}})
	}

	var orderModel models.OrderModel
	if err := query.First(&orderModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return mappers.ToDomainOrder(&orderModel), nil
}

func (r *DefaultOrderRepository) GetOrderForBuyer(orderID, buyerID string) (*domain.Order, error) {
	var orderModel models.OrderModel
	err := r.DB.
		Preload("Product").
		Preload("Product.Seller").
		Preload("Product.Images").
		Where("id = ? AND buyer_id = ?", orderID, buyerID).
		First(&orderModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return mappers.ToDomainOrder(&orderModel), nil
}

// UpdateOrderStatus persists the status and every status timestamp field in
// one update.
func (r *DefaultOrderRepository) UpdateOrderStatus(order *domain.Order) error {
	err := r.DB.
		Model(&models.OrderModel{ID: order.ID}).
		Select("status", "processing_at", "shipping_at", "delivered_at", "cancelled_at").
		Updates(mappers.ToGORMOrder(order)).Error
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	return nil
}

func (r *DefaultOrderRepository) GetOrdersBySellerID(sellerID string) ([]*domain.Order, error) {
	var orderModels []models.OrderModel
	err := r.DB.
		Preload("Buyer").
		Preload("Product").
		Where("product_id IN (?)",
			r.DB.Session(&gorm.Session{NewDB: true}).
				Model(&models.ProductModel{}).
				Select("id").
				Where("seller_id = ?", sellerID),
		).
		Order("created_at DESC").
		Find(&orderModels).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*domain.Order, len(orderModels))
	for i := range orderModels {
		orders[i] = mappers.ToDomainOrder(&orderModels[i])
	}
	return orders, nil
}

func (r *DefaultOrderRepository) GetOrdersByBuyerID(buyerID string) ([]*domain.Order, error) {
	var orderModels []models.OrderModel
	err := r.DB.
		Preload("Product").
		Preload("Product.Images").
		Where("buyer_id = ?", buyerID).
		Order("created_at DESC").
		Find(&orderModels).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*domain.Order, len(orderModels))
	for i := range orderModels {
		orders[i] = mappers.ToDomainOrder(&orderModels[i])
	}
	return orders, nil
}

func (r *DefaultOrderRepository) CountActiveBySellerID(sellerID string) (int64, error) {
	var count int64
	err := r.DB.
		Model(&models.OrderModel{}).
		Where("product_id IN (?)",
			r.DB.Session(&gorm.Session{NewDB: true}).
				Model(&models.ProductModel{}).
				Select("id").
				Where("seller_id = ?", sellerID),
		).
		Where("status IN ?", []string{
			string(domain.StatusPending),
			string(domain.StatusProcessing),
			string(domain.StatusShipping),
		}).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *DefaultOrderRepository) AppendHistory(entry *domain.StatusHistory) error {
	model := mappers.ToGORMHistory(entry)
	if err := r.DB.Omit(clause.Associations).Create(model).Error; err != nil {
		return fmt.Errorf("append status history: %w", err)
	}
	return nil
}

func (r *DefaultOrderRepository) GetHistoryByOrderID(orderID string) ([]*domain.StatusHistory, error) {
	var historyModels []models.OrderStatusHistoryModel
	err := r.DB.
		Where("order_id = ?", orderID).
		Order("changed_at DESC").
		Find(&historyModels).Error
	if err != nil {
		return nil, err
	}

	history := make([]*domain.StatusHistory, len(historyModels))
	for i := range historyModels {
		history[i] = mappers.ToDomainHistory(&historyModels[i])
	}
	return history, nil
}
