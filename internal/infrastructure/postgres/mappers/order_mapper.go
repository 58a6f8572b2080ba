package mappers

import (
	"github.com/ledjassa/marketplace-service/internal/domain"
	"github.com/ledjassa/marketplace-service/internal/infrastructure/postgres/models"
)

func ToDomainOrder(model *models.OrderModel) *domain.Order {
	order := &domain.Order{
		ID:              model.ID,
		Number:          model.Number,
		BuyerID:         model.BuyerID,
		ProductID:       model.ProductID,
		Quantity:        model.Quantity,
		TotalAmount:     model.TotalAmount,
		Status:          domain.OrderStatus(model.Status),
		PaymentMethod:   domain.PaymentMethod(model.PaymentMethod),
		DeliveryAddress: model.DeliveryAddress,
		CreatedAt:       model.CreatedAt,
		ProcessingAt:    model.ProcessingAt,
		ShippingAt:      model.ShippingAt,
		DeliveredAt:     model.DeliveredAt,
		CancelledAt:     model.CancelledAt,
	}
	if model.Buyer.ID != "" {
		order.Buyer = ToDomainUser(&model.Buyer)
	}
	if model.Product.ID != "" {
		order.Product = ToDomainProduct(&model.Product)
	}
	return order
}

func ToGORMOrder(order *domain.Order) *models.OrderModel {
	return &models.OrderModel{
		ID:              order.ID,
		Number:          order.Number,
		BuyerID:         order.BuyerID,
		ProductID:       order.ProductID,
		Quantity:        order.Quantity,
		TotalAmount:     order.TotalAmount,
		Status:          string(order.Status),
		PaymentMethod:   string(order.PaymentMethod),
		DeliveryAddress: order.DeliveryAddress,
		CreatedAt:       order.CreatedAt,
		ProcessingAt:    order.ProcessingAt,
		ShippingAt:      order.ShippingAt,
		DeliveredAt:     order.DeliveredAt,
		CancelledAt:     order.CancelledAt,
	}
}

func ToDomainHistory(model *models.OrderStatusHistoryModel) *domain.StatusHistory {
	entry := &domain.StatusHistory{
		ID:        model.ID,
		OrderID:   model.OrderID,
		Status:    domain.OrderStatus(model.Status),
		Comment:   model.Comment,
		ChangedAt: model.ChangedAt,
	}
	if model.ChangedBy != nil {
		entry.ChangedBy = *model.ChangedBy
	}
	return entry
}

func ToGORMHistory(entry *domain.StatusHistory) *models.OrderStatusHistoryModel {
	model := &models.OrderStatusHistoryModel{
		ID:        entry.ID,
		OrderID:   entry.OrderID,
		Status:    string(entry.Status),
		Comment:   entry.Comment,
		ChangedAt: entry.ChangedAt,
	}
	if entry.ChangedBy != "" {
		changedBy := entry.ChangedBy
		model.ChangedBy = &changedBy
	}
	return model
}
