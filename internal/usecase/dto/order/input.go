package orderdto

import "github.com/ledjassa/marketplace-service/internal/domain"

type CreateOrderItem struct {
	ProductID       string
	Quantity        int
	TotalAmount     float64
	DeliveryAddress string
}

type CreateOrdersInput struct {
	BuyerID       string
	PaymentMethod domain.PaymentMethod
	Items         []CreateOrderItem
}

type AdvanceOrderInput struct {
	OrderID         string
	SellerID        string
	RequestedStatus domain.OrderStatus
}
