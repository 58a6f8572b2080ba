package orderdto

import (
	"time"

	"github.com/ledjassa/marketplace-service/internal/domain"
)

type OrderOutput struct {
	ID              string               `json:"id"`
	Number          string               `json:"number"`
	ProductID       string               `json:"product_id"`
	ProductName     string               `json:"product_name"`
	Quantity        int                  `json:"quantity"`
	TotalAmount     float64              `json:"total_amount"`
	Status          domain.OrderStatus   `json:"status"`
	PaymentMethod   domain.PaymentMethod `json:"payment_method"`
	DeliveryAddress string               `json:"delivery_address,omitempty"`
	CreatedAt       time.Time            `json:"created_at"`
}

type AdvanceOrderOutput struct {
	Status    domain.OrderStatus `json:"status"`
	ChangedAt time.Time          `json:"changed_at"`
}

type HistoryEntryOutput struct {
	Status    domain.OrderStatus `json:"status"`
	Comment   string             `json:"comment"`
	ChangedBy string             `json:"changed_by"`
	ChangedAt time.Time          `json:"changed_at"`
}

type BuyerInfoOutput struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Address         string `json:"address"`
	DeliveryAddress string `json:"delivery_address"`
}

type ProductInfoOutput struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// SellerOrderDetailOutput drives the seller transition view: full detail,
// history newest first, plus the legal next actions.
type SellerOrderDetailOutput struct {
	ID                 string               `json:"id"`
	CreatedAt          time.Time            `json:"created_at"`
	Status             domain.OrderStatus   `json:"status"`
	Buyer              BuyerInfoOutput      `json:"buyer"`
	Product            ProductInfoOutput    `json:"product"`
	TotalAmount        float64              `json:"total_amount"`
	History            []HistoryEntryOutput `json:"history"`
	AllowedTransitions []domain.OrderStatus `json:"allowed_transitions"`
}

type SellerContactOutput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type BuyerProductOutput struct {
	Name        string              `json:"name"`
	Description string              `json:"description"`
	UnitPrice   float64             `json:"unit_price"`
	ImageURL    string              `json:"image_url,omitempty"`
	Seller      SellerContactOutput `json:"seller"`
}

type BuyerOrderInfoOutput struct {
	Quantity        int                  `json:"quantity"`
	TotalAmount     float64              `json:"total_amount"`
	Status          domain.OrderStatus   `json:"status"`
	PaymentMethod   domain.PaymentMethod `json:"payment_method"`
	DeliveryAddress string               `json:"delivery_address"`
	CreatedAt       time.Time            `json:"created_at"`
	ShippingAt      *time.Time           `json:"expected_delivery_at,omitempty"`
}

type BuyerOrderDetailOutput struct {
	ID      string               `json:"id"`
	Product BuyerProductOutput   `json:"product"`
	Order   BuyerOrderInfoOutput `json:"order"`
	History []HistoryEntryOutput `json:"history"`
}

type BuyerHistoryItemOutput struct {
	ID            string               `json:"id"`
	ProductName   string               `json:"product_name"`
	ProductImage  string               `json:"product_image,omitempty"`
	Quantity      int                  `json:"quantity"`
	TotalAmount   float64              `json:"total_amount"`
	Status        domain.OrderStatus   `json:"status"`
	PaymentMethod domain.PaymentMethod `json:"payment_method"`
	CreatedAt     time.Time            `json:"created_at"`
}
