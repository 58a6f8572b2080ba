package models

import "time"

type OrderModel struct {
	ID              string  `gorm:"primaryKey;type:uuid"`
	Number          string  `gorm:"uniqueIndex;not null"`
	BuyerID         string  `gorm:"type:uuid;not null;index"`
	Buyer           UserModel `gorm:"foreignKey:BuyerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	ProductID       string    `gorm:"type:uuid;not null;index"`
	Product         ProductModel `gorm:"foreignKey:ProductID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Quantity        int          `gorm:"not null;check:quantity >= 1"`
	TotalAmount     float64      `gorm:"not null"`
	Status          string       `gorm:"not null;index"`
	PaymentMethod   string       `gorm:"not null"`
	DeliveryAddress string
	CreatedAt       time.Time `gorm:"index"`
	UpdatedAt       time.Time

	ProcessingAt *time.Time
	ShippingAt   *time.Time
	DeliveredAt  *time.Time
	CancelledAt  *time.Time
}

func (OrderModel) TableName() string {
	return "orders"
}

// OrderStatusHistoryModel rows are append only; nothing updates or deletes
// them except the cascade when the owning order goes away.
type OrderStatusHistoryModel struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	OrderID   string `gorm:"type:uuid;not null;index"`
	Order     OrderModel `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE;"`
	Status    string     `gorm:"not null"`
	Comment   string
	ChangedBy *string   `gorm:"type:uuid"`
	ChangedAt time.Time `gorm:"index"`
}

func (OrderStatusHistoryModel) TableName() string {
	return "order_status_history"
}
