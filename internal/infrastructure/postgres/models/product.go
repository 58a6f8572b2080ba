package models

import "time"

type CategoryModel struct {
	ID          string `gorm:"primaryKey;type:uuid"`
	Name        string `gorm:"not null"`
	Description string
}

func (CategoryModel) TableName() string {
	return "categories"
}

type ProductModel struct {
	ID          string  `gorm:"primaryKey;type:uuid"`
	Name        string  `gorm:"not null;index"`
	Description string
	Price       float64 `gorm:"not null"`
	Condition   string  `gorm:"not null"`
	Location    string
	// Stock is only mutated by order creation (decrement) and order
	// cancellation (increment); a CHECK constraint backs the invariant.
	Stock      int    `gorm:"not null;default:0;check:stock >= 0"`
	Sold       bool   `gorm:"not null;default:false"`
	SellerID   string `gorm:"type:uuid;not null;index"`
	Seller     UserModel `gorm:"foreignKey:SellerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CategoryID string    `gorm:"type:uuid;index"`
	Category   CategoryModel `gorm:"foreignKey:CategoryID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Images     []ProductImageModel `gorm:"foreignKey:ProductID;references:ID;constraint:OnDelete:CASCADE;"`
	CreatedAt  time.Time `gorm:"index"`
	UpdatedAt  time.Time
}

func (ProductModel) TableName() string {
	return "products"
}

type ProductImageModel struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	ProductID string `gorm:"type:uuid;not null;index"`
	URL       string `gorm:"not null"`
}

func (ProductImageModel) TableName() string {
	return "product_images"
}
