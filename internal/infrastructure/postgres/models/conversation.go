package models

import "time"

type ConversationModel struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	BuyerID   string `gorm:"type:uuid;not null;uniqueIndex:idx_conv_triple"`
	SellerID  string `gorm:"type:uuid;not null;uniqueIndex:idx_conv_triple"`
	ProductID string `gorm:"type:uuid;not null;uniqueIndex:idx_conv_triple"`
	Product   ProductModel `gorm:"foreignKey:ProductID;references:ID;constraint:OnDelete:CASCADE;"`
	CreatedAt time.Time
}

func (ConversationModel) TableName() string {
	return "conversations"
}

type MessageModel struct {
	ID             string `gorm:"primaryKey;type:uuid"`
	ConversationID string `gorm:"type:uuid;not null;index"`
	Conversation   ConversationModel `gorm:"foreignKey:ConversationID;references:ID;constraint:OnDelete:CASCADE;"`
	SenderID       string            `gorm:"type:uuid;not null"`
	Body           string            `gorm:"not null"`
	CreatedAt      time.Time         `gorm:"index"`
}

func (MessageModel) TableName() string {
	return "messages"
}

type RatingModel struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	OrderID   string `gorm:"type:uuid;not null;index"`
	Order     OrderModel `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE;"`
	RaterID   string     `gorm:"type:uuid;not null"`
	Score     int        `gorm:"not null;check:score >= 1 AND score <= 5"`
	Comment   string
	CreatedAt time.Time
}

func (RatingModel) TableName() string {
	return "ratings"
}
