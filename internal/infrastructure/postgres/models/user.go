package models

import "time"

type UserModel struct {
	ID           string `gorm:"primaryKey;type:uuid"`
	Username     string `gorm:"not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Phone        string
	Address      string
	IsSeller     bool `gorm:"index"`
	ShopName     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (UserModel) TableName() string {
	return "users"
}
