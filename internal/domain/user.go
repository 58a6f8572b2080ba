package domain

import "time"

type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	Phone        string
	Address      string
	IsSeller     bool
	ShopName     string
	CreatedAt    time.Time
}

type Conversation struct {
	ID        string
	BuyerID   string
	SellerID  string
	ProductID string

	Product *Product
}

// Message is immutable once created; ordering is by CreatedAt.
type Message struct {
	ID             string
	ConversationID string
	SenderID       string
	Body           string
	CreatedAt      time.Time
}

type Rating struct {
	ID        string
	OrderID   string
	RaterID   string
	Score     int
	Comment   string
	CreatedAt time.Time
}
