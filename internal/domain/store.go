package domain

// OrderRepository persists orders and their audit trail.
type OrderRepository interface {
	CreateOrder(order *Order) error
	GetOrderByID(orderID string) (*Order, error)
	// GetOrderForSeller returns the order only if its product belongs to
	// sellerID. Inside a transaction the row is locked for update so that
	// concurrent transitions on the same order serialize.
	GetOrderForSeller(orderID, sellerID string) (*Order, error)
	UpdateOrderStatus(order *Order) error
	GetOrdersBySellerID(sellerID string) ([]*Order, error)
	GetOrdersByBuyerID(buyerID string) ([]*Order, error)
	GetOrderForBuyer(orderID, buyerID string) (*Order, error)
	CountActiveBySellerID(sellerID string) (int64, error)

	AppendHistory(entry *StatusHistory) error
	GetHistoryByOrderID(orderID string) ([]*StatusHistory, error)
}

// ProductRepository persists the catalog. DecrementStock must be a single
// atomic compare-and-decrement: it fails with InsufficientStockError when the
// guard stock >= qty does not hold, and never drives stock negative.
type ProductRepository interface {
	CreateProduct(product *Product) error
	GetProductByID(productID string) (*Product, error)
	ListProducts() ([]*Product, error)
	ListProductsBySellerID(sellerID string) ([]*Product, error)
	CountProductsBySellerID(sellerID string) (int64, error)
	UpdateProduct(product *Product) error
	DeleteProduct(productID string) error
	SearchProducts(query string, categoryIDs []string) ([]*Product, error)
	DecrementStock(productID string, qty int) error
	RestoreStock(productID string, qty int) error

	ListCategories() ([]*Category, error)
	GetSellerSales() ([]*SellerSales, error)
}

type UserRepository interface {
	CreateUser(user *User) error
	GetUserByID(userID string) (*User, error)
	GetUserByEmail(email string) (*User, error)
}

type ConversationRepository interface {
	GetOrCreateConversation(conv *Conversation) (*Conversation, error)
	GetConversationByID(conversationID string) (*Conversation, error)
	ListConversationsByUserID(userID string) ([]*Conversation, error)
	CreateMessage(msg *Message) error
	ListMessagesByConversationID(conversationID string) ([]*Message, error)
}

type RatingRepository interface {
	CreateRating(rating *Rating) error
	GetRatingByOrderAndRater(orderID, raterID string) (*Rating, error)
	ListRatingsByOrderID(orderID string) ([]*Rating, error)
}

// Store bundles the repositories behind one transactional boundary.
// Atomically runs fn against a store whose repositories share a single
// transaction; any error rolls back every mutation made inside fn.
type Store interface {
	Orders() OrderRepository
	Products() ProductRepository
	Users() UserRepository
	Conversations() ConversationRepository
	Ratings() RatingRepository

	Atomically(fn func(Store) error) error
}
