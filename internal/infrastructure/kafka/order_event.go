package publisher

type OrderEvent struct {
	OrderID     string  `json:"order_id"`
	Number      string  `json:"number"`
	BuyerID     string  `json:"buyer_id"`
	SellerID    string  `json:"seller_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	TotalAmount float64 `json:"total_amount"`
	Status      string  `json:"status"`
}
