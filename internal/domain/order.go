package domain

import "time"

type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusShipping   OrderStatus = "shipping"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

type PaymentMethod string

const (
	PaymentCreditCard PaymentMethod = "credit_card"
	PaymentPaypal     PaymentMethod = "paypal"
	PaymentCashOnSite PaymentMethod = "cash_on_site"
)

// validTransitions is the full lifecycle graph. Delivered and cancelled are
// terminal: no transitions lead out of them.
var validTransitions = map[OrderStatus][]OrderStatus{
	StatusPending:    {StatusProcessing, StatusCancelled},
	StatusProcessing: {StatusShipping, StatusCancelled},
	StatusShipping:   {StatusDelivered, StatusCancelled},
	StatusDelivered:  {},
	StatusCancelled:  {},
}

var statusLabels = map[OrderStatus]string{
	StatusPending:    "Pending",
	StatusProcessing: "Processing",
	StatusShipping:   "Out for delivery",
	StatusDelivered:  "Delivered",
	StatusCancelled:  "Cancelled",
}

func (s OrderStatus) Valid() bool {
	_, ok := validTransitions[s]
	return ok
}

func (s OrderStatus) Label() string {
	return statusLabels[s]
}

func (s OrderStatus) Terminal() bool {
	return len(validTransitions[s]) == 0
}

// CanTransitionTo reports whether target is in the allowed-next set for s.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	for _, next := range validTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// AllowedTransitions returns a copy of the allowed-next set, used to drive
// UI affordances on the seller transition view.
func (s OrderStatus) AllowedTransitions() []OrderStatus {
	next := validTransitions[s]
	out := make([]OrderStatus, len(next))
	copy(out, next)
	return out
}

// HistoryComment generates the audit-trail comment for a transition into
// status. Cancellations get a fixed comment since they are seller initiated.
func HistoryComment(status OrderStatus) string {
	if status == StatusCancelled {
		return "Order cancelled by the seller"
	}
	return "Order moved to status: " + status.Label()
}

type Order struct {
	ID              string
	Number          string
	BuyerID         string
	ProductID       string
	Quantity        int
	TotalAmount     float64
	Status          OrderStatus
	PaymentMethod   PaymentMethod
	DeliveryAddress string
	CreatedAt       time.Time

	// One nullable timestamp per non-initial status.
	ProcessingAt *time.Time
	ShippingAt   *time.Time
	DeliveredAt  *time.Time
	CancelledAt  *time.Time

	Buyer   *User
	Product *Product
}

// StampStatusTime sets the timestamp field mapped to status. The mapping is a
// fixed table; pending has no field because CreatedAt covers it.
func (o *Order) StampStatusTime(status OrderStatus, at time.Time) {
	switch status {
	case StatusProcessing:
		o.ProcessingAt = &at
	case StatusShipping:
		o.ShippingAt = &at
	case StatusDelivered:
		o.DeliveredAt = &at
	case StatusCancelled:
		o.CancelledAt = &at
	}
}

// StatusHistory is one append-only audit-trail entry. Entries are never
// updated or deleted; corrections are new entries.
type StatusHistory struct {
	ID        string
	OrderID   string
	Status    OrderStatus
	Comment   string
	ChangedBy string
	ChangedAt time.Time
}
