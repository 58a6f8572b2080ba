package domain

import (
	"errors"
	"fmt"
)

var (
	ErrOrderNotFound        = errors.New("order not found")
	ErrProductNotFound      = errors.New("product not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrConversationNotFound = errors.New("conversation not found")
	ErrRatingNotFound       = errors.New("rating not found")
	ErrForbidden            = errors.New("access denied")
	ErrValidation           = errors.New("validation failed")
	ErrEmailTaken           = errors.New("email already registered")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrAlreadyRated         = errors.New("order already rated by this user")
)

// InsufficientStockError aborts order creation; it carries the product name
// and available quantity so the response can surface them.
type InsufficientStockError struct {
	ProductName string
	Available   int
	Requested   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %q: available %d, requested %d",
		e.ProductName, e.Available, e.Requested)
}

// InvalidTransitionError carries current and requested status for diagnostics.
type InvalidTransitionError struct {
	Current   OrderStatus
	Requested OrderStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("status transition not allowed: %s -> %s", e.Current, e.Requested)
}
