package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jaevor/go-nanoid"
	"github.com/ledjassa/marketplace-service/internal/domain"
	orderdto "github.com/ledjassa/marketplace-service/internal/usecase/dto/order"
	"go.uber.org/zap"
)

// sellerNotice carries everything needed to notify a seller about a new
// order once the transaction has committed.
type sellerNotice struct {
	SellerEmail string
	SellerPhone string
	SellerID    string
	Order       *domain.Order
	ProductName string
}

func (uc *DefaultOrderUsecase) CreateOrders(input *orderdto.CreateOrdersInput) ([]*orderdto.OrderOutput, error) {
	start := time.Now()

	if len(input.Items) == 0 {
		return nil, fmt.Errorf("%w: order batch is empty", domain.ErrValidation)
	}
	for _, item := range input.Items {
		if item.Quantity < 1 {
			return nil, fmt.Errorf("%w: quantity must be at least 1", domain.ErrValidation)
		}
	}

	paymentMethod := input.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = domain.PaymentCashOnSite
	}

	newNumber, err := nanoid.Standard(12)
	if err != nil {
		return nil, fmt.Errorf("init order number generator: %w", err)
	}

	var (
		created []*domain.Order
		notices []sellerNotice
	)

	// Whole batch in one transaction: the first failing item rolls back
	// every order and stock decrement made so far.
	err = uc.Store.Atomically(func(s domain.Store) error {
		for _, item := range input.Items {
			product, err := s.Products().GetProductByID(item.ProductID)
			if err != nil {
				return err
			}
			if product.Stock < item.Quantity {
				return &domain.InsufficientStockError{
					ProductName: product.Name,
					Available:   product.Stock,
					Requested:   item.Quantity,
				}
			}

			// Guarded single-statement decrement; loses gracefully
			// to a concurrent buyer.
			if err := s.Products().DecrementStock(product.ID, item.Quantity); err != nil {
				return err
			}

			now := time.Now()
			order := &domain.Order{
				ID:              uuid.NewString(),
				Number:          newNumber(),
				BuyerID:         input.BuyerID,
				ProductID:       product.ID,
				Quantity:        item.Quantity,
				TotalAmount:     item.TotalAmount,
				Status:          domain.StatusPending,
				PaymentMethod:   paymentMethod,
				DeliveryAddress: item.DeliveryAddress,
				CreatedAt:       now,
			}
			if err := s.Orders().CreateOrder(order); err != nil {
				return err
			}

			if err := s.Orders().AppendHistory(&domain.StatusHistory{
				ID:        uuid.NewString(),
				OrderID:   order.ID,
				Status:    domain.StatusPending,
				Comment:   "Order placed",
				ChangedBy: input.BuyerID,
				ChangedAt: now,
			}); err != nil {
				return err
			}

			order.Product = product
			created = append(created, order)
			if product.Seller != nil {
				notices = append(notices, sellerNotice{
					SellerEmail: product.Seller.Email,
					SellerPhone: product.Seller.Phone,
					SellerID:    product.SellerID,
					Order:       order,
					ProductName: product.Name,
				})
			}
		}
		return nil
	})
	if err != nil {
		uc.recordCreateFailure(err)
		return nil, err
	}

	// Side effects only after commit; all best effort.
	for _, n := range notices {
		go uc.notifySellerNewOrder(n)
		uc.publishOrderEvent(n.Order, n.SellerID, n.ProductName)
	}
	uc.recordOrdersCreated(created, time.Since(start))

	outputs := make([]*orderdto.OrderOutput, 0, len(created))
	for _, order := range created {
		outputs = append(outputs, toOrderOutput(order))
	}

	uc.Logger.Info("order batch created",
		zap.String("buyer_id", input.BuyerID),
		zap.Int("orders", len(outputs)),
	)

	return outputs, nil
}

func toOrderOutput(order *domain.Order) *orderdto.OrderOutput {
	out := &orderdto.OrderOutput{
		ID:              order.ID,
		Number:          order.Number,
		ProductID:       order.ProductID,
		Quantity:        order.Quantity,
		TotalAmount:     order.TotalAmount,
		Status:          order.Status,
		PaymentMethod:   order.PaymentMethod,
		DeliveryAddress: order.DeliveryAddress,
		CreatedAt:       order.CreatedAt,
	}
	if order.Product != nil {
		out.ProductName = order.Product.Name
	}
	return out
}
