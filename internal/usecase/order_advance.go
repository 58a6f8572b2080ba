package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ledjassa/marketplace-service/internal/domain"
	orderdto "github.com/ledjassa/marketplace-service/internal/usecase/dto/order"
	"go.uber.org/zap"
)

func (uc *DefaultOrderUsecase) AdvanceOrder(input *orderdto.AdvanceOrderInput) (*orderdto.AdvanceOrderOutput, error) {
	start := time.Now()

	if !input.RequestedStatus.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, input.RequestedStatus)
	}

	var (
		order   *domain.Order
		entry   *domain.StatusHistory
		oldStat domain.OrderStatus
	)

	// The order row is locked for update inside the transaction, so two
	// concurrent transitions from the same starting status serialize and
	// the loser fails the allowed-next check.
	err := uc.Store.Atomically(func(s domain.Store) error {
		var err error
		order, err = s.Orders().GetOrderForSeller(input.OrderID, input.SellerID)
		if err != nil {
			return err
		}

		oldStat = order.Status
		if !order.Status.CanTransitionTo(input.RequestedStatus) {
			return &domain.InvalidTransitionError{
				Current:   order.Status,
				Requested: input.RequestedStatus,
			}
		}

		now := time.Now()
		order.Status = input.RequestedStatus
		order.StampStatusTime(input.RequestedStatus, now)
		if err := s.Orders().UpdateOrderStatus(order); err != nil {
			return err
		}

		entry = &domain.StatusHistory{
			ID:        uuid.NewString(),
			OrderID:   order.ID,
			Status:    input.RequestedStatus,
			Comment:   domain.HistoryComment(input.RequestedStatus),
			ChangedBy: input.SellerID,
			ChangedAt: now,
		}
		if err := s.Orders().AppendHistory(entry); err != nil {
			return err
		}

		// Cancellation returns exactly the quantity that was decremented
		// at creation time.
		if input.RequestedStatus == domain.StatusCancelled {
			if err := s.Products().RestoreStock(order.ProductID, order.Quantity); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		uc.recordAdvanceFailure(input, err)
		return nil, err
	}

	// Buyer notification and event publishing are outside the transaction:
	// best effort, never rolled back.
	go uc.notifyBuyerStatusChange(order)
	if order.Product != nil {
		uc.publishOrderEvent(order, order.Product.SellerID, order.Product.Name)
	}
	uc.recordTransition(oldStat, order.Status, time.Since(start))

	uc.Logger.Info("order status advanced",
		zap.String("order_id", order.ID),
		zap.String("from", string(oldStat)),
		zap.String("to", string(order.Status)),
	)

	return &orderdto.AdvanceOrderOutput{
		Status:    order.Status,
		ChangedAt: entry.ChangedAt,
	}, nil
}
