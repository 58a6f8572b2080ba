package usecase

import (
	"errors"
	"time"

	"github.com/ledjassa/marketplace-service/internal/domain"
	orderdto "github.com/ledjassa/marketplace-service/internal/usecase/dto/order"
)

func (uc *DefaultOrderUsecase) recordOrdersCreated(orders []*domain.Order, took time.Duration) {
	if uc.Metrics == nil {
		return
	}
	for _, order := range orders {
		uc.Metrics.OrdersCreatedTotal.WithLabelValues(string(order.PaymentMethod)).Inc()
		uc.Metrics.OrdersCreatedAmountTotal.WithLabelValues(string(order.PaymentMethod)).Add(order.TotalAmount)
	}
	uc.Metrics.OrderProcessingDuration.WithLabelValues("create").Observe(took.Seconds())
}

func (uc *DefaultOrderUsecase) recordCreateFailure(err error) {
	if uc.Metrics == nil {
		return
	}
	var stockErr *domain.InsufficientStockError
	if errors.As(err, &stockErr) {
		uc.Metrics.StockRejectionsTotal.Inc()
	}
}

func (uc *DefaultOrderUsecase) recordTransition(from, to domain.OrderStatus, took time.Duration) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.OrderTransitionsTotal.WithLabelValues(string(from), string(to)).Inc()
	if to == domain.StatusCancelled {
		uc.Metrics.OrdersCancelledTotal.Inc()
	}
	uc.Metrics.OrderProcessingDuration.WithLabelValues("advance").Observe(took.Seconds())
}

func (uc *DefaultOrderUsecase) recordAdvanceFailure(input *orderdto.AdvanceOrderInput, err error) {
	if uc.Metrics == nil {
		return
	}
	var transErr *domain.InvalidTransitionError
	if errors.As(err, &transErr) {
		uc.Metrics.InvalidTransitionsTotal.
			WithLabelValues(string(transErr.Current), string(transErr.Requested)).Inc()
	}
}

func (uc *DefaultOrderUsecase) recordNotificationFailure(channel string) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.NotificationFailuresTotal.WithLabelValues(channel).Inc()
}
