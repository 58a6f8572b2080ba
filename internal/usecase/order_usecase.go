package usecase

import (
	"github.com/ledjassa/marketplace-service/internal/domain"
	"github.com/ledjassa/marketplace-service/internal/infrastructure/metrics"
	orderdto "github.com/ledjassa/marketplace-service/internal/usecase/dto/order"
	"go.uber.org/zap"
)

type OrderUsecase interface {
	// CreateOrders creates the whole batch atomically: if any item fails,
	// nothing is persisted.
	CreateOrders(input *orderdto.CreateOrdersInput) ([]*orderdto.OrderOutput, error)
	// AdvanceOrder applies one transition of the status state machine on
	// behalf of the product's seller.
	AdvanceOrder(input *orderdto.AdvanceOrderInput) (*orderdto.AdvanceOrderOutput, error)

	GetSellerOrders(sellerID string) ([]*orderdto.OrderOutput, error)
	GetSellerOrderDetail(orderID, sellerID string) (*orderdto.SellerOrderDetailOutput, error)
	GetBuyerOrderDetail(orderID, buyerID string) (*orderdto.BuyerOrderDetailOutput, error)
	GetBuyerOrderHistory(buyerID string) ([]*orderdto.BuyerHistoryItemOutput, error)
	CountActiveSellerOrders(sellerID string) (int64, error)
}

type DefaultOrderUsecase struct {
	Store      domain.Store
	Notifier   domain.Notifier
	Publisher  domain.PublisherPort
	EventTopic string
	Metrics    *metrics.OrderMetrics
	Logger     *zap.Logger
}

func NewDefaultOrderUsecase(
	store domain.Store,
	notifier domain.Notifier,
	pub domain.PublisherPort,
	eventTopic string,
	orderMetrics *metrics.OrderMetrics,
	logger *zap.Logger,
) *DefaultOrderUsecase {
	return &DefaultOrderUsecase{
		Store:      store,
		Notifier:   notifier,
		Publisher:  pub,
		EventTopic: eventTopic,
		Metrics:    orderMetrics,
		Logger:     logger,
	}
}
