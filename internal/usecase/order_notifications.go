package usecase

import (
	"fmt"

	"github.com/ledjassa/marketplace-service/internal/domain"
	publisher "github.com/ledjassa/marketplace-service/internal/infrastructure/kafka"
	"go.uber.org/zap"
)

// notifySellerNewOrder sends email + SMS to the product's seller. The two
// channels are independent: one failing does not stop the other.
func (uc *DefaultOrderUsecase) notifySellerNewOrder(n sellerNotice) {
	body := fmt.Sprintf(
		"Hello, you have a new order.\n\nProduct: %s\nQuantity: %d\nTotal amount: %.2f Fr CFA",
		n.ProductName, n.Order.Quantity, n.Order.TotalAmount,
	)

	if n.SellerEmail != "" {
		if err := uc.Notifier.SendEmail(n.SellerEmail, "New order received", body); err != nil {
			uc.recordNotificationFailure("email")
			uc.Logger.Error("seller email notification failed",
				zap.String("order_id", n.Order.ID), zap.Error(err))
		}
	}
	if n.SellerPhone != "" {
		if err := uc.Notifier.SendSMS(n.SellerPhone, body); err != nil {
			uc.recordNotificationFailure("sms")
			uc.Logger.Error("seller sms notification failed",
				zap.String("order_id", n.Order.ID), zap.Error(err))
		}
	}
}

// notifyBuyerStatusChange tells the buyer about a status change. Requires the
// order's Buyer to be preloaded; silently skips channels without an address.
func (uc *DefaultOrderUsecase) notifyBuyerStatusChange(order *domain.Order) {
	if order.Buyer == nil {
		return
	}

	subject := fmt.Sprintf("Your order status: %s", order.Status.Label())
	body := fmt.Sprintf("Hello, your order is now %q.", order.Status.Label())

	if order.Buyer.Email != "" {
		if err := uc.Notifier.SendEmail(order.Buyer.Email, subject, body); err != nil {
			uc.recordNotificationFailure("email")
			uc.Logger.Error("buyer email notification failed",
				zap.String("order_id", order.ID), zap.Error(err))
		}
	}
	if order.Buyer.Phone != "" {
		if err := uc.Notifier.SendSMS(order.Buyer.Phone, body); err != nil {
			uc.recordNotificationFailure("sms")
			uc.Logger.Error("buyer sms notification failed",
				zap.String("order_id", order.ID), zap.Error(err))
		}
	}
}

func (uc *DefaultOrderUsecase) publishOrderEvent(order *domain.Order, sellerID, productName string) {
	if uc.Publisher == nil {
		return
	}

	event, err := publisher.MarshalOrderEvent(publisher.OrderEvent{
		OrderID:     order.ID,
		Number:      order.Number,
		BuyerID:     order.BuyerID,
		SellerID:    sellerID,
		ProductName: productName,
		Quantity:    order.Quantity,
		TotalAmount: order.TotalAmount,
		Status:      string(order.Status),
	})
	if err != nil {
		uc.Logger.Error("marshal order event failed", zap.Error(err))
		return
	}

	go func() {
		if err := uc.Publisher.Publish(uc.EventTopic, event); err != nil {
			if uc.Metrics != nil {
				uc.Metrics.EventPublishFailuresTotal.Inc()
			}
			uc.Logger.Error("publish order event failed",
				zap.String("order_id", order.ID), zap.Error(err))
		}
	}()
}
