package usecase

import (
	"github.com/ledjassa/marketplace-service/internal/domain"
	orderdto "github.com/ledjassa/marketplace-service/internal/usecase/dto/order"
)

func (uc *DefaultOrderUsecase) GetSellerOrders(sellerID string) ([]*orderdto.OrderOutput, error) {
	orders, err := uc.Store.Orders().GetOrdersBySellerID(sellerID)
	if err != nil {
		return nil, err
	}

	outputs := make([]*orderdto.OrderOutput, 0, len(orders))
	for _, order := range orders {
		outputs = append(outputs, toOrderOutput(order))
	}
	return outputs, nil
}

// GetSellerOrderDetail returns the transition view: detail, history newest
// first, and the statically computed legal next actions.
func (uc *DefaultOrderUsecase) GetSellerOrderDetail(orderID, sellerID string) (*orderdto.SellerOrderDetailOutput, error) {
	order, err := uc.Store.Orders().GetOrderForSeller(orderID, sellerID)
	if err != nil {
		return nil, err
	}

	history, err := uc.Store.Orders().GetHistoryByOrderID(orderID)
	if err != nil {
		return nil, err
	}

	out := &orderdto.SellerOrderDetailOutput{
		ID:                 order.ID,
		CreatedAt:          order.CreatedAt,
		Status:             order.Status,
		TotalAmount:        order.TotalAmount,
		History:            toHistoryOutputs(history),
		AllowedTransitions: order.Status.AllowedTransitions(),
	}
	if order.Buyer != nil {
		out.Buyer = orderdto.BuyerInfoOutput{
			Username:        order.Buyer.Username,
			Email:           order.Buyer.Email,
			Address:         order.Buyer.Address,
			DeliveryAddress: order.DeliveryAddress,
		}
	}
	if order.Product != nil {
		out.Product = orderdto.ProductInfoOutput{
			Name:      order.Product.Name,
			Quantity:  order.Quantity,
			UnitPrice: order.Product.Price,
		}
	}
	return out, nil
}

func (uc *DefaultOrderUsecase) GetBuyerOrderDetail(orderID, buyerID string) (*orderdto.BuyerOrderDetailOutput, error) {
	order, err := uc.Store.Orders().GetOrderForBuyer(orderID, buyerID)
	if err != nil {
		return nil, err
	}

	history, err := uc.Store.Orders().GetHistoryByOrderID(orderID)
	if err != nil {
		return nil, err
	}

	out := &orderdto.BuyerOrderDetailOutput{
		ID: order.ID,
		Order: orderdto.BuyerOrderInfoOutput{
			Quantity:        order.Quantity,
			TotalAmount:     order.TotalAmount,
			Status:          order.Status,
			PaymentMethod:   order.PaymentMethod,
			DeliveryAddress: order.DeliveryAddress,
			CreatedAt:       order.CreatedAt,
			ShippingAt:      order.ShippingAt,
		},
		History: toHistoryOutputs(history),
	}
	if order.Product != nil {
		out.Product = orderdto.BuyerProductOutput{
			Name:        order.Product.Name,
			Description: order.Product.Description,
			UnitPrice:   order.Product.Price,
			ImageURL:    order.Product.FirstImageURL(),
		}
		if order.Product.Seller != nil {
			out.Product.Seller = orderdto.SellerContactOutput{
				Username: order.Product.Seller.Username,
				Email:    order.Product.Seller.Email,
			}
		}
	}
	return out, nil
}

// GetBuyerOrderHistory is buyer only; sellers are rejected with ErrForbidden.
func (uc *DefaultOrderUsecase) GetBuyerOrderHistory(buyerID string) ([]*orderdto.BuyerHistoryItemOutput, error) {
	buyer, err := uc.Store.Users().GetUserByID(buyerID)
	if err != nil {
		return nil, err
	}
	if buyer.IsSeller {
		return nil, domain.ErrForbidden
	}

	orders, err := uc.Store.Orders().GetOrdersByBuyerID(buyerID)
	if err != nil {
		return nil, err
	}

	items := make([]*orderdto.BuyerHistoryItemOutput, 0, len(orders))
	for _, order := range orders {
		item := &orderdto.BuyerHistoryItemOutput{
			ID:            order.ID,
			Quantity:      order.Quantity,
			TotalAmount:   order.TotalAmount,
			Status:        order.Status,
			PaymentMethod: order.PaymentMethod,
			CreatedAt:     order.CreatedAt,
		}
		if order.Product != nil {
			item.ProductName = order.Product.Name
			item.ProductImage = order.Product.FirstImageURL()
		}
		items = append(items, item)
	}
	return items, nil
}

// CountActiveSellerOrders counts the seller's orders still in flight
// (pending, processing or shipping).
func (uc *DefaultOrderUsecase) CountActiveSellerOrders(sellerID string) (int64, error) {
	return uc.Store.Orders().CountActiveBySellerID(sellerID)
}

func toHistoryOutputs(history []*domain.StatusHistory) []orderdto.HistoryEntryOutput {
	outputs := make([]orderdto.HistoryEntryOutput, 0, len(history))
	for _, h := range history {
		outputs = append(outputs, orderdto.HistoryEntryOutput{
			Status:    h.Status,
			Comment:   h.Comment,
			ChangedBy: h.ChangedBy,
			ChangedAt: h.ChangedAt,
		})
	}
	return outputs
}
