package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ledjassa/marketplace-service/internal/domain"
)

type MessagingUsecase interface {
	// StartConversation returns the conversation for (buyer, seller,
	// product), creating it on first contact.
	StartConversation(buyerID, productID string) (*domain.Conversation, error)
	ListConversations(userID string) ([]*domain.Conversation, error)
	SendMessage(conversationID, senderID, body string) (*domain.Message, error)
	ListMessages(conversationID, userID string) ([]*domain.Message, error)
}

type DefaultMessagingUsecase struct {
	Store domain.Store
}

func NewDefaultMessagingUsecase(store domain.Store) *DefaultMessagingUsecase {
	return &DefaultMessagingUsecase{Store: store}
}

func (uc *DefaultMessagingUsecase) StartConversation(buyerID, productID string) (*domain.Conversation, error) {
	product, err := uc.Store.Products().GetProductByID(productID)
	if err != nil {
		return nil, err
	}

	return uc.Store.Conversations().GetOrCreateConversation(&domain.Conversation{
		ID:        uuid.NewString(),
		BuyerID:   buyerID,
		SellerID:  product.SellerID,
		ProductID: productID,
	})
}

func (uc *DefaultMessagingUsecase) ListConversations(userID string) ([]*domain.Conversation, error) {
	return uc.Store.Conversations().ListConversationsByUserID(userID)
}

func (uc *DefaultMessagingUsecase) SendMessage(conversationID, senderID, body string) (*domain.Message, error) {
	if body == "" {
		return nil, fmt.Errorf("%w: message body is empty", domain.ErrValidation)
	}

	conv, err := uc.Store.Conversations().GetConversationByID(conversationID)
	if err != nil {
		return nil, err
	}
	if conv.BuyerID != senderID && conv.SellerID != senderID {
		return nil, domain.ErrForbidden
	}

	msg := &domain.Message{
		ID:             uuid.NewString(),
		ConversationID: conversationID,
		SenderID:       senderID,
		Body:           body,
		CreatedAt:      time.Now(),
	}
	if err := uc.Store.Conversations().CreateMessage(msg); err != nil {
		return nil, err
	}
	return msg, nil
}

func (uc *DefaultMessagingUsecase) ListMessages(conversationID, userID string) ([]*domain.Message, error) {
	conv, err := uc.Store.Conversations().GetConversationByID(conversationID)
	if err != nil {
		return nil, err
	}
	if conv.BuyerID != userID && conv.SellerID != userID {
		return nil, domain.ErrForbidden
	}
	return uc.Store.Conversations().ListMessagesByConversationID(conversationID)
}
