package repository

import (
	"errors"
	"fmt"

	"github.com/ledjassa/marketplace-service/internal/domain"
	"github.com/ledjassa/marketplace-service/internal/infrastructure/postgres/mappers"
	"github.com/ledjassa/marketplace-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultConversationRepository struct {
	DB *gorm.DB
}

func NewDefaultConversationRepository(db *gorm.DB) *DefaultConversationRepository {
	return &DefaultConversationRepository{DB: db}
}

func (r *DefaultConversationRepository) GetOrCreateConversation(conv *domain.Conversation) (*domain.Conversation, error) {
	var existing models.ConversationModel
	err := r.DB.
		Preload("Product").
		Where("buyer_id = ? AND seller_id = ? AND product_id = ?", conv.BuyerID, conv.SellerID, conv.ProductID).
		First(&existing).Error
	if err == nil {
		return mappers.ToDomainConversation(&existing), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	model := mappers.ToGORMConversation(conv)
	if err := r.DB.Create(model).Error; err != nil {
		return nil, fmt.Errorf("create conversation: %w", err)
	}
	return conv, nil
}

func (r *DefaultConversationRepository) GetConversationByID(conversationID string) (*domain.Conversation, error) {
	var model models.ConversationModel
	if err := r.DB.Preload("Product").First(&model, "id = ?", conversationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrConversationNotFound
		}
		return nil, err
	}
	return mappers.ToDomainConversation(&model), nil
}

func (r *DefaultConversationRepository) ListConversationsByUserID(userID string) ([]*domain.Conversation, error) {
	var convModels []models.ConversationModel
	err := r.DB.
		Preload("Product").
		Where("buyer_id = ? OR seller_id = ?", userID, userID).
		Find(&convModels).Error
	if err != nil {
		return nil, err
	}

	convs := make([]*domain.Conversation, len(convModels))
	for i := range convModels {
		convs[i] = mappers.ToDomainConversation(&convModels[i])
	}
	return convs, nil
}

func (r *DefaultConversationRepository) CreateMessage(msg *domain.Message) error {
	model := mappers.ToGORMMessage(msg)
	if err := r.DB.Create(model).Error; err != nil {
		return fmt.Errorf("create message: %w", err)
	}
	return nil
}

func (r *DefaultConversationRepository) ListMessagesByConversationID(conversationID string) ([]*domain.Message, error) {
	var msgModels []models.MessageModel
	err := r.DB.
		Where("conversation_id = ?", conversationID).
		Order("created_at ASC").
		Find(&msgModels).Error
	if err != nil {
		return nil, err
	}

	msgs := make([]*domain.Message, len(msgModels))
	for i := range msgModels {
		msgs[i] = mappers.ToDomainMessage(&msgModels[i])
	}
	return msgs, nil
}
