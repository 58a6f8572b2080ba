package mappers

import (
	"github.com/ledjassa/marketplace-service/internal/domain"
	"github.com/ledjassa/marketplace-service/internal/infrastructure/postgres/models"
)

func ToDomainConversation(model *models.ConversationModel) *domain.Conversation {
	conv := &domain.Conversation{
		ID:        model.ID,
		BuyerID:   model.BuyerID,
		SellerID:  model.SellerID,
		ProductID: model.ProductID,
	}
	if model.Product.ID != "" {
		conv.Product = ToDomainProduct(&model.Product)
	}
	return conv
}

func ToGORMConversation(conv *domain.Conversation) *models.ConversationModel {
	return &models.ConversationModel{
		ID:        conv.ID,
		BuyerID:   conv.BuyerID,
		SellerID:  conv.SellerID,
		ProductID: conv.ProductID,
	}
}

func ToDomainMessage(model *models.MessageModel) *domain.Message {
	return &domain.Message{
		ID:             model.ID,
		ConversationID: model.ConversationID,
		SenderID:       model.SenderID,
		Body:           model.Body,
		CreatedAt:      model.CreatedAt,
	}
}

func ToGORMMessage(msg *domain.Message) *models.MessageModel {
	return &models.MessageModel{
		ID:             msg.ID,
		ConversationID: msg.ConversationID,
		SenderID:       msg.SenderID,
		Body:           msg.Body,
		CreatedAt:      msg.CreatedAt,
	}
}

func ToDomainRating(model *models.RatingModel) *domain.Rating {
	return &domain.Rating{
		ID:        model.ID,
		OrderID:   model.OrderID,
		RaterID:   model.RaterID,
		Score:     model.Score,
		Comment:   model.Comment,
		CreatedAt: model.CreatedAt,
	}
}

func ToGORMRating(rating *domain.Rating) *models.RatingModel {
	return &models.RatingModel{
		ID:        rating.ID,
		OrderID:   rating.OrderID,
		RaterID:   rating.RaterID,
		Score:     rating.Score,
		Comment:   rating.Comment,
		CreatedAt: rating.CreatedAt,
	}
}
