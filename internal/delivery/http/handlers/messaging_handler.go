package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ledjassa/marketplace-service/internal/delivery/http/middleware"
	"github.com/ledjassa/marketplace-service/internal/domain"
	"github.com/ledjassa/marketplace-service/internal/usecase"
)

type MessagingHandler struct {
	uc usecase.MessagingUsecase
}

func NewMessagingHandler(uc usecase.MessagingUsecase) *MessagingHandler {
	return &MessagingHandler{uc: uc}
}

type startConversationRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

type sendMessageRequest struct {
	Body string `json:"body" binding:"required"`
}

type conversationResponse struct {
	ID          string `json:"id"`
	BuyerID     string `json:"buyer_id"`
	SellerID    string `json:"seller_id"`
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name,omitempty"`
}

func toConversationResponse(conv *domain.Conversation) conversationResponse {
	resp := conversationResponse{
		ID:        conv.ID,
		BuyerID:   conv.BuyerID,
		SellerID:  conv.SellerID,
		ProductID: conv.ProductID,
	}
	if conv.Product != nil {
		resp.ProductName = conv.Product.Name
	}
	return resp
}

type messageResponse struct {
	ID        string    `json:"id"`
	SenderID  string    `json:"sender_id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

func toMessageResponse(msg *domain.Message) messageResponse {
	return messageResponse{
		ID:        msg.ID,
		SenderID:  msg.SenderID,
		Body:      msg.Body,
		CreatedAt: msg.CreatedAt,
	}
}

func (h *MessagingHandler) Start(c *gin.Context) {
	var req startConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	conv, err := h.uc.StartConversation(middleware.UserID(c), req.ProductID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toConversationResponse(conv))
}

func (h *MessagingHandler) List(c *gin.Context) {
	convs, err := h.uc.ListConversations(middleware.UserID(c))
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]conversationResponse, len(convs))
	for i, conv := range convs {
		out[i] = toConversationResponse(conv)
	}
	c.JSON(http.StatusOK, gin.H{"conversations": out})
}

func (h *MessagingHandler) SendMessage(c *gin.Context) {
	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg, err := h.uc.SendMessage(c.Param("id"), middleware.UserID(c), req.Body)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toMessageResponse(msg))
}

func (h *MessagingHandler) ListMessages(c *gin.Context) {
	msgs, err := h.uc.ListMessages(c.Param("id"), middleware.UserID(c))
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]messageResponse, len(msgs))
	for i, msg := range msgs {
		out[i] = toMessageResponse(msg)
	}
	c.JSON(http.StatusOK, gin.H{"messages": out})
}
