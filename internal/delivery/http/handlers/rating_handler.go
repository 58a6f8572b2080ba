package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ledjassa/marketplace-service/internal/delivery/http/middleware"
	"github.com/ledjassa/marketplace-service/internal/domain"
	"github.com/ledjassa/marketplace-service/internal/usecase"
)

type RatingHandler struct {
	uc usecase.RatingUsecase
}

func NewRatingHandler(uc usecase.RatingUsecase) *RatingHandler {
	return &RatingHandler{uc: uc}
}

type rateOrderRequest struct {
	Score   int    `json:"score" binding:"required"`
	Comment string `json:"comment"`
}

type ratingResponse struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"order_id"`
	Score     int       `json:"score"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func toRatingResponse(r *domain.Rating) ratingResponse {
	return ratingResponse{
		ID:        r.ID,
		OrderID:   r.OrderID,
		Score:     r.Score,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
}

func (h *RatingHandler) Rate(c *gin.Context) {
	var req rateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rating, err := h.uc.RateOrder(c.Param("id"), middleware.UserID(c), req.Score, req.Comment)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toRatingResponse(rating))
}

func (h *RatingHandler) ListForOrder(c *gin.Context) {
	ratings, err := h.uc.ListOrderRatings(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]ratingResponse, len(ratings))
	for i, r := range ratings {
		out[i] = toRatingResponse(r)
	}
	c.JSON(http.StatusOK, gin.H{"ratings": out})
}
