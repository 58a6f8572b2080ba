package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ledjassa/marketplace-service/internal/domain"
)

// writeError maps domain errors onto HTTP statuses. Anything unmapped is a
// 500 with a generic body so internals never leak to clients.
func writeError(c *gin.Context, err error) {
	var stockErr *domain.InsufficientStockError
	if errors.As(err, &stockErr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     stockErr.Error(),
			"product":   stockErr.ProductName,
			"available": stockErr.Available,
			"requested": stockErr.Requested,
		})
		return
	}

	var transitionErr *domain.InvalidTransitionError
	if errors.As(err, &transitionErr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   transitionErr.Error(),
			"current": transitionErr.Current,
		})
		return
	}

	switch {
	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	case errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrConversationNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrAlreadyRated):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
