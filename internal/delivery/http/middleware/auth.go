package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/ledjassa/marketplace-service/internal/domain"
)

const (
	ContextUserID   = "uid"
	ContextIsSeller = "is_seller"
)

// JWTAuth validates the bearer token and stores the caller's identity on the
// request context.
func JWTAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		token, err := jwt.Parse(strings.TrimPrefix(header, "Bearer "), func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token claims"})
			return
		}

		sub, _ := claims["sub"].(string)
		if sub == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token subject"})
			return
		}
		isSeller, _ := claims["is_seller"].(bool)

		c.Set(ContextUserID, sub)
		c.Set(ContextIsSeller, isSeller)
		c.Next()
	}
}

// RequireAction gates a route on the caller's role capability.
func RequireAction(action domain.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !domain.Allowed(c.GetBool(ContextIsSeller), action) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "action not allowed for this account"})
			return
		}
		c.Next()
	}
}

// UserID returns the authenticated caller's id set by JWTAuth.
func UserID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}
