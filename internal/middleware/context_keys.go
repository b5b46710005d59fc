package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/prodcat/catalog_backend_app/internal/core/domain"
)

// contextKey is a private key type to avoid collisions in request contexts.
type contextKey string

const (
	loggerCtxKey = contextKey("logger")
	userIDKey    = contextKey("userID")
	userCtxKey   = contextKey("user")
)

// GetUserIDFromContext retrieves the authenticated user ID set by the auth
// middleware. It returns the ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

// GetUserFromContext retrieves the resolved authenticated user set by the
// auth middleware.
func GetUserFromContext(c *gin.Context) (*domain.User, bool) {
	user, ok := c.Request.Context().Value(userCtxKey).(*domain.User)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}
