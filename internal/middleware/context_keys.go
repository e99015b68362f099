package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/mercapos/mercapos_backend/internal/core/domain"
)

// contextKey is a private type for context keys to prevent collisions.
type contextKey string

const (
	loggerCtxKey = contextKey("logger")
	userIDKey    = contextKey("userID")
)

// GetUserIDFromContext retrieves the authenticated user ID from the Gin
// context. It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userIDVal := c.Request.Context().Value(userIDKey)
	if userIDVal == nil {
		return "", false
	}

	userID, ok := userIDVal.(string)
	if !ok {
		return "", false
	}
	return userID, true
}

// GetOwnerFromContext is the only place an OwnerID is minted: the
// authenticated user's ID is the tenant every core call is scoped to.
func GetOwnerFromContext(c *gin.Context) (domain.OwnerID, bool) {
	userID, ok := GetUserIDFromContext(c)
	if !ok {
		return "", false
	}
	return domain.OwnerID(userID), true
}

// WithUserID returns a context carrying the authenticated user's ID. Exposed
// for tests.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}
