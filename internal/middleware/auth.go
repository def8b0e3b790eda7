package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gradekeep/gradebook-backend/internal/model"
	"github.com/gradekeep/gradebook-backend/internal/response"
	"github.com/gradekeep/gradebook-backend/internal/service"
)

const (
	// ContextKeyUser is the Gin context key for the resolved caller.
	ContextKeyUser = "current_user"
	// ContextKeyTokenKey is the Gin context key for the presented token.
	ContextKeyTokenKey = "token_key"
)

// RequireAuth resolves the bearer token from the Authorization header into
// a user and stores it on the context. Every protected route sits behind
// this; nothing reaches a handler without a resolved identity.
//
// Both "Token <key>" and "Bearer <key>" schemes are accepted.
func RequireAuth(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := extractTokenKey(c)
		if key == "" {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenRequired)
			return
		}

		user, err := authService.Resolve(c.Request.Context(), key)
		if err != nil {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenInvalid)
			return
		}

		c.Set(ContextKeyUser, user)
		c.Set(ContextKeyTokenKey, key)
		c.Next()
	}
}

// GetUser retrieves the resolved caller from the Gin context.
func GetUser(c *gin.Context) *model.User {
	val, exists := c.Get(ContextKeyUser)
	if !exists {
		return nil
	}
	user, ok := val.(*model.User)
	if !ok {
		return nil
	}
	return user
}

// GetTokenKey retrieves the presented token key from the Gin context.
func GetTokenKey(c *gin.Context) string {
	return c.GetString(ContextKeyTokenKey)
}

func extractTokenKey(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "token") && !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
