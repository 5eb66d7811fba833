package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	AuthUserKey = "authUser"
	AuthRoleKey = "authRole"
)

// Principal is anything the auth step can bind to a request, a nil pointer meaning "not found"
type Principal interface {
	comparable
	RoleName() string
}

// TokenLookup resolves the raw Authorization header value to its owner
type TokenLookup[T Principal] func(ctx context.Context, token string) (T, error)

// Authenticate binds the owner of the Authorization token to the context.
// It never rejects: a missing header, an unknown token or a lookup failure
// all leave the request anonymous for the guards further down the chain.
func Authenticate[T Principal](find TokenLookup[T], logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")
		if token == "" {
			c.Next()
			return
		}

		user, err := find(c.Request.Context(), token)
		if err != nil {
			logger.Error("failed to look up token owner", zap.Error(err))
			c.Next()
			return
		}

		var zero T
		if user != zero {
			c.Set(AuthUserKey, user)
			c.Set(AuthRoleKey, user.RoleName())
		}
		c.Next()
	}
}

// AuthUser returns the principal bound by Authenticate
func AuthUser[T Principal](c *gin.Context) (T, bool) {
	var zero T
	v, ok := c.Get(AuthUserKey)
	if !ok {
		return zero, false
	}
	user, ok := v.(T)
	return user, ok
}
