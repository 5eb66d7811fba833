package middleware

import (
	"net/http"
	"slices"

	"contact_manager/internal/model"

	"github.com/gin-gonic/gin"
)

// RequireAuth rejects requests Authenticate left anonymous
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get(AuthUserKey); !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.ErrorResponse{Errors: "Unauthorized"})
			return
		}
		c.Next()
	}
}

// RequireRoles lets a request through when the bound user's role is one of allowedRoles.
// With no roles declared every request passes, anonymous ones included.
func RequireRoles(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(allowedRoles) == 0 {
			c.Next()
			return
		}

		roleVal, exists := c.Get(AuthRoleKey)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.ErrorResponse{Errors: "Unauthorized"})
			return
		}

		userRole, _ := roleVal.(string)
		if !slices.Contains(allowedRoles, userRole) {
			c.AbortWithStatusJSON(http.StatusForbidden, model.ErrorResponse{Errors: "Forbidden"})
			return
		}

		c.Next()
	}
}

// StaffMiddleware admits admins and operators
func StaffMiddleware() gin.HandlerFunc {
	return RequireRoles(model.RoleAdmin, model.RoleOperator)
}
