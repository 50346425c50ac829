package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hostal/internal/domain"
	"hostal/internal/pkg/response"
)

// RequireRole ensures the authenticated user has the given role.
func RequireRole(required domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Role not found in token")
			c.Abort()
			return
		}

		if role.(string) != string(required) {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireCashier admits cashiers and admins; admins can perform every
// front-desk action.
func RequireCashier() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		if role != string(domain.RoleCashier) && role != string(domain.RoleAdmin) {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Cashier role required")
			c.Abort()
			return
		}
		c.Next()
	}
}
