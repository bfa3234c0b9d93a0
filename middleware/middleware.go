package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"youwilldrive/domain"
)

// AdminOnly gates admin-panel routes server-side. Every state-changing
// route re-checks the session role here, regardless of what the UI
// already enforces.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists || role != domain.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Доступ только для администраторов",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
