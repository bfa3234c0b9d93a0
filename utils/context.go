package utils

import (
	"github.com/gin-gonic/gin"
)

// GetAPIHitter returns the display name of the authenticated caller,
// for request logging.
func GetAPIHitter(c *gin.Context) string {
	if name, ok := c.Get("userName"); ok {
		if s, ok := name.(string); ok && s != "" {
			return s
		}
	}
	return "anonymous"
}
