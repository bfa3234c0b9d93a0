package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestLoginRateLimiterNilClientPassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)

	app := gin.New()
	app.POST("/auth/login", LoginRateLimiter(nil, DefaultLoginRateLimiterConfig()), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})

	for i := 0; i < 50; i++ {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		app.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestAdminOnlyWithoutRole(t *testing.T) {
	gin.SetMode(gin.TestMode)

	app := gin.New()
	app.GET("/users", AdminOnly(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{})
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
