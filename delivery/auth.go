package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"youwilldrive/config"
	"youwilldrive/domain"
	"youwilldrive/utils"
)

type AuthHandler struct {
	authUC domain.AuthUseCase
}

// NewAuthHandler registers the session routes. loginLimiter may be a
// pass-through when redis is not configured.
func NewAuthHandler(app *gin.Engine, authUC domain.AuthUseCase, loginLimiter gin.HandlerFunc) {
	h := &AuthHandler{authUC: authUC}

	app.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	auth := app.Group("/auth")
	{
		auth.POST("/login", loginLimiter, h.Login)
		auth.POST("/logout", h.Logout)
	}

	protected := app.Group("/auth")
	protected.Use(config.AuthMiddleware(authUC.GetTokenManager()))
	{
		protected.GET("/me", h.Me)
	}
}

type LoginRequest struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.PrintLogInfo(utils.GetAPIHitter(c), http.StatusBadRequest, "Login - BindJSON", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Номер телефона и пароль обязательны"})
		return
	}

	session, token, err := h.authUC.Login(c.Request.Context(), req.Phone, req.Password)
	if err != nil {
		respondError(c, "Login", err)
		return
	}

	config.SetAuthCookie(c, token)

	utils.PrintLogInfo(session.Name, http.StatusOK, "Login", nil)
	c.JSON(http.StatusOK, gin.H{
		"user":    session,
		"message": "Успешный вход в систему",
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	config.ClearAuthCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "Успешный выход из системы"})
}

// Me returns the session summary straight from the verified token;
// the middleware already rejected missing or invalid cookies.
func (h *AuthHandler) Me(c *gin.Context) {
	session := domain.Session{
		UserID: c.GetString("userID"),
		Phone:  c.GetString("userPhone"),
		Name:   c.GetString("userName"),
		Role:   c.GetString("role"),
	}
	c.JSON(http.StatusOK, gin.H{"user": session})
}
