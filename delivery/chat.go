package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"youwilldrive/config"
	"youwilldrive/domain"
	"youwilldrive/middleware"
	"youwilldrive/utils"
)

type ChatHandler struct {
	uc domain.ChatUseCase
}

func NewChatHandler(app *gin.Engine, uc domain.ChatUseCase, jwtManager *utils.JWTManager) {
	h := &ChatHandler{uc: uc}

	chats := app.Group("/chats")
	chats.Use(config.AuthMiddleware(jwtManager), middleware.AdminOnly())
	{
		chats.GET("", h.GetAllChats)
		chats.GET("/:id", h.GetMessages)
	}
}

func (h *ChatHandler) GetAllChats(c *gin.Context) {
	chats, err := h.uc.GetAllChats(c.Request.Context())
	if err != nil {
		respondError(c, "GetAllChats", err)
		return
	}
	c.JSON(http.StatusOK, chats)
}

func (h *ChatHandler) GetMessages(c *gin.Context) {
	messages, err := h.uc.GetMessages(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "GetChatMessages", err)
		return
	}
	c.JSON(http.StatusOK, messages)
}
