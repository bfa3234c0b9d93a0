package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"youwilldrive/config"
	"youwilldrive/domain"
	"youwilldrive/dto"
	"youwilldrive/middleware"
	"youwilldrive/utils"
)

type CadetHandler struct {
	uc domain.CadetUseCase
}

func NewCadetHandler(app *gin.Engine, uc domain.CadetUseCase, jwtManager *utils.JWTManager) {
	h := &CadetHandler{uc: uc}

	cadets := app.Group("/cadets")
	cadets.Use(config.AuthMiddleware(jwtManager), middleware.AdminOnly())
	{
		cadets.GET("/:id/config", h.GetConfig)
		cadets.POST("/:id/config", h.Configure)
	}
}

func (h *CadetHandler) GetConfig(c *gin.Context) {
	cfg, err := h.uc.GetConfig(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "GetCadetConfig", err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

func (h *CadetHandler) Configure(c *gin.Context) {
	actor := utils.GetAPIHitter(c)

	var req dto.CadetConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.PrintLogInfo(actor, http.StatusBadRequest, "ConfigureCadet - BindJSON", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.TranslateValidationError(err)})
		return
	}

	if err := h.uc.Configure(c.Request.Context(), c.Param("id"), dto.MapCadetConfigRequest(&req)); err != nil {
		respondError(c, "ConfigureCadet", err)
		return
	}

	utils.PrintLogInfo(actor, http.StatusOK, "ConfigureCadet", nil)
	c.JSON(http.StatusOK, gin.H{"message": "Конфигурация курсанта успешно сохранена"})
}
