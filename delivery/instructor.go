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

type InstructorHandler struct {
	uc domain.InstructorUseCase
}

func NewInstructorHandler(app *gin.Engine, uc domain.InstructorUseCase, jwtManager *utils.JWTManager) {
	h := &InstructorHandler{uc: uc}

	instructors := app.Group("/instructors")
	instructors.Use(config.AuthMiddleware(jwtManager), middleware.AdminOnly())
	{
		instructors.GET("", h.GetAllInstructors)
		instructors.GET("/:id/cadets", h.GetAssignedCadets)
		instructors.GET("/:id/config", h.GetConfig)
		instructors.POST("/:id/config", h.ConfigureCars)
	}
}

func (h *InstructorHandler) GetAllInstructors(c *gin.Context) {
	instructors, err := h.uc.GetAllInstructors(c.Request.Context())
	if err != nil {
		respondError(c, "GetAllInstructors", err)
		return
	}
	c.JSON(http.StatusOK, instructors)
}

func (h *InstructorHandler) GetAssignedCadets(c *gin.Context) {
	cadets, err := h.uc.GetAssignedCadets(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "GetAssignedCadets", err)
		return
	}
	c.JSON(http.StatusOK, cadets)
}

func (h *InstructorHandler) GetConfig(c *gin.Context) {
	cars, err := h.uc.GetCars(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "GetInstructorConfig", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cars": cars})
}

func (h *InstructorHandler) ConfigureCars(c *gin.Context) {
	actor := utils.GetAPIHitter(c)

	var req dto.ConfigureCarsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.PrintLogInfo(actor, http.StatusBadRequest, "ConfigureCars - BindJSON", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.TranslateValidationError(err)})
		return
	}

	if err := h.uc.ConfigureCars(c.Request.Context(), c.Param("id"), dto.MapConfigureCarsRequest(&req)); err != nil {
		respondError(c, "ConfigureCars", err)
		return
	}

	utils.PrintLogInfo(actor, http.StatusOK, "ConfigureCars", nil)
	c.JSON(http.StatusOK, gin.H{"message": "Автомобили инструктора успешно обновлены"})
}
