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

type PlanHandler struct {
	uc domain.PlanUseCase
}

func NewPlanHandler(app *gin.Engine, uc domain.PlanUseCase, jwtManager *utils.JWTManager) {
	h := &PlanHandler{uc: uc}

	guard := []gin.HandlerFunc{config.AuthMiddleware(jwtManager), middleware.AdminOnly()}

	plans := app.Group("/plans")
	plans.Use(guard...)
	{
		plans.GET("", h.GetAllPlans)
		plans.POST("", h.CreatePlan)
		plans.PUT("/:id", h.UpdatePlan)
		plans.DELETE("/:id", h.DeletePlan)
	}

	app.GET("/transmissions", append(guard, h.GetAllTransmissions)...)
}

func (h *PlanHandler) GetAllPlans(c *gin.Context) {
	plans, err := h.uc.GetAllPlans(c.Request.Context())
	if err != nil {
		respondError(c, "GetAllPlans", err)
		return
	}
	c.JSON(http.StatusOK, plans)
}

func (h *PlanHandler) CreatePlan(c *gin.Context) {
	actor := utils.GetAPIHitter(c)

	var req dto.CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.PrintLogInfo(actor, http.StatusBadRequest, "CreatePlan - BindJSON", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.TranslateValidationError(err)})
		return
	}

	plan, err := h.uc.CreatePlan(c.Request.Context(), dto.MapCreatePlanRequest(&req))
	if err != nil {
		respondError(c, "CreatePlan", err)
		return
	}

	utils.PrintLogInfo(actor, http.StatusCreated, "CreatePlan", nil)
	c.JSON(http.StatusCreated, plan)
}

func (h *PlanHandler) UpdatePlan(c *gin.Context) {
	actor := utils.GetAPIHitter(c)

	var req dto.UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.PrintLogInfo(actor, http.StatusBadRequest, "UpdatePlan - BindJSON", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.TranslateValidationError(err)})
		return
	}

	plan, err := h.uc.UpdatePlan(c.Request.Context(), c.Param("id"), dto.MapUpdatePlanRequest(&req))
	if err != nil {
		respondError(c, "UpdatePlan", err)
		return
	}

	utils.PrintLogInfo(actor, http.StatusOK, "UpdatePlan", nil)
	c.JSON(http.StatusOK, plan)
}

func (h *PlanHandler) DeletePlan(c *gin.Context) {
	actor := utils.GetAPIHitter(c)

	if err := h.uc.DeletePlan(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, "DeletePlan", err)
		return
	}

	utils.PrintLogInfo(actor, http.StatusOK, "DeletePlan", nil)
	c.JSON(http.StatusOK, gin.H{"message": "План оплаты успешно удален"})
}

func (h *PlanHandler) GetAllTransmissions(c *gin.Context) {
	transmissions, err := h.uc.GetAllTransmissions(c.Request.Context())
	if err != nil {
		respondError(c, "GetAllTransmissions", err)
		return
	}
	c.JSON(http.StatusOK, transmissions)
}
