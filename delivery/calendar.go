package delivery

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"youwilldrive/config"
	"youwilldrive/domain"
	"youwilldrive/middleware"
	"youwilldrive/utils"
)

type CalendarHandler struct {
	uc domain.EventUseCase
}

func NewCalendarHandler(app *gin.Engine, uc domain.EventUseCase, jwtManager *utils.JWTManager) {
	h := &CalendarHandler{uc: uc}

	calendar := app.Group("/calendar")
	calendar.Use(config.AuthMiddleware(jwtManager), middleware.AdminOnly())
	{
		calendar.GET("/events", h.GetEvents)
	}
}

func (h *CalendarHandler) GetEvents(c *gin.Context) {
	year, err := intQuery(c, "year")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Параметр year должен быть числом"})
		return
	}
	month, err := intQuery(c, "month")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Параметр month должен быть числом"})
		return
	}

	events, err := h.uc.GetEvents(c.Request.Context(), year, month)
	if err != nil {
		respondError(c, "GetEvents", err)
		return
	}
	c.JSON(http.StatusOK, events)
}

func intQuery(c *gin.Context, name string) (*int, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
