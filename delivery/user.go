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

type UserHandler struct {
	uc domain.UserUseCase
}

func NewUserHandler(app *gin.Engine, uc domain.UserUseCase, jwtManager *utils.JWTManager) {
	h := &UserHandler{uc: uc}

	users := app.Group("/users")
	users.Use(config.AuthMiddleware(jwtManager), middleware.AdminOnly())
	{
		users.GET("", h.GetAllUsers)
		users.POST("", h.CreateUser)
		users.PUT("/:id", h.UpdateUser)
		users.DELETE("/:id", h.DeleteUser)
	}
}

func (h *UserHandler) GetAllUsers(c *gin.Context) {
	users, err := h.uc.GetAllUsers(c.Request.Context())
	if err != nil {
		respondError(c, "GetAllUsers", err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	actor := utils.GetAPIHitter(c)

	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.PrintLogInfo(actor, http.StatusBadRequest, "CreateUser - BindJSON", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.TranslateValidationError(err)})
		return
	}

	created, err := h.uc.ProvisionUser(c.Request.Context(), dto.MapCreateUserRequest(&req))
	if err != nil {
		respondError(c, "CreateUser", err)
		return
	}

	utils.PrintLogInfo(actor, http.StatusCreated, "CreateUser", nil)
	c.JSON(http.StatusCreated, created)
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	actor := utils.GetAPIHitter(c)
	id := c.Param("id")

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.PrintLogInfo(actor, http.StatusBadRequest, "UpdateUser - BindJSON", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.TranslateValidationError(err)})
		return
	}

	updated, err := h.uc.UpdateUser(c.Request.Context(), id, dto.MapUpdateUserRequest(&req))
	if err != nil {
		respondError(c, "UpdateUser", err)
		return
	}

	utils.PrintLogInfo(actor, http.StatusOK, "UpdateUser", nil)
	c.JSON(http.StatusOK, updated)
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	actor := utils.GetAPIHitter(c)

	if err := h.uc.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, "DeleteUser", err)
		return
	}

	utils.PrintLogInfo(actor, http.StatusOK, "DeleteUser", nil)
	c.JSON(http.StatusOK, gin.H{"message": "Пользователь успешно удален"})
}
