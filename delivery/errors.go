package delivery

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"youwilldrive/domain"
	"youwilldrive/utils"
)

// errorStatus maps the domain error taxonomy onto HTTP statuses and
// user-facing messages. Gateway errors stay internal: the client only
// sees the generic message, the log keeps the detail.
func errorStatus(err error) (int, string) {
	var (
		validationErr *domain.ValidationError
		notFoundErr   *domain.NotFoundError
		conflictErr   *domain.ConflictError
		authErr       *domain.AuthError
	)

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, validationErr.Message
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound, notFoundErr.Message
	case errors.As(err, &conflictErr):
		return http.StatusConflict, conflictErr.Message
	case errors.As(err, &authErr):
		return http.StatusUnauthorized, authErr.Message
	default:
		return http.StatusInternalServerError, "Внутренняя ошибка сервера"
	}
}

// respondError writes the JSON error body and logs the outcome with
// the internal error detail.
func respondError(c *gin.Context, operation string, err error) {
	status, message := errorStatus(err)
	utils.PrintLogInfo(utils.GetAPIHitter(c), status, operation, err)

	body := gin.H{"error": message}
	var conflictErr *domain.ConflictError
	if errors.As(err, &conflictErr) {
		body["dependenciesCount"] = conflictErr.Dependencies
	}
	c.JSON(status, body)
}
