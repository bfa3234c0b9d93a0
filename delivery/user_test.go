package delivery

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"youwilldrive/domain"
)

func newUserApp(uc domain.UserUseCase) *gin.Engine {
	app := gin.New()
	NewUserHandler(app, uc, testJWT)
	return app
}

func TestUsersRequireSession(t *testing.T) {
	app := newUserApp(&fakeUserUC{})

	rec := doJSON(app, http.MethodGet, "/users", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUsersRejectNonAdmin(t *testing.T) {
	app := newUserApp(&fakeUserUC{})

	for _, role := range []string{domain.RoleCadet, domain.RoleInstructor} {
		rec := doJSON(app, http.MethodGet, "/users", nil, authCookie(t, role))
		assert.Equal(t, http.StatusForbidden, rec.Code, "role %s", role)
		assert.Equal(t, "Доступ только для администраторов", decodeBody(t, rec)["error"])
	}
}

func TestGetAllUsers(t *testing.T) {
	app := newUserApp(&fakeUserUC{users: []domain.User{
		{ID: "users:1", Name: "Иван", Surname: "Петров", Role: domain.RoleAdmin},
	}})

	rec := doJSON(app, http.MethodGet, "/users", nil, authCookie(t, domain.RoleAdmin))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "users:1")
}

func TestCreateUser(t *testing.T) {
	uc := &fakeUserUC{user: &domain.User{ID: "users:new", Role: domain.RoleCadet}}
	app := newUserApp(uc)

	rec := doJSON(app, http.MethodPost, "/users", gin.H{
		"firstName": "Пётр",
		"lastName":  "Сидоров",
		"phone":     "89123456789",
		"password":  "secret",
		"role":      "cadet",
	}, authCookie(t, domain.RoleAdmin))
	require.Equal(t, http.StatusCreated, rec.Code)

	require.NotNil(t, uc.provisioned)
	assert.Equal(t, "Пётр", uc.provisioned.FirstName)
	assert.Equal(t, domain.RoleCadet, uc.provisioned.Role)
}

func TestCreateUserRejectsBadPayload(t *testing.T) {
	uc := &fakeUserUC{}
	app := newUserApp(uc)

	cases := []struct {
		name string
		body gin.H
	}{
		{"short password", gin.H{
			"firstName": "Пётр", "lastName": "Сидоров",
			"phone": "89123456789", "password": "123", "role": "cadet",
		}},
		{"foreign phone", gin.H{
			"firstName": "Пётр", "lastName": "Сидоров",
			"phone": "+12025550142", "password": "secret", "role": "cadet",
		}},
		{"unknown role", gin.H{
			"firstName": "Пётр", "lastName": "Сидоров",
			"phone": "89123456789", "password": "secret", "role": "manager",
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doJSON(app, http.MethodPost, "/users", tc.body, authCookie(t, domain.RoleAdmin))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Nil(t, uc.provisioned)
		})
	}
}

func TestCreateUserUnknownRoleInRepo(t *testing.T) {
	app := newUserApp(&fakeUserUC{err: &domain.NotFoundError{Message: "Роль 'cadet' не найдена"}})

	rec := doJSON(app, http.MethodPost, "/users", gin.H{
		"firstName": "Пётр",
		"lastName":  "Сидоров",
		"phone":     "89123456789",
		"password":  "secret",
		"role":      "cadet",
	}, authCookie(t, domain.RoleAdmin))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteUser(t *testing.T) {
	uc := &fakeUserUC{}
	app := newUserApp(uc)

	rec := doJSON(app, http.MethodDelete, "/users/users:1", nil, authCookie(t, domain.RoleAdmin))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "users:1", uc.deletedID)
	assert.Equal(t, "Пользователь успешно удален", decodeBody(t, rec)["message"])
}

func TestDeleteUserNotFound(t *testing.T) {
	app := newUserApp(&fakeUserUC{err: &domain.NotFoundError{Message: "Пользователь не найден"}})

	rec := doJSON(app, http.MethodDelete, "/users/users:ghost", nil, authCookie(t, domain.RoleAdmin))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Пользователь не найден", decodeBody(t, rec)["error"])
}
