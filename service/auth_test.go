package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"youwilldrive/domain"
)

const testSecret = "test-secret-key-that-is-long-enough-0000"

type fakeAuthRepo struct {
	user *domain.User
	err  error

	gotPhone    string
	gotPassword string
}

func (f *fakeAuthRepo) Authenticate(_ context.Context, phone, password string) (*domain.User, error) {
	f.gotPhone = phone
	f.gotPassword = password
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	repo := &fakeAuthRepo{user: &domain.User{
		ID:      "users:1",
		Name:    "Иван",
		Surname: "Петров",
		Phone:   "+79123456789",
		Role:    domain.RoleAdmin,
	}}
	svc := NewAuthService(repo, testSecret)

	session, token, err := svc.Login(context.Background(), "+79123456789", "secret")
	require.NoError(t, err)
	assert.Equal(t, "users:1", session.UserID)
	assert.Equal(t, "Иван Петров", session.Name)
	assert.Equal(t, domain.RoleAdmin, session.Role)

	claims, err := svc.GetTokenManager().VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "users:1", claims.UserID)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
}

func TestLoginRequiresCredentials(t *testing.T) {
	svc := NewAuthService(&fakeAuthRepo{}, testSecret)

	for _, tc := range []struct{ phone, password string }{
		{"", "secret"},
		{"+79123456789", ""},
		{"", ""},
	} {
		_, _, err := svc.Login(context.Background(), tc.phone, tc.password)
		var validation *domain.ValidationError
		assert.ErrorAs(t, err, &validation)
	}
}

func TestLoginPropagatesAuthError(t *testing.T) {
	repo := &fakeAuthRepo{err: &domain.AuthError{Message: "Неверный номер телефона или пароль"}}
	svc := NewAuthService(repo, testSecret)

	_, _, err := svc.Login(context.Background(), "+79123456789", "wrong")
	var authErr *domain.AuthError
	assert.ErrorAs(t, err, &authErr)
}
