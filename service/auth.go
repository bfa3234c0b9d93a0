package service

import (
	"context"
	"time"

	"youwilldrive/domain"
	"youwilldrive/utils"
)

// sessionDuration matches the auth-token cookie lifetime.
const sessionDuration = 7 * 24 * time.Hour

type authService struct {
	authRepo     domain.AuthRepository
	tokenManager *utils.JWTManager
}

func NewAuthService(authRepo domain.AuthRepository, jwtSecret string) domain.AuthUseCase {
	return &authService{
		authRepo:     authRepo,
		tokenManager: utils.NewJWTManager(jwtSecret, sessionDuration),
	}
}

func (s *authService) GetTokenManager() *utils.JWTManager {
	return s.tokenManager
}

func (s *authService) Login(ctx context.Context, phone, password string) (*domain.Session, string, error) {
	if phone == "" || password == "" {
		return nil, "", &domain.ValidationError{Message: "Номер телефона и пароль обязательны"}
	}

	user, err := s.authRepo.Authenticate(ctx, phone, password)
	if err != nil {
		return nil, "", err
	}

	session := &domain.Session{
		UserID: user.ID,
		Phone:  user.Phone,
		Name:   user.FullName(),
		Role:   user.Role,
	}

	token, err := s.tokenManager.GenerateToken(utils.Claims{
		UserID: session.UserID,
		Phone:  session.Phone,
		Name:   session.Name,
		Role:   session.Role,
	})
	if err != nil {
		return nil, "", err
	}

	return session, token, nil
}
