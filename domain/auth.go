package domain

import (
	"context"

	"youwilldrive/utils"
)

// Session is the payload carried inside the auth-token cookie.
type Session struct {
	UserID string `json:"id"`
	Phone  string `json:"phone"`
	Name   string `json:"name"`
	Role   string `json:"role"`
}

type AuthRepository interface {
	// Authenticate hashes the candidate password inside the database
	// and selects the user matching phone + hash. Returns AuthError
	// on credential mismatch.
	Authenticate(ctx context.Context, phone, password string) (*User, error)
}

type AuthUseCase interface {
	GetTokenManager() *utils.JWTManager
	// Login returns the session summary and a signed token for the
	// auth-token cookie.
	Login(ctx context.Context, phone, password string) (*Session, string, error)
}
