package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the session payload signed into the auth-token cookie.
type Claims struct {
	UserID string
	Phone  string
	Name   string
	Role   string
}

type JWTManager struct {
	secretKey     []byte
	tokenDuration time.Duration
}

func NewJWTManager(secretKey string, duration time.Duration) *JWTManager {
	return &JWTManager{
		secretKey:     []byte(secretKey),
		tokenDuration: duration,
	}
}

// GenerateToken signs the session claims with HS256.
func (j *JWTManager) GenerateToken(c Claims) (string, error) {
	claims := jwt.MapClaims{
		"sub":   c.UserID,
		"phone": c.Phone,
		"name":  c.Name,
		"role":  c.Role,
		"exp":   time.Now().Add(j.tokenDuration).Unix(),
		"iat":   time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secretKey)
}

// VerifyToken validates the signature and expiry and returns the
// embedded session claims.
func (j *JWTManager) VerifyToken(tokenStr string) (*Claims, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return j.secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}

	out := &Claims{}
	if out.UserID, ok = claims["sub"].(string); !ok {
		return nil, fmt.Errorf("invalid sub claim")
	}
	if out.Role, ok = claims["role"].(string); !ok {
		return nil, fmt.Errorf("invalid role claim")
	}
	out.Phone, _ = claims["phone"].(string)
	out.Name, _ = claims["name"].(string)

	return out, nil
}
