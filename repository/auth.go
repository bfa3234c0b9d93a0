package repository

import (
	"context"
	"errors"

	"youwilldrive/domain"
	"youwilldrive/utils"
)

var errEmptyHash = errors.New("empty hash result")

type authRepository struct {
	gw Gateway
}

func NewAuthRepository(gw Gateway) domain.AuthRepository {
	return &authRepository{gw: gw}
}

// hashPassword delegates digest computation to the database engine.
// The application never hashes credentials in process.
func hashPassword(ctx context.Context, gw Gateway, password string) (string, error) {
	results, err := gw.Query(ctx, "SELECT * FROM crypto::blake3($password)", map[string]interface{}{
		"password": password,
	})
	if err != nil {
		return "", err
	}
	hash, ok := firstOf(results, 0).(string)
	if !ok || hash == "" {
		return "", &domain.QueryError{Op: "hash password", Err: errEmptyHash}
	}
	return hash, nil
}

func (r *authRepository) Authenticate(ctx context.Context, phone, password string) (*domain.User, error) {
	hash, err := hashPassword(ctx, r.gw, password)
	if err != nil {
		return nil, err
	}

	results, err := r.gw.Query(ctx,
		"SELECT *, (SELECT name_en FROM ->of_role->roles)[0].name_en AS role FROM users WHERE phone = $phone AND password_hash = $hash",
		map[string]interface{}{
			"phone": utils.NormalizePhone(phone),
			"hash":  hash,
		})
	if err != nil {
		return nil, err
	}

	rows := rowsOf(results, 0)
	if len(rows) == 0 {
		return nil, &domain.AuthError{Message: "Неверный номер телефона или пароль"}
	}

	user := userFromRow(rows[0])
	return &user, nil
}
