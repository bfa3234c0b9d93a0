package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/surrealdb/surrealdb.go/pkg/models"

	"youwilldrive/domain"
)

func TestAuthenticateSuccess(t *testing.T) {
	script := (&scripted{}).
		on("crypto::blake3", [][]interface{}{{"deadbeef"}}).
		on("FROM users WHERE phone", [][]interface{}{stmtResult(Row{
			"id":      models.NewRecordID("users", "1"),
			"name":    "Иван",
			"surname": "Петров",
			"phone":   "+79123456789",
			"role":    "admin",
		})})
	gw := &fakeGateway{onQuery: script.handle}

	user, err := NewAuthRepository(gw).Authenticate(context.Background(), "8 (912) 345-67-89", "secret")
	require.NoError(t, err)
	assert.Equal(t, "users:1", user.ID)
	assert.Equal(t, "admin", user.Role)

	// The lookup must run against the canonical phone and the hash the
	// database computed.
	last := gw.ops[len(gw.ops)-1]
	assert.Equal(t, "+79123456789", last.vars["phone"])
	assert.Equal(t, "deadbeef", last.vars["hash"])
}

func TestAuthenticateWrongCredentials(t *testing.T) {
	script := (&scripted{}).
		on("crypto::blake3", [][]interface{}{{"deadbeef"}}).
		on("FROM users WHERE phone", [][]interface{}{{}})
	gw := &fakeGateway{onQuery: script.handle}

	_, err := NewAuthRepository(gw).Authenticate(context.Background(), "+79123456789", "wrong")
	var authErr *domain.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "Неверный номер телефона или пароль", authErr.Message)
}

func TestAuthenticateEmptyHash(t *testing.T) {
	script := (&scripted{}).on("crypto::blake3", [][]interface{}{{}})
	gw := &fakeGateway{onQuery: script.handle}

	_, err := NewAuthRepository(gw).Authenticate(context.Background(), "+79123456789", "secret")
	var queryErr *domain.QueryError
	assert.ErrorAs(t, err, &queryErr)
}
