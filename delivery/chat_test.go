package delivery

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"youwilldrive/domain"
)

type fakeChatUC struct {
	chats    []domain.ChatSummary
	messages []domain.ChatMessage
	err      error

	gotChatID string
}

func (f *fakeChatUC) GetAllChats(context.Context) ([]domain.ChatSummary, error) {
	return f.chats, f.err
}

func (f *fakeChatUC) GetMessages(_ context.Context, chatID string) ([]domain.ChatMessage, error) {
	f.gotChatID = chatID
	return f.messages, f.err
}

func newChatApp(uc domain.ChatUseCase) *gin.Engine {
	app := gin.New()
	NewChatHandler(app, uc, testJWT)
	return app
}

func TestGetAllChats(t *testing.T) {
	sent := time.Date(2025, 5, 10, 12, 30, 0, 0, time.UTC)
	app := newChatApp(&fakeChatUC{chats: []domain.ChatSummary{{
		ID:              "chats:c1",
		CadetName:       "Пётр Сидоров",
		InstructorName:  "Анна Иванова",
		LastMessage:     "Добрый день!",
		LastMessageTime: &sent,
		MessageCount:    7,
		CadetPhone:      "+79123456789",
		InstructorPhone: "+79998887766",
	}}})

	rec := doJSON(app, http.MethodGet, "/chats", nil, authCookie(t, domain.RoleAdmin))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "chats:c1")
	assert.Contains(t, rec.Body.String(), "Добрый день!")
}

func TestGetChatMessages(t *testing.T) {
	uc := &fakeChatUC{messages: []domain.ChatMessage{{
		ID:   "messages:m1",
		Text: "Здравствуйте",
	}}}
	app := newChatApp(uc)

	rec := doJSON(app, http.MethodGet, "/chats/chats:c1", nil, authCookie(t, domain.RoleAdmin))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "chats:c1", uc.gotChatID)
	assert.Contains(t, rec.Body.String(), "messages:m1")
}

func TestChatsAreAdminOnly(t *testing.T) {
	app := newChatApp(&fakeChatUC{})

	rec := doJSON(app, http.MethodGet, "/chats", nil, authCookie(t, domain.RoleCadet))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
