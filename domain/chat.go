package domain

import (
	"context"
	"time"
)

// ChatSummary is the derived projection shown in the chat monitor
// list. The admin panel never writes chat data.
type ChatSummary struct {
	ID              string     `json:"id"`
	CadetName       string     `json:"cadetName"`
	InstructorName  string     `json:"instructorName"`
	LastMessage     string     `json:"lastMessage"`
	LastMessageTime *time.Time `json:"lastMessageTime"`
	MessageCount    int        `json:"messageCount"`
	LastActivity    *time.Time `json:"lastActivity"`
	CadetPhone      string     `json:"cadetPhone"`
	InstructorPhone string     `json:"instructorPhone"`
}

type ChatMessage struct {
	ID       string    `json:"id"`
	Text     string    `json:"text"`
	DateSent time.Time `json:"date_sent"`
	Sender   *User     `json:"sender,omitempty"`
}

type ChatRepository interface {
	GetAllChats(ctx context.Context) ([]ChatSummary, error)
	GetMessages(ctx context.Context, chatID string) ([]ChatMessage, error)
}

type ChatUseCase interface {
	GetAllChats(ctx context.Context) ([]ChatSummary, error)
	GetMessages(ctx context.Context, chatID string) ([]ChatMessage, error)
}
