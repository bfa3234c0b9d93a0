package service

import (
	"context"

	"youwilldrive/domain"
)

type chatService struct {
	chatRepo domain.ChatRepository
}

func NewChatService(chatRepo domain.ChatRepository) domain.ChatUseCase {
	return &chatService{chatRepo: chatRepo}
}

func (s *chatService) GetAllChats(ctx context.Context) ([]domain.ChatSummary, error) {
	return s.chatRepo.GetAllChats(ctx)
}

func (s *chatService) GetMessages(ctx context.Context, chatID string) ([]domain.ChatMessage, error) {
	if chatID == "" {
		return nil, &domain.ValidationError{Message: "Идентификатор чата обязателен"}
	}
	return s.chatRepo.GetMessages(ctx, chatID)
}
