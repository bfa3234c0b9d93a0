package service

import (
	"context"

	"youwilldrive/domain"
)

type cadetService struct {
	cadetRepo domain.CadetRepository
}

func NewCadetService(cadetRepo domain.CadetRepository) domain.CadetUseCase {
	return &cadetService{cadetRepo: cadetRepo}
}

func (s *cadetService) GetConfig(ctx context.Context, userID string) (*domain.CadetConfig, error) {
	if userID == "" {
		return nil, &domain.ValidationError{Message: "Идентификатор курсанта обязателен"}
	}
	return s.cadetRepo.GetConfig(ctx, userID)
}

func (s *cadetService) Configure(ctx context.Context, userID string, cfg domain.CadetConfig) error {
	if userID == "" {
		return &domain.ValidationError{Message: "Идентификатор курсанта обязателен"}
	}
	if cfg.PaymentPlan == "" || cfg.InstructorID == "" {
		return &domain.ValidationError{Message: "План оплаты и инструктор обязательны"}
	}
	return s.cadetRepo.Configure(ctx, userID, cfg)
}
