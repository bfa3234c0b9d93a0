package service

import (
	"context"

	"youwilldrive/domain"
)

type instructorService struct {
	instructorRepo domain.InstructorRepository
}

func NewInstructorService(instructorRepo domain.InstructorRepository) domain.InstructorUseCase {
	return &instructorService{instructorRepo: instructorRepo}
}

func (s *instructorService) GetAllInstructors(ctx context.Context) ([]domain.User, error) {
	return s.instructorRepo.GetAllInstructors(ctx)
}

func (s *instructorService) GetAssignedCadets(ctx context.Context, userID string) ([]domain.User, error) {
	if userID == "" {
		return nil, &domain.ValidationError{Message: "Идентификатор инструктора обязателен"}
	}
	return s.instructorRepo.GetAssignedCadets(ctx, userID)
}

func (s *instructorService) GetCars(ctx context.Context, userID string) ([]domain.Car, error) {
	if userID == "" {
		return nil, &domain.ValidationError{Message: "Идентификатор инструктора обязателен"}
	}
	return s.instructorRepo.GetCars(ctx, userID)
}

func (s *instructorService) ConfigureCars(ctx context.Context, userID string, cars []domain.Car) error {
	if userID == "" {
		return &domain.ValidationError{Message: "Идентификатор инструктора обязателен"}
	}
	if cars == nil {
		return &domain.ValidationError{Message: "Неверный формат данных"}
	}
	return s.instructorRepo.ConfigureCars(ctx, userID, cars)
}
