package service

import (
	"context"

	"youwilldrive/domain"
)

type eventService struct {
	eventRepo domain.EventRepository
}

func NewEventService(eventRepo domain.EventRepository) domain.EventUseCase {
	return &eventService{eventRepo: eventRepo}
}

func (s *eventService) GetEvents(ctx context.Context, year, month *int) ([]domain.Event, error) {
	// The window filter needs both bounds; a lone year or month is
	// ignored and the full projection comes back.
	if year == nil || month == nil {
		return s.eventRepo.GetEvents(ctx, nil, nil)
	}
	if *month < 0 || *month > 11 {
		return nil, &domain.ValidationError{Message: "Месяц должен быть в диапазоне от 0 до 11"}
	}
	return s.eventRepo.GetEvents(ctx, year, month)
}
