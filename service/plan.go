package service

import (
	"context"

	"youwilldrive/domain"
)

type planService struct {
	planRepo domain.PlanRepository
}

func NewPlanService(planRepo domain.PlanRepository) domain.PlanUseCase {
	return &planService{planRepo: planRepo}
}

func (s *planService) GetAllPlans(ctx context.Context) ([]domain.Plan, error) {
	return s.planRepo.GetAllPlans(ctx)
}

func (s *planService) CreatePlan(ctx context.Context, plan domain.Plan) (*domain.Plan, error) {
	if plan.Name == "" || plan.PracticeHours <= 0 {
		return nil, &domain.ValidationError{Message: "Название, часы практики и стоимость обязательны"}
	}
	if plan.Price < 0 {
		return nil, &domain.ValidationError{Message: "Стоимость не может быть отрицательной"}
	}
	return s.planRepo.CreatePlan(ctx, plan)
}

func (s *planService) UpdatePlan(ctx context.Context, id string, upd domain.PlanUpdate) (*domain.Plan, error) {
	if id == "" {
		return nil, &domain.ValidationError{Message: "Идентификатор плана обязателен"}
	}
	return s.planRepo.UpdatePlan(ctx, id, upd)
}

func (s *planService) DeletePlan(ctx context.Context, id string) error {
	if id == "" {
		return &domain.ValidationError{Message: "Идентификатор плана обязателен"}
	}
	return s.planRepo.DeletePlan(ctx, id)
}

func (s *planService) GetAllTransmissions(ctx context.Context) ([]domain.Transmission, error) {
	return s.planRepo.GetAllTransmissions(ctx)
}
