package dto

import (
	"youwilldrive/domain"
)

type CreatePlanRequest struct {
	Name          string   `json:"name" binding:"required,min=1,max=100"`
	PracticeHours float64  `json:"practice_hours" binding:"required,gt=0"`
	TheoryHours   float64  `json:"theory_hours" binding:"omitempty,gte=0"`
	Price         *float64 `json:"price" binding:"required,gte=0"`
}

type UpdatePlanRequest struct {
	Name          *string  `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	PracticeHours *float64 `json:"practice_hours,omitempty" binding:"omitempty,gt=0"`
	TheoryHours   *float64 `json:"theory_hours,omitempty" binding:"omitempty,gte=0"`
	Price         *float64 `json:"price,omitempty" binding:"omitempty,gte=0"`
}

func MapCreatePlanRequest(req *CreatePlanRequest) domain.Plan {
	return domain.Plan{
		Name:          req.Name,
		PracticeHours: req.PracticeHours,
		TheoryHours:   req.TheoryHours,
		Price:         *req.Price,
	}
}

func MapUpdatePlanRequest(req *UpdatePlanRequest) domain.PlanUpdate {
	return domain.PlanUpdate{
		Name:          req.Name,
		PracticeHours: req.PracticeHours,
		TheoryHours:   req.TheoryHours,
		Price:         req.Price,
	}
}
