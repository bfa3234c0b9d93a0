package domain

import (
	"context"
)

// Plan is payment-plan reference data.
type Plan struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	PracticeHours float64 `json:"practice_hours"`
	TheoryHours   float64 `json:"theory_hours"`
	Price         float64 `json:"price"`
}

// PlanUpdate carries partial edits; nil fields stay untouched.
type PlanUpdate struct {
	Name          *string
	PracticeHours *float64
	TheoryHours   *float64
	Price         *float64
}

// Transmission is static reference data (see TransmissionManual /
// TransmissionAutomatic).
type Transmission struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type PlanRepository interface {
	GetAllPlans(ctx context.Context) ([]Plan, error)
	CreatePlan(ctx context.Context, plan Plan) (*Plan, error)
	UpdatePlan(ctx context.Context, id string, upd PlanUpdate) (*Plan, error)
	// DeletePlan refuses with ConflictError while any plan_history
	// still references the plan.
	DeletePlan(ctx context.Context, id string) error
	GetAllTransmissions(ctx context.Context) ([]Transmission, error)
}

type PlanUseCase interface {
	GetAllPlans(ctx context.Context) ([]Plan, error)
	CreatePlan(ctx context.Context, plan Plan) (*Plan, error)
	UpdatePlan(ctx context.Context, id string, upd PlanUpdate) (*Plan, error)
	DeletePlan(ctx context.Context, id string) error
	GetAllTransmissions(ctx context.Context) ([]Transmission, error)
}
