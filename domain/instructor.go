package domain

import (
	"context"
)

// Car is keyed by its plate number; nodes are shared across
// instructors and never duplicated for the same plate.
type Car struct {
	Model       string `json:"model"`
	PlateNumber string `json:"plateNumber"`
	Color       string `json:"color"`
}

type InstructorRepository interface {
	GetAllInstructors(ctx context.Context) ([]User, error)
	// GetAssignedCadets lists cadets whose latest plan_history points
	// at this instructor's user record.
	GetAssignedCadets(ctx context.Context, userID string) ([]User, error)
	GetCars(ctx context.Context, userID string) ([]Car, error)
	// ConfigureCars wipes the instructor's has_car relations and
	// relinks from the submitted list, reusing car nodes by plate.
	ConfigureCars(ctx context.Context, userID string, cars []Car) error
}

type InstructorUseCase interface {
	GetAllInstructors(ctx context.Context) ([]User, error)
	GetAssignedCadets(ctx context.Context, userID string) ([]User, error)
	GetCars(ctx context.Context, userID string) ([]Car, error)
	ConfigureCars(ctx context.Context, userID string, cars []Car) error
}
