package domain

import (
	"context"
)

// Transmission names are reference data, looked up by exact match and
// never created by the application.
const (
	TransmissionManual    = "Механическая"
	TransmissionAutomatic = "Автоматическая"
)

// CadetConfig is the cadet's current training configuration, derived
// from the most recent plan_history snapshot. The zero value (empty
// plan, empty instructor, manual, zero hours) is the documented state
// of a never-configured cadet, not an error.
type CadetConfig struct {
	PaymentPlan  string  `json:"paymentPlan"`
	InstructorID string  `json:"instructorId"`
	IsAutomatic  bool    `json:"isAutomatic"`
	SpentHours   float64 `json:"spentHours"`
	BonusHours   float64 `json:"bonusHours"`
}

type CadetRepository interface {
	GetConfig(ctx context.Context, userID string) (*CadetConfig, error)
	// Configure overwrites hours_already on the cadet profile and
	// appends a new plan_history snapshot with its four relations.
	// Existing snapshots are never touched.
	Configure(ctx context.Context, userID string, cfg CadetConfig) error
}

type CadetUseCase interface {
	GetConfig(ctx context.Context, userID string) (*CadetConfig, error)
	Configure(ctx context.Context, userID string, cfg CadetConfig) error
}
