package domain

import (
	"context"
	"time"
)

type EventType struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Event is a read-only calendar projection of a lesson or exam.
type Event struct {
	ID         string     `json:"id"`
	Date       time.Time  `json:"date"`
	EventType  *EventType `json:"eventType,omitempty"`
	Cadet      *User      `json:"cadet,omitempty"`
	Instructor *User      `json:"instructor,omitempty"`
}

type EventRepository interface {
	// GetEvents returns all events, or only those inside the given
	// month window when year and month (0-based) are both set.
	GetEvents(ctx context.Context, year, month *int) ([]Event, error)
}

type EventUseCase interface {
	GetEvents(ctx context.Context, year, month *int) ([]Event, error)
}
