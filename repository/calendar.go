package repository

import (
	"context"
	"time"

	"youwilldrive/domain"
)

type eventRepository struct {
	gw Gateway
}

func NewEventRepository(gw Gateway) domain.EventRepository {
	return &eventRepository{gw: gw}
}

const eventProjection = `
	SELECT
		id,
		date_time AS date,
		(SELECT * FROM ->of_type->event_types LIMIT 1)[0] AS eventType,
		(
			SELECT id, name, surname, patronymic
			FROM (->event_of_cadet->cadet<-is_cadet<-users)
			LIMIT 1
		)[0] AS cadet,
		(
			SELECT id, name, surname, patronymic
			FROM (->event_of_instructor->instructor<-is_instructor<-users)
			LIMIT 1
		)[0] AS instructor
	FROM event
`

// GetEvents returns the calendar projection, optionally windowed to
// one month. Month is 0-based, matching the month index the calendar
// client sends.
func (r *eventRepository) GetEvents(ctx context.Context, year, month *int) ([]domain.Event, error) {
	query := eventProjection
	var vars map[string]interface{}

	if year != nil && month != nil {
		start := time.Date(*year, time.Month(*month+1), 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(*year, time.Month(*month+2), 0, 23, 59, 59, 0, time.UTC)
		query += " WHERE date_time >= $startDate AND date_time <= $endDate"
		vars = map[string]interface{}{
			"startDate": start.Format(time.RFC3339),
			"endDate":   end.Format(time.RFC3339),
		}
	}

	results, err := r.gw.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	rows := rowsOf(results, 0)
	events := make([]domain.Event, 0, len(rows))
	for _, row := range rows {
		event := domain.Event{ID: idString(row["id"])}
		if date, ok := timeValue(row["date"]); ok {
			event.Date = date
		}
		if et := asRow(row["eventType"]); et != nil {
			event.EventType = &domain.EventType{
				ID:   idString(et["id"]),
				Name: str(et, "name"),
			}
		}
		if cadet := asRow(row["cadet"]); cadet != nil {
			user := userFromRow(cadet)
			event.Cadet = &user
		}
		if instructor := asRow(row["instructor"]); instructor != nil {
			user := userFromRow(instructor)
			event.Instructor = &user
		}
		events = append(events, event)
	}
	return events, nil
}
