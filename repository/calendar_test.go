package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/surrealdb/surrealdb.go/pkg/models"
)

func TestGetEventsUnfiltered(t *testing.T) {
	date := time.Date(2025, 6, 15, 14, 0, 0, 0, time.UTC)
	script := (&scripted{}).on("FROM event", [][]interface{}{stmtResult(Row{
		"id":        models.NewRecordID("event", "e1"),
		"date":      models.CustomDateTime{Time: date},
		"eventType": Row{"id": models.NewRecordID("event_types", "lesson"), "name": "Занятие"},
		"cadet":     Row{"id": models.NewRecordID("users", "c1"), "name": "Пётр", "surname": "Сидоров"},
		"instructor": Row{
			"id": models.NewRecordID("users", "i1"), "name": "Анна", "surname": "Иванова",
		},
	})})
	gw := &fakeGateway{onQuery: script.handle}

	events, err := NewEventRepository(gw).GetEvents(context.Background(), nil, nil)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "event:e1", events[0].ID)
	assert.Equal(t, date, events[0].Date)
	require.NotNil(t, events[0].EventType)
	assert.Equal(t, "Занятие", events[0].EventType.Name)
	require.NotNil(t, events[0].Cadet)
	assert.Equal(t, "users:c1", events[0].Cadet.ID)

	assert.NotContains(t, gw.ops[0].sql, "WHERE date_time")
	assert.Nil(t, gw.ops[0].vars)
}

func TestGetEventsMonthWindow(t *testing.T) {
	script := (&scripted{}).on("FROM event", [][]interface{}{{}})
	gw := &fakeGateway{onQuery: script.handle}

	// Month is the calendar client's 0-based index: 11 is December.
	year, month := 2025, 11
	_, err := NewEventRepository(gw).GetEvents(context.Background(), &year, &month)
	require.NoError(t, err)

	op := gw.ops[0]
	assert.Contains(t, op.sql, "WHERE date_time >= $startDate AND date_time <= $endDate")
	assert.Equal(t, "2025-12-01T00:00:00Z", op.vars["startDate"])
	assert.Equal(t, "2025-12-31T23:59:59Z", op.vars["endDate"])
}

func TestGetEventsFebruaryWindow(t *testing.T) {
	script := (&scripted{}).on("FROM event", [][]interface{}{{}})
	gw := &fakeGateway{onQuery: script.handle}

	year, month := 2024, 1
	_, err := NewEventRepository(gw).GetEvents(context.Background(), &year, &month)
	require.NoError(t, err)

	assert.Equal(t, "2024-02-29T23:59:59Z", gw.ops[0].vars["endDate"])
}

func TestGetEventsYearAloneIsIgnored(t *testing.T) {
	script := (&scripted{}).on("FROM event", [][]interface{}{{}})
	gw := &fakeGateway{onQuery: script.handle}

	year := 2025
	_, err := NewEventRepository(gw).GetEvents(context.Background(), &year, nil)
	require.NoError(t, err)
	assert.NotContains(t, gw.ops[0].sql, "WHERE date_time")
}
