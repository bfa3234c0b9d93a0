package repository

import (
	"context"
	"errors"
	"time"

	"github.com/surrealdb/surrealdb.go/pkg/models"

	"youwilldrive/domain"
)

var errNoHistoryID = errors.New("created snapshot has no id")

type cadetRepository struct {
	gw Gateway
}

func NewCadetRepository(gw Gateway) domain.CadetRepository {
	return &cadetRepository{gw: gw}
}

// resolveProfile walks user->is_<role>-><role> and returns the profile
// record id.
func resolveProfile(ctx context.Context, gw Gateway, userID models.RecordID, role string) (models.RecordID, bool, error) {
	results, err := gw.Query(ctx,
		"SELECT (SELECT id FROM ->is_"+role+"->"+role+")[0].id AS id FROM $user",
		map[string]interface{}{"user": userID})
	if err != nil {
		return models.RecordID{}, false, err
	}
	rows := rowsOf(results, 0)
	if len(rows) == 0 {
		return models.RecordID{}, false, nil
	}
	id, ok := asRecordID(rows[0]["id"])
	return id, ok, nil
}

func (r *cadetRepository) GetConfig(ctx context.Context, userID string) (*domain.CadetConfig, error) {
	uid, err := ParseRecordID(userID)
	if err != nil {
		return nil, err
	}

	cadetID, ok, err := resolveProfile(ctx, r.gw, uid, domain.RoleCadet)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &domain.NotFoundError{Message: "Курсант не найден"}
	}

	results, err := r.gw.Query(ctx, `
		SELECT
			hours_already,
			(SELECT * FROM <-of_cadet<-plan_history ORDER BY date_time DESC LIMIT 1)[0].bonus_hours AS bonus_hours,
			(SELECT * FROM <-of_cadet<-plan_history ORDER BY date_time DESC LIMIT 1)[0]->assigned_instructor->instructor[0][0]<-is_instructor<-users[0][0].id AS instructor_id,
			(SELECT * FROM <-of_cadet<-plan_history ORDER BY date_time DESC LIMIT 1)[0]->related_plan->plan[0][0] AS payment_plan,
			(SELECT * FROM <-of_cadet<-plan_history ORDER BY date_time DESC LIMIT 1)[0]->related_transmission->transmissions[0].name[0] AS transmission_name
		FROM $cadet
	`, map[string]interface{}{"cadet": cadetID})
	if err != nil {
		return nil, err
	}

	rows := rowsOf(results, 0)
	if len(rows) == 0 {
		// Never configured: a valid terminal state, not an error.
		return &domain.CadetConfig{}, nil
	}
	row := rows[0]

	return &domain.CadetConfig{
		PaymentPlan:  idString(row["payment_plan"]),
		InstructorID: idString(row["instructor_id"]),
		IsAutomatic:  str(row, "transmission_name") == domain.TransmissionAutomatic,
		SpentHours:   num(row, "hours_already"),
		BonusHours:   num(row, "bonus_hours"),
	}, nil
}

// Configure overwrites the cadet's hours_already and appends a new
// plan_history snapshot with its four relations, as independent
// round-trips. A failure after the snapshot create leaves it orphaned
// with some relations missing; that window is accepted, not
// compensated.
func (r *cadetRepository) Configure(ctx context.Context, userID string, cfg domain.CadetConfig) error {
	uid, err := ParseRecordID(userID)
	if err != nil {
		return err
	}
	planID, err := ParseRecordID(cfg.PaymentPlan)
	if err != nil {
		return err
	}
	instructorUID, err := ParseRecordID(cfg.InstructorID)
	if err != nil {
		return err
	}

	cadetID, ok, err := resolveProfile(ctx, r.gw, uid, domain.RoleCadet)
	if err != nil {
		return err
	}
	if !ok {
		return &domain.NotFoundError{Message: "Курсант не найден"}
	}

	instructorID, ok, err := resolveProfile(ctx, r.gw, instructorUID, domain.RoleInstructor)
	if err != nil {
		return err
	}
	if !ok {
		return &domain.NotFoundError{Message: "Инструктор не найден"}
	}

	// Step 1: overwrite (not add to) the cadet's accumulated hours.
	if err := r.gw.Merge(ctx, cadetID, map[string]interface{}{
		"hours_already": cfg.SpentHours,
	}); err != nil {
		return err
	}

	// Step 2: resolve the transmission reference record.
	transmissionName := domain.TransmissionManual
	if cfg.IsAutomatic {
		transmissionName = domain.TransmissionAutomatic
	}
	results, err := r.gw.Query(ctx, "SELECT id FROM transmissions WHERE name = $name", map[string]interface{}{
		"name": transmissionName,
	})
	if err != nil {
		return err
	}
	transmissionRows := rowsOf(results, 0)
	if len(transmissionRows) == 0 {
		return &domain.NotFoundError{Message: "Тип трансмиссии '" + transmissionName + "' не найден"}
	}
	transmissionID, _ := asRecordID(transmissionRows[0]["id"])

	// Step 3: append the snapshot. Existing history is never touched.
	historyRow, err := r.gw.Create(ctx, "plan_history", map[string]interface{}{
		"date_time":   models.CustomDateTime{Time: time.Now()},
		"bonus_hours": cfg.BonusHours,
	})
	if err != nil {
		return err
	}
	historyID, ok := asRecordID(historyRow["id"])
	if !ok {
		return &domain.QueryError{Op: "create plan_history", Err: errNoHistoryID}
	}

	// Step 4: the four relations, sequentially.
	relations := []struct {
		stmt   string
		target models.RecordID
		key    string
	}{
		{"RELATE $history->of_cadet->$cadet", cadetID, "cadet"},
		{"RELATE $history->assigned_instructor->$instructor", instructorID, "instructor"},
		{"RELATE $history->related_plan->$plan", planID, "plan"},
		{"RELATE $history->related_transmission->$transmission", transmissionID, "transmission"},
	}
	for _, rel := range relations {
		if _, err := r.gw.Query(ctx, rel.stmt, map[string]interface{}{
			"history": historyID,
			rel.key:   rel.target,
		}); err != nil {
			return err
		}
	}

	return nil
}
