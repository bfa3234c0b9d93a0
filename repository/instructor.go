package repository

import (
	"context"

	"github.com/rs/zerolog/log"

	"youwilldrive/domain"
)

type instructorRepository struct {
	gw Gateway
}

func NewInstructorRepository(gw Gateway) domain.InstructorRepository {
	return &instructorRepository{gw: gw}
}

func (r *instructorRepository) GetAllInstructors(ctx context.Context) ([]domain.User, error) {
	results, err := r.gw.Query(ctx,
		"SELECT * FROM (SELECT *, (SELECT name_en FROM ->of_role->roles)[0].name_en AS role FROM users) WHERE role = 'instructor'", nil)
	if err != nil {
		return nil, err
	}

	rows := rowsOf(results, 0)
	instructors := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		instructors = append(instructors, userFromRow(row))
	}
	return instructors, nil
}

// GetAssignedCadets lists cadet users whose latest plan_history
// snapshot points at this instructor's user record.
func (r *instructorRepository) GetAssignedCadets(ctx context.Context, userID string) ([]domain.User, error) {
	uid, err := ParseRecordID(userID)
	if err != nil {
		return nil, err
	}

	results, err := r.gw.Query(ctx, `
		SELECT * FROM (SELECT
			(SELECT * FROM (SELECT <-is_cadet<-users AS user FROM $parent)[0].user[0])[0] AS user,
			hours_already,
			(SELECT * FROM <-of_cadet<-plan_history ORDER BY date_time DESC LIMIT 1)[0]->assigned_instructor->instructor[0][0]<-is_instructor<-users[0][0].id AS instructor_id
		FROM cadet) WHERE instructor_id = $instructor_id
	`, map[string]interface{}{"instructor_id": uid})
	if err != nil {
		return nil, err
	}

	rows := rowsOf(results, 0)
	cadets := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		if user := asRow(row["user"]); user != nil {
			cadets = append(cadets, userFromRow(user))
		}
	}
	return cadets, nil
}

func (r *instructorRepository) GetCars(ctx context.Context, userID string) ([]domain.Car, error) {
	uid, err := ParseRecordID(userID)
	if err != nil {
		return nil, err
	}

	instructorID, ok, err := resolveProfile(ctx, r.gw, uid, domain.RoleInstructor)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &domain.NotFoundError{Message: "Инструктор не найден"}
	}

	results, err := r.gw.Query(ctx,
		"SELECT (SELECT model, car_number, color FROM ->has_car->cars) AS cars FROM $instructor",
		map[string]interface{}{"instructor": instructorID})
	if err != nil {
		return nil, err
	}

	rows := rowsOf(results, 0)
	if len(rows) == 0 {
		return []domain.Car{}, nil
	}

	carRows := asRows(rows[0]["cars"])
	cars := make([]domain.Car, 0, len(carRows))
	for _, row := range carRows {
		cars = append(cars, domain.Car{
			Model:       str(row, "model"),
			PlateNumber: str(row, "car_number"),
			Color:       str(row, "color"),
		})
	}
	return cars, nil
}

// ConfigureCars replaces the instructor's fleet-of-record wholesale:
// wipe all has_car relations, then relink each submitted car, reusing
// car nodes by plate number. Entries yielding no usable car id are
// skipped, so partial success is possible; a failure at car N leaves
// cars 1..N-1 relinked and the rest un-applied.
func (r *instructorRepository) ConfigureCars(ctx context.Context, userID string, cars []domain.Car) error {
	uid, err := ParseRecordID(userID)
	if err != nil {
		return err
	}

	instructorID, ok, err := resolveProfile(ctx, r.gw, uid, domain.RoleInstructor)
	if err != nil {
		return err
	}
	if !ok {
		return &domain.NotFoundError{Message: "Инструктор не найден"}
	}

	// Full wipe, not a diff. If this fails, the old fleet stays.
	if _, err := r.gw.Query(ctx, "DELETE FROM has_car WHERE in = $instructor", map[string]interface{}{
		"instructor": instructorID,
	}); err != nil {
		return err
	}

	seen := make(map[string]bool, len(cars))
	for _, car := range cars {
		if seen[car.PlateNumber] {
			continue
		}
		seen[car.PlateNumber] = true

		results, err := r.gw.Query(ctx, "SELECT * FROM cars WHERE car_number = $plate", map[string]interface{}{
			"plate": car.PlateNumber,
		})
		if err != nil {
			return err
		}

		var carRow Row
		if rows := rowsOf(results, 0); len(rows) > 0 {
			carRow = rows[0]
			// The plate is the natural key and never changes; model
			// and color follow the submission.
			carID, ok := asRecordID(carRow["id"])
			if ok {
				if err := r.gw.Merge(ctx, carID, map[string]interface{}{
					"model": car.Model,
					"color": car.Color,
				}); err != nil {
					return err
				}
			}
		} else {
			carRow, err = r.gw.Create(ctx, "cars", map[string]interface{}{
				"model":      car.Model,
				"car_number": car.PlateNumber,
				"color":      car.Color,
			})
			if err != nil {
				return err
			}
		}

		carID, ok := asRecordID(carRow["id"])
		if !ok {
			log.Warn().Str("plate", car.PlateNumber).Msg("car record has no usable id, skipping")
			continue
		}

		if _, err := r.gw.Query(ctx, "RELATE $instructor->has_car->$car", map[string]interface{}{
			"instructor": instructorID,
			"car":        carID,
		}); err != nil {
			return err
		}
	}

	return nil
}
