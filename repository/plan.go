package repository

import (
	"context"

	"youwilldrive/domain"
)

type planRepository struct {
	gw Gateway
}

func NewPlanRepository(gw Gateway) domain.PlanRepository {
	return &planRepository{gw: gw}
}

func planFromRow(row Row) domain.Plan {
	return domain.Plan{
		ID:            idString(row["id"]),
		Name:          str(row, "name"),
		PracticeHours: num(row, "practice_hours"),
		TheoryHours:   num(row, "theory_hours"),
		Price:         num(row, "price"),
	}
}

func (r *planRepository) GetAllPlans(ctx context.Context) ([]domain.Plan, error) {
	rows, err := r.gw.SelectAll(ctx, "plan")
	if err != nil {
		return nil, err
	}
	plans := make([]domain.Plan, 0, len(rows))
	for _, row := range rows {
		plans = append(plans, planFromRow(row))
	}
	return plans, nil
}

func (r *planRepository) CreatePlan(ctx context.Context, plan domain.Plan) (*domain.Plan, error) {
	row, err := r.gw.Create(ctx, "plan", map[string]interface{}{
		"name":           plan.Name,
		"practice_hours": plan.PracticeHours,
		"theory_hours":   plan.TheoryHours,
		"price":          plan.Price,
	})
	if err != nil {
		return nil, err
	}
	created := planFromRow(row)
	return &created, nil
}

func (r *planRepository) UpdatePlan(ctx context.Context, id string, upd domain.PlanUpdate) (*domain.Plan, error) {
	planID, err := ParseRecordID(id)
	if err != nil {
		return nil, err
	}

	existing, err := r.gw.Select(ctx, planID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, &domain.NotFoundError{Message: "План оплаты не найден"}
	}

	data := map[string]interface{}{}
	if upd.Name != nil {
		data["name"] = *upd.Name
	}
	if upd.PracticeHours != nil {
		data["practice_hours"] = *upd.PracticeHours
	}
	if upd.TheoryHours != nil {
		data["theory_hours"] = *upd.TheoryHours
	}
	if upd.Price != nil {
		data["price"] = *upd.Price
	}

	if err := r.gw.Merge(ctx, planID, data); err != nil {
		return nil, err
	}

	row, err := r.gw.Select(ctx, planID)
	if err != nil {
		return nil, err
	}
	updated := planFromRow(row)
	return &updated, nil
}

// DeletePlan enforces the referential guard: any plan_history still
// pointing at the plan blocks deletion with a conflict carrying the
// dependency count.
func (r *planRepository) DeletePlan(ctx context.Context, id string) error {
	planID, err := ParseRecordID(id)
	if err != nil {
		return err
	}

	existing, err := r.gw.Select(ctx, planID)
	if err != nil {
		return err
	}
	if existing == nil {
		return &domain.NotFoundError{Message: "План оплаты не найден"}
	}

	results, err := r.gw.Query(ctx,
		"SELECT id FROM plan_history WHERE ->related_plan->plan CONTAINS $plan",
		map[string]interface{}{"plan": planID})
	if err != nil {
		return err
	}
	if deps := rowsOf(results, 0); len(deps) > 0 {
		return &domain.ConflictError{
			Message:      "Невозможно удалить план, так как он используется курсантами",
			Dependencies: len(deps),
		}
	}

	return r.gw.Delete(ctx, planID)
}

func (r *planRepository) GetAllTransmissions(ctx context.Context) ([]domain.Transmission, error) {
	rows, err := r.gw.SelectAll(ctx, "transmissions")
	if err != nil {
		return nil, err
	}
	transmissions := make([]domain.Transmission, 0, len(rows))
	for _, row := range rows {
		transmissions = append(transmissions, domain.Transmission{
			ID:   idString(row["id"]),
			Name: str(row, "name"),
		})
	}
	return transmissions, nil
}
