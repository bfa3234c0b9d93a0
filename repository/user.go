package repository

import (
	"context"
	"fmt"

	"youwilldrive/domain"
	"youwilldrive/utils"
)

type userRepository struct {
	gw Gateway
}

func NewUserRepository(gw Gateway) domain.UserRepository {
	return &userRepository{gw: gw}
}

func (r *userRepository) GetAllUsers(ctx context.Context) ([]domain.User, error) {
	results, err := r.gw.Query(ctx, `
		SELECT
			id,
			name,
			surname,
			patronymic,
			phone,
			(SELECT name_en FROM ->of_role->roles)[0].name_en AS role
		FROM users
	`, nil)
	if err != nil {
		return nil, err
	}

	rows := rowsOf(results, 0)
	users := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, userFromRow(row))
	}
	return users, nil
}

// ProvisionUser runs the create sequence as independent round-trips:
// user node, role lookup, of_role relation, role-specific profile.
// A role lookup miss is the only compensated failure; anything else
// mid-sequence leaves a partially provisioned user behind.
func (r *userRepository) ProvisionUser(ctx context.Context, input domain.NewUser) (*domain.User, error) {
	hash, err := hashPassword(ctx, r.gw, input.Password)
	if err != nil {
		return nil, err
	}

	phone := utils.NormalizePhone(input.Phone)

	// Step 1: create the user node. A duplicate phone fails here on
	// the unique index, before any relations exist.
	userRow, err := r.gw.Create(ctx, "users", map[string]interface{}{
		"name":          input.FirstName,
		"surname":       input.LastName,
		"patronymic":    input.Patronymic,
		"phone":         phone,
		"password_hash": hash,
		"email":         phone + "@" + domain.EmailDomain,
		"avatar":        "",
	})
	if err != nil {
		return nil, err
	}
	userID, ok := asRecordID(userRow["id"])
	if !ok {
		return nil, &domain.QueryError{Op: "create users", Err: fmt.Errorf("created user has no id")}
	}

	// Step 2: resolve the role. A miss triggers the compensating
	// delete of the just-created user.
	results, err := r.gw.Query(ctx, "SELECT id FROM roles WHERE name_en = $role", map[string]interface{}{
		"role": input.Role,
	})
	if err != nil {
		return nil, err
	}
	roleRows := rowsOf(results, 0)
	if len(roleRows) == 0 {
		if delErr := r.gw.Delete(ctx, userID); delErr != nil {
			return nil, delErr
		}
		return nil, &domain.NotFoundError{Message: "Роль '" + input.Role + "' не найдена"}
	}
	roleID, ok := asRecordID(roleRows[0]["id"])
	if !ok {
		return nil, &domain.QueryError{Op: "resolve role", Err: fmt.Errorf("role row has no id")}
	}

	// Step 3: link the user to its role.
	if _, err := r.gw.Query(ctx, "RELATE $user->of_role->$role", map[string]interface{}{
		"user": userID,
		"role": roleID,
	}); err != nil {
		return nil, err
	}

	// Step 4: role-specific profile shell for cadets and instructors.
	if input.Role == domain.RoleCadet || input.Role == domain.RoleInstructor {
		profileRow, err := r.gw.Create(ctx, input.Role, map[string]interface{}{})
		if err != nil {
			return nil, err
		}
		profileID, ok := asRecordID(profileRow["id"])
		if !ok {
			return nil, &domain.QueryError{Op: "create " + input.Role, Err: fmt.Errorf("profile has no id")}
		}
		if _, err := r.gw.Query(ctx, fmt.Sprintf("RELATE $user->is_%s->$profile", input.Role), map[string]interface{}{
			"user":    userID,
			"profile": profileID,
		}); err != nil {
			return nil, err
		}
	}

	user := userFromRow(userRow)
	user.Role = input.Role
	return &user, nil
}

func (r *userRepository) UpdateUser(ctx context.Context, id string, upd domain.UserUpdate) (*domain.User, error) {
	userID, err := ParseRecordID(id)
	if err != nil {
		return nil, err
	}

	existing, err := r.gw.Select(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, &domain.NotFoundError{Message: "Пользователь не найден"}
	}

	data := map[string]interface{}{
		"name":       upd.FirstName,
		"surname":    upd.LastName,
		"patronymic": upd.Patronymic,
		"phone":      utils.NormalizePhone(upd.Phone),
	}
	if upd.Password != "" {
		hash, err := hashPassword(ctx, r.gw, upd.Password)
		if err != nil {
			return nil, err
		}
		data["password_hash"] = hash
	}

	if err := r.gw.Merge(ctx, userID, data); err != nil {
		return nil, err
	}

	updated, err := r.gw.Select(ctx, userID)
	if err != nil {
		return nil, err
	}
	user := userFromRow(updated)
	return &user, nil
}

// DeleteUser cascades role-specific records, then the user's outgoing
// relations, then the user node. Each step is an independent
// round-trip; a mid-sequence failure surfaces to the caller and leaves
// the remaining records in place.
func (r *userRepository) DeleteUser(ctx context.Context, id string) error {
	userID, err := ParseRecordID(id)
	if err != nil {
		return err
	}
	vars := map[string]interface{}{"user": userID}

	results, err := r.gw.Query(ctx,
		"SELECT (SELECT name_en FROM ->of_role->roles)[0].name_en AS role FROM $user", vars)
	if err != nil {
		return err
	}
	roleRows := rowsOf(results, 0)
	if len(roleRows) == 0 {
		return &domain.NotFoundError{Message: "Пользователь не найден"}
	}
	role := str(roleRows[0], "role")

	switch role {
	case domain.RoleCadet:
		if _, err := r.gw.Query(ctx,
			"DELETE FROM plan_history WHERE ->of_cadet->cadet IN (SELECT ->is_cadet->cadet FROM $user)", vars); err != nil {
			return err
		}
		if _, err := r.gw.Query(ctx,
			"DELETE FROM cadet WHERE id IN (SELECT ->is_cadet->cadet FROM $user)", vars); err != nil {
			return err
		}
	case domain.RoleInstructor:
		if _, err := r.gw.Query(ctx,
			"DELETE FROM has_car WHERE in IN (SELECT ->is_instructor->instructor FROM $user)", vars); err != nil {
			return err
		}
		if _, err := r.gw.Query(ctx,
			"DELETE FROM instructor WHERE id IN (SELECT ->is_instructor->instructor FROM $user)", vars); err != nil {
			return err
		}
	}

	for _, stmt := range []string{
		"DELETE FROM of_role WHERE in = $user",
		"DELETE FROM is_cadet WHERE in = $user",
		"DELETE FROM is_instructor WHERE in = $user",
	} {
		if _, err := r.gw.Query(ctx, stmt, vars); err != nil {
			return err
		}
	}

	return r.gw.Delete(ctx, userID)
}
