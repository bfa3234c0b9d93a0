package repository

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"

	"youwilldrive/domain"
	"youwilldrive/utils"
)

// Bootstrap ensures the unique phone index and the static reference
// data exist, then seeds the initial admin user from the environment
// when none is present. Roles
// and transmissions are reference data the application itself never
// creates through its API surface.
func Bootstrap(ctx context.Context, gw Gateway, users domain.UserRepository) error {
	// The phone is the login key; the index makes a duplicate phone
	// fail the user create itself.
	if _, err := gw.Query(ctx,
		"DEFINE INDEX users_phone ON TABLE users FIELDS phone UNIQUE", nil); err != nil {
		return err
	}

	roles := []struct {
		nameEn string
		name   string
	}{
		{domain.RoleAdmin, "Администратор"},
		{domain.RoleInstructor, "Инструктор"},
		{domain.RoleCadet, "Курсант"},
	}
	for _, role := range roles {
		results, err := gw.Query(ctx, "SELECT id FROM roles WHERE name_en = $name", map[string]interface{}{
			"name": role.nameEn,
		})
		if err != nil {
			return err
		}
		if len(rowsOf(results, 0)) > 0 {
			continue
		}
		if _, err := gw.Create(ctx, "roles", map[string]interface{}{
			"name":    role.name,
			"name_en": role.nameEn,
		}); err != nil {
			return err
		}
		log.Info().Str("role", role.nameEn).Msg("seeded role")
	}

	for _, name := range []string{domain.TransmissionManual, domain.TransmissionAutomatic} {
		results, err := gw.Query(ctx, "SELECT id FROM transmissions WHERE name = $name", map[string]interface{}{
			"name": name,
		})
		if err != nil {
			return err
		}
		if len(rowsOf(results, 0)) > 0 {
			continue
		}
		if _, err := gw.Create(ctx, "transmissions", map[string]interface{}{"name": name}); err != nil {
			return err
		}
		log.Info().Str("transmission", name).Msg("seeded transmission type")
	}

	adminPhone := os.Getenv("ADMIN_PHONE")
	adminPass := os.Getenv("ADMIN_PASSWORD")
	if adminPhone == "" || adminPass == "" {
		log.Warn().Msg("skipping admin seeding, missing ADMIN_PHONE or ADMIN_PASSWORD in env")
		return nil
	}

	results, err := gw.Query(ctx, "SELECT id FROM users WHERE phone = $phone", map[string]interface{}{
		"phone": utils.NormalizePhone(adminPhone),
	})
	if err != nil {
		return err
	}
	if len(rowsOf(results, 0)) > 0 {
		return nil
	}

	admin, err := users.ProvisionUser(ctx, domain.NewUser{
		FirstName: envOr("ADMIN_NAME", "Администратор"),
		LastName:  envOr("ADMIN_SURNAME", "Системы"),
		Phone:     adminPhone,
		Password:  adminPass,
		Role:      domain.RoleAdmin,
	})
	if err != nil {
		return err
	}
	log.Info().Str("phone", admin.Phone).Msg("seeded admin user")
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
