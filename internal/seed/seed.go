package seed

import (
	"context"
	"fmt"

	"github.com/sysgesco/backend/internal/app/models"
	"github.com/sysgesco/backend/internal/db"
	"github.com/sysgesco/backend/internal/pkg/auth"
	"github.com/sysgesco/backend/internal/pkg/logger"
)

// referenceStartYear anchors the seeded academic year range. The three years
// ending with 2023-2024 are created on first boot against an empty database.
const referenceStartYear = 2023

type defaultUser struct {
	username string
	password string
	role     models.Role
}

var defaultUsers = []defaultUser{
	{username: "admin", password: "adminpass", role: models.RoleAdministrator},
	{username: "coordinator1", password: "coordpass", role: models.RoleCoordinator},
	{username: "registrar1", password: "regpass", role: models.RoleRegistrar},
}

// CreateDefaultData seeds academic years and default accounts. Each group is
// seeded only when its table is empty, so reruns are no-ops.
func CreateDefaultData(ctx context.Context, database *db.PostgresDB) error {
	if err := seedAcademicYears(ctx, database); err != nil {
		return fmt.Errorf("failed to seed academic years: %w", err)
	}
	if err := seedUsers(ctx, database); err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}
	return nil
}

func seedAcademicYears(ctx context.Context, database *db.PostgresDB) error {
	var count int
	if err := database.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM academic_years`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for start := referenceStartYear - 2; start <= referenceStartYear; start++ {
		year := models.NewAcademicYear(start)
		_, err := database.Pool.Exec(ctx,
			`INSERT INTO academic_years (name, start_year, end_year) VALUES ($1, $2, $3)`,
			year.Name, year.StartYear, year.EndYear)
		if err != nil {
			return err
		}
		logger.Info().Str("name", year.Name).Msg("Seeded academic year")
	}
	return nil
}

func seedUsers(ctx context.Context, database *db.PostgresDB) error {
	var count int
	if err := database.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, u := range defaultUsers {
		_, err := database.Pool.Exec(ctx,
			`INSERT INTO users (username, password_hash, role) VALUES ($1, $2, $3)`,
			u.username, auth.HashPassword(u.password), u.role)
		if err != nil {
			return err
		}
		logger.Info().Str("username", u.username).Str("role", string(u.role)).Msg("Seeded default user")
	}
	return nil
}
