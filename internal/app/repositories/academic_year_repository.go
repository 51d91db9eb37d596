package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sysgesco/backend/internal/app/models"
	"github.com/sysgesco/backend/internal/pkg/apperrors"
	"github.com/sysgesco/backend/internal/pkg/dberrors"
)

// AcademicYearRepository handles database operations for academic years.
type AcademicYearRepository struct {
	db *pgxpool.Pool
}

// NewAcademicYearRepository creates a new academic year repository.
func NewAcademicYearRepository(db *pgxpool.Pool) *AcademicYearRepository {
	return &AcademicYearRepository{db: db}
}

// Create inserts an academic year and fills in its generated ID.
func (r *AcademicYearRepository) Create(ctx context.Context, year *models.AcademicYear) error {
	query := `
		INSERT INTO academic_years (name, start_year, end_year)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, year.Name, year.StartYear, year.EndYear).Scan(&year.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewDuplicateKeyError(fmt.Sprintf("academic year %s already exists", year.Name))
		}
		return fmt.Errorf("error creating academic year: %w", err)
	}
	return nil
}

// GetByID retrieves an academic year by ID.
func (r *AcademicYearRepository) GetByID(ctx context.Context, id int64) (*models.AcademicYear, error) {
	query := `
		SELECT id, name, start_year, end_year
		FROM academic_years
		WHERE id = $1
	`

	var year models.AcademicYear
	err := r.db.QueryRow(ctx, query, id).Scan(&year.ID, &year.Name, &year.StartYear, &year.EndYear)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("academic year not found")
		}
		return nil, fmt.Errorf("error retrieving academic year: %w", err)
	}
	return &year, nil
}

// GetAll retrieves all academic years, newest first.
func (r *AcademicYearRepository) GetAll(ctx context.Context) ([]*models.AcademicYear, error) {
	query := `
		SELECT id, name, start_year, end_year
		FROM academic_years
		ORDER BY start_year DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var years []*models.AcademicYear
	for rows.Next() {
		var year models.AcademicYear
		if err := rows.Scan(&year.ID, &year.Name, &year.StartYear, &year.EndYear); err != nil {
			return nil, err
		}
		years = append(years, &year)
	}
	return years, rows.Err()
}

// Delete removes an academic year. Grade rows cascade; enrolled students get
// their slot nulled by the schema.
func (r *AcademicYearRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM academic_years WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting academic year: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("academic year not found")
	}
	return nil
}
