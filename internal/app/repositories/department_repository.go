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

// DepartmentRepository handles database operations for departments.
type DepartmentRepository struct {
	db *pgxpool.Pool
}

// NewDepartmentRepository creates a new department repository.
func NewDepartmentRepository(db *pgxpool.Pool) *DepartmentRepository {
	return &DepartmentRepository{db: db}
}

// Create inserts a department and fills in its generated ID.
func (r *DepartmentRepository) Create(ctx context.Context, department *models.Department) error {
	query := `
		INSERT INTO departments (name, validation_grade)
		VALUES ($1, $2)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, department.Name, department.ValidationGrade).Scan(&department.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewDuplicateKeyError(fmt.Sprintf("department %q already exists", department.Name))
		}
		if dberrors.IsCheckViolation(err) {
			return apperrors.NewInvalidValueError("validation grade must lie in [0,20]")
		}
		return fmt.Errorf("error creating department: %w", err)
	}
	return nil
}

// GetByID retrieves a department by ID.
func (r *DepartmentRepository) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	query := `
		SELECT id, name, validation_grade
		FROM departments
		WHERE id = $1
	`

	var department models.Department
	err := r.db.QueryRow(ctx, query, id).Scan(&department.ID, &department.Name, &department.ValidationGrade)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("department not found")
		}
		return nil, fmt.Errorf("error retrieving department: %w", err)
	}
	return &department, nil
}

// GetAll retrieves all departments ordered by name.
func (r *DepartmentRepository) GetAll(ctx context.Context) ([]*models.Department, error) {
	query := `
		SELECT id, name, validation_grade
		FROM departments
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var departments []*models.Department
	for rows.Next() {
		var department models.Department
		if err := rows.Scan(&department.ID, &department.Name, &department.ValidationGrade); err != nil {
			return nil, err
		}
		departments = append(departments, &department)
	}
	return departments, rows.Err()
}

// Update rewrites a department's name and validation grade.
func (r *DepartmentRepository) Update(ctx context.Context, department *models.Department) error {
	query := `
		UPDATE departments
		SET name = $2, validation_grade = $3
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query, department.ID, department.Name, department.ValidationGrade)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewDuplicateKeyError(fmt.Sprintf("department %q already exists", department.Name))
		}
		if dberrors.IsCheckViolation(err) {
			return apperrors.NewInvalidValueError("validation grade must lie in [0,20]")
		}
		return fmt.Errorf("error updating department: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("department not found")
	}
	return nil
}

// Delete removes a department. Programs, their courses and their grades
// cascade with it.
func (r *DepartmentRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting department: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("department not found")
	}
	return nil
}
