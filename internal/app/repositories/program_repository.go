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

// ProgramRepository handles database operations for programs.
type ProgramRepository struct {
	db *pgxpool.Pool
}

// NewProgramRepository creates a new program repository.
func NewProgramRepository(db *pgxpool.Pool) *ProgramRepository {
	return &ProgramRepository{db: db}
}

// Create inserts a program and fills in its generated ID.
func (r *ProgramRepository) Create(ctx context.Context, program *models.Program) error {
	query := `
		INSERT INTO programs (name, duration_years, department_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, program.Name, program.DurationYears, program.DepartmentID).Scan(&program.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewDuplicateKeyError(fmt.Sprintf("program %q already exists", program.Name))
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewUnknownReferenceError("department does not exist")
		}
		if dberrors.IsCheckViolation(err) {
			return apperrors.NewInvalidValueError("duration must lie in [1,10] years")
		}
		return fmt.Errorf("error creating program: %w", err)
	}
	return nil
}

// GetByID retrieves a program with its department.
func (r *ProgramRepository) GetByID(ctx context.Context, id int64) (*models.Program, error) {
	query := `
		SELECT p.id, p.name, p.duration_years, p.department_id,
		       d.id, d.name, d.validation_grade
		FROM programs p
		JOIN departments d ON d.id = p.department_id
		WHERE p.id = $1
	`

	var program models.Program
	var department models.Department
	err := r.db.QueryRow(ctx, query, id).Scan(
		&program.ID, &program.Name, &program.DurationYears, &program.DepartmentID,
		&department.ID, &department.Name, &department.ValidationGrade,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("program not found")
		}
		return nil, fmt.Errorf("error retrieving program: %w", err)
	}
	program.Department = &department
	return &program, nil
}

// GetAll retrieves all programs with their departments, ordered by department
// then program name.
func (r *ProgramRepository) GetAll(ctx context.Context) ([]*models.Program, error) {
	query := `
		SELECT p.id, p.name, p.duration_years, p.department_id,
		       d.id, d.name, d.validation_grade
		FROM programs p
		JOIN departments d ON d.id = p.department_id
		ORDER BY d.name, p.name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var programs []*models.Program
	for rows.Next() {
		var program models.Program
		var department models.Department
		if err := rows.Scan(
			&program.ID, &program.Name, &program.DurationYears, &program.DepartmentID,
			&department.ID, &department.Name, &department.ValidationGrade,
		); err != nil {
			return nil, err
		}
		program.Department = &department
		programs = append(programs, &program)
	}
	return programs, rows.Err()
}

// GetByDepartment retrieves the programs of one department.
func (r *ProgramRepository) GetByDepartment(ctx context.Context, departmentID int64) ([]*models.Program, error) {
	query := `
		SELECT id, name, duration_years, department_id
		FROM programs
		WHERE department_id = $1
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query, departmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var programs []*models.Program
	for rows.Next() {
		var program models.Program
		if err := rows.Scan(&program.ID, &program.Name, &program.DurationYears, &program.DepartmentID); err != nil {
			return nil, err
		}
		programs = append(programs, &program)
	}
	return programs, rows.Err()
}

// Update rewrites a program.
func (r *ProgramRepository) Update(ctx context.Context, program *models.Program) error {
	query := `
		UPDATE programs
		SET name = $2, duration_years = $3, department_id = $4
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query, program.ID, program.Name, program.DurationYears, program.DepartmentID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewDuplicateKeyError(fmt.Sprintf("program %q already exists", program.Name))
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewUnknownReferenceError("department does not exist")
		}
		if dberrors.IsCheckViolation(err) {
			return apperrors.NewInvalidValueError("duration must lie in [1,10] years")
		}
		return fmt.Errorf("error updating program: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("program not found")
	}
	return nil
}

// Delete removes a program. Courses and their grades cascade; enrolled
// students get their slot nulled by the schema.
func (r *ProgramRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM programs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting program: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("program not found")
	}
	return nil
}
