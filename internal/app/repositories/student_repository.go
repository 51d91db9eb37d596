package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/sysgesco/backend/internal/app/models"
	"github.com/sysgesco/backend/internal/db"
	"github.com/sysgesco/backend/internal/pkg/apperrors"
	"github.com/sysgesco/backend/internal/pkg/dberrors"
)

// StudentRepository handles database operations for students, including the
// enrollment slot.
type StudentRepository struct {
	database *db.PostgresDB
}

// NewStudentRepository creates a new student repository.
func NewStudentRepository(database *db.PostgresDB) *StudentRepository {
	return &StudentRepository{database: database}
}

// Create registers a student identity with an empty enrollment slot.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (matricule, last_name, first_name)
		VALUES ($1, $2, $3)
	`

	_, err := r.database.Pool.Exec(ctx, query, student.Matricule, student.LastName, student.FirstName)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewDuplicateKeyError(fmt.Sprintf("student %s already exists", student.Matricule))
		}
		return fmt.Errorf("error creating student: %w", err)
	}
	return nil
}

// GetByMatricule retrieves a student with program and academic year relations
// when the slot is occupied.
func (r *StudentRepository) GetByMatricule(ctx context.Context, matricule string) (*models.Student, error) {
	query := `
		SELECT s.matricule, s.last_name, s.first_name, s.program_id, s.academic_year_id, s.year_of_study,
		       p.id, p.name, p.duration_years, p.department_id,
		       y.id, y.name, y.start_year, y.end_year
		FROM students s
		LEFT JOIN programs p ON p.id = s.program_id
		LEFT JOIN academic_years y ON y.id = s.academic_year_id
		WHERE s.matricule = $1
	`

	var student models.Student
	var pID, pDeptID, yID *int64
	var pName, yName *string
	var pDuration, yStart, yEnd *int
	err := r.database.Pool.QueryRow(ctx, query, matricule).Scan(
		&student.Matricule, &student.LastName, &student.FirstName,
		&student.ProgramID, &student.AcademicYearID, &student.YearOfStudy,
		&pID, &pName, &pDuration, &pDeptID,
		&yID, &yName, &yStart, &yEnd,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("student not found")
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	if pID != nil {
		student.Program = &models.Program{
			ID: *pID, Name: *pName, DurationYears: *pDuration, DepartmentID: *pDeptID,
		}
	}
	if yID != nil {
		student.AcademicYear = &models.AcademicYear{
			ID: *yID, Name: *yName, StartYear: *yStart, EndYear: *yEnd,
		}
	}
	return &student, nil
}

// GetAll retrieves all students ordered by last then first name.
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	query := `
		SELECT matricule, last_name, first_name, program_id, academic_year_id, year_of_study
		FROM students
		ORDER BY last_name, first_name
	`

	rows, err := r.database.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		var student models.Student
		if err := rows.Scan(
			&student.Matricule, &student.LastName, &student.FirstName,
			&student.ProgramID, &student.AcademicYearID, &student.YearOfStudy,
		); err != nil {
			return nil, err
		}
		students = append(students, &student)
	}
	return students, rows.Err()
}

// GetByProgram retrieves the students currently enrolled in one program.
func (r *StudentRepository) GetByProgram(ctx context.Context, programID int64) ([]*models.Student, error) {
	query := `
		SELECT matricule, last_name, first_name, program_id, academic_year_id, year_of_study
		FROM students
		WHERE program_id = $1
		ORDER BY last_name, first_name
	`

	rows, err := r.database.Pool.Query(ctx, query, programID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		var student models.Student
		if err := rows.Scan(
			&student.Matricule, &student.LastName, &student.FirstName,
			&student.ProgramID, &student.AcademicYearID, &student.YearOfStudy,
		); err != nil {
			return nil, err
		}
		students = append(students, &student)
	}
	return students, rows.Err()
}

// Update rewrites a student's name fields. The matricule is immutable and the
// enrollment slot is written only through Enroll.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	query := `
		UPDATE students
		SET last_name = $2, first_name = $3
		WHERE matricule = $1
	`

	tag, err := r.database.Pool.Exec(ctx, query, student.Matricule, student.LastName, student.FirstName)
	if err != nil {
		return fmt.Errorf("error updating student: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("student not found")
	}
	return nil
}

// Delete removes a student. Grades and any linked account cascade.
func (r *StudentRepository) Delete(ctx context.Context, matricule string) error {
	tag, err := r.database.Pool.Exec(ctx, `DELETE FROM students WHERE matricule = $1`, matricule)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("student not found")
	}
	return nil
}

// Enroll writes the student's single enrollment slot inside a transaction.
// The call fails with ErrAlreadyEnrolled only when the slot already carries
// the target academic year. Enrolling into a different year overwrites the
// slot, losing the previous (program, year of study) pairing; only grade rows
// keep referencing the old academic year.
func (r *StudentRepository) Enroll(ctx context.Context, matricule string, programID, academicYearID int64, yearOfStudy int) error {
	return r.database.WithTransaction(ctx, func(tx pgx.Tx) error {
		var currentYearID *int64
		err := tx.QueryRow(ctx,
			`SELECT academic_year_id FROM students WHERE matricule = $1 FOR UPDATE`,
			matricule).Scan(&currentYearID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.NewNotFoundError("student not found")
			}
			return fmt.Errorf("error locking student row: %w", err)
		}

		if currentYearID != nil && *currentYearID == academicYearID {
			return apperrors.ErrAlreadyEnrolled
		}

		_, err = tx.Exec(ctx, `
			UPDATE students
			SET program_id = $2, academic_year_id = $3, year_of_study = $4
			WHERE matricule = $1`,
			matricule, programID, academicYearID, yearOfStudy)
		if err != nil {
			if dberrors.IsForeignKeyViolation(err) {
				return apperrors.NewUnknownReferenceError("program or academic year does not exist")
			}
			return fmt.Errorf("error enrolling student: %w", err)
		}
		return nil
	})
}

// ListAcademicYears returns the academic years a student has any record in:
// the years of their grade rows plus the year of the current enrollment slot,
// newest first.
func (r *StudentRepository) ListAcademicYears(ctx context.Context, matricule string) ([]*models.AcademicYear, error) {
	query := `
		SELECT DISTINCT y.id, y.name, y.start_year, y.end_year
		FROM academic_years y
		WHERE y.id IN (
			SELECT academic_year_id FROM grades WHERE student_matricule = $1
			UNION
			SELECT academic_year_id FROM students WHERE matricule = $1 AND academic_year_id IS NOT NULL
		)
		ORDER BY y.start_year DESC
	`

	rows, err := r.database.Pool.Query(ctx, query, matricule)
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
