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

// CourseRepository handles database operations for courses.
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository.
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{db: db}
}

// Create inserts a course and fills in its generated ID.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (name, credits, semester, program_id, year_of_study, has_two_grades)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		course.Name, course.Credits, course.Semester,
		course.ProgramID, course.YearOfStudy, course.HasTwoGrades,
	).Scan(&course.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewDuplicateKeyError(fmt.Sprintf("course %q already exists for this program year and semester", course.Name))
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewUnknownReferenceError("program does not exist")
		}
		if dberrors.IsCheckViolation(err) {
			return apperrors.NewInvalidValueError("credits must lie in [1,20] and semester in {1,2}")
		}
		return fmt.Errorf("error creating course: %w", err)
	}
	return nil
}

// GetByID retrieves a course by ID.
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	query := `
		SELECT id, name, credits, semester, program_id, year_of_study, has_two_grades
		FROM courses
		WHERE id = $1
	`

	var course models.Course
	err := r.db.QueryRow(ctx, query, id).Scan(
		&course.ID, &course.Name, &course.Credits, &course.Semester,
		&course.ProgramID, &course.YearOfStudy, &course.HasTwoGrades,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("course not found")
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}
	return &course, nil
}

// GetByProgramYear retrieves the curriculum of one program year, ordered by
// semester then name. Semester 0 means both semesters.
func (r *CourseRepository) GetByProgramYear(ctx context.Context, programID int64, yearOfStudy, semester int) ([]*models.Course, error) {
	query := `
		SELECT id, name, credits, semester, program_id, year_of_study, has_two_grades
		FROM courses
		WHERE program_id = $1 AND year_of_study = $2
		  AND ($3 = 0 OR semester = $3)
		ORDER BY semester, name
	`

	rows, err := r.db.Query(ctx, query, programID, yearOfStudy, semester)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCourses(rows)
}

// GetAll retrieves every course, ordered by program then year then semester.
func (r *CourseRepository) GetAll(ctx context.Context) ([]*models.Course, error) {
	query := `
		SELECT id, name, credits, semester, program_id, year_of_study, has_two_grades
		FROM courses
		ORDER BY program_id, year_of_study, semester, name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCourses(rows)
}

func scanCourses(rows pgx.Rows) ([]*models.Course, error) {
	var courses []*models.Course
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(
			&course.ID, &course.Name, &course.Credits, &course.Semester,
			&course.ProgramID, &course.YearOfStudy, &course.HasTwoGrades,
		); err != nil {
			return nil, err
		}
		courses = append(courses, &course)
	}
	return courses, rows.Err()
}

// Update rewrites a course. The owning program is immutable.
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	query := `
		UPDATE courses
		SET name = $2, credits = $3, semester = $4, year_of_study = $5, has_two_grades = $6
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query,
		course.ID, course.Name, course.Credits, course.Semester,
		course.YearOfStudy, course.HasTwoGrades,
	)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewDuplicateKeyError(fmt.Sprintf("course %q already exists for this program year and semester", course.Name))
		}
		if dberrors.IsCheckViolation(err) {
			return apperrors.NewInvalidValueError("credits must lie in [1,20] and semester in {1,2}")
		}
		return fmt.Errorf("error updating course: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("course not found")
	}
	return nil
}

// Delete removes a course. Grade rows cascade.
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("course not found")
	}
	return nil
}
