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

// One static upsert per writable score column. The conflict target is the
// (student, course, academic year) identity, so the first write of any field
// creates the row and later writes update their own column only.
const (
	upsertGrade1Query = `
		INSERT INTO grades (student_matricule, course_id, academic_year_id, grade1)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (student_matricule, course_id, academic_year_id)
		DO UPDATE SET grade1 = EXCLUDED.grade1
	`
	upsertGrade2Query = `
		INSERT INTO grades (student_matricule, course_id, academic_year_id, grade2)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (student_matricule, course_id, academic_year_id)
		DO UPDATE SET grade2 = EXCLUDED.grade2
	`
	upsertResitQuery = `
		INSERT INTO grades (student_matricule, course_id, academic_year_id, resit_grade)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (student_matricule, course_id, academic_year_id)
		DO UPDATE SET resit_grade = EXCLUDED.resit_grade
	`
)

// GradeRepository handles database operations for grade records.
type GradeRepository struct {
	db *pgxpool.Pool
}

// NewGradeRepository creates a new grade repository.
func NewGradeRepository(db *pgxpool.Pool) *GradeRepository {
	return &GradeRepository{db: db}
}

// SetField writes one score column of a grade record, creating the record on
// first write. A nil value clears the column. The column is selected by a
// closed enum, never by interpolating field names into SQL.
func (r *GradeRepository) SetField(ctx context.Context, matricule string, courseID, academicYearID int64, field models.GradeField, value *float64) error {
	var query string
	switch field {
	case models.FieldGrade1:
		query = upsertGrade1Query
	case models.FieldGrade2:
		query = upsertGrade2Query
	case models.FieldResit:
		query = upsertResitQuery
	default:
		return apperrors.NewInvalidValueError(fmt.Sprintf("unknown grade field %q", field))
	}

	_, err := r.db.Exec(ctx, query, matricule, courseID, academicYearID, value)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewUnknownReferenceError("student, course or academic year does not exist")
		}
		if dberrors.IsCheckViolation(err) {
			return apperrors.NewInvalidValueError("grade must lie in [0,20]")
		}
		return fmt.Errorf("error writing grade: %w", err)
	}
	return nil
}

// Get retrieves the grade record for one (student, course, academic year)
// identity.
func (r *GradeRepository) Get(ctx context.Context, matricule string, courseID, academicYearID int64) (*models.Grade, error) {
	query := `
		SELECT id, student_matricule, course_id, academic_year_id, grade1, grade2, resit_grade
		FROM grades
		WHERE student_matricule = $1 AND course_id = $2 AND academic_year_id = $3
	`

	var grade models.Grade
	err := r.db.QueryRow(ctx, query, matricule, courseID, academicYearID).Scan(
		&grade.ID, &grade.StudentMatricule, &grade.CourseID, &grade.AcademicYearID,
		&grade.Grade1, &grade.Grade2, &grade.ResitGrade,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("grade record not found")
		}
		return nil, fmt.Errorf("error retrieving grade: %w", err)
	}
	return &grade, nil
}

// RosterRow is one student line of a course roster with raw score fields.
type RosterRow struct {
	StudentMatricule string
	LastName         string
	FirstName        string
	Grade1           *float64
	Grade2           *float64
	ResitGrade       *float64
}

// ListCourseRoster lists the students enrolled in the course's program and
// year of study for the given academic year, left-joined with their grade
// record for that course. Students without a grade row still appear.
func (r *GradeRepository) ListCourseRoster(ctx context.Context, courseID, academicYearID int64) ([]*RosterRow, error) {
	query := `
		SELECT s.matricule, s.last_name, s.first_name, g.grade1, g.grade2, g.resit_grade
		FROM courses c
		JOIN students s
		  ON s.program_id = c.program_id
		 AND s.year_of_study = c.year_of_study
		 AND s.academic_year_id = $2
		LEFT JOIN grades g
		  ON g.student_matricule = s.matricule
		 AND g.course_id = c.id
		 AND g.academic_year_id = $2
		WHERE c.id = $1
		ORDER BY s.last_name, s.first_name
	`

	rows, err := r.db.Query(ctx, query, courseID, academicYearID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roster []*RosterRow
	for rows.Next() {
		var row RosterRow
		if err := rows.Scan(
			&row.StudentMatricule, &row.LastName, &row.FirstName,
			&row.Grade1, &row.Grade2, &row.ResitGrade,
		); err != nil {
			return nil, err
		}
		roster = append(roster, &row)
	}
	return roster, rows.Err()
}

// TranscriptSourceRow is one course line of a bulletin query before grade
// resolution.
type TranscriptSourceRow struct {
	CourseName   string
	Credits      int
	Semester     int
	HasTwoGrades bool
	Grade1       *float64
	Grade2       *float64
	ResitGrade   *float64
}

// ListTranscriptRows lists every course of a program year, left-joined with
// the student's grade record for the academic year. Courses the student never
// received a grade row for still appear, with all score fields null. Semester
// 0 means both semesters.
func (r *GradeRepository) ListTranscriptRows(ctx context.Context, matricule string, programID int64, yearOfStudy int, academicYearID int64, semester int) ([]*TranscriptSourceRow, error) {
	query := `
		SELECT c.name, c.credits, c.semester, c.has_two_grades,
		       g.grade1, g.grade2, g.resit_grade
		FROM courses c
		LEFT JOIN grades g
		  ON g.course_id = c.id
		 AND g.student_matricule = $1
		 AND g.academic_year_id = $4
		WHERE c.program_id = $2 AND c.year_of_study = $3
		  AND ($5 = 0 OR c.semester = $5)
		ORDER BY c.semester, c.name
	`

	rows, err := r.db.Query(ctx, query, matricule, programID, yearOfStudy, academicYearID, semester)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*TranscriptSourceRow
	for rows.Next() {
		var row TranscriptSourceRow
		if err := rows.Scan(
			&row.CourseName, &row.Credits, &row.Semester, &row.HasTwoGrades,
			&row.Grade1, &row.Grade2, &row.ResitGrade,
		); err != nil {
			return nil, err
		}
		result = append(result, &row)
	}
	return result, rows.Err()
}
