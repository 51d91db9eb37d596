package services

import (
	"context"
	"fmt"
	"math"

	"github.com/sysgesco/backend/internal/app/grading"
	"github.com/sysgesco/backend/internal/app/models"
	"github.com/sysgesco/backend/internal/app/models/dto"
	"github.com/sysgesco/backend/internal/app/repositories"
	"github.com/sysgesco/backend/internal/pkg/apperrors"
)

type gradeStore interface {
	SetField(ctx context.Context, matricule string, courseID, academicYearID int64, field models.GradeField, value *float64) error
	Get(ctx context.Context, matricule string, courseID, academicYearID int64) (*models.Grade, error)
	ListCourseRoster(ctx context.Context, courseID, academicYearID int64) ([]*repositories.RosterRow, error)
}

// GradeService writes score fields and produces resolved course rosters.
type GradeService struct {
	grades   gradeStore
	courses  courseStore
	programs programStore
}

// NewGradeService creates a new grade service.
func NewGradeService(grades gradeStore, courses courseStore, programs programStore) *GradeService {
	return &GradeService{grades: grades, courses: courses, programs: programs}
}

// round2 rounds a grade for presentation. Stored and aggregated values stay
// unrounded.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func roundPtr(v *float64) *float64 {
	if v == nil {
		return nil
	}
	r := round2(*v)
	return &r
}

// SetGrade writes one score field of a grade record, creating the record on
// first write. A nil value clears the field. Repeating the same call is a
// no-op for observable state.
func (s *GradeService) SetGrade(ctx context.Context, matricule string, courseID, academicYearID int64, field models.GradeField, value *float64) (*models.Grade, error) {
	if !field.Valid() {
		return nil, apperrors.NewInvalidValueError(fmt.Sprintf("unknown grade field %q", field))
	}
	if value != nil && (*value < 0 || *value > 20) {
		return nil, apperrors.NewInvalidValueError("grade must lie in [0,20]")
	}

	if err := s.grades.SetField(ctx, matricule, courseID, academicYearID, field, value); err != nil {
		return nil, err
	}
	return s.grades.Get(ctx, matricule, courseID, academicYearID)
}

// GetCourseGrades lists the course roster for one academic year with each
// student's resolved final grade and status. Displayed grades are rounded to
// two decimals.
func (s *GradeService) GetCourseGrades(ctx context.Context, courseID, academicYearID int64) ([]*dto.GradeRowResponse, error) {
	course, err := s.courses.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	program, err := s.programs.GetByID(ctx, course.ProgramID)
	if err != nil {
		return nil, err
	}

	var validationGrade *float64
	if program.Department != nil {
		validationGrade = &program.Department.ValidationGrade
	}

	roster, err := s.grades.ListCourseRoster(ctx, courseID, academicYearID)
	if err != nil {
		return nil, err
	}

	rows := make([]*dto.GradeRowResponse, 0, len(roster))
	for _, r := range roster {
		final, status := grading.Resolve(r.Grade1, r.Grade2, r.ResitGrade, course.HasTwoGrades, validationGrade)
		rows = append(rows, &dto.GradeRowResponse{
			StudentMatricule: r.StudentMatricule,
			LastName:         r.LastName,
			FirstName:        r.FirstName,
			Grade1:           r.Grade1,
			Grade2:           r.Grade2,
			ResitGrade:       r.ResitGrade,
			FinalGrade:       roundPtr(final),
			Status:           string(status),
		})
	}
	return rows, nil
}
