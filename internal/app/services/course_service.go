package services

import (
	"context"
	"strings"

	"github.com/sysgesco/backend/internal/app/models"
	"github.com/sysgesco/backend/internal/pkg/apperrors"
)

type courseStore interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	GetByProgramYear(ctx context.Context, programID int64, yearOfStudy, semester int) ([]*models.Course, error)
	GetAll(ctx context.Context) ([]*models.Course, error)
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id int64) error
}

// CourseService manages program curricula.
type CourseService struct {
	courses courseStore
}

// NewCourseService creates a new course service.
func NewCourseService(courses courseStore) *CourseService {
	return &CourseService{courses: courses}
}

func validateCourseFields(name string, credits, semester, yearOfStudy int) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", apperrors.NewInvalidValueError("course name is required")
	}
	if credits < 1 || credits > 20 {
		return "", apperrors.NewInvalidValueError("credits must lie in [1,20]")
	}
	if semester != 1 && semester != 2 {
		return "", apperrors.NewInvalidValueError("semester must be 1 or 2")
	}
	if yearOfStudy < 1 || yearOfStudy > 10 {
		return "", apperrors.NewInvalidValueError("year of study must lie in [1,10]")
	}
	return name, nil
}

// Create stores a course in a program curriculum. hasTwoGrades defaults to
// true when the caller leaves it unset.
func (s *CourseService) Create(ctx context.Context, name string, credits, semester int, programID int64, yearOfStudy int, hasTwoGrades *bool) (*models.Course, error) {
	name, err := validateCourseFields(name, credits, semester, yearOfStudy)
	if err != nil {
		return nil, err
	}

	course := &models.Course{
		Name:         name,
		Credits:      credits,
		Semester:     semester,
		ProgramID:    programID,
		YearOfStudy:  yearOfStudy,
		HasTwoGrades: true,
	}
	if hasTwoGrades != nil {
		course.HasTwoGrades = *hasTwoGrades
	}

	if err := s.courses.Create(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

// GetByID returns one course.
func (s *CourseService) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	return s.courses.GetByID(ctx, id)
}

// GetByProgramYear returns the curriculum of one program year, optionally
// narrowed to one semester (0 means both).
func (s *CourseService) GetByProgramYear(ctx context.Context, programID int64, yearOfStudy, semester int) ([]*models.Course, error) {
	if semester < 0 || semester > 2 {
		return nil, apperrors.NewInvalidValueError("semester must be 1 or 2")
	}
	return s.courses.GetByProgramYear(ctx, programID, yearOfStudy, semester)
}

// GetAll returns every course.
func (s *CourseService) GetAll(ctx context.Context) ([]*models.Course, error) {
	return s.courses.GetAll(ctx)
}

// Update rewrites a course.
func (s *CourseService) Update(ctx context.Context, id int64, name string, credits, semester, yearOfStudy int, hasTwoGrades *bool) (*models.Course, error) {
	name, err := validateCourseFields(name, credits, semester, yearOfStudy)
	if err != nil {
		return nil, err
	}

	existing, err := s.courses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Name = name
	existing.Credits = credits
	existing.Semester = semester
	existing.YearOfStudy = yearOfStudy
	if hasTwoGrades != nil {
		existing.HasTwoGrades = *hasTwoGrades
	}

	if err := s.courses.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete removes a course and, through the schema, its grade rows.
func (s *CourseService) Delete(ctx context.Context, id int64) error {
	return s.courses.Delete(ctx, id)
}
