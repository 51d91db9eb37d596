package services

import (
	"context"
	"strings"

	"github.com/sysgesco/backend/internal/app/models"
	"github.com/sysgesco/backend/internal/pkg/apperrors"
)

type studentStore interface {
	Create(ctx context.Context, student *models.Student) error
	GetByMatricule(ctx context.Context, matricule string) (*models.Student, error)
	GetAll(ctx context.Context) ([]*models.Student, error)
	GetByProgram(ctx context.Context, programID int64) ([]*models.Student, error)
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, matricule string) error
	Enroll(ctx context.Context, matricule string, programID, academicYearID int64, yearOfStudy int) error
	ListAcademicYears(ctx context.Context, matricule string) ([]*models.AcademicYear, error)
}

// StudentService manages student identities and the enrollment slot.
type StudentService struct {
	students studentStore
}

// NewStudentService creates a new student service.
func NewStudentService(students studentStore) *StudentService {
	return &StudentService{students: students}
}

// Create registers a student identity. Enrollment is a separate operation.
func (s *StudentService) Create(ctx context.Context, matricule, lastName, firstName string) (*models.Student, error) {
	matricule = strings.TrimSpace(matricule)
	lastName = strings.TrimSpace(lastName)
	firstName = strings.TrimSpace(firstName)
	if matricule == "" || lastName == "" || firstName == "" {
		return nil, apperrors.NewInvalidValueError("matricule, last name and first name are required")
	}

	student := &models.Student{
		Matricule: matricule,
		LastName:  lastName,
		FirstName: firstName,
	}
	if err := s.students.Create(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

// GetByMatricule returns one student with enrollment relations.
func (s *StudentService) GetByMatricule(ctx context.Context, matricule string) (*models.Student, error) {
	return s.students.GetByMatricule(ctx, matricule)
}

// GetAll returns all students.
func (s *StudentService) GetAll(ctx context.Context) ([]*models.Student, error) {
	return s.students.GetAll(ctx)
}

// GetByProgram returns the students currently enrolled in one program.
func (s *StudentService) GetByProgram(ctx context.Context, programID int64) ([]*models.Student, error) {
	return s.students.GetByProgram(ctx, programID)
}

// Update rewrites a student's name fields.
func (s *StudentService) Update(ctx context.Context, matricule, lastName, firstName string) (*models.Student, error) {
	lastName = strings.TrimSpace(lastName)
	firstName = strings.TrimSpace(firstName)
	if lastName == "" || firstName == "" {
		return nil, apperrors.NewInvalidValueError("last name and first name are required")
	}

	student := &models.Student{
		Matricule: matricule,
		LastName:  lastName,
		FirstName: firstName,
	}
	if err := s.students.Update(ctx, student); err != nil {
		return nil, err
	}
	return s.students.GetByMatricule(ctx, matricule)
}

// Delete removes a student and, through the schema, their grades and any
// linked account.
func (s *StudentService) Delete(ctx context.Context, matricule string) error {
	return s.students.Delete(ctx, matricule)
}

// Enroll assigns the student's enrollment slot.
func (s *StudentService) Enroll(ctx context.Context, matricule string, programID, academicYearID int64, yearOfStudy int) error {
	if yearOfStudy < 1 || yearOfStudy > 10 {
		return apperrors.NewInvalidValueError("year of study must lie in [1,10]")
	}
	return s.students.Enroll(ctx, matricule, programID, academicYearID, yearOfStudy)
}

// ListAcademicYears returns the years a student has any record in.
func (s *StudentService) ListAcademicYears(ctx context.Context, matricule string) ([]*models.AcademicYear, error) {
	if _, err := s.students.GetByMatricule(ctx, matricule); err != nil {
		return nil, err
	}
	return s.students.ListAcademicYears(ctx, matricule)
}
