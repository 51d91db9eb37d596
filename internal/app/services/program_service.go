package services

import (
	"context"
	"strings"

	"github.com/sysgesco/backend/internal/app/models"
	"github.com/sysgesco/backend/internal/pkg/apperrors"
)

type programStore interface {
	Create(ctx context.Context, program *models.Program) error
	GetByID(ctx context.Context, id int64) (*models.Program, error)
	GetAll(ctx context.Context) ([]*models.Program, error)
	GetByDepartment(ctx context.Context, departmentID int64) ([]*models.Program, error)
	Update(ctx context.Context, program *models.Program) error
	Delete(ctx context.Context, id int64) error
}

// ProgramService manages degree programs.
type ProgramService struct {
	programs programStore
}

// NewProgramService creates a new program service.
func NewProgramService(programs programStore) *ProgramService {
	return &ProgramService{programs: programs}
}

// Create stores a program under a department.
func (s *ProgramService) Create(ctx context.Context, name string, durationYears int, departmentID int64) (*models.Program, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewInvalidValueError("program name is required")
	}
	if durationYears < 1 || durationYears > 10 {
		return nil, apperrors.NewInvalidValueError("duration must lie in [1,10] years")
	}

	program := &models.Program{
		Name:          name,
		DurationYears: durationYears,
		DepartmentID:  departmentID,
	}
	if err := s.programs.Create(ctx, program); err != nil {
		return nil, err
	}
	return program, nil
}

// GetByID returns one program with its department.
func (s *ProgramService) GetByID(ctx context.Context, id int64) (*models.Program, error) {
	return s.programs.GetByID(ctx, id)
}

// GetAll returns all programs with their departments.
func (s *ProgramService) GetAll(ctx context.Context) ([]*models.Program, error) {
	return s.programs.GetAll(ctx)
}

// GetByDepartment returns the programs of one department.
func (s *ProgramService) GetByDepartment(ctx context.Context, departmentID int64) ([]*models.Program, error) {
	return s.programs.GetByDepartment(ctx, departmentID)
}

// Update rewrites a program.
func (s *ProgramService) Update(ctx context.Context, id int64, name string, durationYears int, departmentID int64) (*models.Program, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewInvalidValueError("program name is required")
	}
	if durationYears < 1 || durationYears > 10 {
		return nil, apperrors.NewInvalidValueError("duration must lie in [1,10] years")
	}

	program := &models.Program{
		ID:            id,
		Name:          name,
		DurationYears: durationYears,
		DepartmentID:  departmentID,
	}
	if err := s.programs.Update(ctx, program); err != nil {
		return nil, err
	}
	return program, nil
}

// Delete removes a program and, through the schema, its courses and grades.
func (s *ProgramService) Delete(ctx context.Context, id int64) error {
	return s.programs.Delete(ctx, id)
}
