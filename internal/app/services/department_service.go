package services

import (
	"context"
	"strings"

	"github.com/sysgesco/backend/internal/app/models"
	"github.com/sysgesco/backend/internal/pkg/apperrors"
)

type departmentStore interface {
	Create(ctx context.Context, department *models.Department) error
	GetByID(ctx context.Context, id int64) (*models.Department, error)
	GetAll(ctx context.Context) ([]*models.Department, error)
	Update(ctx context.Context, department *models.Department) error
	Delete(ctx context.Context, id int64) error
}

// DepartmentService manages departments and their validation grade.
type DepartmentService struct {
	departments departmentStore
}

// NewDepartmentService creates a new department service.
func NewDepartmentService(departments departmentStore) *DepartmentService {
	return &DepartmentService{departments: departments}
}

// Create stores a department. A missing validation grade falls back to the
// default threshold.
func (s *DepartmentService) Create(ctx context.Context, name string, validationGrade *float64) (*models.Department, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewInvalidValueError("department name is required")
	}

	department := &models.Department{
		Name:            name,
		ValidationGrade: models.DefaultValidationGrade,
	}
	if validationGrade != nil {
		if *validationGrade < 0 || *validationGrade > 20 {
			return nil, apperrors.NewInvalidValueError("validation grade must lie in [0,20]")
		}
		department.ValidationGrade = *validationGrade
	}

	if err := s.departments.Create(ctx, department); err != nil {
		return nil, err
	}
	return department, nil
}

// GetByID returns one department.
func (s *DepartmentService) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	return s.departments.GetByID(ctx, id)
}

// GetAll returns all departments.
func (s *DepartmentService) GetAll(ctx context.Context) ([]*models.Department, error) {
	return s.departments.GetAll(ctx)
}

// Update rewrites a department.
func (s *DepartmentService) Update(ctx context.Context, id int64, name string, validationGrade *float64) (*models.Department, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewInvalidValueError("department name is required")
	}

	department := &models.Department{
		ID:              id,
		Name:            name,
		ValidationGrade: models.DefaultValidationGrade,
	}
	if validationGrade != nil {
		if *validationGrade < 0 || *validationGrade > 20 {
			return nil, apperrors.NewInvalidValueError("validation grade must lie in [0,20]")
		}
		department.ValidationGrade = *validationGrade
	}

	if err := s.departments.Update(ctx, department); err != nil {
		return nil, err
	}
	return department, nil
}

// Delete removes a department and, through the schema, everything under it.
func (s *DepartmentService) Delete(ctx context.Context, id int64) error {
	return s.departments.Delete(ctx, id)
}
