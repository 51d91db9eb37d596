package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sysgesco/backend/internal/app/models"
	"github.com/sysgesco/backend/internal/pkg/apperrors"
)

type fakeDepartmentStore struct {
	departments map[int64]*models.Department
}

func newFakeDepartmentStore() *fakeDepartmentStore {
	return &fakeDepartmentStore{departments: make(map[int64]*models.Department)}
}

func (f *fakeDepartmentStore) Create(_ context.Context, department *models.Department) error {
	for _, existing := range f.departments {
		if existing.Name == department.Name {
			return apperrors.NewDuplicateKeyError("department already exists")
		}
	}
	department.ID = int64(len(f.departments) + 1)
	f.departments[department.ID] = department
	return nil
}

func (f *fakeDepartmentStore) GetByID(_ context.Context, id int64) (*models.Department, error) {
	department, ok := f.departments[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("department not found")
	}
	return department, nil
}

func (f *fakeDepartmentStore) GetAll(_ context.Context) ([]*models.Department, error) {
	var all []*models.Department
	for _, d := range f.departments {
		all = append(all, d)
	}
	return all, nil
}

func (f *fakeDepartmentStore) Update(_ context.Context, department *models.Department) error {
	if _, ok := f.departments[department.ID]; !ok {
		return apperrors.NewNotFoundError("department not found")
	}
	f.departments[department.ID] = department
	return nil
}

func (f *fakeDepartmentStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.departments[id]; !ok {
		return apperrors.NewNotFoundError("department not found")
	}
	delete(f.departments, id)
	return nil
}

func TestCreateDepartmentDefaultsValidationGrade(t *testing.T) {
	service := NewDepartmentService(newFakeDepartmentStore())
	ctx := context.Background()

	department, err := service.Create(ctx, "Sciences", nil)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultValidationGrade, department.ValidationGrade)

	department, err = service.Create(ctx, "Lettres", fptr(10))
	require.NoError(t, err)
	assert.Equal(t, 10.0, department.ValidationGrade)
}

func TestCreateDepartmentValidation(t *testing.T) {
	service := NewDepartmentService(newFakeDepartmentStore())
	ctx := context.Background()

	_, err := service.Create(ctx, "  ", nil)
	assert.ErrorIs(t, err, apperrors.ErrInvalidValue)

	_, err = service.Create(ctx, "Sciences", fptr(25))
	assert.ErrorIs(t, err, apperrors.ErrInvalidValue)

	_, err = service.Create(ctx, "Sciences", nil)
	require.NoError(t, err)
	_, err = service.Create(ctx, "Sciences", nil)
	assert.ErrorIs(t, err, apperrors.ErrDuplicateKey)
}
