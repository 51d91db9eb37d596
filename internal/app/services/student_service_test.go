package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sysgesco/backend/internal/pkg/apperrors"
)

func TestEnrollSameYearTwiceIsRejected(t *testing.T) {
	store := newFakeStudentStore()
	service := NewStudentService(store)
	ctx := context.Background()

	_, err := service.Create(ctx, "S001", "Doe", "Jane")
	require.NoError(t, err)

	require.NoError(t, service.Enroll(ctx, "S001", 1, 2024, 1))

	err = service.Enroll(ctx, "S001", 1, 2024, 1)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyEnrolled)

	// A different program with the same year is still the same year.
	err = service.Enroll(ctx, "S001", 2, 2024, 2)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyEnrolled)
}

func TestEnrollDifferentYearOverwritesSlot(t *testing.T) {
	store := newFakeStudentStore()
	service := NewStudentService(store)
	ctx := context.Background()

	_, err := service.Create(ctx, "S001", "Doe", "Jane")
	require.NoError(t, err)

	require.NoError(t, service.Enroll(ctx, "S001", 1, 2023, 1))
	require.NoError(t, service.Enroll(ctx, "S001", 2, 2024, 2))

	student, err := service.GetByMatricule(ctx, "S001")
	require.NoError(t, err)
	require.True(t, student.Enrolled())
	assert.Equal(t, int64(2), *student.ProgramID)
	assert.Equal(t, int64(2024), *student.AcademicYearID)
	assert.Equal(t, 2, *student.YearOfStudy)
}

func TestEnrollValidatesYearOfStudy(t *testing.T) {
	service := NewStudentService(newFakeStudentStore())

	err := service.Enroll(context.Background(), "S001", 1, 2024, 0)
	assert.ErrorIs(t, err, apperrors.ErrInvalidValue)
}

func TestCreateStudentRequiresAllFields(t *testing.T) {
	service := NewStudentService(newFakeStudentStore())
	ctx := context.Background()

	_, err := service.Create(ctx, "", "Doe", "Jane")
	assert.ErrorIs(t, err, apperrors.ErrInvalidValue)

	_, err = service.Create(ctx, "S001", "  ", "Jane")
	assert.ErrorIs(t, err, apperrors.ErrInvalidValue)
}

func TestCreateStudentRejectsDuplicateMatricule(t *testing.T) {
	service := NewStudentService(newFakeStudentStore())
	ctx := context.Background()

	_, err := service.Create(ctx, "S001", "Doe", "Jane")
	require.NoError(t, err)

	_, err = service.Create(ctx, "S001", "Smith", "John")
	assert.ErrorIs(t, err, apperrors.ErrDuplicateKey)
}
