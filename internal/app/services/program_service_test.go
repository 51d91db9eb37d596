package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sysgesco/backend/internal/pkg/apperrors"
)

func TestCreateProgramNameIsGloballyUnique(t *testing.T) {
	service := NewProgramService(newFakeProgramStore())
	ctx := context.Background()

	_, err := service.Create(ctx, "Informatique", 3, 1)
	require.NoError(t, err)

	// The same name under another department is still a duplicate.
	_, err = service.Create(ctx, "Informatique", 3, 2)
	assert.ErrorIs(t, err, apperrors.ErrDuplicateKey)
}

func TestCreateProgramValidation(t *testing.T) {
	service := NewProgramService(newFakeProgramStore())
	ctx := context.Background()

	_, err := service.Create(ctx, " ", 3, 1)
	assert.ErrorIs(t, err, apperrors.ErrInvalidValue)

	_, err = service.Create(ctx, "Informatique", 0, 1)
	assert.ErrorIs(t, err, apperrors.ErrInvalidValue)

	_, err = service.Create(ctx, "Informatique", 11, 1)
	assert.ErrorIs(t, err, apperrors.ErrInvalidValue)
}
