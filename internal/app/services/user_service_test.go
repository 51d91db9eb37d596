package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sysgesco/backend/internal/app/models"
	"github.com/sysgesco/backend/internal/pkg/apperrors"
	"github.com/sysgesco/backend/internal/pkg/auth"
)

func sptr(s string) *string { return &s }

func TestCreateUserHashesPassword(t *testing.T) {
	store := newFakeUserStore()
	service := NewUserService(store)

	user, err := service.Create(context.Background(), "registrar1", "regpass", models.RoleRegistrar, nil)
	require.NoError(t, err)
	assert.NotEqual(t, "regpass", user.PasswordHash)
	assert.True(t, auth.CheckPassword(user.PasswordHash, "regpass"))
	assert.Nil(t, user.StudentMatricule)
}

func TestCreateUserWithLinkedStudent(t *testing.T) {
	store := newFakeUserStore()
	service := NewUserService(store)
	ctx := context.Background()

	user, err := service.Create(ctx, "jdoe", "pass", models.RoleRegistrar, sptr("S001"))
	require.NoError(t, err)
	require.NotNil(t, user.StudentMatricule)
	assert.Equal(t, "S001", *user.StudentMatricule)

	stored, err := store.GetByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.StudentMatricule)
	assert.Equal(t, "S001", *stored.StudentMatricule)

	// One linked account per student.
	_, err = service.Create(ctx, "jdoe2", "pass", models.RoleRegistrar, sptr("S001"))
	assert.ErrorIs(t, err, apperrors.ErrDuplicateKey)
}

func TestCreateUserRejectsBlankLinkedMatricule(t *testing.T) {
	service := NewUserService(newFakeUserStore())

	_, err := service.Create(context.Background(), "jdoe", "pass", models.RoleRegistrar, sptr("  "))
	assert.ErrorIs(t, err, apperrors.ErrInvalidValue)
}

func TestCreateUserValidation(t *testing.T) {
	service := NewUserService(newFakeUserStore())
	ctx := context.Background()

	_, err := service.Create(ctx, "", "pass", models.RoleRegistrar, nil)
	assert.ErrorIs(t, err, apperrors.ErrInvalidValue)

	_, err = service.Create(ctx, "bob", " ", models.RoleRegistrar, nil)
	assert.ErrorIs(t, err, apperrors.ErrInvalidValue)

	_, err = service.Create(ctx, "bob", "pass", models.Role("superuser"), nil)
	assert.ErrorIs(t, err, apperrors.ErrInvalidValue)

	_, err = service.Create(ctx, "bob", "pass", models.RoleCoordinator, nil)
	require.NoError(t, err)
	_, err = service.Create(ctx, "bob", "other", models.RoleRegistrar, nil)
	assert.ErrorIs(t, err, apperrors.ErrDuplicateKey)
}
