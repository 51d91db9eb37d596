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

func authFixture(t *testing.T) (*AuthService, *fakeUserStore, context.Context) {
	t.Helper()
	store := newFakeUserStore()
	require.NoError(t, store.Create(context.Background(), &models.User{
		Username:     "admin",
		PasswordHash: auth.HashPassword("adminpass"),
		Role:         models.RoleAdministrator,
	}))
	return NewAuthService(store, fakeTokenIssuer{}), store, context.Background()
}

func TestAuthenticate(t *testing.T) {
	service, _, ctx := authFixture(t)

	user, token, expiresIn, err := service.Authenticate(ctx, "admin", "adminpass")
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)
	assert.Equal(t, "test-token", token)
	assert.Equal(t, 3600, expiresIn)
}

func TestAuthenticateFailuresAreUniform(t *testing.T) {
	service, _, ctx := authFixture(t)

	_, _, _, err := service.Authenticate(ctx, "admin", "wrong")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	// Unknown user yields the same error as a wrong password.
	_, _, _, err = service.Authenticate(ctx, "ghost", "whatever")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestChangePassword(t *testing.T) {
	service, store, ctx := authFixture(t)

	err := service.ChangePassword(ctx, 1, "wrong", "newpass")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	err = service.ChangePassword(ctx, 1, "adminpass", "  ")
	assert.ErrorIs(t, err, apperrors.ErrInvalidValue)

	require.NoError(t, service.ChangePassword(ctx, 1, "adminpass", "newpass"))
	user, err := store.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.True(t, auth.CheckPassword(user.PasswordHash, "newpass"))
}

func TestResetPasswordIsAdminOnly(t *testing.T) {
	service, store, ctx := authFixture(t)

	err := service.ResetPassword(ctx, models.RoleCoordinator, 1, "newpass")
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
	err = service.ResetPassword(ctx, models.RoleRegistrar, 1, "newpass")
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	require.NoError(t, service.ResetPassword(ctx, models.RoleAdministrator, 1, "newpass"))
	user, err := store.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.True(t, auth.CheckPassword(user.PasswordHash, "newpass"))
}

func TestResetPasswordUnknownTarget(t *testing.T) {
	service, _, ctx := authFixture(t)

	err := service.ResetPassword(ctx, models.RoleAdministrator, 42, "newpass")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
