package services

import (
	"context"
	"strings"

	"github.com/sysgesco/backend/internal/app/models"
	"github.com/sysgesco/backend/internal/pkg/apperrors"
	"github.com/sysgesco/backend/internal/pkg/auth"
)

type userStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetAll(ctx context.Context) ([]*models.User, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	Delete(ctx context.Context, id int64) error
}

type tokenIssuer interface {
	GenerateToken(user *models.User) (string, int, error)
}

// AuthService authenticates accounts and manages their passwords.
type AuthService struct {
	users  userStore
	tokens tokenIssuer
}

// NewAuthService creates a new auth service.
func NewAuthService(users userStore, tokens tokenIssuer) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Authenticate checks credentials and issues an access token. A missing user
// and a wrong password are indistinguishable to the caller.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*models.User, string, int, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, "", 0, apperrors.ErrInvalidCredentials
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, "", 0, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.tokens.GenerateToken(user)
	if err != nil {
		return nil, "", 0, err
	}
	return user, token, expiresIn, nil
}

// ChangePassword rotates the caller's own password after verifying the
// current one.
func (s *AuthService) ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error {
	if strings.TrimSpace(newPassword) == "" {
		return apperrors.NewInvalidValueError("new password is required")
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if !auth.CheckPassword(user.PasswordHash, currentPassword) {
		return apperrors.ErrInvalidCredentials
	}
	return s.users.UpdatePassword(ctx, userID, auth.HashPassword(newPassword))
}

// ResetPassword sets a user's password without knowing the old one. Only
// administrators may do this.
func (s *AuthService) ResetPassword(ctx context.Context, callerRole models.Role, targetUserID int64, newPassword string) error {
	if callerRole != models.RoleAdministrator {
		return apperrors.NewForbiddenError("only administrators can reset passwords")
	}
	if strings.TrimSpace(newPassword) == "" {
		return apperrors.NewInvalidValueError("new password is required")
	}
	if _, err := s.users.GetByID(ctx, targetUserID); err != nil {
		return err
	}
	return s.users.UpdatePassword(ctx, targetUserID, auth.HashPassword(newPassword))
}
