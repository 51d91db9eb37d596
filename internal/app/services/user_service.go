package services

import (
	"context"
	"strings"

	"github.com/sysgesco/backend/internal/app/models"
	"github.com/sysgesco/backend/internal/pkg/apperrors"
	"github.com/sysgesco/backend/internal/pkg/auth"
)

// UserService manages accounts.
type UserService struct {
	users userStore
}

// NewUserService creates a new user service.
func NewUserService(users userStore) *UserService {
	return &UserService{users: users}
}

// Create stores an account with a hashed password, optionally linked to a
// student. The link is what makes deleting the student cascade to the
// account.
func (s *UserService) Create(ctx context.Context, username, password string, role models.Role, studentMatricule *string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, apperrors.NewInvalidValueError("username is required")
	}
	if strings.TrimSpace(password) == "" {
		return nil, apperrors.NewInvalidValueError("password is required")
	}
	if !role.Valid() {
		return nil, apperrors.NewInvalidValueError("unknown role")
	}
	if studentMatricule != nil {
		matricule := strings.TrimSpace(*studentMatricule)
		if matricule == "" {
			return nil, apperrors.NewInvalidValueError("linked matricule must not be blank")
		}
		studentMatricule = &matricule
	}

	user := &models.User{
		Username:         username,
		PasswordHash:     auth.HashPassword(password),
		Role:             role,
		StudentMatricule: studentMatricule,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetByID returns one account.
func (s *UserService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return s.users.GetByID(ctx, id)
}

// GetAll returns all accounts.
func (s *UserService) GetAll(ctx context.Context) ([]*models.User, error) {
	return s.users.GetAll(ctx)
}

// Delete removes an account.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	return s.users.Delete(ctx, id)
}
