package services

import (
	"context"
	"fmt"

	"github.com/sysgesco/backend/internal/app/models"
	"github.com/sysgesco/backend/internal/pkg/apperrors"
)

// academicYearStore is the storage surface the service needs.
type academicYearStore interface {
	Create(ctx context.Context, year *models.AcademicYear) error
	GetByID(ctx context.Context, id int64) (*models.AcademicYear, error)
	GetAll(ctx context.Context) ([]*models.AcademicYear, error)
	Delete(ctx context.Context, id int64) error
}

// AcademicYearService manages academic years.
type AcademicYearService struct {
	years academicYearStore
}

// NewAcademicYearService creates a new academic year service.
func NewAcademicYearService(years academicYearStore) *AcademicYearService {
	return &AcademicYearService{years: years}
}

// Create derives and stores an academic year from its start year. The end
// year and name are never caller-supplied.
func (s *AcademicYearService) Create(ctx context.Context, startYear int) (*models.AcademicYear, error) {
	if startYear < 1900 || startYear > 2999 {
		return nil, apperrors.NewInvalidValueError(fmt.Sprintf("start year %d out of range", startYear))
	}
	year := models.NewAcademicYear(startYear)
	if err := s.years.Create(ctx, year); err != nil {
		return nil, err
	}
	return year, nil
}

// GetByID returns one academic year.
func (s *AcademicYearService) GetByID(ctx context.Context, id int64) (*models.AcademicYear, error) {
	return s.years.GetByID(ctx, id)
}

// GetAll returns all academic years, newest first.
func (s *AcademicYearService) GetAll(ctx context.Context) ([]*models.AcademicYear, error) {
	return s.years.GetAll(ctx)
}

// Delete removes an academic year and, through the schema, its grade rows.
func (s *AcademicYearService) Delete(ctx context.Context, id int64) error {
	return s.years.Delete(ctx, id)
}
