package models

import "fmt"

// AcademicYear represents one row of the 'academic_years' table.
// The name is always derived from the start year; the end year is never
// settable independently.
type AcademicYear struct {
	ID        int64  `json:"id" db:"id"`
	StartYear int    `json:"startYear" db:"start_year"`
	EndYear   int    `json:"endYear" db:"end_year"`
	Name      string `json:"name" db:"name"`
}

// NewAcademicYear builds an academic year from its start year.
func NewAcademicYear(startYear int) *AcademicYear {
	return &AcademicYear{
		StartYear: startYear,
		EndYear:   startYear + 1,
		Name:      AcademicYearName(startYear),
	}
}

// AcademicYearName derives the canonical "start-end" display name.
func AcademicYearName(startYear int) string {
	return fmt.Sprintf("%d-%d", startYear, startYear+1)
}
