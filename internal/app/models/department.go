package models

// DefaultValidationGrade is the pass threshold applied when a department has
// no explicit one.
const DefaultValidationGrade = 12.0

// Department represents a department owning programs. ValidationGrade is the
// pass threshold applied to every course of every program under it.
type Department struct {
	ID              int64   `json:"id" db:"id"`
	Name            string  `json:"name" db:"name"`
	ValidationGrade float64 `json:"validationGrade" db:"validation_grade"`
}
