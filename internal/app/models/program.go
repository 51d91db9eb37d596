package models

// Program represents a degree program offered by a department. Program names
// are unique across the whole catalog, not per department. Deleting the
// owning department cascades to its programs.
type Program struct {
	ID            int64  `json:"id" db:"id"`
	Name          string `json:"name" db:"name"`
	DurationYears int    `json:"durationYears" db:"duration_years"`
	DepartmentID  int64  `json:"departmentId" db:"department_id"`

	// Relation, populated when needed
	Department *Department `json:"department,omitempty"`
}
