package models

// Course represents a course taught in a given program year and semester.
// A course is unique per (name, program, year of study, semester). Deleting
// the owning program cascades to its courses.
type Course struct {
	ID           int64  `json:"id" db:"id"`
	Name         string `json:"name" db:"name"`
	Credits      int    `json:"credits" db:"credits"`
	Semester     int    `json:"semester" db:"semester"`
	ProgramID    int64  `json:"programId" db:"program_id"`
	YearOfStudy  int    `json:"yearOfStudy" db:"year_of_study"`
	HasTwoGrades bool   `json:"hasTwoGrades" db:"has_two_grades"`
}
