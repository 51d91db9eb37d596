package models

// Student represents one row of the 'students' table. The matricule is the
// natural key and is immutable once created.
//
// The enrollment fields form a single mutable slot: a student carries at most
// one current (program, academic year, year of study) triple. Re-enrolling
// into a different academic year overwrites the slot; there is no enrollment
// history. Deleting the referenced program or academic year nulls the slot
// instead of deleting the student.
type Student struct {
	Matricule      string `json:"matricule" db:"matricule"`
	LastName       string `json:"lastName" db:"last_name"`
	FirstName      string `json:"firstName" db:"first_name"`
	ProgramID      *int64 `json:"programId,omitempty" db:"program_id"`
	AcademicYearID *int64 `json:"academicYearId,omitempty" db:"academic_year_id"`
	YearOfStudy    *int   `json:"yearOfStudy,omitempty" db:"year_of_study"`

	// Relations, populated when needed
	Program      *Program      `json:"program,omitempty"`
	AcademicYear *AcademicYear `json:"academicYear,omitempty"`
}

// Enrolled reports whether the student currently occupies an enrollment slot.
func (s *Student) Enrolled() bool {
	return s.ProgramID != nil && s.AcademicYearID != nil && s.YearOfStudy != nil
}
