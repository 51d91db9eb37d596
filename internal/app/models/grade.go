package models

// Grade holds the scores of one student for one course in one academic year.
// Rows are created lazily the first time any score field is written and are
// unique per (student, course, academic year). A nil score means "not yet
// entered". Deleting the student, course or academic year cascades here.
type Grade struct {
	ID               int64    `json:"id" db:"id"`
	StudentMatricule string   `json:"studentMatricule" db:"student_matricule"`
	CourseID         int64    `json:"courseId" db:"course_id"`
	AcademicYearID   int64    `json:"academicYearId" db:"academic_year_id"`
	Grade1           *float64 `json:"grade1,omitempty" db:"grade1"`
	Grade2           *float64 `json:"grade2,omitempty" db:"grade2"`
	ResitGrade       *float64 `json:"resitGrade,omitempty" db:"resit_grade"`
}

// GradeField names one of the three writable score columns.
type GradeField string

const (
	FieldGrade1 GradeField = "grade1"
	FieldGrade2 GradeField = "grade2"
	FieldResit  GradeField = "resit"
)

// Valid reports whether the field is one of the three score columns.
func (f GradeField) Valid() bool {
	return f == FieldGrade1 || f == FieldGrade2 || f == FieldResit
}
