package dto

// LoginRequest is the credentials payload for POST /auth/login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token.
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expiresIn"`
	UserID    int64  `json:"userId"`
	Username  string `json:"username"`
	Role      string `json:"role"`
}

// ChangePasswordRequest lets a signed-in user rotate their own password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=4"`
}

// ResetPasswordRequest lets an administrator set a user's password.
type ResetPasswordRequest struct {
	NewPassword string `json:"newPassword" binding:"required,min=4"`
}

// CreateAcademicYearRequest creates a year from its start year only; the end
// year and display name are derived.
type CreateAcademicYearRequest struct {
	StartYear int `json:"startYear" binding:"required,min=1900,max=2999"`
}

// CreateDepartmentRequest creates a department.
type CreateDepartmentRequest struct {
	Name            string   `json:"name" binding:"required"`
	ValidationGrade *float64 `json:"validationGrade" binding:"omitempty,min=0,max=20"`
}

// UpdateDepartmentRequest updates a department.
type UpdateDepartmentRequest struct {
	Name            string   `json:"name" binding:"required"`
	ValidationGrade *float64 `json:"validationGrade" binding:"omitempty,min=0,max=20"`
}

// CreateProgramRequest creates a program under a department.
type CreateProgramRequest struct {
	Name          string `json:"name" binding:"required"`
	DurationYears int    `json:"durationYears" binding:"required,min=1,max=10"`
	DepartmentID  int64  `json:"departmentId" binding:"required"`
}

// UpdateProgramRequest updates a program.
type UpdateProgramRequest struct {
	Name          string `json:"name" binding:"required"`
	DurationYears int    `json:"durationYears" binding:"required,min=1,max=10"`
	DepartmentID  int64  `json:"departmentId" binding:"required"`
}

// CreateStudentRequest registers a student identity. Enrollment is a separate
// operation.
type CreateStudentRequest struct {
	Matricule string `json:"matricule" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	FirstName string `json:"firstName" binding:"required"`
}

// UpdateStudentRequest updates a student's name fields.
type UpdateStudentRequest struct {
	LastName  string `json:"lastName" binding:"required"`
	FirstName string `json:"firstName" binding:"required"`
}

// EnrollStudentRequest assigns the student's enrollment slot. Enrolling into
// a different academic year overwrites the slot; re-enrolling into the same
// year is rejected.
type EnrollStudentRequest struct {
	ProgramID      int64 `json:"programId" binding:"required"`
	AcademicYearID int64 `json:"academicYearId" binding:"required"`
	YearOfStudy    int   `json:"yearOfStudy" binding:"required,min=1,max=10"`
}

// CreateCourseRequest creates a course in a program curriculum.
type CreateCourseRequest struct {
	Name         string `json:"name" binding:"required"`
	Credits      int    `json:"credits" binding:"required,min=1,max=20"`
	Semester     int    `json:"semester" binding:"required,min=1,max=2"`
	ProgramID    int64  `json:"programId" binding:"required"`
	YearOfStudy  int    `json:"yearOfStudy" binding:"required,min=1,max=10"`
	HasTwoGrades *bool  `json:"hasTwoGrades"`
}

// UpdateCourseRequest updates a course.
type UpdateCourseRequest struct {
	Name         string `json:"name" binding:"required"`
	Credits      int    `json:"credits" binding:"required,min=1,max=20"`
	Semester     int    `json:"semester" binding:"required,min=1,max=2"`
	YearOfStudy  int    `json:"yearOfStudy" binding:"required,min=1,max=10"`
	HasTwoGrades *bool  `json:"hasTwoGrades"`
}

// SetGradeRequest writes one score field of a grade record. A nil value
// clears the field.
type SetGradeRequest struct {
	StudentMatricule string   `json:"studentMatricule" binding:"required"`
	CourseID         int64    `json:"courseId" binding:"required"`
	AcademicYearID   int64    `json:"academicYearId" binding:"required"`
	Field            string   `json:"field" binding:"required"`
	Value            *float64 `json:"value" binding:"omitempty,min=0,max=20"`
}

// CreateUserRequest creates an account, optionally linked to a student. A
// linked account is deleted with its student.
type CreateUserRequest struct {
	Username         string  `json:"username" binding:"required"`
	Password         string  `json:"password" binding:"required,min=4"`
	Role             string  `json:"role" binding:"required"`
	StudentMatricule *string `json:"studentMatricule"`
}

// GradeRowResponse is one resolved grade line for a course roster view.
type GradeRowResponse struct {
	StudentMatricule string   `json:"studentMatricule"`
	LastName         string   `json:"lastName"`
	FirstName        string   `json:"firstName"`
	Grade1           *float64 `json:"grade1,omitempty"`
	Grade2           *float64 `json:"grade2,omitempty"`
	ResitGrade       *float64 `json:"resitGrade,omitempty"`
	FinalGrade       *float64 `json:"finalGrade,omitempty"`
	Status           string   `json:"status"`
}
