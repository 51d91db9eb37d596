package models

import "github.com/sysgesco/backend/internal/app/grading"

// TranscriptRow is one course line of a student bulletin.
type TranscriptRow struct {
	CourseName string          `json:"courseName"`
	Credits    int             `json:"credits"`
	Semester   int             `json:"semester"`
	FinalGrade *float64        `json:"finalGrade,omitempty"`
	Status     grading.Status  `json:"status"`
}

// TranscriptSummary aggregates the rows of a bulletin. Average is nil when no
// credits were counted.
type TranscriptSummary struct {
	Average          *float64 `json:"average,omitempty"`
	ValidatedCredits int      `json:"validatedCredits"`
	TotalCredits     int      `json:"totalCredits"`
}

// Transcript is the full bulletin of one student enrollment for one period.
type Transcript struct {
	Matricule    string            `json:"matricule"`
	FirstName    string            `json:"firstName"`
	LastName     string            `json:"lastName"`
	ProgramName  string            `json:"programName"`
	AcademicYear string            `json:"academicYear"`
	YearOfStudy  int               `json:"yearOfStudy"`
	Period       Period            `json:"period"`
	Rows         []TranscriptRow   `json:"rows"`
	Summary      TranscriptSummary `json:"summary"`
}
