package services

import (
	"context"

	"github.com/sysgesco/backend/internal/app/grading"
	"github.com/sysgesco/backend/internal/app/models"
	"github.com/sysgesco/backend/internal/app/repositories"
	"github.com/sysgesco/backend/internal/pkg/apperrors"
)

type transcriptStore interface {
	ListTranscriptRows(ctx context.Context, matricule string, programID int64, yearOfStudy int, academicYearID int64, semester int) ([]*repositories.TranscriptSourceRow, error)
}

// BulletinService builds student transcripts.
type BulletinService struct {
	students studentStore
	programs programStore
	years    academicYearStore
	grades   transcriptStore
}

// NewBulletinService creates a new bulletin service.
func NewBulletinService(students studentStore, programs programStore, years academicYearStore, grades transcriptStore) *BulletinService {
	return &BulletinService{students: students, programs: programs, years: years, grades: grades}
}

// BuildTranscript assembles the bulletin of one student for one academic year
// and period. The enrollment snapshot comes from the student's single slot;
// when the slot does not carry the requested year there is no enrollment to
// report against.
//
// Every course of the program year appears, graded or not; a course with no
// grade row resolves to a failing line. The average is computed from
// unrounded final grades and only displayed values are rounded.
func (s *BulletinService) BuildTranscript(ctx context.Context, matricule string, academicYearID int64, period models.Period) (*models.Transcript, error) {
	if !period.Valid() {
		return nil, apperrors.NewInvalidValueError("period must be one of all, s1, s2")
	}

	student, err := s.students.GetByMatricule(ctx, matricule)
	if err != nil {
		return nil, err
	}
	if !student.Enrolled() || *student.AcademicYearID != academicYearID {
		return nil, apperrors.ErrNoEnrollment
	}

	program, err := s.programs.GetByID(ctx, *student.ProgramID)
	if err != nil {
		return nil, err
	}
	year, err := s.years.GetByID(ctx, academicYearID)
	if err != nil {
		return nil, err
	}

	var validationGrade *float64
	if program.Department != nil {
		validationGrade = &program.Department.ValidationGrade
	}

	sourceRows, err := s.grades.ListTranscriptRows(ctx, matricule, program.ID, *student.YearOfStudy, academicYearID, period.Semester())
	if err != nil {
		return nil, err
	}

	transcript := &models.Transcript{
		Matricule:    student.Matricule,
		FirstName:    student.FirstName,
		LastName:     student.LastName,
		ProgramName:  program.Name,
		AcademicYear: year.Name,
		YearOfStudy:  *student.YearOfStudy,
		Period:       period,
		Rows:         make([]models.TranscriptRow, 0, len(sourceRows)),
	}

	var totalPoints float64
	var totalCredits, validatedCredits int
	for _, row := range sourceRows {
		final, status := grading.Resolve(row.Grade1, row.Grade2, row.ResitGrade, row.HasTwoGrades, validationGrade)

		totalCredits += row.Credits
		if final != nil {
			totalPoints += *final * float64(row.Credits)
		}
		if status == grading.StatusValidated {
			validatedCredits += row.Credits
		}

		transcript.Rows = append(transcript.Rows, models.TranscriptRow{
			CourseName: row.CourseName,
			Credits:    row.Credits,
			Semester:   row.Semester,
			FinalGrade: roundPtr(final),
			Status:     status,
		})
	}

	transcript.Summary = models.TranscriptSummary{
		ValidatedCredits: validatedCredits,
		TotalCredits:     totalCredits,
	}
	if totalCredits > 0 {
		avg := round2(totalPoints / float64(totalCredits))
		transcript.Summary.Average = &avg
	}
	return transcript, nil
}
