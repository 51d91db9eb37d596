package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sysgesco/backend/internal/app/grading"
	"github.com/sysgesco/backend/internal/app/models"
	"github.com/sysgesco/backend/internal/app/repositories"
	"github.com/sysgesco/backend/internal/pkg/apperrors"
)

func bulletinFixture(t *testing.T, rows []*repositories.TranscriptSourceRow) (*BulletinService, context.Context) {
	t.Helper()
	ctx := context.Background()

	students := newFakeStudentStore()
	require.NoError(t, students.Create(ctx, &models.Student{Matricule: "S001", LastName: "Doe", FirstName: "Jane"}))
	require.NoError(t, students.Enroll(ctx, "S001", 1, 10, 1))

	programs := newFakeProgramStore()
	require.NoError(t, programs.Create(ctx, &models.Program{
		Name: "Informatique", DurationYears: 3, DepartmentID: 1,
		Department: &models.Department{ID: 1, Name: "Sciences", ValidationGrade: 12},
	}))

	years := newFakeYearStore()
	year := models.NewAcademicYear(2023)
	year.ID = 10
	years.years[10] = year

	return NewBulletinService(students, programs, years, &fakeTranscriptStore{rows: rows}), ctx
}

func TestBuildTranscriptAggregatesCredits(t *testing.T) {
	service, ctx := bulletinFixture(t, []*repositories.TranscriptSourceRow{
		{CourseName: "Algebre", Credits: 6, Semester: 1, HasTwoGrades: true, Grade1: fptr(14), Grade2: fptr(12)},
		{CourseName: "Analyse", Credits: 4, Semester: 1, HasTwoGrades: true, Grade1: fptr(10), Grade2: fptr(8)},
		{CourseName: "Physique", Credits: 5, Semester: 2, HasTwoGrades: false},
	})

	transcript, err := service.BuildTranscript(ctx, "S001", 10, models.PeriodAll)
	require.NoError(t, err)
	require.Len(t, transcript.Rows, 3)

	assert.Equal(t, "2023-2024", transcript.AcademicYear)
	assert.Equal(t, "Informatique", transcript.ProgramName)

	assert.Equal(t, grading.StatusValidated, transcript.Rows[0].Status)
	assert.Equal(t, grading.StatusNotValidated, transcript.Rows[1].Status)

	// The ungraded course still appears, as a failing line.
	assert.Nil(t, transcript.Rows[2].FinalGrade)
	assert.Equal(t, grading.StatusFailing, transcript.Rows[2].Status)

	assert.Equal(t, 15, transcript.Summary.TotalCredits)
	assert.Equal(t, 6, transcript.Summary.ValidatedCredits)
	assert.LessOrEqual(t, transcript.Summary.ValidatedCredits, transcript.Summary.TotalCredits)

	// (13*6 + 9*4) / 15, with the ungraded course still counting credits.
	require.NotNil(t, transcript.Summary.Average)
	assert.InDelta(t, 7.6, *transcript.Summary.Average, 0.001)
}

func TestBuildTranscriptSemesterFilter(t *testing.T) {
	service, ctx := bulletinFixture(t, []*repositories.TranscriptSourceRow{
		{CourseName: "Algebre", Credits: 6, Semester: 1, HasTwoGrades: true, Grade1: fptr(14), Grade2: fptr(12)},
		{CourseName: "Physique", Credits: 5, Semester: 2, HasTwoGrades: false, Grade1: fptr(15)},
	})

	transcript, err := service.BuildTranscript(ctx, "S001", 10, models.PeriodSemester2)
	require.NoError(t, err)
	require.Len(t, transcript.Rows, 1)
	assert.Equal(t, "Physique", transcript.Rows[0].CourseName)
	assert.Equal(t, 5, transcript.Summary.TotalCredits)
}

func TestBuildTranscriptEmptyCurriculumHasNoAverage(t *testing.T) {
	service, ctx := bulletinFixture(t, nil)

	transcript, err := service.BuildTranscript(ctx, "S001", 10, models.PeriodAll)
	require.NoError(t, err)
	assert.Empty(t, transcript.Rows)
	assert.Equal(t, 0, transcript.Summary.TotalCredits)
	assert.Nil(t, transcript.Summary.Average)
}

func TestBuildTranscriptRequiresMatchingEnrollment(t *testing.T) {
	service, ctx := bulletinFixture(t, nil)

	// Enrolled in year 10, asking for year 99.
	_, err := service.BuildTranscript(ctx, "S001", 99, models.PeriodAll)
	assert.ErrorIs(t, err, apperrors.ErrNoEnrollment)
}

func TestBuildTranscriptUnknownStudent(t *testing.T) {
	service, ctx := bulletinFixture(t, nil)

	_, err := service.BuildTranscript(ctx, "NOPE", 10, models.PeriodAll)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestBuildTranscriptRejectsUnknownPeriod(t *testing.T) {
	service, ctx := bulletinFixture(t, nil)

	_, err := service.BuildTranscript(ctx, "S001", 10, models.Period("semester3"))
	assert.ErrorIs(t, err, apperrors.ErrInvalidValue)
}
