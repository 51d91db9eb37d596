package services

import (
	"context"

	"github.com/sysgesco/backend/internal/app/models"
	"github.com/sysgesco/backend/internal/app/repositories"
	"github.com/sysgesco/backend/internal/pkg/apperrors"
)

// In-memory stores backing the service tests.

type fakeStudentStore struct {
	students map[string]*models.Student
	years    map[string][]*models.AcademicYear
}

func newFakeStudentStore() *fakeStudentStore {
	return &fakeStudentStore{
		students: make(map[string]*models.Student),
		years:    make(map[string][]*models.AcademicYear),
	}
}

func (f *fakeStudentStore) Create(_ context.Context, student *models.Student) error {
	if _, ok := f.students[student.Matricule]; ok {
		return apperrors.NewDuplicateKeyError("student already exists")
	}
	copy := *student
	f.students[student.Matricule] = &copy
	return nil
}

func (f *fakeStudentStore) GetByMatricule(_ context.Context, matricule string) (*models.Student, error) {
	student, ok := f.students[matricule]
	if !ok {
		return nil, apperrors.NewNotFoundError("student not found")
	}
	copy := *student
	return &copy, nil
}

func (f *fakeStudentStore) GetAll(_ context.Context) ([]*models.Student, error) {
	var all []*models.Student
	for _, s := range f.students {
		copy := *s
		all = append(all, &copy)
	}
	return all, nil
}

func (f *fakeStudentStore) GetByProgram(_ context.Context, programID int64) ([]*models.Student, error) {
	var out []*models.Student
	for _, s := range f.students {
		if s.ProgramID != nil && *s.ProgramID == programID {
			copy := *s
			out = append(out, &copy)
		}
	}
	return out, nil
}

func (f *fakeStudentStore) Update(_ context.Context, student *models.Student) error {
	existing, ok := f.students[student.Matricule]
	if !ok {
		return apperrors.NewNotFoundError("student not found")
	}
	existing.LastName = student.LastName
	existing.FirstName = student.FirstName
	return nil
}

func (f *fakeStudentStore) Delete(_ context.Context, matricule string) error {
	if _, ok := f.students[matricule]; !ok {
		return apperrors.NewNotFoundError("student not found")
	}
	delete(f.students, matricule)
	return nil
}

func (f *fakeStudentStore) Enroll(_ context.Context, matricule string, programID, academicYearID int64, yearOfStudy int) error {
	student, ok := f.students[matricule]
	if !ok {
		return apperrors.NewNotFoundError("student not found")
	}
	if student.AcademicYearID != nil && *student.AcademicYearID == academicYearID {
		return apperrors.ErrAlreadyEnrolled
	}
	student.ProgramID = &programID
	student.AcademicYearID = &academicYearID
	student.YearOfStudy = &yearOfStudy
	return nil
}

func (f *fakeStudentStore) ListAcademicYears(_ context.Context, matricule string) ([]*models.AcademicYear, error) {
	return f.years[matricule], nil
}

type fakeProgramStore struct {
	programs map[int64]*models.Program
}

func newFakeProgramStore() *fakeProgramStore {
	return &fakeProgramStore{programs: make(map[int64]*models.Program)}
}

func (f *fakeProgramStore) Create(_ context.Context, program *models.Program) error {
	// Program names are globally unique, not per department.
	for _, existing := range f.programs {
		if existing.Name == program.Name {
			return apperrors.NewDuplicateKeyError("program already exists")
		}
	}
	program.ID = int64(len(f.programs) + 1)
	f.programs[program.ID] = program
	return nil
}

func (f *fakeProgramStore) GetByID(_ context.Context, id int64) (*models.Program, error) {
	program, ok := f.programs[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("program not found")
	}
	return program, nil
}

func (f *fakeProgramStore) GetAll(_ context.Context) ([]*models.Program, error) {
	var all []*models.Program
	for _, p := range f.programs {
		all = append(all, p)
	}
	return all, nil
}

func (f *fakeProgramStore) GetByDepartment(_ context.Context, departmentID int64) ([]*models.Program, error) {
	var out []*models.Program
	for _, p := range f.programs {
		if p.DepartmentID == departmentID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProgramStore) Update(_ context.Context, program *models.Program) error {
	if _, ok := f.programs[program.ID]; !ok {
		return apperrors.NewNotFoundError("program not found")
	}
	f.programs[program.ID] = program
	return nil
}

func (f *fakeProgramStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.programs[id]; !ok {
		return apperrors.NewNotFoundError("program not found")
	}
	delete(f.programs, id)
	return nil
}

type fakeYearStore struct {
	years map[int64]*models.AcademicYear
}

func newFakeYearStore() *fakeYearStore {
	return &fakeYearStore{years: make(map[int64]*models.AcademicYear)}
}

func (f *fakeYearStore) Create(_ context.Context, year *models.AcademicYear) error {
	for _, existing := range f.years {
		if existing.Name == year.Name {
			return apperrors.NewDuplicateKeyError("academic year already exists")
		}
	}
	year.ID = int64(len(f.years) + 1)
	f.years[year.ID] = year
	return nil
}

func (f *fakeYearStore) GetByID(_ context.Context, id int64) (*models.AcademicYear, error) {
	year, ok := f.years[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("academic year not found")
	}
	return year, nil
}

func (f *fakeYearStore) GetAll(_ context.Context) ([]*models.AcademicYear, error) {
	var all []*models.AcademicYear
	for _, y := range f.years {
		all = append(all, y)
	}
	return all, nil
}

func (f *fakeYearStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.years[id]; !ok {
		return apperrors.NewNotFoundError("academic year not found")
	}
	delete(f.years, id)
	return nil
}

type fakeTranscriptStore struct {
	rows []*repositories.TranscriptSourceRow
}

func (f *fakeTranscriptStore) ListTranscriptRows(_ context.Context, _ string, _ int64, _ int, _ int64, semester int) ([]*repositories.TranscriptSourceRow, error) {
	if semester == 0 {
		return f.rows, nil
	}
	var filtered []*repositories.TranscriptSourceRow
	for _, row := range f.rows {
		if row.Semester == semester {
			filtered = append(filtered, row)
		}
	}
	return filtered, nil
}

type gradeKey struct {
	matricule      string
	courseID       int64
	academicYearID int64
}

type fakeGradeStore struct {
	grades map[gradeKey]*models.Grade
	roster []*repositories.RosterRow
}

func newFakeGradeStore() *fakeGradeStore {
	return &fakeGradeStore{grades: make(map[gradeKey]*models.Grade)}
}

func (f *fakeGradeStore) SetField(_ context.Context, matricule string, courseID, academicYearID int64, field models.GradeField, value *float64) error {
	key := gradeKey{matricule, courseID, academicYearID}
	grade, ok := f.grades[key]
	if !ok {
		grade = &models.Grade{
			ID:               int64(len(f.grades) + 1),
			StudentMatricule: matricule,
			CourseID:         courseID,
			AcademicYearID:   academicYearID,
		}
		f.grades[key] = grade
	}
	switch field {
	case models.FieldGrade1:
		grade.Grade1 = value
	case models.FieldGrade2:
		grade.Grade2 = value
	case models.FieldResit:
		grade.ResitGrade = value
	default:
		return apperrors.NewInvalidValueError("unknown grade field")
	}
	return nil
}

func (f *fakeGradeStore) Get(_ context.Context, matricule string, courseID, academicYearID int64) (*models.Grade, error) {
	grade, ok := f.grades[gradeKey{matricule, courseID, academicYearID}]
	if !ok {
		return nil, apperrors.NewNotFoundError("grade record not found")
	}
	return grade, nil
}

func (f *fakeGradeStore) ListCourseRoster(_ context.Context, _, _ int64) ([]*repositories.RosterRow, error) {
	return f.roster, nil
}

type fakeCourseStore struct {
	courses map[int64]*models.Course
}

func newFakeCourseStore() *fakeCourseStore {
	return &fakeCourseStore{courses: make(map[int64]*models.Course)}
}

func (f *fakeCourseStore) Create(_ context.Context, course *models.Course) error {
	course.ID = int64(len(f.courses) + 1)
	f.courses[course.ID] = course
	return nil
}

func (f *fakeCourseStore) GetByID(_ context.Context, id int64) (*models.Course, error) {
	course, ok := f.courses[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("course not found")
	}
	return course, nil
}

func (f *fakeCourseStore) GetByProgramYear(_ context.Context, programID int64, yearOfStudy, semester int) ([]*models.Course, error) {
	var out []*models.Course
	for _, c := range f.courses {
		if c.ProgramID == programID && c.YearOfStudy == yearOfStudy && (semester == 0 || c.Semester == semester) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCourseStore) GetAll(_ context.Context) ([]*models.Course, error) {
	var all []*models.Course
	for _, c := range f.courses {
		all = append(all, c)
	}
	return all, nil
}

func (f *fakeCourseStore) Update(_ context.Context, course *models.Course) error {
	if _, ok := f.courses[course.ID]; !ok {
		return apperrors.NewNotFoundError("course not found")
	}
	f.courses[course.ID] = course
	return nil
}

func (f *fakeCourseStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.courses[id]; !ok {
		return apperrors.NewNotFoundError("course not found")
	}
	delete(f.courses, id)
	return nil
}

type fakeUserStore struct {
	users  map[int64]*models.User
	nextID int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[int64]*models.User), nextID: 1}
}

func (f *fakeUserStore) Create(_ context.Context, user *models.User) error {
	for _, existing := range f.users {
		if existing.Username == user.Username {
			return apperrors.NewDuplicateKeyError("username is taken")
		}
		if existing.StudentMatricule != nil && user.StudentMatricule != nil &&
			*existing.StudentMatricule == *user.StudentMatricule {
			return apperrors.NewDuplicateKeyError("student already has a linked account")
		}
	}
	user.ID = f.nextID
	f.nextID++
	copy := *user
	f.users[user.ID] = &copy
	return nil
}

func (f *fakeUserStore) GetByUsername(_ context.Context, username string) (*models.User, error) {
	for _, user := range f.users {
		if user.Username == username {
			copy := *user
			return &copy, nil
		}
	}
	return nil, apperrors.NewNotFoundError("user not found")
}

func (f *fakeUserStore) GetByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("user not found")
	}
	copy := *user
	return &copy, nil
}

func (f *fakeUserStore) GetAll(_ context.Context) ([]*models.User, error) {
	var all []*models.User
	for _, u := range f.users {
		copy := *u
		all = append(all, &copy)
	}
	return all, nil
}

func (f *fakeUserStore) UpdatePassword(_ context.Context, id int64, passwordHash string) error {
	user, ok := f.users[id]
	if !ok {
		return apperrors.NewNotFoundError("user not found")
	}
	user.PasswordHash = passwordHash
	return nil
}

func (f *fakeUserStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.users[id]; !ok {
		return apperrors.NewNotFoundError("user not found")
	}
	delete(f.users, id)
	return nil
}

type fakeTokenIssuer struct{}

func (fakeTokenIssuer) GenerateToken(_ *models.User) (string, int, error) {
	return "test-token", 3600, nil
}
