package repositories

import "github.com/sysgesco/backend/internal/db"

// Repositories bundles every repository over one database handle.
type Repositories struct {
	AcademicYears *AcademicYearRepository
	Departments   *DepartmentRepository
	Programs      *ProgramRepository
	Students      *StudentRepository
	Courses       *CourseRepository
	Grades        *GradeRepository
	Users         *UserRepository
}

// NewRepositories creates the full repository set.
func NewRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		AcademicYears: NewAcademicYearRepository(database.Pool),
		Departments:   NewDepartmentRepository(database.Pool),
		Programs:      NewProgramRepository(database.Pool),
		Students:      NewStudentRepository(database),
		Courses:       NewCourseRepository(database.Pool),
		Grades:        NewGradeRepository(database.Pool),
		Users:         NewUserRepository(database.Pool),
	}
}
