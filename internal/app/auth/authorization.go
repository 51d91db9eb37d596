package auth

import "github.com/sysgesco/backend/internal/app/models"

// Domain names a group of resources gated together.
type Domain string

const (
	DomainAcademicYears Domain = "academic_years"
	DomainDepartments   Domain = "departments"
	DomainPrograms      Domain = "programs"
	DomainStudents      Domain = "students"
	DomainCourses       Domain = "courses"
	DomainGrades        Domain = "grades"
	DomainUsers         Domain = "users"
)

// Action is the kind of access requested on a domain.
type Action string

const (
	ActionRead  Action = "read"
	ActionWrite Action = "write"
)

// capabilities is the static access table. Administrators hold every
// capability. Coordinators hold everything except user management.
// Registrars manage students, courses and grades only.
var capabilities = map[models.Role]map[Domain]map[Action]bool{
	models.RoleAdministrator: {
		DomainAcademicYears: {ActionRead: true, ActionWrite: true},
		DomainDepartments:   {ActionRead: true, ActionWrite: true},
		DomainPrograms:      {ActionRead: true, ActionWrite: true},
		DomainStudents:      {ActionRead: true, ActionWrite: true},
		DomainCourses:       {ActionRead: true, ActionWrite: true},
		DomainGrades:        {ActionRead: true, ActionWrite: true},
		DomainUsers:         {ActionRead: true, ActionWrite: true},
	},
	models.RoleCoordinator: {
		DomainAcademicYears: {ActionRead: true, ActionWrite: true},
		DomainDepartments:   {ActionRead: true, ActionWrite: true},
		DomainPrograms:      {ActionRead: true, ActionWrite: true},
		DomainStudents:      {ActionRead: true, ActionWrite: true},
		DomainCourses:       {ActionRead: true, ActionWrite: true},
		DomainGrades:        {ActionRead: true, ActionWrite: true},
	},
	models.RoleRegistrar: {
		DomainStudents: {ActionRead: true, ActionWrite: true},
		DomainCourses:  {ActionRead: true, ActionWrite: true},
		DomainGrades:   {ActionRead: true, ActionWrite: true},
	},
}

// Can reports whether a role holds the given capability.
func Can(role models.Role, domain Domain, action Action) bool {
	domains, ok := capabilities[role]
	if !ok {
		return false
	}
	actions, ok := domains[domain]
	if !ok {
		return false
	}
	return actions[action]
}
