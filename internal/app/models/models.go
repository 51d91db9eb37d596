package models

// Role defines the account role stored in the 'users' table.
type Role string

const (
	RoleAdministrator Role = "administrator"
	RoleCoordinator   Role = "coordinator"
	RoleRegistrar     Role = "registrar"
)

// Valid reports whether the role is one of the three known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdministrator, RoleCoordinator, RoleRegistrar:
		return true
	}
	return false
}

// Period selects which part of an academic year a transcript covers.
type Period string

const (
	PeriodAll       Period = "all"
	PeriodSemester1 Period = "s1"
	PeriodSemester2 Period = "s2"
)

// Semester returns the semester number for a period, or 0 for PeriodAll.
func (p Period) Semester() int {
	switch p {
	case PeriodSemester1:
		return 1
	case PeriodSemester2:
		return 2
	}
	return 0
}

// Valid reports whether the period is a known value.
func (p Period) Valid() bool {
	return p == PeriodAll || p == PeriodSemester1 || p == PeriodSemester2
}
