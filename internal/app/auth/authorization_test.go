package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sysgesco/backend/internal/app/models"
)

func TestAdministratorHoldsEveryCapability(t *testing.T) {
	domains := []Domain{
		DomainAcademicYears, DomainDepartments, DomainPrograms,
		DomainStudents, DomainCourses, DomainGrades, DomainUsers,
	}
	for _, d := range domains {
		assert.True(t, Can(models.RoleAdministrator, d, ActionRead), "read %s", d)
		assert.True(t, Can(models.RoleAdministrator, d, ActionWrite), "write %s", d)
	}
}

func TestCoordinatorCannotManageUsers(t *testing.T) {
	assert.False(t, Can(models.RoleCoordinator, DomainUsers, ActionRead))
	assert.False(t, Can(models.RoleCoordinator, DomainUsers, ActionWrite))

	assert.True(t, Can(models.RoleCoordinator, DomainDepartments, ActionWrite))
	assert.True(t, Can(models.RoleCoordinator, DomainAcademicYears, ActionWrite))
	assert.True(t, Can(models.RoleCoordinator, DomainGrades, ActionWrite))
}

func TestRegistrarScope(t *testing.T) {
	assert.True(t, Can(models.RoleRegistrar, DomainStudents, ActionWrite))
	assert.True(t, Can(models.RoleRegistrar, DomainCourses, ActionWrite))
	assert.True(t, Can(models.RoleRegistrar, DomainGrades, ActionWrite))

	assert.False(t, Can(models.RoleRegistrar, DomainAcademicYears, ActionRead))
	assert.False(t, Can(models.RoleRegistrar, DomainDepartments, ActionRead))
	assert.False(t, Can(models.RoleRegistrar, DomainPrograms, ActionRead))
	assert.False(t, Can(models.RoleRegistrar, DomainUsers, ActionRead))
}

func TestUnknownRoleHasNoCapabilities(t *testing.T) {
	assert.False(t, Can(models.Role("guest"), DomainStudents, ActionRead))
}
