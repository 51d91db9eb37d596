package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appauth "github.com/sysgesco/backend/internal/app/auth"
	"github.com/sysgesco/backend/internal/app/controllers"
	"github.com/sysgesco/backend/internal/middleware"
)

// Controllers bundles every controller the router mounts.
type Controllers struct {
	Auth          *controllers.AuthController
	AcademicYears *controllers.AcademicYearController
	Departments   *controllers.DepartmentController
	Programs      *controllers.ProgramController
	Students      *controllers.StudentController
	Courses       *controllers.CourseController
	Grades        *controllers.GradeController
	Users         *controllers.UserController
}

// Setup mounts the health probe and every route under /api/v1. All routes
// except login and health require a valid token; mutations additionally
// require the matching capability.
func Setup(router *gin.Engine, ctrl Controllers, authMW *middleware.AuthMiddleware) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	v1.POST("/auth/login", ctrl.Auth.Login)

	authed := v1.Group("")
	authed.Use(authMW.JWTAuth())

	authed.POST("/auth/change-password", ctrl.Auth.ChangePassword)

	years := authed.Group("/academic-years")
	{
		years.GET("", authMW.RequireCapability(appauth.DomainAcademicYears, appauth.ActionRead), ctrl.AcademicYears.List)
		years.GET("/:id", authMW.RequireCapability(appauth.DomainAcademicYears, appauth.ActionRead), ctrl.AcademicYears.Get)
		years.POST("", authMW.RequireCapability(appauth.DomainAcademicYears, appauth.ActionWrite), ctrl.AcademicYears.Create)
		years.DELETE("/:id", authMW.RequireCapability(appauth.DomainAcademicYears, appauth.ActionWrite), ctrl.AcademicYears.Delete)
	}

	departments := authed.Group("/departments")
	{
		departments.GET("", authMW.RequireCapability(appauth.DomainDepartments, appauth.ActionRead), ctrl.Departments.List)
		departments.GET("/:id", authMW.RequireCapability(appauth.DomainDepartments, appauth.ActionRead), ctrl.Departments.Get)
		departments.POST("", authMW.RequireCapability(appauth.DomainDepartments, appauth.ActionWrite), ctrl.Departments.Create)
		departments.PUT("/:id", authMW.RequireCapability(appauth.DomainDepartments, appauth.ActionWrite), ctrl.Departments.Update)
		departments.DELETE("/:id", authMW.RequireCapability(appauth.DomainDepartments, appauth.ActionWrite), ctrl.Departments.Delete)
	}

	programs := authed.Group("/programs")
	{
		programs.GET("", authMW.RequireCapability(appauth.DomainPrograms, appauth.ActionRead), ctrl.Programs.List)
		programs.GET("/:id", authMW.RequireCapability(appauth.DomainPrograms, appauth.ActionRead), ctrl.Programs.Get)
		programs.POST("", authMW.RequireCapability(appauth.DomainPrograms, appauth.ActionWrite), ctrl.Programs.Create)
		programs.PUT("/:id", authMW.RequireCapability(appauth.DomainPrograms, appauth.ActionWrite), ctrl.Programs.Update)
		programs.DELETE("/:id", authMW.RequireCapability(appauth.DomainPrograms, appauth.ActionWrite), ctrl.Programs.Delete)
	}

	students := authed.Group("/students")
	{
		students.GET("", authMW.RequireCapability(appauth.DomainStudents, appauth.ActionRead), ctrl.Students.List)
		students.GET("/:matricule", authMW.RequireCapability(appauth.DomainStudents, appauth.ActionRead), ctrl.Students.Get)
		students.GET("/:matricule/academic-years", authMW.RequireCapability(appauth.DomainStudents, appauth.ActionRead), ctrl.Students.ListAcademicYears)
		students.GET("/:matricule/transcript", authMW.RequireCapability(appauth.DomainGrades, appauth.ActionRead), ctrl.Students.Transcript)
		students.POST("", authMW.RequireCapability(appauth.DomainStudents, appauth.ActionWrite), ctrl.Students.Create)
		students.POST("/:matricule/enroll", authMW.RequireCapability(appauth.DomainStudents, appauth.ActionWrite), ctrl.Students.Enroll)
		students.PUT("/:matricule", authMW.RequireCapability(appauth.DomainStudents, appauth.ActionWrite), ctrl.Students.Update)
		students.DELETE("/:matricule", authMW.RequireCapability(appauth.DomainStudents, appauth.ActionWrite), ctrl.Students.Delete)
	}

	courses := authed.Group("/courses")
	{
		courses.GET("", authMW.RequireCapability(appauth.DomainCourses, appauth.ActionRead), ctrl.Courses.List)
		courses.GET("/:id", authMW.RequireCapability(appauth.DomainCourses, appauth.ActionRead), ctrl.Courses.Get)
		courses.POST("", authMW.RequireCapability(appauth.DomainCourses, appauth.ActionWrite), ctrl.Courses.Create)
		courses.PUT("/:id", authMW.RequireCapability(appauth.DomainCourses, appauth.ActionWrite), ctrl.Courses.Update)
		courses.DELETE("/:id", authMW.RequireCapability(appauth.DomainCourses, appauth.ActionWrite), ctrl.Courses.Delete)
	}

	grades := authed.Group("/grades")
	{
		grades.GET("", authMW.RequireCapability(appauth.DomainGrades, appauth.ActionRead), ctrl.Grades.ListByCourse)
		grades.PUT("", authMW.RequireCapability(appauth.DomainGrades, appauth.ActionWrite), ctrl.Grades.Set)
	}

	users := authed.Group("/users")
	{
		users.GET("", authMW.RequireCapability(appauth.DomainUsers, appauth.ActionRead), ctrl.Users.List)
		users.GET("/:id", authMW.RequireCapability(appauth.DomainUsers, appauth.ActionRead), ctrl.Users.Get)
		users.POST("", authMW.RequireCapability(appauth.DomainUsers, appauth.ActionWrite), ctrl.Users.Create)
		users.POST("/:id/reset-password", authMW.RequireCapability(appauth.DomainUsers, appauth.ActionWrite), ctrl.Users.ResetPassword)
		users.DELETE("/:id", authMW.RequireCapability(appauth.DomainUsers, appauth.ActionWrite), ctrl.Users.Delete)
	}
}
