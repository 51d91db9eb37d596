package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sysgesco/backend/internal/app/models"
	"github.com/sysgesco/backend/internal/app/models/dto"
	"github.com/sysgesco/backend/internal/app/services"
	"github.com/sysgesco/backend/internal/middleware"
	"github.com/sysgesco/backend/internal/pkg/apperrors"
)

// StudentController handles student endpoints, including enrollment and the
// transcript.
type StudentController struct {
	studentService  *services.StudentService
	bulletinService *services.BulletinService
}

// NewStudentController creates a new student controller.
func NewStudentController(studentService *services.StudentService, bulletinService *services.BulletinService) *StudentController {
	return &StudentController{studentService: studentService, bulletinService: bulletinService}
}

// Create handles POST /students.
func (ctrl *StudentController) Create(c *gin.Context) {
	var req dto.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewInvalidValueError("matricule, last name and first name are required"))
		return
	}

	student, err := ctrl.studentService.Create(c.Request.Context(), req.Matricule, req.LastName, req.FirstName)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewAPIResponse(student))
}

// List handles GET /students, optionally filtered by ?programId=.
func (ctrl *StudentController) List(c *gin.Context) {
	if c.Query("programId") != "" {
		programID, err := parseQueryID(c, "programId")
		if err != nil {
			middleware.HandleAPIError(c, err)
			return
		}
		students, err := ctrl.studentService.GetByProgram(c.Request.Context(), programID)
		if err != nil {
			middleware.HandleAPIError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.NewAPIResponse(students))
		return
	}

	students, err := ctrl.studentService.GetAll(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(students))
}

// Get handles GET /students/:matricule.
func (ctrl *StudentController) Get(c *gin.Context) {
	student, err := ctrl.studentService.GetByMatricule(c.Request.Context(), c.Param("matricule"))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(student))
}

// Update handles PUT /students/:matricule.
func (ctrl *StudentController) Update(c *gin.Context) {
	var req dto.UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewInvalidValueError("last name and first name are required"))
		return
	}

	student, err := ctrl.studentService.Update(c.Request.Context(), c.Param("matricule"), req.LastName, req.FirstName)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(student))
}

// Delete handles DELETE /students/:matricule. Grades and any linked account
// go with the student.
func (ctrl *StudentController) Delete(c *gin.Context) {
	if err := ctrl.studentService.Delete(c.Request.Context(), c.Param("matricule")); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Enroll handles POST /students/:matricule/enroll.
func (ctrl *StudentController) Enroll(c *gin.Context) {
	var req dto.EnrollStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewInvalidValueError("program, academic year and year of study are required"))
		return
	}

	matricule := c.Param("matricule")
	if err := ctrl.studentService.Enroll(c.Request.Context(), matricule, req.ProgramID, req.AcademicYearID, req.YearOfStudy); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	student, err := ctrl.studentService.GetByMatricule(c.Request.Context(), matricule)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(student))
}

// ListAcademicYears handles GET /students/:matricule/academic-years.
func (ctrl *StudentController) ListAcademicYears(c *gin.Context) {
	years, err := ctrl.studentService.ListAcademicYears(c.Request.Context(), c.Param("matricule"))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(years))
}

// Transcript handles GET /students/:matricule/transcript?academicYearId=&period=.
func (ctrl *StudentController) Transcript(c *gin.Context) {
	academicYearID, err := parseQueryID(c, "academicYearId")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	period := models.Period(c.DefaultQuery("period", string(models.PeriodAll)))

	transcript, err := ctrl.bulletinService.BuildTranscript(c.Request.Context(), c.Param("matricule"), academicYearID, period)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(transcript))
}
