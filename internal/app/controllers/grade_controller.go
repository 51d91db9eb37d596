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

// GradeController handles grade entry and the course roster view.
type GradeController struct {
	service *services.GradeService
}

// NewGradeController creates a new grade controller.
func NewGradeController(service *services.GradeService) *GradeController {
	return &GradeController{service: service}
}

// Set handles PUT /grades: one score field of one grade record per call.
func (ctrl *GradeController) Set(c *gin.Context) {
	var req dto.SetGradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewInvalidValueError("student, course, academic year and field are required"))
		return
	}

	grade, err := ctrl.service.SetGrade(c.Request.Context(),
		req.StudentMatricule, req.CourseID, req.AcademicYearID,
		models.GradeField(req.Field), req.Value)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(grade))
}

// ListByCourse handles GET /grades?courseId=&academicYearId=: the course
// roster with resolved final grades and statuses.
func (ctrl *GradeController) ListByCourse(c *gin.Context) {
	courseID, err := parseQueryID(c, "courseId")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	academicYearID, err := parseQueryID(c, "academicYearId")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	rows, err := ctrl.service.GetCourseGrades(c.Request.Context(), courseID, academicYearID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(rows))
}
