package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sysgesco/backend/internal/app/models/dto"
	"github.com/sysgesco/backend/internal/app/services"
	"github.com/sysgesco/backend/internal/middleware"
	"github.com/sysgesco/backend/internal/pkg/apperrors"
)

// CourseController handles course endpoints.
type CourseController struct {
	service *services.CourseService
}

// NewCourseController creates a new course controller.
func NewCourseController(service *services.CourseService) *CourseController {
	return &CourseController{service: service}
}

func parseQueryID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Query(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewInvalidValueError("invalid " + name)
	}
	return id, nil
}

// Create handles POST /courses.
func (ctrl *CourseController) Create(c *gin.Context) {
	var req dto.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewInvalidValueError("name, credits, semester, program and year of study are required"))
		return
	}

	course, err := ctrl.service.Create(c.Request.Context(), req.Name, req.Credits, req.Semester, req.ProgramID, req.YearOfStudy, req.HasTwoGrades)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewAPIResponse(course))
}

// List handles GET /courses, optionally filtered by
// ?programId=&yearOfStudy=&semester=.
func (ctrl *CourseController) List(c *gin.Context) {
	if c.Query("programId") != "" {
		programID, err := parseQueryID(c, "programId")
		if err != nil {
			middleware.HandleAPIError(c, err)
			return
		}
		yearOfStudy, err := strconv.Atoi(c.Query("yearOfStudy"))
		if err != nil || yearOfStudy < 1 {
			middleware.HandleAPIError(c, apperrors.NewInvalidValueError("invalid yearOfStudy"))
			return
		}
		semester := 0
		if raw := c.Query("semester"); raw != "" {
			semester, err = strconv.Atoi(raw)
			if err != nil {
				middleware.HandleAPIError(c, apperrors.NewInvalidValueError("invalid semester"))
				return
			}
		}

		courses, err := ctrl.service.GetByProgramYear(c.Request.Context(), programID, yearOfStudy, semester)
		if err != nil {
			middleware.HandleAPIError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.NewAPIResponse(courses))
		return
	}

	courses, err := ctrl.service.GetAll(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(courses))
}

// Get handles GET /courses/:id.
func (ctrl *CourseController) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	course, err := ctrl.service.GetByID(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(course))
}

// Update handles PUT /courses/:id.
func (ctrl *CourseController) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewInvalidValueError("name, credits, semester and year of study are required"))
		return
	}

	course, err := ctrl.service.Update(c.Request.Context(), id, req.Name, req.Credits, req.Semester, req.YearOfStudy, req.HasTwoGrades)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(course))
}

// Delete handles DELETE /courses/:id. Grade rows cascade.
func (ctrl *CourseController) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ctrl.service.Delete(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
