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

// ProgramController handles program endpoints.
type ProgramController struct {
	service *services.ProgramService
}

// NewProgramController creates a new program controller.
func NewProgramController(service *services.ProgramService) *ProgramController {
	return &ProgramController{service: service}
}

// Create handles POST /programs.
func (ctrl *ProgramController) Create(c *gin.Context) {
	var req dto.CreateProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewInvalidValueError("name, duration and department are required"))
		return
	}

	program, err := ctrl.service.Create(c.Request.Context(), req.Name, req.DurationYears, req.DepartmentID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewAPIResponse(program))
}

// List handles GET /programs, optionally filtered by ?departmentId=.
func (ctrl *ProgramController) List(c *gin.Context) {
	if raw := c.Query("departmentId"); raw != "" {
		departmentID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || departmentID <= 0 {
			middleware.HandleAPIError(c, apperrors.NewInvalidValueError("invalid departmentId"))
			return
		}
		programs, err := ctrl.service.GetByDepartment(c.Request.Context(), departmentID)
		if err != nil {
			middleware.HandleAPIError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.NewAPIResponse(programs))
		return
	}

	programs, err := ctrl.service.GetAll(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(programs))
}

// Get handles GET /programs/:id.
func (ctrl *ProgramController) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	program, err := ctrl.service.GetByID(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(program))
}

// Update handles PUT /programs/:id.
func (ctrl *ProgramController) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.UpdateProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewInvalidValueError("name, duration and department are required"))
		return
	}

	program, err := ctrl.service.Update(c.Request.Context(), id, req.Name, req.DurationYears, req.DepartmentID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(program))
}

// Delete handles DELETE /programs/:id. Courses and grades cascade; enrolled
// students keep their row with a nulled slot.
func (ctrl *ProgramController) Delete(c *gin.Context) {
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
