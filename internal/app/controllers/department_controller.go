package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sysgesco/backend/internal/app/models/dto"
	"github.com/sysgesco/backend/internal/app/services"
	"github.com/sysgesco/backend/internal/middleware"
	"github.com/sysgesco/backend/internal/pkg/apperrors"
)

// DepartmentController handles department endpoints.
type DepartmentController struct {
	service *services.DepartmentService
}

// NewDepartmentController creates a new department controller.
func NewDepartmentController(service *services.DepartmentService) *DepartmentController {
	return &DepartmentController{service: service}
}

// Create handles POST /departments.
func (ctrl *DepartmentController) Create(c *gin.Context) {
	var req dto.CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewInvalidValueError("department name is required"))
		return
	}

	department, err := ctrl.service.Create(c.Request.Context(), req.Name, req.ValidationGrade)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewAPIResponse(department))
}

// List handles GET /departments.
func (ctrl *DepartmentController) List(c *gin.Context) {
	departments, err := ctrl.service.GetAll(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(departments))
}

// Get handles GET /departments/:id.
func (ctrl *DepartmentController) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	department, err := ctrl.service.GetByID(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(department))
}

// Update handles PUT /departments/:id.
func (ctrl *DepartmentController) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.UpdateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewInvalidValueError("department name is required"))
		return
	}

	department, err := ctrl.service.Update(c.Request.Context(), id, req.Name, req.ValidationGrade)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(department))
}

// Delete handles DELETE /departments/:id. Programs, courses and grades under
// the department go with it.
func (ctrl *DepartmentController) Delete(c *gin.Context) {
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
