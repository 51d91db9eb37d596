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

// AcademicYearController handles academic year endpoints.
type AcademicYearController struct {
	service *services.AcademicYearService
}

// NewAcademicYearController creates a new academic year controller.
func NewAcademicYearController(service *services.AcademicYearService) *AcademicYearController {
	return &AcademicYearController{service: service}
}

func parseIDParam(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewInvalidValueError("invalid " + name)
	}
	return id, nil
}

// Create handles POST /academic-years.
func (ctrl *AcademicYearController) Create(c *gin.Context) {
	var req dto.CreateAcademicYearRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewInvalidValueError("start year is required"))
		return
	}

	year, err := ctrl.service.Create(c.Request.Context(), req.StartYear)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewAPIResponse(year))
}

// List handles GET /academic-years.
func (ctrl *AcademicYearController) List(c *gin.Context) {
	years, err := ctrl.service.GetAll(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(years))
}

// Get handles GET /academic-years/:id.
func (ctrl *AcademicYearController) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	year, err := ctrl.service.GetByID(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(year))
}

// Delete handles DELETE /academic-years/:id.
func (ctrl *AcademicYearController) Delete(c *gin.Context) {
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
