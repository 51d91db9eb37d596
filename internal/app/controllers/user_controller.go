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

// UserController handles account management endpoints.
type UserController struct {
	userService *services.UserService
	authService *services.AuthService
}

// NewUserController creates a new user controller.
func NewUserController(userService *services.UserService, authService *services.AuthService) *UserController {
	return &UserController{userService: userService, authService: authService}
}

// Create handles POST /users.
func (ctrl *UserController) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewInvalidValueError("username, password and role are required"))
		return
	}

	user, err := ctrl.userService.Create(c.Request.Context(), req.Username, req.Password, models.Role(req.Role), req.StudentMatricule)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewAPIResponse(user))
}

// List handles GET /users.
func (ctrl *UserController) List(c *gin.Context) {
	users, err := ctrl.userService.GetAll(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(users))
}

// Get handles GET /users/:id.
func (ctrl *UserController) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	user, err := ctrl.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(user))
}

// Delete handles DELETE /users/:id.
func (ctrl *UserController) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ctrl.userService.Delete(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ResetPassword handles POST /users/:id/reset-password.
func (ctrl *UserController) ResetPassword(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewInvalidValueError("new password is required"))
		return
	}

	role, ok := middleware.CallerRole(c)
	if !ok {
		middleware.HandleAPIError(c, apperrors.ErrTokenInvalid)
		return
	}

	if err := ctrl.authService.ResetPassword(c.Request.Context(), role, id, req.NewPassword); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"message": "password reset"}))
}
