package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sysgesco/backend/internal/app/models/dto"
	"github.com/sysgesco/backend/internal/app/services"
	"github.com/sysgesco/backend/internal/middleware"
	"github.com/sysgesco/backend/internal/pkg/apperrors"
)

// AuthController handles authentication endpoints.
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new auth controller.
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Login handles POST /auth/login.
func (ctrl *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewInvalidValueError("username and password are required"))
		return
	}

	user, token, expiresIn, err := ctrl.authService.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(dto.LoginResponse{
		Token:     token,
		ExpiresIn: expiresIn,
		UserID:    user.ID,
		Username:  user.Username,
		Role:      string(user.Role),
	}))
}

// ChangePassword handles POST /auth/change-password for the signed-in user.
func (ctrl *AuthController) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewInvalidValueError("current and new passwords are required"))
		return
	}

	userID, ok := middleware.CallerID(c)
	if !ok {
		middleware.HandleAPIError(c, apperrors.ErrTokenInvalid)
		return
	}

	if err := ctrl.authService.ChangePassword(c.Request.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"message": "password changed"}))
}
