package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sysgesco/backend/internal/app/models/dto"
	"github.com/sysgesco/backend/internal/pkg/apperrors"
	"github.com/sysgesco/backend/internal/pkg/dberrors"
	"github.com/sysgesco/backend/internal/pkg/logger"
)

// HandleAPIError maps the failure taxonomy onto HTTP responses. Every service
// error funnels through here so controllers never pick status codes.
func HandleAPIError(c *gin.Context, err error) {
	var status int
	var code dto.ErrorCode

	switch {
	case errors.Is(err, apperrors.ErrDuplicateKey), errors.Is(err, apperrors.ErrAlreadyEnrolled):
		status = http.StatusConflict
		code = dto.ErrorCodeConflict
	case errors.Is(err, apperrors.ErrUnknownReference):
		status = http.StatusUnprocessableEntity
		code = dto.ErrorCodeUnknownReference
	case errors.Is(err, apperrors.ErrInvalidValue):
		status = http.StatusBadRequest
		code = dto.ErrorCodeValidationError
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		status = http.StatusUnauthorized
		code = dto.ErrorCodeInvalidCredentials
	case errors.Is(err, apperrors.ErrTokenExpired),
		errors.Is(err, apperrors.ErrTokenInvalid),
		errors.Is(err, apperrors.ErrInvalidFormat):
		status = http.StatusUnauthorized
		code = dto.ErrorCodeUnauthorized
	case errors.Is(err, apperrors.ErrForbidden):
		status = http.StatusForbidden
		code = dto.ErrorCodeForbidden
	case errors.Is(err, apperrors.ErrNotFound), errors.Is(err, apperrors.ErrNoEnrollment):
		status = http.StatusNotFound
		code = dto.ErrorCodeNotFound
	case errors.Is(err, apperrors.ErrStorageUnavailable), dberrors.IsConnectionFailure(err):
		status = http.StatusServiceUnavailable
		code = dto.ErrorCodeStorageUnavailable
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Storage unavailable")
		c.JSON(status, dto.NewErrorResponse(code, "storage unavailable"))
		return
	default:
		status = http.StatusInternalServerError
		code = dto.ErrorCodeInternalError
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled error")
		c.JSON(status, dto.NewErrorResponse(code, "internal server error"))
		return
	}

	c.JSON(status, dto.NewErrorResponse(code, err.Error()))
}
