package dto

// ErrorCode is a machine-readable error identifier returned to clients.
type ErrorCode string

const (
	ErrorCodeValidationError    ErrorCode = "VALIDATION_ERROR"
	ErrorCodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	ErrorCodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	ErrorCodeForbidden          ErrorCode = "FORBIDDEN"
	ErrorCodeNotFound           ErrorCode = "NOT_FOUND"
	ErrorCodeConflict           ErrorCode = "CONFLICT"
	ErrorCodeUnknownReference   ErrorCode = "UNKNOWN_REFERENCE"
	ErrorCodeStorageUnavailable ErrorCode = "STORAGE_UNAVAILABLE"
	ErrorCodeInternalError      ErrorCode = "INTERNAL_ERROR"
)

// ErrorDetail carries one error in a response body.
type ErrorDetail struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// ErrorResponse is the envelope for failed requests.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// NewErrorResponse creates an error response.
func NewErrorResponse(code ErrorCode, message string) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: code, Message: message}}
}
