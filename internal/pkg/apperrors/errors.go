package apperrors

import "errors"

// Failure taxonomy shared by every service. All of these are recoverable and
// surface as typed API responses; only ErrStorageUnavailable has no local
// remedy and is reported verbatim to the caller.
var (
	ErrDuplicateKey       = errors.New("duplicate key")
	ErrUnknownReference   = errors.New("unknown reference")
	ErrInvalidValue       = errors.New("invalid value")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("not found")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// Token errors used by the HTTP session layer.
var (
	ErrTokenExpired  = errors.New("token expired")
	ErrTokenInvalid  = errors.New("invalid token")
	ErrInvalidFormat = errors.New("invalid token format")
)

// Records errors built on the taxonomy above.
var (
	ErrAlreadyEnrolled = errors.New("student already enrolled for this academic year")
	ErrNoEnrollment    = errors.New("no enrollment found for this academic year")
)

// CustomError carries a message alongside one of the sentinel errors so
// errors.Is keeps matching the taxonomy.
type CustomError struct {
	Err     error
	Message string
}

func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewDuplicateKeyError creates a DuplicateKey failure with a message.
func NewDuplicateKeyError(message string) error {
	return &CustomError{Err: ErrDuplicateKey, Message: message}
}

// NewUnknownReferenceError creates an UnknownReference failure with a message.
func NewUnknownReferenceError(message string) error {
	return &CustomError{Err: ErrUnknownReference, Message: message}
}

// NewInvalidValueError creates an InvalidValue failure with a message.
func NewInvalidValueError(message string) error {
	return &CustomError{Err: ErrInvalidValue, Message: message}
}

// NewForbiddenError creates a Forbidden failure with a message.
func NewForbiddenError(message string) error {
	return &CustomError{Err: ErrForbidden, Message: message}
}

// NewNotFoundError creates a NotFound failure with a message.
func NewNotFoundError(message string) error {
	return &CustomError{Err: ErrNotFound, Message: message}
}

// NewStorageUnavailableError creates a StorageUnavailable failure with a
// message.
func NewStorageUnavailableError(message string) error {
	return &CustomError{Err: ErrStorageUnavailable, Message: message}
}
