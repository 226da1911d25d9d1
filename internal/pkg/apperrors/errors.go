package apperrors

import "errors"

// Common errors
var (
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")

	ErrPermissionDenied = errors.New("permission denied")

	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Student errors
var (
	ErrStudentNotFound   = errors.New("student not found")
	ErrInvalidRollNumber = errors.New("invalid roll number format")
)

// Team errors
var (
	ErrTeamNotFound  = errors.New("team not found")
	ErrAlreadyMember = errors.New("student is already a member of this team")
)

// Join request errors
var (
	ErrRequestNotFound        = errors.New("join request not found")
	ErrRequestAlreadyResolved = errors.New("join request has already been resolved")
	ErrInvalidRequestAction   = errors.New("invalid request action")
)

// Catalog errors
var (
	ErrInterestNotFound    = errors.New("interest not found")
	ErrEventNotFound       = errors.New("event not found")
	ErrPhotoNotFound       = errors.New("photo not found")
	ErrMessageNotFound     = errors.New("message not found")
	ErrCompetitionNotFound = errors.New("competition not found")
)

// Leave application errors
var (
	ErrLeaveNotFound        = errors.New("leave application not found")
	ErrLeaveAlreadyResolved = errors.New("leave application has already been resolved")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}
