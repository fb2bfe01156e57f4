package apperrors

import "errors"

// Common errors
var (
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Student errors
var (
	ErrStudentNotFound     = errors.New("student not found")
	ErrCedulaAlreadyExists = errors.New("student with this cedula already exists")
	ErrInvalidCedula       = errors.New("cedula must be 8 to 10 numeric digits")
	ErrInvalidEmail        = errors.New("invalid email format")
	ErrInvalidSemester     = errors.New("semester must be between 1 and 12")
)

// Course errors
var (
	ErrCourseNotFound          = errors.New("course not found")
	ErrCourseCodeAlreadyExists = errors.New("course with this code already exists")
	ErrInvalidCourseCode       = errors.New("course code must match format AAA111")
	ErrInvalidCredits          = errors.New("credits must be between 1 and 6")
	ErrInvalidSchedule         = errors.New("schedule must be at least 5 characters")
)

// Enrollment errors
var (
	ErrEnrollmentNotFound = errors.New("enrollment not found")
	ErrAlreadyEnrolled    = errors.New("student is already enrolled in this course")
	ErrScheduleConflict   = errors.New("student already has a course in this time slot")
)

// CustomError wraps a sentinel error with a human-readable message.
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

// Unwrap implements the errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with an underlying sentinel
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// NewValidationError creates a validation failure with a descriptive message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewConflictError creates a conflict error with a descriptive message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewResourceNotFoundError creates a not-found error with a descriptive message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}
