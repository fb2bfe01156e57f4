package middleware

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/unicourse/registra/internal/app/models/dto"
)

// FormatBindingError turns a gin binding error into a client-facing error
// detail, with per-field messages for validator failures.
func FormatBindingError(err error) *dto.ErrorDetail {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, formatValidationError(fe))
		}
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed")
		if len(verrs) > 0 {
			errorDetail = errorDetail.WithField(verrs[0].Field())
		}
		return errorDetail.WithDetails(details)
	}

	return dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").
		WithDetails(err.Error())
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "email":
		return e.Field() + " must be a valid email address"
	case "gte":
		return e.Field() + " must be at least " + e.Param()
	case "lte":
		return e.Field() + " must be at most " + e.Param()
	case "gt":
		return e.Field() + " must be greater than " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
