package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/semester/internal/domain/semester"
)

// ErrInvalidRequest is returned when query parameters or a request body
// cannot be read.
var ErrInvalidRequest = errors.New("invalid request")

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	var validationErrors validator.ValidationErrors

	switch {
	// Arithmetic that leaves the representable range
	case errors.Is(err, semester.ErrOutOfRange):
		return http.StatusUnprocessableEntity

	// Bad request errors
	case errors.Is(err, semester.ErrInvalidCode),
		errors.Is(err, semester.ErrInvalidString),
		errors.Is(err, semester.ErrInvalidConstructorInput),
		errors.Is(err, semester.ErrUnmappedDigit),
		errors.Is(err, semester.ErrInvalidSemester),
		errors.Is(err, semester.ErrInvalidYearRange),
		errors.Is(err, semester.ErrNoTermsAvailable),
		errors.Is(err, ErrInvalidRequest),
		errors.As(err, &validationErrors):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var validationErrors validator.ValidationErrors

	switch {
	case errors.Is(err, semester.ErrOutOfRange):
		return "Semester out of range"
	case errors.Is(err, semester.ErrInvalidCode):
		return "Invalid semester code"
	case errors.Is(err, semester.ErrInvalidString):
		return "Invalid semester string"
	case errors.Is(err, semester.ErrInvalidConstructorInput),
		errors.Is(err, semester.ErrUnmappedDigit),
		errors.Is(err, semester.ErrInvalidSemester):
		return "Invalid semester"
	case errors.Is(err, semester.ErrInvalidYearRange):
		return "Invalid year range"
	case errors.Is(err, semester.ErrNoTermsAvailable):
		return "All terms excluded"
	case errors.As(err, &validationErrors):
		return SanitizeValidationError(err)
	case errors.Is(err, ErrInvalidRequest):
		return "Invalid request"
	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		fe := validationErrors[0]
		return fmt.Sprintf("Invalid %s: %s", strings.ToLower(fe.Field()), getValidationTagMessage(fe.Tag()))
	}

	// Fall back to a generic validation error message
	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min", "gte":
		return "too small"
	case "max", "lte":
		return "too large"
	default:
		return "validation failed"
	}
}
