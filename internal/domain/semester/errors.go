package semester

import "errors"

// Errors returned by the semester package. Callers should test for them with
// errors.Is; most are wrapped with the offending input.
var (
	// ErrInvalidCode is returned when an integer code is negative or its last
	// digit is not a configured term digit.
	ErrInvalidCode = errors.New("invalid semester code")

	// ErrInvalidString is returned when text does not contain a "Term Year" pair.
	ErrInvalidString = errors.New("invalid semester string")

	// ErrInvalidConstructorInput is returned by New for argument kinds that are
	// neither integers nor strings.
	ErrInvalidConstructorInput = errors.New("invalid semester constructor input")

	// ErrUnmappedDigit is returned by reverse lookups of a digit with no term.
	ErrUnmappedDigit = errors.New("term digit is not mapped to a term")

	// ErrInvalidSemester is returned when an operation is applied to the zero Semester.
	ErrInvalidSemester = errors.New("semester is not initialized")

	// ErrOutOfRange is returned when arithmetic would move a semester before
	// the first term of the zero year.
	ErrOutOfRange = errors.New("semester out of range")

	// ErrInvalidTermTable is returned when a term table violates its invariants.
	ErrInvalidTermTable = errors.New("invalid term table")

	// ErrInvalidYearRange is returned when a random year range is empty or
	// starts before the zero year.
	ErrInvalidYearRange = errors.New("invalid year range")

	// ErrNoTermsAvailable is returned when every term has been excluded.
	ErrNoTermsAvailable = errors.New("no terms available")
)
