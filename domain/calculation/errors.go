package calculation

import "errors"

// Sentinel errors for calculation outcomes.
var (
	// ErrDivisionByZero is returned when dividing by an operand equal to zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrInvalidOperation is returned for operations outside the supported set.
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrInvalidInput is returned when an operand is not a finite decimal number.
	ErrInvalidInput = errors.New("invalid input")
)

// Error tags carried across the service bus in place of Go error values.
const (
	TagDivisionByZero   = "division_by_zero"
	TagInvalidOperation = "invalid_operation"
	TagInvalidInput     = "invalid_input"
)

// TagOf returns the tag for a calculation error, or "" if err is nil or
// not a calculation error.
func TagOf(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrDivisionByZero):
		return TagDivisionByZero
	case errors.Is(err, ErrInvalidOperation):
		return TagInvalidOperation
	case errors.Is(err, ErrInvalidInput):
		return TagInvalidInput
	default:
		return ""
	}
}

// ErrorForTag is the inverse of TagOf. Unknown tags yield nil.
func ErrorForTag(tag string) error {
	switch tag {
	case TagDivisionByZero:
		return ErrDivisionByZero
	case TagInvalidOperation:
		return ErrInvalidOperation
	case TagInvalidInput:
		return ErrInvalidInput
	default:
		return nil
	}
}
