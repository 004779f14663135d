package config

import (
	"errors"
	"fmt"

	"github.com/indemniza/severance-calculator/pkg/dateutil"
)

var (
	// ErrInvalidDateFormat is returned when a date field is not a dd/mm/yyyy calendar date.
	ErrInvalidDateFormat = dateutil.ErrInvalidDateFormat
	// ErrInvalidNumericInput is returned when a salary field is empty, non-numeric or negative.
	ErrInvalidNumericInput = errors.New("invalid numeric input")
	// ErrInvalidDateRange is returned when the dates are out of order
	// (hire before birth or termination before hire).
	ErrInvalidDateRange = errors.New("invalid date range")
)

// FieldError ties a validation failure to the input field that caused it.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("%s %q: %v", e.Field, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// FieldOf returns the field name carried by err, or "" when err is not a FieldError.
func FieldOf(err error) string {
	var fe *FieldError
	if errors.As(err, &fe) {
		return fe.Field
	}
	return ""
}
