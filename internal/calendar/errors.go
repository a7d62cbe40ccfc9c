package calendar

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDate marks every failure caused by the input dates
	ErrInvalidDate = errors.New("invalid input date")
	// ErrReversedRange is returned together with ErrInvalidDate when to < from
	ErrReversedRange = errors.New("end date is before start date")
	// ErrInvalidMonth should be unreachable for parsed dates
	ErrInvalidMonth = errors.New("invalid month")
	// ErrInvalidConfig is returned by NewConfig
	ErrInvalidConfig = errors.New("invalid calendar config")
)

// DateError describes a range endpoint that could not be parsed
type DateError struct {
	Field string // "from" or "to"
	Value string
	Err   error
}

func (e *DateError) Error() string {
	return fmt.Sprintf("cannot parse %s date %q: %v", e.Field, e.Value, e.Err)
}

func (e *DateError) Unwrap() []error {
	return []error{ErrInvalidDate, e.Err}
}
