package errs

import (
	"errors"
	"fmt"
)

var ErrAllocationExhausted = errors.New("identifier allocation exhausted")

// AllocationExhaustedError is returned when every candidate identifier collided.
type AllocationExhaustedError struct {
	Scope    string
	Attempts int
	Cause    error
}

func NewAllocationExhaustedError(scope string, attempts int) *AllocationExhaustedError {
	return &AllocationExhaustedError{
		Scope:    scope,
		Attempts: attempts,
	}
}

func NewAllocationExhaustedErrorWithCause(scope string, attempts int, cause error) *AllocationExhaustedError {
	return &AllocationExhaustedError{
		Scope:    scope,
		Attempts: attempts,
		Cause:    cause,
	}
}

func (e *AllocationExhaustedError) Error() string {
	msg := fmt.Sprintf("%s: %s after %d attempts", ErrAllocationExhausted, e.Scope, e.Attempts)
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %v)", e.Cause)
	}
	return msg
}

func (e *AllocationExhaustedError) Unwrap() error {
	return ErrAllocationExhausted
}
