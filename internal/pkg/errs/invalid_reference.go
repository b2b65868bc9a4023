package errs

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidReference = errors.New("invalid reference")

// InvalidReferenceError reports identifiers that point at objects which do not exist.
type InvalidReferenceError struct {
	ParamName string
	IDs       []string
	Cause     error
}

func NewInvalidReferenceError(paramName string, ids ...string) *InvalidReferenceError {
	return &InvalidReferenceError{
		ParamName: paramName,
		IDs:       ids,
	}
}

func NewInvalidReferenceErrorWithCause(paramName string, cause error, ids ...string) *InvalidReferenceError {
	return &InvalidReferenceError{
		ParamName: paramName,
		IDs:       ids,
		Cause:     cause,
	}
}

func (e *InvalidReferenceError) Error() string {
	msg := fmt.Sprintf("%s: %s", ErrInvalidReference, e.ParamName)
	if len(e.IDs) > 0 {
		msg += " [" + strings.Join(e.IDs, ", ") + "]"
	}
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %v)", e.Cause)
	}
	return msg
}

func (e *InvalidReferenceError) Unwrap() error {
	return ErrInvalidReference
}
