package seqplot

import (
	"errors"
	"fmt"

	"github.com/admarks/seqplot/pkg/seqplot/invoke"
)

// ErrInvalidRequest indicates a request that cannot produce any output.
var ErrInvalidRequest = errors.New("invalid request")

// ExternalProcessFailure is returned when the generator or renderer exits non-zero.
type ExternalProcessFailure = invoke.ExternalProcessFailure

// RequestError describes why a request was rejected.
type RequestError struct {
	Field  string
	Reason string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("invalid request: %s: %s", e.Field, e.Reason)
}

func (e *RequestError) Unwrap() error {
	return ErrInvalidRequest
}

// NewRequestError creates a new RequestError.
func NewRequestError(field, reason string) *RequestError {
	return &RequestError{
		Field:  field,
		Reason: reason,
	}
}
