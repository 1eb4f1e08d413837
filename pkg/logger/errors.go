package logger

import (
	"errors"
	"fmt"
)

// ErrSinkConstruction is wrapped by every sink construction failure.
var ErrSinkConstruction = errors.New("logger: sink construction failed")

// SinkConstructionError reports which sink could not be built and why.
// Logging is a prerequisite for everything else, so callers treat it as fatal.
type SinkConstructionError struct {
	Transport Transport
	Err       error
}

func (e *SinkConstructionError) Error() string {
	return fmt.Sprintf("logger: cannot construct %s sink: %v", e.Transport, e.Err)
}

func (e *SinkConstructionError) Unwrap() []error {
	return []error{ErrSinkConstruction, e.Err}
}

func newSinkError(t Transport, err error) error {
	return &SinkConstructionError{Transport: t, Err: err}
}

// IsSinkConstructionError checks if the error comes from building a sink.
func IsSinkConstructionError(err error) bool {
	return errors.Is(err, ErrSinkConstruction)
}
