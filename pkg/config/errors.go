package config

import (
	"errors"
	"strings"
)

// ErrConfigValidation is wrapped by every error Load returns for bad input.
var ErrConfigValidation = errors.New("config validation failed")

// ValidationError lists every problem found while loading the configuration.
// Values of sensitive keys never appear in it.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return ErrConfigValidation.Error() + ": " + strings.Join(e.Problems, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrConfigValidation
}

// IsValidationError reports whether err was caused by invalid configuration.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrConfigValidation)
}

// problems accumulates validation failures.
type problems []string

func (p *problems) add(msg string) {
	*p = append(*p, msg)
}

func (p problems) err() error {
	if len(p) == 0 {
		return nil
	}
	return &ValidationError{Problems: p}
}
