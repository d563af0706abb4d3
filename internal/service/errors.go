package service

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValidation is returned when a required form field is empty.
	ErrValidation = errors.New("required field missing")

	// ErrDispatch is returned when the bridge refuses a payload.
	ErrDispatch = errors.New("dispatch to host failed")

	// ErrRegistryUnavailable is returned when the vehicle registry cannot be read.
	ErrRegistryUnavailable = errors.New("vehicle registry unavailable")
)

// ValidationError lists the empty required fields by id.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(e.Missing, ", "))
}

// Is reports whether target is ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
