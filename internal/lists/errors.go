package lists

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateName   = errors.New("duplicate name")
	ErrInvalidLength   = errors.New("invalid length")
	ErrIndexOutOfRange = errors.New("index out of range")
)

// ValidationError is a rejected name. Message is safe to show to the user;
// Kind is one of the sentinel errors above.
type ValidationError struct {
	Kind    error
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}

func outOfRange(what string, index, length int) error {
	return fmt.Errorf("%s %d (have %d): %w", what, index, length, ErrIndexOutOfRange)
}
