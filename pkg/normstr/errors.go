package normstr

import (
	"errors"
	"fmt"
)

// Sentinel errors. A *ValidationError unwraps to exactly one of these.
var (
	ErrEmpty            = errors.New("normstr: value is empty")
	ErrTooLong          = errors.New("normstr: value is too long")
	ErrInvalidCharacter = errors.New("normstr: value contains a restricted character")
)

// ValidationError describes the first constraint a value failed.
type ValidationError struct {
	Field      string // Label of the field being validated
	MaxLength  int    // Byte limit in force
	Restricted string // Restricted characters in force
	err        error
}

func (e *ValidationError) Error() string {
	switch e.err {
	case ErrEmpty:
		return fmt.Sprintf("%s cannot be empty", e.Field)
	case ErrTooLong:
		return fmt.Sprintf("%s cannot be longer than %d characters", e.Field, e.MaxLength)
	case ErrInvalidCharacter:
		return fmt.Sprintf("%s cannot contain '%s'", e.Field, e.Restricted)
	default:
		return fmt.Sprintf("%s is invalid", e.Field)
	}
}

func (e *ValidationError) Unwrap() error {
	return e.err
}
