// Package normstr provides String, a text value checked once at construction
// against a maximum byte length and a set of restricted characters.
//
// A String that exists is valid; there is no way to mutate it afterwards.
//
//	id, err := normstr.DefaultVerify(raw, "User ID")
//	if errors.Is(err, normstr.ErrInvalidCharacter) {
//	    // reject input
//	}
package normstr

import "strings"

const (
	DefaultMaxLength  = 255
	DefaultRestricted = ";"
)

// Default is the constraint set used by DefaultVerify.
var Default = Constraints{MaxLength: DefaultMaxLength, Restricted: DefaultRestricted}

// String is a validated, immutable text value. The zero value is not valid.
type String struct {
	value string
}

// Verify checks value against the given constraints and wraps it.
//
// Checks run in a fixed order and only the first failure is reported:
//   - value must not be empty (ErrEmpty)
//   - len(value) in bytes must not exceed maxLen (ErrTooLong)
//   - value must not contain any rune of restricted (ErrInvalidCharacter)
//
// name labels the field in error messages. value is stored unchanged.
func Verify(value, name string, maxLen int, restricted string) (String, error) {
	if value == "" {
		return String{}, &ValidationError{Field: name, MaxLength: maxLen, Restricted: restricted, err: ErrEmpty}
	}
	if len(value) > maxLen {
		return String{}, &ValidationError{Field: name, MaxLength: maxLen, Restricted: restricted, err: ErrTooLong}
	}
	if restricted != "" && strings.ContainsAny(value, restricted) {
		return String{}, &ValidationError{Field: name, MaxLength: maxLen, Restricted: restricted, err: ErrInvalidCharacter}
	}
	return String{value: value}, nil
}

// DefaultVerify is Verify with a 255 byte limit and ';' restricted.
func DefaultVerify(value, name string) (String, error) {
	return Verify(value, name, DefaultMaxLength, DefaultRestricted)
}

// String returns the wrapped text.
func (s String) String() string { return s.value }

// Value returns the wrapped text as a plain string.
func (s String) Value() string { return s.value }

// IsZero reports whether s is the zero value rather than a verified String.
func (s String) IsZero() bool { return s.value == "" }

// Constraints is a reusable limit and restricted character set.
type Constraints struct {
	MaxLength  int
	Restricted string
}

// Verify checks value against c.
func (c Constraints) Verify(value, name string) (String, error) {
	return Verify(value, name, c.MaxLength, c.Restricted)
}

// Parser returns a function that verifies its input against c, for use
// where a func(string) (String, error) is expected, such as
// wire.DeserializeStringAs.
func Parser(name string, c Constraints) func(string) (String, error) {
	return func(value string) (String, error) {
		return c.Verify(value, name)
	}
}
