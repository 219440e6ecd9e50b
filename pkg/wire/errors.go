package wire

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	// ErrUnexpectedByteCount indicates the buffer held fewer bytes than required.
	ErrUnexpectedByteCount = errors.New("wire: unexpected byte count")

	// ErrInvalidString indicates a string payload was not valid UTF-8.
	ErrInvalidString = errors.New("wire: could not deserialize to string, invalid UTF-8")

	// ErrInvalidValue indicates a payload was rejected by the caller's parse function.
	ErrInvalidValue = errors.New("wire: invalid value")
)

// ByteCountError reports a read that needed more bytes than the buffer held.
type ByteCountError struct {
	Expected uint64 // Bytes required by the read
	Actual   uint64 // Bytes available when the read was attempted
}

func (e *ByteCountError) Error() string {
	return fmt.Sprintf("wire: expected %d bytes, found %d", e.Expected, e.Actual)
}

func (e *ByteCountError) Unwrap() error {
	return ErrUnexpectedByteCount
}

// ValueError wraps the error returned by a parse function passed to
// DeserializeStringAs or DeserializeSequenceAs.
type ValueError struct {
	Err error
}

func (e *ValueError) Error() string {
	return e.Err.Error()
}

func (e *ValueError) Unwrap() []error {
	return []error{ErrInvalidValue, e.Err}
}
