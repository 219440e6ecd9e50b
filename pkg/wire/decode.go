package wire

import (
	"encoding/binary"
	"fmt"
	"unicode/utf8"
)

// DeserializeString removes the next string from the head of buf.
//
// See the package documentation for the state buf is left in on error.
func DeserializeString(buf *[]byte) (string, error) {
	return DeserializeStringAs(buf, asString)
}

// DeserializeStringAs removes the next string from the head of buf and
// converts it with parse.
//
// Returns a *ByteCountError when buf is shorter than the prefix or than the
// length it declares, ErrInvalidString when the payload is not UTF-8, and a
// *ValueError when parse fails.
func DeserializeStringAs[T any](buf *[]byte, parse func(string) (T, error)) (T, error) {
	var zero T

	payload, err := removePayload(buf)
	if err != nil {
		return zero, err
	}

	if !utf8.Valid(payload) {
		return zero, ErrInvalidString
	}

	v, err := parse(string(payload))
	if err != nil {
		return zero, &ValueError{Err: err}
	}
	return v, nil
}

// DeserializeSequence removes the next sequence of strings from the head of
// buf.
//
// If an element fails to decode, buf is left in an indeterminate state and
// must be discarded.
func DeserializeSequence(buf *[]byte) ([]string, error) {
	return DeserializeSequenceAs(buf, asString)
}

// DeserializeSequenceAs removes the next sequence of strings from the head
// of buf and converts each element with parse.
//
// If an element fails to decode, buf is left in an indeterminate state and
// must be discarded.
func DeserializeSequenceAs[T any](buf *[]byte, parse func(string) (T, error)) ([]T, error) {
	count, err := RemoveLengthPrefix(buf)
	if err != nil {
		return nil, err
	}

	// Each element carries at least a prefix, so a corrupt count cannot
	// size the allocation beyond what the buffer could hold.
	hint := min(count, uint64(len(*buf)/PrefixSize))
	out := make([]T, 0, hint)

	for i := uint64(0); i < count; i++ {
		v, err := DeserializeStringAs(buf, parse)
		if err != nil {
			return nil, fmt.Errorf("wire: sequence element %d of %d: %w", i, count, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// RemoveMessage removes one finalized message from the head of buf and
// returns its payload.
//
// If buf does not hold the complete message, buf is unchanged and a
// *ByteCountError is returned.
func RemoveMessage(buf *[]byte) ([]byte, error) {
	b := *buf
	if len(b) < PrefixSize {
		return nil, &ByteCountError{Expected: PrefixSize, Actual: uint64(len(b))}
	}

	n := binary.LittleEndian.Uint64(b)
	rest := b[PrefixSize:]
	if n > uint64(len(rest)) {
		return nil, &ByteCountError{Expected: n, Actual: uint64(len(rest))}
	}

	*buf = rest[n:]
	return rest[:n:n], nil
}

// RemoveLengthPrefix removes a PrefixSize length prefix from the head of buf.
//
// If buf holds fewer than PrefixSize bytes, buf is unchanged and a
// *ByteCountError is returned.
func RemoveLengthPrefix(buf *[]byte) (uint64, error) {
	if len(*buf) < PrefixSize {
		return 0, &ByteCountError{Expected: PrefixSize, Actual: uint64(len(*buf))}
	}
	n := binary.LittleEndian.Uint64(*buf)
	*buf = (*buf)[PrefixSize:]
	return n, nil
}

// RemoveUint32 removes a 4-byte little-endian integer from the head of buf.
//
// If buf holds fewer than 4 bytes, buf is unchanged and a *ByteCountError is
// returned.
func RemoveUint32(buf *[]byte) (uint32, error) {
	if len(*buf) < Uint32Size {
		return 0, &ByteCountError{Expected: Uint32Size, Actual: uint64(len(*buf))}
	}
	v := binary.LittleEndian.Uint32(*buf)
	*buf = (*buf)[Uint32Size:]
	return v, nil
}

// removePayload reads a length prefix and splits that many bytes off the
// head of buf. The prefix stays consumed once read; a declared length
// longer than the remainder consumes the whole remainder.
func removePayload(buf *[]byte) ([]byte, error) {
	n, err := RemoveLengthPrefix(buf)
	if err != nil {
		return nil, err
	}

	rest := *buf
	if n > uint64(len(rest)) {
		*buf = rest[len(rest):]
		return nil, &ByteCountError{Expected: n, Actual: uint64(len(rest))}
	}

	*buf = rest[n:]
	return rest[:n:n], nil
}

func asString(s string) (string, error) {
	return s, nil
}
