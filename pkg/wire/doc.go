// Package wire implements a length-prefixed binary encoding for strings and
// sequences of strings.
//
// Every operation works on a caller-owned byte slice passed by pointer.
// Encoders append at the tail of the slice; decoders consume from the head
// and leave the remainder in place as the new slice content.
//
// # Format
//
// All integers are fixed-width, unsigned and little-endian. Length and count
// prefixes are 8 bytes (PrefixSize):
//
//	string:    [len u64][len bytes of UTF-8]
//	sequence:  [count u64][count strings]
//	message:   [payload len u64][payload]
//
// The prefix width is fixed at 64 bits regardless of GOARCH. Producers that
// wrote pointer-sized prefixes on 64-bit hosts are compatible; producers on
// 32-bit hosts are not. Changing the width is a breaking format change.
//
// # Basic Usage
//
// Encoding:
//
//	var buf []byte
//	wire.SerializeString("alice", &buf)
//	wire.SerializeSequence([]string{"admin", "ops"}, &buf)
//	wire.Finalize(&buf)
//
// Decoding:
//
//	payload, err := wire.RemoveMessage(&buf)
//	name, err := wire.DeserializeString(&payload)
//	roles, err := wire.DeserializeSequence(&payload)
//
// Decoding into a validated type:
//
//	id, err := wire.DeserializeStringAs(&payload, normstr.Parser("User ID", normstr.Default))
//
// # Buffer State on Failure
//
// RemoveLengthPrefix, RemoveUint32 and RemoveMessage leave the buffer
// unchanged when it is too short.
//
// DeserializeString drains. Once a length prefix has been read it stays
// consumed. If the prefix declares more bytes than remain, the whole
// remainder is consumed before the error is returned. Payloads that fail
// UTF-8 or the caller's parse function stay consumed as well.
//
// DeserializeSequence inherits this: an error on any element leaves the
// buffer in an indeterminate state and it must be discarded.
//
// None of the functions in this package are safe for concurrent use on the
// same buffer.
package wire
