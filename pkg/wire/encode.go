package wire

import "encoding/binary"

const (
	// PrefixSize is the width in bytes of every length and count prefix.
	PrefixSize = 8

	// Uint32Size is the width in bytes of an encoded uint32.
	Uint32Size = 4
)

// SerializeString appends the encoding of value to buf.
//
// Example:
//
//	SerializeString("hi", &buf) // appends 02 00 00 00 00 00 00 00 'h' 'i'
func SerializeString(value string, buf *[]byte) {
	AppendLengthPrefix(buf, uint64(len(value)))
	*buf = append(*buf, value...)
}

// SerializeSequence appends a count prefix followed by each element of
// values, in order.
func SerializeSequence[S ~[]E, E ~string](values S, buf *[]byte) {
	AppendLengthPrefix(buf, uint64(len(values)))
	for _, v := range values {
		SerializeString(string(v), buf)
	}
}

// Finalize prepends the current length of buf, turning its content into a
// self-delimited message.
func Finalize(buf *[]byte) {
	out := make([]byte, 0, PrefixSize+len(*buf))
	out = binary.LittleEndian.AppendUint64(out, uint64(len(*buf)))
	*buf = append(out, *buf...)
}

// AppendLengthPrefix appends n as a PrefixSize little-endian integer.
func AppendLengthPrefix(buf *[]byte, n uint64) {
	*buf = binary.LittleEndian.AppendUint64(*buf, n)
}

// AppendUint32 appends v as a 4-byte little-endian integer.
func AppendUint32(buf *[]byte, v uint32) {
	*buf = binary.LittleEndian.AppendUint32(*buf, v)
}
