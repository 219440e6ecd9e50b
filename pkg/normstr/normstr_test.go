package normstr_test

import (
	"errors"
	"strings"
	"testing"
	"testing/quick"

	"github.com/jdn-utils/jdnutils/pkg/normstr"
	"github.com/jdn-utils/jdnutils/pkg/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultVerify(t *testing.T) {
	s, err := normstr.DefaultVerify("asdf", "User ID")
	require.NoError(t, err)
	require.Equal(t, "asdf", s.String())

	_, err = normstr.DefaultVerify("asdf;zxcv", "User ID")
	require.ErrorIs(t, err, normstr.ErrInvalidCharacter)
	require.EqualError(t, err, "User ID cannot contain ';'")

	_, err = normstr.DefaultVerify(strings.Repeat("0123456789", 30), "User ID")
	require.ErrorIs(t, err, normstr.ErrTooLong)
	require.EqualError(t, err, "User ID cannot be longer than 255 characters")
}

func TestVerify_Empty(t *testing.T) {
	_, err := normstr.Verify("", "Name", 10, ";")
	require.ErrorIs(t, err, normstr.ErrEmpty)
	require.EqualError(t, err, "Name cannot be empty")

	var ve *normstr.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Name", ve.Field)
}

func TestVerify_LengthIsBytes(t *testing.T) {
	// "ééé" is 3 runes, 6 bytes
	_, err := normstr.Verify("ééé", "Name", 5, "")
	require.ErrorIs(t, err, normstr.ErrTooLong)

	s, err := normstr.Verify("ééé", "Name", 6, "")
	require.NoError(t, err)
	require.Equal(t, "ééé", s.Value())
}

func TestVerify_ExactlyMaxLength(t *testing.T) {
	_, err := normstr.Verify(strings.Repeat("a", 255), "Name", 255, ";")
	require.NoError(t, err)

	_, err = normstr.Verify(strings.Repeat("a", 256), "Name", 255, ";")
	require.ErrorIs(t, err, normstr.ErrTooLong)
}

func TestVerify_TooLongTakesPrecedence(t *testing.T) {
	value := strings.Repeat("a", 20) + ";"

	_, err := normstr.Verify(value, "Name", 10, ";")
	require.ErrorIs(t, err, normstr.ErrTooLong)
	require.NotErrorIs(t, err, normstr.ErrInvalidCharacter)

	var ve *normstr.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, 10, ve.MaxLength)
}

func TestVerify_AnyRestrictedCharacter(t *testing.T) {
	for _, value := range []string{"a,b", "a;b", "a|b", "|"} {
		_, err := normstr.Verify(value, "Tag", 64, ";,|")
		require.ErrorIs(t, err, normstr.ErrInvalidCharacter, "value %q", value)
		require.EqualError(t, err, "Tag cannot contain ';,|'")
	}
}

func TestVerify_MultiByteRestricted(t *testing.T) {
	_, err := normstr.Verify("price€", "Label", 64, "€")
	require.ErrorIs(t, err, normstr.ErrInvalidCharacter)

	_, err = normstr.Verify("price$", "Label", 64, "€")
	require.NoError(t, err)
}

func TestVerify_NoRestriction(t *testing.T) {
	s, err := normstr.Verify("a;b", "Name", 10, "")
	require.NoError(t, err)
	require.Equal(t, "a;b", s.String())
}

func TestVerify_ValueUnchanged(t *testing.T) {
	value := "  Mixed Case\t"
	s, err := normstr.DefaultVerify(value, "Name")
	require.NoError(t, err)
	require.Equal(t, value, s.String())
}

func TestValidationError_Messages(t *testing.T) {
	_, err := normstr.Verify("a;b", "Name", 10, ";,")
	require.EqualError(t, err, "Name cannot contain ';,'")

	_, err = normstr.Verify("", "Name", 10, ";")
	require.EqualError(t, err, "Name cannot be empty")

	_, err = normstr.Verify("abcdef", "Name", 3, ";")
	require.EqualError(t, err, "Name cannot be longer than 3 characters")

	// Built by hand, so it carries no cause
	zero := &normstr.ValidationError{Field: "Name", Restricted: ";"}
	require.EqualError(t, zero, "Name is invalid")
	require.NotErrorIs(t, zero, normstr.ErrInvalidCharacter)
	require.NotErrorIs(t, zero, normstr.ErrEmpty)
	require.NotErrorIs(t, zero, normstr.ErrTooLong)
}

func TestString_IsZero(t *testing.T) {
	var zero normstr.String
	require.True(t, zero.IsZero())

	s, err := normstr.DefaultVerify("x", "Name")
	require.NoError(t, err)
	require.False(t, s.IsZero())
}

func TestConstraints_Verify(t *testing.T) {
	c := normstr.Constraints{MaxLength: 4, Restricted: "/"}

	_, err := c.Verify("abcde", "Path")
	require.ErrorIs(t, err, normstr.ErrTooLong)

	_, err = c.Verify("a/b", "Path")
	require.ErrorIs(t, err, normstr.ErrInvalidCharacter)

	s, err := c.Verify("abcd", "Path")
	require.NoError(t, err)
	require.Equal(t, "abcd", s.String())
}

func TestParser_WithWire(t *testing.T) {
	var buf []byte
	wire.SerializeSequence([]string{"alice", "bob"}, &buf)

	ids, err := wire.DeserializeSequenceAs(&buf, normstr.Parser("User ID", normstr.Default))
	require.NoError(t, err)
	require.Len(t, ids, 2)
	require.Equal(t, "alice", ids[0].String())
	require.Equal(t, "bob", ids[1].String())
}

func TestParser_RejectionIsInvalidValue(t *testing.T) {
	var buf []byte
	wire.SerializeString("a;b", &buf)

	_, err := wire.DeserializeStringAs(&buf, normstr.Parser("User ID", normstr.Default))
	require.ErrorIs(t, err, wire.ErrInvalidValue)
	require.ErrorIs(t, err, normstr.ErrInvalidCharacter)
	require.EqualError(t, err, "User ID cannot contain ';'")
}

// Property: any non-empty string within the limit and free of restricted
// characters verifies and is returned unchanged
func TestProperty_ValidStringsVerify(t *testing.T) {
	property := func(s string) bool {
		if s == "" || len(s) > normstr.DefaultMaxLength || strings.Contains(s, ";") {
			return true
		}
		v, err := normstr.DefaultVerify(s, "Value")
		return err == nil && v.String() == s
	}

	if err := quick.Check(property, nil); err != nil {
		t.Error(err)
	}
}

// Property: a value longer than the limit always fails with ErrTooLong
func TestProperty_TooLongAlwaysRejected(t *testing.T) {
	property := func(s string, limit uint8) bool {
		if len(s) <= int(limit) {
			return true
		}
		_, err := normstr.Verify(s, "Value", int(limit), ";")
		return errors.Is(err, normstr.ErrTooLong)
	}

	if err := quick.Check(property, nil); err != nil {
		t.Error(err)
	}
}
