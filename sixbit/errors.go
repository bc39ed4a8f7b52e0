package sixbit

import (
	"fmt"
	"unicode/utf8"
)

// Kind tells apart the different reasons an operation can fail
type Kind uint8

const (
	// InvalidCharacter is reported when the text to encode contains a character outside of
	// the SIXBIT alphabet
	InvalidCharacter Kind = iota + 1
	// InvalidBytesLength is reported when the number of packed bytes does not match the
	// declared number of characters
	InvalidBytesLength
)

func (k Kind) String() string {
	switch k {
	case InvalidCharacter:
		return "InvalidCharacter"
	case InvalidBytesLength:
		return "InvalidBytesLength"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Error is the only error type returned by this package. Only the fields belonging to its
// Kind are set.
type Error struct {
	Kind Kind

	// Char is the offending character and Offset its byte position in the input
	Char   rune
	Offset int

	// Length is the number of bytes received, Count the declared number of characters and
	// Expected the number of bytes Count characters pack into
	Length   int
	Count    int
	Expected int
}

// Declare the sentinel errors. They match any *Error of the same kind with errors.Is, e.g.
// errors.Is(err, sixbit.ErrInvalidCharacter).
var (
	ErrInvalidCharacter   = &Error{Kind: InvalidCharacter}
	ErrInvalidBytesLength = &Error{Kind: InvalidBytesLength}
)

func (e *Error) Error() string {
	switch e.Kind {
	case InvalidCharacter:
		if e == ErrInvalidCharacter {
			return "invalid character in input (must be ASCII 32-95)"
		}
		return fmt.Sprintf("invalid character %q at offset %d (must be ASCII 32-95)", e.Char, e.Offset)
	case InvalidBytesLength:
		if e == ErrInvalidBytesLength {
			return "input bytes and length are inconsistent"
		}
		return fmt.Sprintf("input bytes and length are inconsistent: got %d bytes, %d characters need %d", e.Length, e.Count, e.Expected)
	default:
		return e.Kind.String()
	}
}

// Is matches errors by Kind only, ignoring the details.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func invalidCharacter(s string, offset int) *Error {
	c, _ := utf8.DecodeRuneInString(s[offset:])
	return &Error{
		Kind:   InvalidCharacter,
		Char:   c,
		Offset: offset,
	}
}

func invalidBytesLength(length, count int) *Error {
	return &Error{
		Kind:     InvalidBytesLength,
		Length:   length,
		Count:    count,
		Expected: EncodedLen(count),
	}
}
