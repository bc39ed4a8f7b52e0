package sixbit

import (
	"bytes"

	"github.com/pkg/errors"
)

// Packed holds SIXBIT-encoded text together with its number of characters. It is immutable:
// none of the methods change the receiver, so a Packed may be shared between goroutines
// freely. The zero value is an empty text.
type Packed struct {
	bytes []byte
	len   int
}

// New encodes s. It fails with InvalidCharacter if s contains characters outside of the
// alphabet.
func New(s string) (Packed, error) {
	b, n, err := Encode(s)
	if err != nil {
		return Packed{}, err
	}
	return Packed{bytes: b, len: n}, nil
}

// MustNew is like New but panics on invalid input. Meant for constants and tests.
func MustNew(s string) Packed {
	p, err := New(s)
	if err != nil {
		panic(err)
	}
	return p
}

// FromParts creates a Packed from already encoded bytes, e.g. read from disk or from the
// network. The bytes are not trusted: if their length does not match n it fails with
// InvalidBytesLength. b is copied.
func FromParts(b []byte, n int) (Packed, error) {
	if n < 0 || len(b) != EncodedLen(n) {
		return Packed{}, errors.WithStack(invalidBytesLength(len(b), n))
	}
	if n == 0 {
		return Packed{}, nil
	}
	return Packed{bytes: append([]byte(nil), b...), len: n}, nil
}

// Len returns the number of characters, not the number of bytes.
func (p Packed) Len() int {
	return p.len
}

// IsEmpty returns true if there are no characters.
func (p Packed) IsEmpty() bool {
	return p.len == 0
}

// Bytes returns a copy of the packed bytes.
func (p Packed) Bytes() []byte {
	if len(p.bytes) == 0 {
		return []byte{}
	}
	return append([]byte(nil), p.bytes...)
}

// ByteLen returns the number of packed bytes, i.e. EncodedLen(p.Len()).
func (p Packed) ByteLen() int {
	return len(p.bytes)
}

// String decodes the text.
func (p Packed) String() string {
	return string(unpack(p.bytes, p.len))
}

// Append returns a new Packed holding the text of p followed by s. p is not modified.
func (p Packed) Append(s string) (Packed, error) {
	if i := invalidAt(s); i >= 0 {
		return Packed{}, errors.WithStack(invalidCharacter(s, i))
	}
	if s == "" {
		return p, nil
	}
	if p.len%4 == 0 {
		// Group boundary: the existing bytes can be reused as they are.
		b := make([]byte, len(p.bytes), EncodedLen(p.len+len(s)))
		copy(b, p.bytes)
		return Packed{bytes: appendPacked(b, s), len: p.len + len(s)}, nil
	}
	return New(p.String() + s)
}

// Equal reports whether p and o hold the same text.
func (p Packed) Equal(o Packed) bool {
	return p.len == o.len && bytes.Equal(p.bytes, o.bytes)
}

// Compare orders by number of characters first and by packed bytes second. It returns -1, 0
// or +1.
func (p Packed) Compare(o Packed) int {
	switch {
	case p.len < o.len:
		return -1
	case p.len > o.len:
		return 1
	default:
		return bytes.Compare(p.bytes, o.bytes)
	}
}
