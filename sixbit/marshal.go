package sixbit

import (
	"encoding/binary"
	"math"

	"github.com/pkg/errors"
)

// Human-readable formats (text, JSON, YAML) carry the decoded text, binary formats (the one
// below, msgpack, CBOR) carry the character count followed by the packed bytes. Unmarshalling
// always goes through New or FromParts, so bad input never produces an inconsistent Packed.

// MarshalText implements encoding.TextMarshaler. It also makes JSON encode Packed as a
// string.
func (p Packed) MarshalText() ([]byte, error) {
	return unpack(p.bytes, p.len), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Packed) UnmarshalText(text []byte) error {
	v, err := New(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler. The output is the character count as
// an unsigned varint, followed by the packed bytes.
func (p Packed) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 0, binary.MaxVarintLen64+len(p.bytes))
	buf = binary.AppendUvarint(buf, uint64(p.len))
	return append(buf, p.bytes...), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (p *Packed) UnmarshalBinary(data []byte) error {
	n, k := binary.Uvarint(data)
	if k <= 0 {
		return errors.Errorf("sixbit: malformed character count in binary record")
	}
	if n > math.MaxInt32 {
		return errors.Errorf("sixbit: character count %d out of range", n)
	}
	v, err := FromParts(data[k:], int(n))
	if err != nil {
		return err
	}
	*p = v
	return nil
}
