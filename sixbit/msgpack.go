package sixbit

import (
	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"
)

var (
	_ msgpack.CustomEncoder = Packed{}
	_ msgpack.CustomDecoder = (*Packed)(nil)
)

// EncodeMsgpack writes Packed as a two element array: [count, bytes].
func (p Packed) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(2); err != nil {
		return err
	}
	if err := enc.EncodeInt(int64(p.len)); err != nil {
		return err
	}
	return enc.EncodeBytes(p.bytes)
}

// DecodeMsgpack reads the array written by EncodeMsgpack.
func (p *Packed) DecodeMsgpack(dec *msgpack.Decoder) error {
	l, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	if l != 2 {
		return errors.Errorf("sixbit: expected a 2 element msgpack array, got %d", l)
	}
	n, err := dec.DecodeInt()
	if err != nil {
		return err
	}
	b, err := dec.DecodeBytes()
	if err != nil {
		return err
	}
	v, err := FromParts(b, n)
	if err != nil {
		return err
	}
	*p = v
	return nil
}
