package sixbit

import (
	"github.com/fxamacker/cbor/v2"
)

// cborRecord is the CBOR shape of Packed: a two element array [count, bytes].
type cborRecord struct {
	_     struct{} `cbor:",toarray"`
	Len   int
	Bytes []byte
}

// MarshalCBOR implements cbor.Marshaler.
func (p Packed) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(cborRecord{Len: p.len, Bytes: p.Bytes()})
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (p *Packed) UnmarshalCBOR(data []byte) error {
	var r cborRecord
	if err := cbor.Unmarshal(data, &r); err != nil {
		return err
	}
	v, err := FromParts(r.Bytes, r.Len)
	if err != nil {
		return err
	}
	*p = v
	return nil
}
