package enc

import (
	"encoding/base32"
	"strings"

	"github.com/pkg/errors"
)

const (
	cb32 = "abcdefghijklmnopqrstuvwxyz234567"
)

var lowerBase32Encoding = base32.NewEncoding(cb32).WithPadding(base32.NoPadding)

// -------------------------------------------------------

// Base32Encoder encodes 5 bytes to 8 characters. Good because it's not case-sensitive.
type Base32Encoder struct {
}

func (b *Base32Encoder) Name() string {
	return "Base32"
}

func (b *Base32Encoder) String() string {
	return describe(b)
}

func (b *Base32Encoder) Code() byte {
	return 'T'
}

func (b *Base32Encoder) Encode(data []byte) string {
	return lowerBase32Encoding.EncodeToString(data)
}

func (b *Base32Encoder) Decode(data string) ([]byte, error) {
	data = strings.TrimRight(strings.ToLower(data), "=")
	res, err := lowerBase32Encoding.DecodeString(data)
	if err != nil {
		err = errors.WithStack(err)
		return nil, err
	}
	return res, nil
}

func (b *Base32Encoder) Ratio() float64 {
	return 8.0 / 5.0
}
