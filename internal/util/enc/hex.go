package enc

import (
	"encoding/hex"
	"strings"

	"github.com/pkg/errors"
)

// -------------------------------------------------------

// HexEncoder encodes every byte as two hexadecimal digits. Easiest to compare by eye with the
// bit layout, hence the default.
type HexEncoder struct {
}

func (b *HexEncoder) Name() string {
	return "Hex"
}

func (b *HexEncoder) String() string {
	return describe(b)
}

func (b *HexEncoder) Code() byte {
	return 'H'
}

func (b *HexEncoder) Encode(data []byte) string {
	return hex.EncodeToString(data)
}

// Decode accepts both cases and ignores whitespace and colons, e.g. "A2 5B 2C BC" or
// "a2:5b:2c:bc".
func (b *HexEncoder) Decode(data string) ([]byte, error) {
	data = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r', ':':
			return -1
		}
		return r
	}, data)
	res, err := hex.DecodeString(data)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return res, nil
}

func (b *HexEncoder) Ratio() float64 {
	return 2.0
}
