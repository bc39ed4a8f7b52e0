package enc

import (
	"encoding/base64"
	"strings"

	"github.com/pkg/errors"
)

// -------------------------------------------------------

// Base64Encoder encodes 3 bytes to 4 characters. SIXBIT packs 4 characters into 3 bytes, so
// a full group of packed text always maps to exactly 4 Base64 characters.
type Base64Encoder struct {
}

func (b *Base64Encoder) Name() string {
	return "Base64"
}

func (b *Base64Encoder) String() string {
	return describe(b)
}

func (b *Base64Encoder) Code() byte {
	return 'S'
}

func (b *Base64Encoder) Encode(data []byte) string {
	return base64.RawStdEncoding.EncodeToString(data)
}

// Decode accepts input with or without padding
func (b *Base64Encoder) Decode(data string) ([]byte, error) {
	res, err := base64.RawStdEncoding.DecodeString(strings.TrimRight(data, "="))
	if err != nil {
		err = errors.WithStack(err)
		return nil, err
	}
	return res, nil
}

func (b *Base64Encoder) Ratio() float64 {
	return 4.0 / 3.0
}

// -------------------------------------------------------

// Base64uEncoder encodes 3 bytes to 4 characters and uses the URL-safe character map.
type Base64uEncoder struct {
}

func (b *Base64uEncoder) Name() string {
	return "Base64u"
}

func (b *Base64uEncoder) String() string {
	return describe(b)
}

func (b *Base64uEncoder) Code() byte {
	return 'U'
}

func (b *Base64uEncoder) Encode(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

func (b *Base64uEncoder) Decode(data string) ([]byte, error) {
	res, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(data, "="))
	if err != nil {
		err = errors.WithStack(err)
		return nil, err
	}
	return res, nil
}

func (b *Base64uEncoder) Ratio() float64 {
	return 4.0 / 3.0
}
