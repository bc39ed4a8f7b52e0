package enc

import (
	"github.com/pkg/errors"
	"go.chromium.org/luci/common/data/base128"
)

// -------------------------------------------------------

// Base128Encoder encodes 7 bytes to 8 characters, using only 7-bit ASCII characters. Note
// that most of the output is not printable; use it for transport, not for display.
type Base128Encoder struct {
}

func (b *Base128Encoder) Name() string {
	return "Base128"
}

func (b *Base128Encoder) String() string {
	return describe(b)
}

func (b *Base128Encoder) Code() byte {
	return 'V'
}

// Encode splits the input into 7 bit groups, most significant bit first. The last group is
// padded with zero bits. The output has exactly ceil(len(src) * 8 / 7) characters.
func (b *Base128Encoder) Encode(src []byte) string {
	dst := make([]byte, 0, (len(src)*8+6)/7)

	whichBit := uint(1)
	bufByte := byte(0)

	for _, val := range src {
		// Take the current buffer, add current value, shifted.
		// E.g. first round is first 7 bits of value
		dst = append(dst, bufByte|(val>>whichBit))

		// Prepare the remaining data for the next buffer, shifted to the top of 7 bits
		bufByte = (val & ((1 << whichBit) - 1)) << (7 - whichBit)

		if whichBit == 7 {
			dst = append(dst, bufByte)
			bufByte = 0
			whichBit = 0
		}
		whichBit++
	}

	if whichBit > 1 {
		dst = append(dst, bufByte)
	}

	return string(dst)
}

func (b *Base128Encoder) Decode(data string) ([]byte, error) {
	res, err := base128.DecodeString(data)
	if err != nil {
		err = errors.WithStack(err)
		return nil, err
	}
	return res, nil
}

func (b *Base128Encoder) Ratio() float64 {
	return 8.0 / 7.0
}
