package sixbit

import (
	"github.com/pkg/errors"
)

// Decode unpacks n characters from b. The length of b must be exactly EncodedLen(n),
// otherwise it fails with InvalidBytesLength. Every 6-bit value maps to a valid character,
// so no other error is possible.
func Decode(b []byte, n int) (string, error) {
	if n < 0 || len(b) != EncodedLen(n) {
		return "", errors.WithStack(invalidBytesLength(len(b), n))
	}
	return string(unpack(b, n)), nil
}

// DecodeUnchecked unpacks n characters from b without checking the length of b. Missing
// bytes are read as zero (and decode as spaces), extra bytes are ignored. A negative n
// returns an empty string.
func DecodeUnchecked(b []byte, n int) string {
	if n <= 0 {
		return ""
	}
	if need := EncodedLen(n); len(b) < need {
		padded := make([]byte, need)
		copy(padded, b)
		b = padded
	}
	return string(unpack(b, n))
}

// unpack expects len(b) >= EncodedLen(n).
func unpack(b []byte, n int) []byte {
	if n <= 0 {
		return nil
	}
	res := make([]byte, n)

	full := n / 4
	for i := 0; i < full; i++ {
		p := b[i*3:]
		r := res[i*4:]
		r[0] = (p[0] >> 2) + asciiOffset
		r[1] = ((p[0]&maskTwoBits)<<4 | p[1]>>4) + asciiOffset
		r[2] = ((p[1]&maskFourBits)<<2 | p[2]>>6) + asciiOffset
		r[3] = (p[2] & maskSixBits) + asciiOffset
	}

	p := b[full*3:]
	r := res[full*4:]
	switch len(r) {
	case 3:
		r[2] = ((p[1]&maskFourBits)<<2 | p[2]>>6) + asciiOffset
		fallthrough
	case 2:
		r[1] = ((p[0]&maskTwoBits)<<4 | p[1]>>4) + asciiOffset
		fallthrough
	case 1:
		r[0] = (p[0] >> 2) + asciiOffset
	}

	return res
}
