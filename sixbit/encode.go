package sixbit

import (
	"github.com/pkg/errors"
)

// Encode packs s into SIXBIT and returns the packed bytes and the number of characters
// encoded. If s contains anything outside of the alphabet (lowercase letters, control
// characters, any non-ASCII character) it fails with InvalidCharacter and returns no output.
func Encode(s string) ([]byte, int, error) {
	return AppendEncode(nil, s)
}

// AppendEncode is like Encode but appends the packed bytes to dst and returns the extended
// buffer. On error dst is returned unchanged.
func AppendEncode(dst []byte, s string) ([]byte, int, error) {
	if i := invalidAt(s); i >= 0 {
		return dst, 0, errors.WithStack(invalidCharacter(s, i))
	}
	return appendPacked(dst, s), len(s), nil
}

// EncodeUnchecked packs s without looking at its contents. The caller must make sure s only
// holds characters from the alphabet. Bytes outside of it are mapped to (b - 32) mod 64, so
// the output has the right length but will not decode back to s. The returned count is the
// number of bytes in s.
func EncodeUnchecked(s string) ([]byte, int) {
	return appendPacked(nil, s), len(s)
}

// code converts one character into its 6-bit value. Out-of-range input wraps around.
func code(c byte) byte {
	return (c - asciiOffset) & maskSixBits
}

// appendPacked packs every four characters into three bytes:
//
//	aaaaaabb bbbbcccc ccdddddd
//
// A trailing group only writes the bytes its characters touch.
func appendPacked(dst []byte, s string) []byte {
	n := len(s)
	out, packed := grow(dst, EncodedLen(n))

	full := n / 4
	for i := 0; i < full; i++ {
		a, b, c, d := code(s[i*4]), code(s[i*4+1]), code(s[i*4+2]), code(s[i*4+3])
		p := packed[i*3:]
		p[0] = a<<2 | b>>4
		p[1] = (b&maskFourBits)<<4 | c>>2
		p[2] = (c&maskTwoBits)<<6 | d
	}

	rest := s[full*4:]
	p := packed[full*3:]
	switch len(rest) {
	case 3:
		a, b, c := code(rest[0]), code(rest[1]), code(rest[2])
		p[0] = a<<2 | b>>4
		p[1] = (b&maskFourBits)<<4 | c>>2
		p[2] = (c & maskTwoBits) << 6
	case 2:
		a, b := code(rest[0]), code(rest[1])
		p[0] = a<<2 | b>>4
		p[1] = (b & maskFourBits) << 4
	case 1:
		p[0] = code(rest[0]) << 2
	}

	return out
}

// grow extends dst by n bytes and returns the extended slice together with the new tail.
func grow(dst []byte, n int) ([]byte, []byte) {
	l := len(dst)
	if cap(dst)-l < n {
		buf := make([]byte, l, l+n)
		copy(buf, dst)
		dst = buf
	}
	dst = dst[:l+n]
	return dst, dst[l:]
}
