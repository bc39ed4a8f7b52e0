// Package sixbit implements DEC SIXBIT: a fixed-width encoding which packs the 64 printable
// ASCII characters from space (32) to underscore (95) into six bits each. Every four
// characters are stored in three bytes, most significant bit first. A trailing group of one
// to three characters takes one to three bytes, left-justified and padded with zero bits.
//
// Because the padding makes the byte length ambiguous, the number of characters always
// travels next to the packed bytes. Use Packed to keep both together.
//
// Every function comes in a validated and an unchecked flavour. The unchecked ones skip the
// input checks and never fail; feeding them invalid input yields garbage, not a panic.
package sixbit

const (
	// MinChar is the first character of the SIXBIT alphabet (space)
	MinChar = ' '
	// MaxChar is the last character of the SIXBIT alphabet (underscore)
	MaxChar = '_'
	// Alphabet lists all the characters which may be encoded, in code order
	Alphabet = " !\"#$%&'()*+,-./0123456789:;<=>?@ABCDEFGHIJKLMNOPQRSTUVWXYZ[\\]^_"

	asciiOffset = 32

	maskTwoBits  = 0x03
	maskFourBits = 0x0F
	maskSixBits  = 0x3F
)

// trailingBytes maps the size of the last (incomplete) group of characters to the number of
// bytes it occupies. Encoder and decoder must agree on it.
var trailingBytes = [4]int{0, 1, 2, 3}

// EncodedLen returns the number of bytes needed to pack n characters. It is equal to
// ceil(n * 6 / 8). Negative n returns 0.
func EncodedLen(n int) int {
	if n <= 0 {
		return 0
	}
	return 3*(n/4) + trailingBytes[n%4]
}

// DecodedLen returns the largest number of characters which can be stored in byteLen bytes.
// One character fewer may have been encoded: both 3 and 4 characters take 3 bytes. Use it
// as a best guess when the real count got lost.
func DecodedLen(byteLen int) int {
	if byteLen <= 0 {
		return 0
	}
	return byteLen * 8 / 6
}

// IsValid reports whether c is part of the SIXBIT alphabet.
func IsValid(c rune) bool {
	return c >= MinChar && c <= MaxChar
}

// IsValidString reports whether every character of s is part of the SIXBIT alphabet.
func IsValidString(s string) bool {
	return invalidAt(s) < 0
}

// invalidAt returns the offset of the first byte of s outside of the alphabet or -1 if there
// is none. Any byte of a multi-byte UTF-8 sequence is >= 0x80 and therefore rejected here.
func invalidAt(s string) int {
	for i := 0; i < len(s); i++ {
		if c := s[i]; c < MinChar || c > MaxChar {
			return i
		}
	}
	return -1
}
