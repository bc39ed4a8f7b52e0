// Package enc contains the "armor" encoders: ways of rendering packed SIXBIT bytes as
// printable text on the command line, and reading them back.
package enc

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Encoder turns arbitrary bytes into text and back
type Encoder interface {
	// Name is the user-friendly name of this encoder
	Name() string
	// Code represents the short (one-letter) code for the encoder
	Code() byte

	// Encode will take an array of bytes and encode it using this encoder
	Encode([]byte) string

	// Decode is the reverse process of encoding
	Decode(string) ([]byte, error)

	// Ratio is the (average) number of output characters per input byte
	Ratio() float64
}

// Encoders lists all available encoders, the default one first
var Encoders = []Encoder{
	&HexEncoder{},
	&Base64Encoder{},
	&Base64uEncoder{},
	&Base32Encoder{},
	&Base85Encoder{},
	&Base91Encoder{},
	&Base128Encoder{},
	&RawEncoder{},
}

// Find returns the encoder either by its name or by its one-letter code, ignoring case.
func Find(name string) (Encoder, error) {
	name = strings.TrimSpace(name)
	for _, e := range Encoders {
		if strings.EqualFold(e.Name(), name) {
			return e, nil
		}
	}
	if len(name) == 1 {
		for _, e := range Encoders {
			if strings.EqualFold(string(e.Code()), name) {
				return e, nil
			}
		}
	}
	return nil, errors.Errorf("Unknown encoder: '%s'. Available: %v", name, Names())
}

// Names returns the names of all the encoders
func Names() []string {
	res := make([]string, 0, len(Encoders))
	for _, e := range Encoders {
		res = append(res, strings.ToLower(e.Name()))
	}
	return res
}

func describe(e Encoder) string {
	return fmt.Sprintf("%v(%v)", e.Name(), string(e.Code()))
}
