package enc

import (
	"github.com/pkg/errors"
)

// Armor is the name of an Encoder, selectable from the command line (go-flags) or from the
// YAML configuration file. Unknown names are rejected while parsing. The empty value selects
// the first of Encoders.
type Armor string

// Encoder returns the selected encoder
func (a Armor) Encoder() Encoder {
	if a != "" {
		if e, err := Find(string(a)); err == nil {
			return e
		}
	}
	return Encoders[0]
}

// Encode encodes data with the selected encoder
func (a Armor) Encode(data []byte) string {
	return a.Encoder().Encode(data)
}

// Decode decodes data with the selected encoder
func (a Armor) Decode(data string) ([]byte, error) {
	return a.Encoder().Decode(data)
}

func (a Armor) String() string {
	return describe(a.Encoder())
}

// UnmarshalFlag implements flags.Unmarshaler
func (a *Armor) UnmarshalFlag(value string) error {
	e, err := Find(value)
	if err != nil {
		return err
	}
	*a = Armor(e.Name())
	return nil
}

// MarshalFlag implements flags.Marshaler
func (a Armor) MarshalFlag() (string, error) {
	return a.Encoder().Name(), nil
}

// UnmarshalYAML reads the encoder name from the configuration file
func (a *Armor) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return errors.WithStack(err)
	}
	return a.UnmarshalFlag(name)
}

// MarshalYAML writes the encoder name
func (a Armor) MarshalYAML() (interface{}, error) {
	return a.Encoder().Name(), nil
}
