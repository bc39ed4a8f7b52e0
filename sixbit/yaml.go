package sixbit

// MarshalYAML renders Packed as a plain YAML string (github.com/goccy/go-yaml
// InterfaceMarshaler).
func (p Packed) MarshalYAML() (interface{}, error) {
	return p.String(), nil
}

// UnmarshalYAML reads Packed from a YAML string (github.com/goccy/go-yaml
// InterfaceUnmarshaler).
func (p *Packed) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	return p.UnmarshalText([]byte(s))
}
