// Package flags reads go-flags options from YAML configuration files.
package flags

import (
	"fmt"
	"io"
	"os"
	"path"
	"reflect"
	"unsafe"

	"github.com/goccy/go-yaml"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// YamlParser is an argument parser for flags package but takes a YAML file instead of a standard INI.
//
// Top level keys are matched first against command names (`encode:`, `decode:`) and then against
// group descriptions (`general:`), case-insensitively. The value under the key is decoded straight
// into the struct registered with go-flags, so it uses the yaml field names of that struct.
type YamlParser struct {
	parser *flags.Parser
}

// NewYamlParser creates a new yaml parser for a given flags.Parser.
func NewYamlParser(p *flags.Parser) *YamlParser {
	return &YamlParser{
		parser: p,
	}
}

// ParseFile parses flags from a yaml formatted file.
func (y *YamlParser) ParseFile(filename string) error {
	body, err := os.Open(filename)
	if err != nil {
		return errors.WithStack(err)
	}

	defer func() {
		if err := body.Close(); err != nil {
			log.Errorf("Could not close %s: %v", filename, err)
		}
	}()

	// Files referenced from the config are resolved relative to the config itself
	return y.Parse(body, yaml.ReferenceDirs(path.Dir(filename)), yaml.RecursiveDir(true))
}

// Parse reads YAML documents one after another from the reader. Multiple documents, separated
// by `---`, are applied in order, so later ones override the earlier.
func (y *YamlParser) Parse(config io.Reader, opts ...yaml.DecodeOption) error {
	decoder := yaml.NewDecoder(config, opts...)

	for i := 1; ; i++ {
		obj := make(map[string]interface{})
		err := decoder.Decode(&obj)
		if err == io.EOF {
			return nil
		} else if err != nil {
			return errors.Wrapf(err, "Could not decode document at position %v", i)
		}

		if err = y.parseDocument(obj); err != nil {
			return err
		}
	}
}

func (y *YamlParser) parseDocument(obj map[string]interface{}) error {
	for name, val := range obj {
		data, err := y.target(name)
		if err != nil {
			return err
		}

		if conv, err := yaml.Marshal(val); err != nil {
			return errors.WithStack(err)
		} else if err := yaml.Unmarshal(conv, data); err != nil {
			return errors.Wrapf(err, "Invalid configuration for '%s'", name)
		}
	}
	return nil
}

// target finds the data struct behind a command or a group
func (y *YamlParser) target(name string) (interface{}, error) {
	var group *flags.Group
	if command := y.parser.Find(name); command != nil {
		group = command.Group
	} else if group = y.parser.Group.Find(name); group == nil {
		return nil, errors.WithStack(&flags.Error{
			Type:    flags.ErrUnknownGroup,
			Message: fmt.Sprintf("could not find command or group '%s'", name),
		})
	}

	// go-flags does not expose the struct a group was registered with
	dataField := reflect.Indirect(reflect.ValueOf(group)).FieldByName("data")
	dataField = reflect.NewAt(dataField.Type(), unsafe.Pointer(dataField.UnsafeAddr())).Elem()
	return dataField.Elem().Interface(), nil
}
