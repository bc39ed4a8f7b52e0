package flags

import (
	"strings"
	"testing"

	"github.com/bokysan/sixbit/internal/util/enc"
	"github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/require"
)

type generalOptions struct {
	Verbose   []bool `short:"v" long:"verbose" yaml:"verbose"`
	LogFormat string `long:"log-format" yaml:"logformat"`
}

type encodeOptions struct {
	Armor     enc.Armor `long:"armor" yaml:"armor"`
	Unchecked bool      `long:"unchecked" yaml:"unchecked"`
}

func (e *encodeOptions) Execute(args []string) error {
	return nil
}

func newParser(t *testing.T) (*flags.Parser, *generalOptions, *encodeOptions) {
	general := &generalOptions{}
	encode := &encodeOptions{}

	parser := flags.NewNamedParser("yaml-test", flags.HelpFlag)
	_, err := parser.AddGroup("General", "General options", general)
	require.NoError(t, err, "Could not add general group")
	_, err = parser.AddCommand("encode", "Encode", "Encode text", encode)
	require.NoError(t, err, "Could not add encode command")

	return parser, general, encode
}

func Test_EmptyParse(t *testing.T) {
	file := "testdata/empty.yml"

	parser, _, encode := newParser(t)
	err := NewYamlParser(parser).ParseFile(file)

	require.NoErrorf(t, err, "Parsing not successful: %v", file)
	require.Equal(t, enc.Armor(""), encode.Armor)
}

func Test_GeneralParse(t *testing.T) {
	file := "testdata/general.yml"

	parser, general, encode := newParser(t)
	err := NewYamlParser(parser).ParseFile(file)
	require.NoErrorf(t, err, "Parsing not successful: %v", file)

	require.Len(t, general.Verbose, 2, "Invalid reading of list value")
	require.Equal(t, "json", general.LogFormat, "Invalid reading of string value")
	require.Equal(t, "Base91", encode.Armor.Encoder().Name(), "Invalid reading of armor")
	require.True(t, encode.Unchecked, "Invalid reading of boolean value")
}

func Test_MultipleDocuments(t *testing.T) {
	parser, _, encode := newParser(t)
	err := NewYamlParser(parser).ParseFile("testdata/override.yml")
	require.NoError(t, err)
	require.Equal(t, enc.Armor("Base91"), encode.Armor, "Later documents must override earlier ones")
}

func Test_Reader(t *testing.T) {
	parser, _, encode := newParser(t)
	err := NewYamlParser(parser).Parse(strings.NewReader("encode:\n  armor: hex\n"))
	require.NoError(t, err)
	require.Equal(t, enc.Armor("Hex"), encode.Armor)
}

func Test_InvalidArmor(t *testing.T) {
	parser, _, _ := newParser(t)
	err := NewYamlParser(parser).ParseFile("testdata/invalid_armor.yml")
	require.Error(t, err)
	require.Contains(t, err.Error(), "encode")
}

func Test_InvalidNoCommand(t *testing.T) {
	file := "testdata/invalid_no_command.yml"

	parser, _, _ := newParser(t)
	err := NewYamlParser(parser).ParseFile(file)
	require.Errorf(t, err, "Parsing not successful, expected error but did not get one: %v", file)
}

func Test_MissingFile(t *testing.T) {
	parser, _, _ := newParser(t)
	require.Error(t, NewYamlParser(parser).ParseFile("testdata/does-not-exist.yml"))
}
