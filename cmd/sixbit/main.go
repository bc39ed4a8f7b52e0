package main

import (
	"fmt"
	"os"
	"path"

	"github.com/bokysan/sixbit/internal/args"
	"github.com/bokysan/sixbit/internal/commands/decode"
	"github.com/bokysan/sixbit/internal/commands/encode"
	"github.com/bokysan/sixbit/internal/commands/version"
	sbFlags "github.com/bokysan/sixbit/internal/flags"
	"github.com/bokysan/sixbit/internal/util"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

const (
	// ErrConfigFileDoesNotExist is raised when configuration file cannot be found
	ErrConfigFileDoesNotExist = flags.ErrInvalidTag + 1
)

// Sixbit is the main executable
type Sixbit struct {
	parser *flags.Parser
	encode *encode.Command
	decode *decode.Command
}

// NewSixbit will create a new instance of Sixbit and initialize the parser
func NewSixbit() *Sixbit {
	executablePath := path.Base(os.Args[0])

	sb := &Sixbit{
		parser: flags.NewNamedParser(executablePath, flags.HelpFlag|flags.PrintErrors),
		encode: encode.NewCommand(),
		decode: decode.NewCommand(),
	}

	sb.setupGeneral()
	sb.setupVersion()
	sb.setupEncode()
	sb.setupDecode()

	return sb
}

// setupGeneral will configure general options
func (sb *Sixbit) setupGeneral() {
	if _, err := sb.parser.AddGroup("General", "General options", &args.General); err != nil {
		util.MustErrorNilOrExit(errors.WithStack(err))
	}
}

// setupVersion adds the `version` command
func (sb *Sixbit) setupVersion() {
	_, err := sb.parser.AddCommand(
		"version",
		"Print the version",
		"Print the application version and exit",
		version.NewCommand(),
	)
	util.MustErrorNilOrExit(err)
}

// setupEncode adds the `encode` command
func (sb *Sixbit) setupEncode() {
	_, err := sb.parser.AddCommand(
		"encode",
		"Pack text into SIXBIT",
		"Pack each argument (or each line of stdin, if there are no arguments) into SIXBIT and print it armored. "+
			"Only ASCII 32-95 (space, digits, upper case letters and most punctuation) can be encoded.",
		sb.encode,
	)
	util.MustErrorNilOrExit(err)
}

// setupDecode adds the `decode` command
func (sb *Sixbit) setupDecode() {
	_, err := sb.parser.AddCommand(
		"decode",
		"Unpack SIXBIT data",
		"Read each armored argument (or each line of stdin, if there are no arguments) and print the text it carries.",
		sb.decode,
	)
	util.MustErrorNilOrExit(err)
}

// configure reads the YAML configuration file given with `--config`
func (sb *Sixbit) configure(file string) error {
	if _, err := os.Stat(file); os.IsNotExist(err) {
		return &flags.Error{
			Type:    ErrConfigFileDoesNotExist,
			Message: fmt.Sprintf("Configuration file %s does not exist.", file),
		}
	}

	args.General.ConfigurationFilePath = file
	return sbFlags.NewYamlParser(sb.parser).ParseFile(file)
}

// main starts sixbit and reads the configuration file
func main() {
	sixbit := NewSixbit()
	args.General.ConfigurationFile = sixbit.configure

	_, err := sixbit.parser.Parse()
	util.MustErrorNilOrExit(err)
}
