package encode

import (
	"io"
	"os"

	"github.com/bokysan/sixbit/internal/commands/output"
	"github.com/bokysan/sixbit/internal/logging"
	"github.com/bokysan/sixbit/internal/util/enc"
	"github.com/bokysan/sixbit/sixbit"
	"github.com/davecgh/go-spew/spew"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Command packs text into SIXBIT and prints it armored
type Command struct {
	Armor     enc.Armor     `yaml:"armor"     short:"a" long:"armor"     env:"SIXBIT_ARMOR"     description:"How to print the packed bytes: hex (default), base64, base64u, base32, base85, base91, base128 or raw"`
	Output    output.Format `yaml:"output"    short:"o" long:"output"    env:"SIXBIT_OUTPUT"    description:"Output format (default text)" choice:"text" choice:"json" choice:"yaml"`
	Unchecked bool          `yaml:"unchecked" short:"u" long:"unchecked" env:"SIXBIT_UNCHECKED" description:"Do not validate the input. Characters outside of ASCII 32-95 are silently mangled."`

	In  io.Reader `yaml:"-" no-flag:"true"`
	Out io.Writer `yaml:"-" no-flag:"true"`
}

func NewCommand() *Command {
	return &Command{
		In:  os.Stdin,
		Out: os.Stdout,
	}
}

// Encode packs every input. Inputs which fail are skipped; all the failures are returned
// together after the whole batch has been processed.
func (c *Command) Encode(inputs []string) ([]output.Record, error) {
	var errs error
	armor := c.Armor.Encoder()
	records := make([]output.Record, 0, len(inputs))

	for i, in := range inputs {
		var packed []byte
		var n int
		if c.Unchecked {
			packed, n = sixbit.EncodeUnchecked(in)
		} else {
			var err error
			if packed, n, err = sixbit.Encode(in); err != nil {
				errs = multierror.Append(errs, errors.Wrapf(err, "Could not encode input #%d", i+1))
				continue
			}
		}

		if log.IsLevelEnabled(log.DebugLevel) {
			log.Debugf("Packed %q (%d characters) into %d bytes:\n%s", in, n, len(packed), spew.Sdump(packed))
		}

		records = append(records, output.Record{
			Text:   in,
			Length: n,
			Armor:  armor.Name(),
			Data:   armor.Encode(packed),
		})
	}

	return records, errs
}

func (c *Command) Execute(args []string) error {
	logging.SetupLogging()

	inputs := args
	if len(inputs) == 0 {
		log.Debugf("No arguments given, reading input from stdin")
		var err error
		if inputs, err = output.ReadLines(c.in()); err != nil {
			return err
		}
	}

	records, errs := c.Encode(inputs)
	if err := output.Write(c.out(), c.Output, records, func(r output.Record) string { return r.Data }); err != nil {
		errs = multierror.Append(errs, err)
	}
	return errs
}

func (c *Command) in() io.Reader {
	if c.In == nil {
		return os.Stdin
	}
	return c.In
}

func (c *Command) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}
