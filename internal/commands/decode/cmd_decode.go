package decode

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

// Command reads armored SIXBIT data and prints the text it carries
type Command struct {
	Count     *int          `yaml:"-"         short:"n" long:"count"                                description:"Number of characters in the data. Without it the maximum that fits is used, which may add trailing spaces."`
	Armor     enc.Armor     `yaml:"armor"     short:"a" long:"armor"     env:"SIXBIT_ARMOR"     description:"How the packed bytes are written: hex (default), base64, base64u, base32, base85, base91, base128 or raw"`
	Output    output.Format `yaml:"output"    short:"o" long:"output"    env:"SIXBIT_OUTPUT"    description:"Output format (default text)" choice:"text" choice:"json" choice:"yaml"`
	Unchecked bool          `yaml:"unchecked" short:"u" long:"unchecked" env:"SIXBIT_UNCHECKED" description:"Do not check that the data length matches the count. Missing bytes decode as spaces."`

	In  io.Reader `yaml:"-" no-flag:"true"`
	Out io.Writer `yaml:"-" no-flag:"true"`
}

func NewCommand() *Command {
	return &Command{
		In:  os.Stdin,
		Out: os.Stdout,
	}
}

// Decode unpacks every input. Inputs which fail are skipped; all the failures are returned
// together after the whole batch has been processed.
func (c *Command) Decode(inputs []string) ([]output.Record, error) {
	var errs error
	armor := c.Armor.Encoder()
	records := make([]output.Record, 0, len(inputs))

	for i, in := range inputs {
		packed, err := armor.Decode(in)
		if err != nil {
			errs = multierror.Append(errs, errors.Wrapf(err, "Could not read %v data #%d", armor.Name(), i+1))
			continue
		}

		n := sixbit.DecodedLen(len(packed))
		if c.Count != nil {
			n = *c.Count
		}

		if log.IsLevelEnabled(log.DebugLevel) {
			log.Debugf("Unpacking %d characters from %d bytes:\n%s", n, len(packed), spew.Sdump(packed))
		}

		var text string
		if c.Unchecked {
			text = sixbit.DecodeUnchecked(packed, n)
		} else if text, err = sixbit.Decode(packed, n); err != nil {
			errs = multierror.Append(errs, errors.Wrapf(err, "Could not decode data #%d", i+1))
			continue
		}

		records = append(records, output.Record{
			Text:   text,
			Length: len(text),
			Armor:  armor.Name(),
			Data:   in,
		})
	}

	return records, errs
}

func (c *Command) Execute(args []string) error {
	logging.SetupLogging()

	inputs := args
	if len(inputs) == 0 {
		log.Debugf("No arguments given, reading data from stdin")
		var err error
		if inputs, err = output.ReadLines(c.in()); err != nil {
			return err
		}
	}

	records, errs := c.Decode(inputs)
	if err := output.Write(c.out(), c.Output, records, func(r output.Record) string { return r.Text }); err != nil {
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
