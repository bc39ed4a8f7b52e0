// Package output renders the results of the encode and decode commands.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/hokaccha/go-prettyjson"
	"github.com/pkg/errors"
	"golang.org/x/crypto/ssh/terminal"
)

// Format selects how the records are written
type Format string

const (
	Text Format = "text"
	Json Format = "json"
	Yaml Format = "yaml"
)

// Record is the result of encoding or decoding one input
type Record struct {
	Text   string `json:"text"   yaml:"text"`
	Length int    `json:"length" yaml:"length"`
	Armor  string `json:"armor"  yaml:"armor"`
	Data   string `json:"data"   yaml:"data"`
}

// Write writes the records in the given format. With Text (or the empty format) only the
// value selected by line is printed, one record per line.
func Write(w io.Writer, f Format, records []Record, line func(Record) string) error {
	switch f {
	case "", Text:
		for _, r := range records {
			if _, err := fmt.Fprintln(w, line(r)); err != nil {
				return errors.WithStack(err)
			}
		}
		return nil
	case Json:
		formatter := prettyjson.NewFormatter()
		formatter.DisabledColor = !isTerminal(w)
		formatter.Indent = 2
		data, err := formatter.Marshal(records)
		if err != nil {
			return errors.Wrapf(err, "Could not marshal records")
		}
		_, err = fmt.Fprintln(w, string(data))
		return errors.WithStack(err)
	case Yaml:
		data, err := yaml.Marshal(records)
		if err != nil {
			return errors.Wrapf(err, "Could not marshal records")
		}
		_, err = w.Write(data)
		return errors.WithStack(err)
	default:
		return errors.Errorf("Unknown output format: '%s'", f)
	}
}

// isTerminal reports whether w is an interactive terminal, where colors make sense
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && terminal.IsTerminal(int(f.Fd()))
}
