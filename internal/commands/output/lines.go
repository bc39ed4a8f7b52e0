package output

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// ReadLines returns the lines of r without the line terminators. Empty lines are kept, as an
// empty text is a valid input.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return lines, errors.Wrapf(err, "Could not read input")
	}
	return lines, nil
}
