package version

import (
	"fmt"
	"io"
	"runtime"

	"github.com/bokysan/sixbit/internal/version"
	"github.com/bokysan/sixbit/sixbit"
	"github.com/k0kubun/go-ansi"
)

const (
	Bold           = "\x1b[1m"
	Reset          = "\x1b[0m"
	LightGray      = "\x1b[37m"
	DarkGray       = "\x1b[90m"
	White          = "\x1b[97m"
	BackgroundBlue = "\x1b[44m"
)

// Command prints the build information
type Command struct {
	Out io.Writer
}

func NewCommand() *Command {
	return &Command{
		Out: ansi.NewAnsiStdout(),
	}
}

func (i *Command) String() string {
	return "Version details"
}

//goland:noinspection GoUnhandledErrorResult
func (i *Command) Execute(args []string) error {
	out := i.Out
	if out == nil {
		out = ansi.NewAnsiStdout()
	}

	PrintVersion(out)
	if version.GitTag != "" {
		fmt.Fprintf(out, DarkGray+" Git tag     "+White+"%+v"+Reset+"\n", version.GitTag)
	}
	if version.GitBranch != "" {
		fmt.Fprintf(out, DarkGray+" Git branch  "+White+"%+v"+Reset+"\n", version.GitBranch)
	}
	if version.GitState != "" {
		fmt.Fprintf(out, DarkGray+" Git state   "+White+"%+v"+Reset+"\n", version.GitState)
	}
	goVersion := version.GoVersion
	if goVersion == "" {
		goVersion = runtime.Version()
	}
	fmt.Fprintf(out, DarkGray+" Go version  "+White+"%+v"+Reset+"\n", goVersion)
	fmt.Fprintf(out, DarkGray+" Alphabet    "+White+"%q"+Reset+"\n", sixbit.Alphabet)
	return nil
}

//goland:noinspection GoUnhandledErrorResult
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, Bold+BackgroundBlue+
		LightGray+" SIXBIT - DEC 6-bit text codec "+White+"%s"+LightGray+" "+Reset+"\n"+
		DarkGray+" Built on    "+White+"%+v\n"+
		DarkGray+" Git version "+White+"%+v"+Reset+"\n",
		version.AppVersion(), version.BuildDate, version.GitCommit)
}
