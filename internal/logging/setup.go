package logging

import (
	"io"
	"os"
	"strings"

	"github.com/bokysan/sixbit/internal/args"
	"github.com/bokysan/sixbit/internal/util"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// SetupLogging configures the standard logrus logger from the General options. It is called
// by every command before doing any work.
func SetupLogging() {
	SetVerbosity(args.General.Verbose)
	log.SetFormatter(Formatter(args.General.LogFormat, args.General.LogColor, args.General.LogFullTimestamp))

	if args.General.LogReportCaller {
		log.AddHook(&ContextHook{})
	}
	log.SetReportCaller(args.General.LogReportCaller)

	if w, err := Output(args.General.LogFile); err != nil {
		util.MustErrorNilOrExit(err)
	} else {
		log.SetOutput(w)
	}

	log.Debugf("Verbosity level: %v", VerbosityName())
}

// Formatter returns the logrus formatter for the given format ("json" or "text") and color mode
func Formatter(format, color string, fullTimestamp bool) log.Formatter {
	if strings.EqualFold(strings.TrimSpace(format), "json") {
		return &log.JSONFormatter{
			FieldMap: log.FieldMap{
				log.FieldKeyTime:  "timestamp",
				log.FieldKeyLevel: "@level",
				log.FieldKeyMsg:   "message",
				log.FieldKeyFunc:  "@caller",
			},
		}
	}

	color = strings.TrimSpace(strings.ToLower(color))
	return &log.TextFormatter{
		ForceColors:   color == "yes" || color == "true" || color == "1",
		DisableColors: color == "no" || color == "false" || color == "0",
		FullTimestamp: fullTimestamp,
	}
}

// Output opens the log destination. Empty or "-" means stderr; anything else is a file which
// is appended to. Log lines go straight to the file so nothing is lost when the CLI exits.
func Output(file *string) (io.Writer, error) {
	if file == nil || *file == "" || *file == "-" {
		return os.Stderr, nil
	}
	f, err := os.OpenFile(*file, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return nil, errors.Wrapf(err, "Could not open log file %v", *file)
	}
	return f, nil
}
