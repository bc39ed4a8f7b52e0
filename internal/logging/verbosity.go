package logging

import (
	log "github.com/sirupsen/logrus"
)

// SetVerbosity defines the verbosity level of the application. Each `-v` raises the level by
// one, starting at panic; six or more give trace.
func SetVerbosity(v []bool) {
	log.SetLevel(Level(len(v)))
}

// Level maps the number of `-v` flags to a logrus level
func Level(count int) log.Level {
	verbosity := log.Level(count)
	if count < 0 {
		verbosity = log.PanicLevel
	} else if verbosity > log.TraceLevel {
		verbosity = log.TraceLevel
	}
	return verbosity
}

func VerbosityName() string {
	switch log.GetLevel() {
	case log.PanicLevel:
		return "PANIC"
	case log.FatalLevel:
		return "FATAL"
	case log.ErrorLevel:
		return "ERROR"
	case log.WarnLevel:
		return "WARN"
	case log.InfoLevel:
		return "INFO"
	case log.DebugLevel:
		return "DEBUG"
	default:
		return "TRACE"
	}
}
