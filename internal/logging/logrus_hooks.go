package logging

import (
	"path"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
)

// ContextHook adds the source location (file, line, func) of the logging call to every entry
type ContextHook struct{}

// Levels defines which logging levels fire the hook. In our case, all levels.
func (hook ContextHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire walks up the call stack past logrus and this package and records the first caller
// found outside of them.
func (hook ContextHook) Fire(entry *logrus.Entry) error {
	pcs := make([]uintptr, 16)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if !isLoggingFrame(frame.Function) {
			entry.Data["file"] = path.Base(frame.File)
			entry.Data["line"] = frame.Line
			entry.Data["func"] = path.Base(frame.Function)
			break
		}
		if !more {
			break
		}
	}
	return nil
}

func isLoggingFrame(function string) bool {
	return strings.Contains(function, "github.com/sirupsen/logrus") ||
		strings.Contains(function, "logging.ContextHook.") ||
		strings.Contains(function, "logging.(*ContextHook).")
}
