package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func Test_Level(t *testing.T) {
	require.Equal(t, log.PanicLevel, Level(-1))
	require.Equal(t, log.PanicLevel, Level(0))
	require.Equal(t, log.ErrorLevel, Level(2))
	require.Equal(t, log.InfoLevel, Level(4))
	require.Equal(t, log.TraceLevel, Level(6))
	require.Equal(t, log.TraceLevel, Level(12))
}

func Test_SetVerbosity(t *testing.T) {
	defer log.SetLevel(log.GetLevel())

	SetVerbosity([]bool{true, true, true, true, true})
	require.Equal(t, log.DebugLevel, log.GetLevel())
	require.Equal(t, "DEBUG", VerbosityName())

	SetVerbosity(nil)
	require.Equal(t, "PANIC", VerbosityName())
}

func Test_Formatter(t *testing.T) {
	_, ok := Formatter("json", "auto", false).(*log.JSONFormatter)
	require.True(t, ok)

	text, ok := Formatter("text", "no", true).(*log.TextFormatter)
	require.True(t, ok)
	require.True(t, text.DisableColors)
	require.False(t, text.ForceColors)
	require.True(t, text.FullTimestamp)

	text = Formatter("", " YES ", false).(*log.TextFormatter)
	require.True(t, text.ForceColors)
}

func Test_OutputStderr(t *testing.T) {
	w, err := Output(nil)
	require.NoError(t, err)
	require.Equal(t, os.Stderr, w)

	dash := "-"
	w, err = Output(&dash)
	require.NoError(t, err)
	require.Equal(t, os.Stderr, w)
}

func Test_OutputFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "sixbit.log")
	w, err := Output(&file)
	require.NoError(t, err)

	_, err = w.Write([]byte("first\n"))
	require.NoError(t, err)
	require.NoError(t, w.(*os.File).Close())

	w, err = Output(&file)
	require.NoError(t, err)
	_, err = w.Write([]byte("second\n"))
	require.NoError(t, err)
	require.NoError(t, w.(*os.File).Close())

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	require.Equal(t, "first\nsecond\n", string(data))

	missing := filepath.Join(t.TempDir(), "no", "such", "dir", "x.log")
	_, err = Output(&missing)
	require.Error(t, err)
}

func Test_ContextHook(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := log.New()
	logger.SetOutput(buf)
	logger.SetFormatter(&log.JSONFormatter{})
	logger.AddHook(&ContextHook{})

	logger.Info("hello")
	require.Contains(t, buf.String(), `"file":"logging_test.go"`)
	require.Contains(t, buf.String(), "Test_ContextHook")
}
