// Package util contains the helpers shared by the sixbit commands.
package util

import (
	"errors"
	"os"

	"github.com/bokysan/sixbit/sixbit"
	"github.com/jessevdk/go-flags"
	log "github.com/sirupsen/logrus"
)

const (
	// ErrInvalidData is the exit code when the input could not be encoded or decoded
	ErrInvalidData = 65
	// ErrGeneric is the exit code for all other failures
	ErrGeneric = 99
)

// ExitCode returns the process exit code for the error. Flags errors exit with their
// flags.ErrorType, codec errors with ErrInvalidData and everything else with ErrGeneric.
// Help requests are not errors and exit with 0.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var flagsError *flags.Error
	if errors.As(err, &flagsError) {
		if flagsError.Type == flags.ErrHelp {
			return 0
		}
		return int(flagsError.Type)
	}

	if errors.Is(err, sixbit.ErrInvalidCharacter) || errors.Is(err, sixbit.ErrInvalidBytesLength) {
		return ErrInvalidData
	}
	return ErrGeneric
}

// MustErrorNilOrExit will check the provided argument. If it's `nil` it will simply return. If it's
// not `nil`, it will log the error as `log.FatalLevel` and exit immediately with the code returned
// by ExitCode.
func MustErrorNilOrExit(err error) {
	if err == nil {
		return
	}

	code := ExitCode(err)
	if code == 0 {
		os.Exit(0)
		return
	}

	log.StandardLogger().WithError(err).Logf(log.FatalLevel, "Error: %+v", err)
	log.Exit(code)
}
