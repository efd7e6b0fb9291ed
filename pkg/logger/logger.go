// Package logger owns the process-wide zerolog instance. Services and
// handlers log through the package-level helpers so the output format is
// decided once, at startup, by Init.
package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

var Log zerolog.Logger

// Init configures the global logger for the given environment. Development
// gets human-readable console lines with caller info; everything else emits
// one JSON object per line for log shippers.
func Init(env string) {
	zerolog.TimeFieldFormat = time.RFC3339

	if env == "development" {
		Log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}).
			With().
			Timestamp().
			Caller().
			Logger()
		return
	}

	Log = zerolog.New(os.Stdout).
		With().
		Timestamp().
		Logger()
}

func Info() *zerolog.Event {
	return Log.Info()
}

func Warn() *zerolog.Event {
	return Log.Warn()
}

func Error() *zerolog.Event {
	return Log.Error()
}

func Debug() *zerolog.Event {
	return Log.Debug()
}

// Fatal logs and then exits the process; reserved for unrecoverable startup
// failures.
func Fatal() *zerolog.Event {
	return Log.Fatal()
}
