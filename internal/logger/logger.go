package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New builds the service logger. Development gets a human readable console
// writer at debug level, every other environment gets JSON at info level.
func New(environment string) zerolog.Logger {
	return newWithWriter(environment, os.Stdout)
}

func newWithWriter(environment string, out io.Writer) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	level := zerolog.InfoLevel
	if environment == "development" {
		level = zerolog.DebugLevel
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen, NoColor: true}
	}

	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("service", "curtsdirt-site").
		Str("env", environment).
		Logger()
}
