// Package logger configures the process-wide console logger.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New creates a console logger writing to stdout.
func New() zerolog.Logger {
	return NewWithWriter(os.Stdout)
}

// NewWithWriter creates a console logger writing to w.
func NewWithWriter(w io.Writer) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).With().Timestamp().Logger().Level(levelFromEnv())
}

func levelFromEnv() zerolog.Level {
	switch strings.ToLower(os.Getenv("RELEVE_LOG_LEVEL")) {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
