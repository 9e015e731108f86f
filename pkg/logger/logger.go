package logger

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New builds a structured logger with RFC3339 timestamps.
// LOG_LEVEL picks the minimum level (debug, info, warn, error); default info.
func New() zerolog.Logger {
	return zerolog.New(os.Stdout).
		Level(parseLevel(os.Getenv("LOG_LEVEL"))).
		With().Timestamp().Logger().
		Output(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		})
}

func parseLevel(raw string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
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
