package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Options configures the structured logger.
type Options struct {
	Env    string // development -> console writer; anything else -> JSON
	Level  string // trace, debug, info, warn, error
	Output io.Writer
}

// New builds the process logger and installs it as zerolog's global logger.
func New(opts Options) zerolog.Logger {
	var w io.Writer = opts.Output
	if w == nil {
		w = os.Stdout
	}
	if strings.EqualFold(opts.Env, "development") {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano

	zl := zerolog.New(w).
		Level(ParseLevel(opts.Level)).
		With().
		Timestamp().
		Str("service", "stockroom").
		Logger()

	log.Logger = zl
	return zl
}

func ParseLevel(value string) zerolog.Level {
	s := strings.ToLower(strings.TrimSpace(value))
	if s == "" {
		return zerolog.InfoLevel
	}
	if lvl, err := zerolog.ParseLevel(s); err == nil {
		return lvl
	}
	return zerolog.InfoLevel
}

// Nop is used by tests and tools that do not care about output.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
