package cargobump

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Logger is a wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// LoggerOptions contains options for creating a logger.
type LoggerOptions struct {
	Level  string
	Format string // "pretty" or "json"
	Output io.Writer
}

// NewLogger creates a new logger with the given options.
func NewLogger(opts LoggerOptions) *Logger {
	var output io.Writer = os.Stderr
	if opts.Output != nil {
		output = opts.Output
	}

	if opts.Format != "json" {
		output = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: time.Kitchen,
		}
	}

	logger := zerolog.New(output).
		Level(ParseLogLevel(opts.Level)).
		With().
		Timestamp().
		Logger()

	return &Logger{Logger: logger}
}

// NopLogger returns a logger that discards everything.
func NopLogger() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}

// ParseLogLevel maps a level name to a zerolog level. Unknown names mean warn.
func ParseLogLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.WarnLevel
	}
}

// WithComponent returns a logger with a component field.
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		Logger: l.Logger.With().Str("component", component).Logger(),
	}
}

// WithMember returns a logger with a member field.
func (l *Logger) WithMember(member string) *Logger {
	return &Logger{
		Logger: l.Logger.With().Str("member", member).Logger(),
	}
}
