package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger wraps zerolog.Logger with application-specific methods
type Logger struct {
	zerolog.Logger
}

// New creates a new Logger instance writing to stdout
func New(level string, format string) *Logger {
	return NewWithWriter(level, format, os.Stdout)
}

// NewWithWriter creates a new Logger instance writing to w
func NewWithWriter(level string, format string, w io.Writer) *Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	var logger zerolog.Logger

	if format == "text" || format == "console" {
		// Human-readable output for development
		output := zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
		}
		logger = zerolog.New(output).With().Timestamp().Caller().Logger()
	} else {
		// JSON output for production
		logger = zerolog.New(w).With().Timestamp().Caller().Logger()
	}

	return &Logger{Logger: logger.Level(lvl)}
}

// Nop returns a logger that discards everything
func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}

// WithRequestID returns a new logger with the request ID attached
func (l *Logger) WithRequestID(requestID string) *Logger {
	return &Logger{
		Logger: l.With().Str("request_id", requestID).Logger(),
	}
}

// WithComponent returns a new logger with the component name attached
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		Logger: l.With().Str("component", component).Logger(),
	}
}

// HTTPRequest logs an HTTP request
func (l *Logger) HTTPRequest(method, path string, statusCode int, duration time.Duration, clientIP string) {
	l.Info().
		Str("method", method).
		Str("path", path).
		Int("status", statusCode).
		Dur("duration", duration).
		Str("client_ip", clientIP).
		Msg("HTTP request")
}

// GenerationEvent describes one generation run without the password itself
type GenerationEvent struct {
	Letters          int
	Symbols          int
	Numbers          int
	ExcludeAmbiguous bool
	MinEntropyBits   float64
	EntropyBits      float64
	Secure           bool
	Attempts         int
}

// Generation logs the outcome of a generation run. Runs that ended without
// an accepted candidate are logged at warn level.
func (l *Logger) Generation(ev GenerationEvent) {
	event := l.Info()
	msg := "password generated"
	if !ev.Secure {
		event = l.Warn()
		msg = "attempt limit reached without a secure password"
	}

	event.
		Int("letters", ev.Letters).
		Int("symbols", ev.Symbols).
		Int("numbers", ev.Numbers).
		Bool("exclude_ambiguous", ev.ExcludeAmbiguous).
		Float64("min_entropy_bits", ev.MinEntropyBits).
		Float64("entropy_bits", ev.EntropyBits).
		Bool("secure", ev.Secure).
		Int("attempts", ev.Attempts).
		Msg(msg)
}
