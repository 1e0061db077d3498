// Package log provides leveled printf-style logging backed by zerolog.
package log

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	logger zerolog.Logger
	mu     sync.RWMutex
)

func init() {
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		With().Timestamp().Logger()
}

// ParseLevel parses a log level string into a zerolog.Level.
// Valid log levels are: trace, debug, info, warn, error.
func ParseLevel(level string) (zerolog.Level, error) {
	return zerolog.ParseLevel(level)
}

// SetLevel sets the minimum level emitted by the package logger.
func SetLevel(level zerolog.Level) {
	mu.Lock()
	defer mu.Unlock()
	logger = logger.Level(level)
}

func get() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

func Trace(format string, v ...interface{}) {
	l := get()
	l.Trace().Msgf(format, v...)
}

func Debug(format string, v ...interface{}) {
	l := get()
	l.Debug().Msgf(format, v...)
}

func Info(format string, v ...interface{}) {
	l := get()
	l.Info().Msgf(format, v...)
}

func Warn(format string, v ...interface{}) {
	l := get()
	l.Warn().Msgf(format, v...)
}

func Error(format string, v ...interface{}) {
	l := get()
	l.Error().Msgf(format, v...)
}
