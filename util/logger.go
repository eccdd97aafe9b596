package util

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	loggerMu  sync.RWMutex
	appLogger = zerolog.New(os.Stdout).With().Timestamp().Logger()
)

// NewLogger builds the process logger. Development gets a human readable console writer,
// every other environment gets JSON lines.
func NewLogger(env string, out io.Writer) zerolog.Logger {
	if out == nil {
		out = os.Stdout
	}
	level := zerolog.InfoLevel
	if env == "development" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
		level = zerolog.DebugLevel
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// SetLogger replaces the process logger.
func SetLogger(l zerolog.Logger) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	appLogger = l
}

// Logger returns the process logger.
func Logger() zerolog.Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return appLogger
}
