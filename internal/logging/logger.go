// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// defaultLogger is the package-level default logger instance.
//
//nolint:gochecknoglobals // Package-level logger is intentional for convenience
var (
	defaultLogger     *log.Logger
	defaultLoggerOnce sync.Once
)

func getDefaultLogger() *log.Logger {
	defaultLoggerOnce.Do(func() {
		defaultLogger = New("info")
	})
	return defaultLogger
}

// New creates a new text-format logger with the specified level.
// Valid levels: "debug", "info", "warn", "error".
func New(level string) *log.Logger {
	return NewWithFormat(level, "text")
}

// NewWithFormat creates a new logger with the specified level and output
// format. Valid formats: "text", "json". Unknown formats fall back to text.
func NewWithFormat(level, format string) *log.Logger {
	opts := log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
	}
	if strings.EqualFold(format, "json") {
		opts.Formatter = log.JSONFormatter
		opts.ReportTimestamp = true
	}

	logger := log.NewWithOptions(os.Stderr, opts)
	setLoggerLevel(logger, level)

	return logger
}

// NewInteractive creates a logger for user-facing terminal sessions:
// info level, no timestamps, no caller annotations.
func NewInteractive() *log.Logger {
	return New("info")
}

// NewNop creates a logger that discards everything written to it.
func NewNop() *log.Logger {
	logger := log.New(io.Discard)
	logger.SetLevel(log.FatalLevel)
	return logger
}

func setLoggerLevel(logger *log.Logger, level string) {
	switch strings.ToLower(level) {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "info":
		logger.SetLevel(log.InfoLevel)
	case "warn", "warning":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}
}

// Default returns the package-level default logger.
func Default() *log.Logger {
	return getDefaultLogger()
}

// SetDefault sets the package-level default logger.
func SetDefault(logger *log.Logger) {
	defaultLogger = logger
}

// SetLevel updates the log level of the default logger.
func SetLevel(level string) {
	setLoggerLevel(getDefaultLogger(), level)
}
