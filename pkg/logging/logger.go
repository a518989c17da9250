// Package logging provides the diagnostic logger for the memory check.
// Diagnostics go to stderr so they never contaminate the report line the
// monitoring framework parses from stdout; without --verbose everything is
// discarded.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
)

// Logger is the interface for diagnostic logging.
type Logger interface {
	// Debug logs a debug message
	Debug(format string, args ...interface{})

	// Info logs an info message
	Info(format string, args ...interface{})

	// Warn logs a warning message
	Warn(format string, args ...interface{})

	// Error logs an error message
	Error(format string, args ...interface{})
}

// StderrLogger writes prefixed diagnostics to stderr.
type StderrLogger struct {
	prefix string
	logger *log.Logger
}

// NewStderrLogger creates a logger writing to stderr.
func NewStderrLogger(prefix string) *StderrLogger {
	return &StderrLogger{
		prefix: prefix,
		logger: log.New(os.Stderr, "", 0),
	}
}

// SetOutput sets the output writer.
func (l *StderrLogger) SetOutput(w io.Writer) {
	l.logger.SetOutput(w)
}

func (l *StderrLogger) Debug(format string, args ...interface{}) {
	l.log("DEBUG", format, args...)
}

func (l *StderrLogger) Info(format string, args ...interface{}) {
	l.log("INFO", format, args...)
}

func (l *StderrLogger) Warn(format string, args ...interface{}) {
	l.log("WARN", format, args...)
}

func (l *StderrLogger) Error(format string, args ...interface{}) {
	l.log("ERROR", format, args...)
}

func (l *StderrLogger) log(level, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if l.prefix != "" {
		l.logger.Printf("[%s] [%s] %s", l.prefix, level, msg)
	} else {
		l.logger.Printf("[%s] %s", level, msg)
	}
}

// NopLogger is a no-op logger that discards all messages.
type NopLogger struct{}

func (l *NopLogger) Debug(format string, args ...interface{}) {}
func (l *NopLogger) Info(format string, args ...interface{})  {}
func (l *NopLogger) Warn(format string, args ...interface{})  {}
func (l *NopLogger) Error(format string, args ...interface{}) {}

// FromVerbose creates a logger based on the verbose flag.
func FromVerbose(prefix string, verbose bool) Logger {
	if verbose {
		return NewStderrLogger(prefix)
	}
	return &NopLogger{}
}

// Ensure implementations satisfy the interface
var (
	_ Logger = (*StderrLogger)(nil)
	_ Logger = (*NopLogger)(nil)
)
