// Package logger provides verbose logging for the SmartStudy CLI.
// When verbose mode is enabled via the --verbose flag, debug messages
// are printed to stderr so users can follow how a plan or an extraction
// was derived.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Logger writes levelled messages when verbose mode is on.
// The zero value is silent and writes to stderr once enabled.
type Logger struct {
	mu      sync.RWMutex
	verbose bool
	output  io.Writer
}

// New creates a logger writing to w. A nil w means os.Stderr.
func New(w io.Writer) *Logger {
	return &Logger{output: w}
}

// std is the process-wide logger used by the package-level helpers.
var std = New(nil)

// SetVerbose enables or disables verbose logging.
func (l *Logger) SetVerbose(v bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func (l *Logger) IsVerbose() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.verbose
}

// SetOutput sets the output writer. Useful for testing.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.output = w
}

func (l *Logger) printf(format string, args ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if !l.verbose {
		return
	}
	w := l.output
	if w == nil {
		w = os.Stderr
	}
	fmt.Fprintf(w, format, args...)
}

// Debug prints a debug message.
func (l *Logger) Debug(format string, args ...any) { l.printf("[DEBUG] "+format+"\n", args...) }

// Info prints an informational message.
func (l *Logger) Info(format string, args ...any) { l.printf("[INFO] "+format+"\n", args...) }

// Warn prints a warning.
func (l *Logger) Warn(format string, args ...any) { l.printf("[WARN] "+format+"\n", args...) }

// Section prints a section header.
func (l *Logger) Section(name string) { l.printf("\n=== %s ===\n", name) }

// SetVerbose enables or disables verbose logging on the default logger.
func SetVerbose(v bool) { std.SetVerbose(v) }

// IsVerbose reports whether the default logger is verbose.
func IsVerbose() bool { return std.IsVerbose() }

// SetOutput redirects the default logger.
// Defaults to os.Stderr.
func SetOutput(w io.Writer) { std.SetOutput(w) }

// Debug prints a debug message on the default logger.
func Debug(format string, args ...any) { std.Debug(format, args...) }

// Info prints an informational message on the default logger.
func Info(format string, args ...any) { std.Info(format, args...) }

// Warn prints a warning on the default logger.
func Warn(format string, args ...any) { std.Warn(format, args...) }

// Section prints a section header on the default logger.
func Section(name string) { std.Section(name) }
