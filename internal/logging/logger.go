// Package logging provides unified logging functionality for cursorignore.
package logging

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/dongho-jung/cursorignore/internal/constants"
)

// Logger provides logging capabilities for cursorignore.
// Nothing is ever written to stdout; it is reserved for the status line.
type Logger interface {
	// Debug outputs debug information (only when CURSORIGNORE_DEBUG=1)
	Debug(format string, args ...interface{})

	// Info writes informational message to log file
	Info(format string, args ...interface{})

	// Warn outputs warning to stderr and log file
	Warn(format string, args ...interface{})

	// SetScript sets the current command name for context
	SetScript(script string)

	// StartTimer starts a timer for measuring operation duration
	StartTimer(operation string) *Timer

	// Close closes the log file
	Close() error
}

// Timer represents a timer for measuring operation duration
type Timer struct {
	operation string
	start     time.Time
	logger    *streamLogger
}

// Stop stops the timer and logs the elapsed time
func (t *Timer) Stop() time.Duration {
	elapsed := time.Since(t.start)
	if t.logger != nil {
		t.logger.logWithLevel("INFO", "%s completed in %v", t.operation, elapsed)
	}
	return elapsed
}

// StopWithResult stops the timer and logs the result
func (t *Timer) StopWithResult(success bool, detail string) time.Duration {
	elapsed := time.Since(t.start)
	if t.logger != nil {
		status := "completed"
		level := "INFO"
		if !success {
			status = "failed"
			level = "WARN"
		}
		if detail != "" {
			t.logger.logWithLevel(level, "%s %s in %v: %s", t.operation, status, elapsed, detail)
		} else {
			t.logger.logWithLevel(level, "%s %s in %v", t.operation, status, elapsed)
		}
	}
	return elapsed
}

type streamLogger struct {
	file   io.WriteCloser
	stderr io.Writer
	script string
	debug  bool
	mu     sync.Mutex
}

// New creates a new Logger that also appends to the specified file.
func New(logPath string, debug bool) (Logger, error) {
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return &streamLogger{
		file:   file,
		stderr: os.Stderr,
		debug:  debug,
	}, nil
}

// NewStdout creates a logger that only outputs to stderr.
func NewStdout(debug bool) Logger {
	return NewWriter(os.Stderr, debug)
}

// NewWriter creates a logger whose console output goes to w.
func NewWriter(w io.Writer, debug bool) Logger {
	return &streamLogger{
		stderr: w,
		debug:  debug,
	}
}

func (l *streamLogger) SetScript(script string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.script = script
}

// getCaller returns the caller function name (skipping internal logging frames)
func getCaller(skip int) string {
	pc, _, _, ok := runtime.Caller(skip)
	if !ok {
		return "unknown"
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "unknown"
	}
	name := fn.Name()
	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		name = name[idx+1:]
	}
	if idx := strings.Index(name, "."); idx >= 0 {
		name = name[idx+1:]
	}
	return name
}

// writeFileLine appends one formatted entry to the log file.
// Caller must hold l.mu.
func (l *streamLogger) writeFileLine(level, caller, msg string) {
	if l.file == nil {
		return
	}
	timestamp := time.Now().Format("06-01-02 15:04:05.0")
	// Format: [timestamp] [level] [context] [caller] message
	line := fmt.Sprintf("[%s] [%-5s] [%s] [%s] %s\n", timestamp, level, l.script, caller, msg)
	if _, err := io.WriteString(l.file, line); err != nil {
		fmt.Fprintf(l.stderr, "Failed to write to log file: %v\n", err)
	}
}

// logWithLevel writes a log entry with the specified level
func (l *streamLogger) logWithLevel(level string, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return
	}
	l.writeFileLine(level, getCaller(3), fmt.Sprintf(format, args...))
}

func (l *streamLogger) Debug(format string, args ...interface{}) {
	if !l.debug {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	msg := fmt.Sprintf(format, args...)
	caller := getCaller(2)
	fmt.Fprintf(l.stderr, "[DEBUG] [%s] %s\n", caller, msg)
	l.writeFileLine("DEBUG", caller, msg)
}

func (l *streamLogger) Info(format string, args ...interface{}) {
	l.logWithLevel("INFO", format, args...)
}

func (l *streamLogger) Warn(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(l.stderr, "Warning: %s\n", msg)
	l.writeFileLine("WARN", getCaller(2), msg)
}

func (l *streamLogger) StartTimer(operation string) *Timer {
	if l.debug {
		l.Debug("%s started", operation)
	} else if l.file != nil {
		l.logWithLevel("INFO", "%s started", operation)
	}
	return &Timer{
		operation: operation,
		start:     time.Now(),
		logger:    l,
	}
}

func (l *streamLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// Global logger instance
var globalLogger = NewStdout(os.Getenv(constants.EnvDebug) == "1")

// SetGlobal sets the global logger instance.
func SetGlobal(l Logger) {
	globalLogger = l
}

// Global returns the global logger instance.
func Global() Logger {
	return globalLogger
}

// Debug logs debug information using the global logger.
func Debug(format string, args ...interface{}) {
	globalLogger.Debug(format, args...)
}

// Info logs informational message using the global logger.
func Info(format string, args ...interface{}) {
	globalLogger.Info(format, args...)
}

// Warn logs a warning using the global logger.
func Warn(format string, args ...interface{}) {
	globalLogger.Warn(format, args...)
}

// StartTimer starts a timer for measuring operation duration using the global logger.
func StartTimer(operation string) *Timer {
	return globalLogger.StartTimer(operation)
}
