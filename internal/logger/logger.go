// Package logger provides levelled logging for the box cluster.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
)

// Logger writes info and warning lines to stdout and errors to stderr.
type Logger struct {
	infoLogger  *log.Logger
	warnLogger  *log.Logger
	errorLogger *log.Logger
}

// NewLogger creates a new logger instance.
func NewLogger() *Logger {
	return New(os.Stdout, os.Stderr)
}

// New creates a logger writing to the given sinks.
func New(out, errOut io.Writer) *Logger {
	return &Logger{
		infoLogger:  log.New(out, "[BOXES-INFO] ", log.Ldate|log.Ltime|log.Lshortfile),
		warnLogger:  log.New(out, "[BOXES-WARN] ", log.Ldate|log.Ltime|log.Lshortfile),
		errorLogger: log.New(errOut, "[BOXES-ERROR] ", log.Ldate|log.Ltime|log.Lshortfile),
	}
}

// Info logs informational messages.
func (l *Logger) Info(format string, args ...any) {
	_ = l.infoLogger.Output(2, fmt.Sprintf(format, args...))
}

// Warn logs warning messages.
func (l *Logger) Warn(format string, args ...any) {
	_ = l.warnLogger.Output(2, fmt.Sprintf(format, args...))
}

// Error logs error messages.
func (l *Logger) Error(format string, args ...any) {
	_ = l.errorLogger.Output(2, fmt.Sprintf(format, args...))
}
