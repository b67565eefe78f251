// Package logger implements a logging adapter using log/slog.
package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"

	"go.trai.ch/nixcrate/internal/core/domain"
	"go.trai.ch/nixcrate/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Logger = (*Logger)(nil)

// Logger implements ports.Logger using log/slog.
type Logger struct {
	mu     sync.RWMutex
	level  *slog.LevelVar
	logger *slog.Logger
}

// New creates a Logger writing text records to stderr at info level.
func New() *Logger {
	return NewWithOutput(os.Stderr)
}

// NewWithOutput creates a Logger writing text records to w at info level.
func NewWithOutput(w io.Writer) *Logger {
	l := &Logger{level: new(slog.LevelVar)}
	l.SetOutput(w)
	return l
}

// SetOutput updates the logger's output destination.
func (l *Logger) SetOutput(w io.Writer) {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: l.level})
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger = slog.New(handler)
}

// SetLevel drops records below level.
func (l *Logger) SetLevel(level domain.LogLevel) {
	l.level.Set(slog.Level(level))
}

// Debug logs a diagnostic message.
func (l *Logger) Debug(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Debug(msg)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs an error together with any metadata attached through zerr.
func (l *Logger) Error(err error) {
	args := []any{"error", err.Error()}
	if z, ok := err.(*zerr.Error); ok {
		for k, v := range z.Metadata() {
			args = append(args, k, v)
		}
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Error("operation failed", args...)
}
