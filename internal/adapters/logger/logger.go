// Package logger implements a logging adapter using log/slog.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"
	"sync"

	"go.trai.ch/recipe/internal/core/ports"
	"go.trai.ch/zerr"
)

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger *slog.Logger
	mu     sync.RWMutex
}

// New creates a new Logger writing human-readable records to stderr.
func New() ports.Logger {
	return NewWithWriter(os.Stderr)
}

// NewWithWriter creates a new Logger writing to w.
func NewWithWriter(w io.Writer) *Logger {
	return &Logger{
		logger: slog.New(newHandler(w)),
	}
}

func newHandler(w io.Writer) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
}

// SetOutput updates the logger's output destination.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger = slog.New(newHandler(w))
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

// Error logs an error together with its full detail: the %+v rendering and
// the metadata attached anywhere in its zerr chain.
func (l *Logger) Error(err error) {
	args := []any{"error", err, "detail", fmt.Sprintf("%+v", err)}
	meta := metadata(err)
	for _, k := range slices.Sorted(maps.Keys(meta)) {
		args = append(args, k, meta[k])
	}

	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Error("operation failed", args...)
}

// metadata merges the metadata of every zerr error in the chain. Outer values win.
func metadata(err error) map[string]any {
	meta := make(map[string]any)
	for err != nil {
		var zErr *zerr.Error
		if !errors.As(err, &zErr) {
			break
		}
		for k, v := range zErr.Metadata() {
			if _, ok := meta[k]; !ok {
				meta[k] = v
			}
		}
		err = zErr.Unwrap()
	}
	return meta
}
