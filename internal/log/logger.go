// Package log wraps an slog.Logger so library code can log without
// checking whether the caller configured a logger.
package log

import (
	"context"
	"log/slog"
	"runtime"
	"time"
)

// Logger is a nil-safe wrapper around an slog.Logger.
type Logger struct{ logger *slog.Logger }

// Wrap the slog logger. A nil logger discards everything.
func Wrap(logger *slog.Logger) Logger {
	return Logger{logger}
}

// Log is designed to build logging wrappers; it should not be called
// directly.
func (l Logger) Log(level slog.Level, msg string, attrs ...slog.Attr) {
	ctx := context.Background()
	if l.logger == nil || !l.logger.Enabled(ctx, level) {
		return
	}

	var pcs [1]uintptr
	runtime.Callers(3, pcs[:])

	r := slog.NewRecord(time.Now(), level, msg, pcs[0])
	r.AddAttrs(attrs...)
	_ = l.logger.Handler().Handle(ctx, r)
}

// Debug logs at debug level.
func (l Logger) Debug(msg string, attrs ...slog.Attr) {
	l.Log(slog.LevelDebug, msg, attrs...)
}

// Info logs at info level.
func (l Logger) Info(msg string, attrs ...slog.Attr) {
	l.Log(slog.LevelInfo, msg, attrs...)
}

// Warn logs at warn level.
func (l Logger) Warn(msg string, attrs ...slog.Attr) {
	l.Log(slog.LevelWarn, msg, attrs...)
}

// Err logs an error.
func (l Logger) Err(err error, attrs ...slog.Attr) {
	l.Log(slog.LevelError, err.Error(), attrs...)
}
