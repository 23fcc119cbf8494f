// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger used as the
// diagnostic sink of supervisor-dump.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Standard output is reserved for the generated configuration, so the CLI
// points its logger at standard error.
package logger

import (
	"context"
	"io"
	"runtime"

	"github.com/rs/zerolog"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// contextKey is a private type for context keys so values stored by this
// package never collide with other packages.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

var loggerCtxKey = contextKey("logger")

// NewLogger constructs a *Logger for the given role label writing JSON lines
// to w. The CLI passes standard error.
//
// Entries carry a "role" field, a timestamp and a "func" caller field with
// the fully-qualified function name. The global level is Info, or Debug when
// verbose is set.
func NewLogger(w io.Writer, role string, verbose bool) *Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// Nop returns a *Logger that discards all log output.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// WithComponent returns a child logger tagged with a "component" field.
func (l *Logger) WithComponent(name string) *Logger {
	return &Logger{l.With().Str("component", name).Logger()}
}

// WithContext returns a copy of ctx carrying the logger. Components reached
// through ctx log with it instead of the logger they were built with.
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, loggerCtxKey, l)
}

// FromContext returns the logger attached to ctx by [Logger.WithContext], or
// fallback when ctx carries none.
func FromContext(ctx context.Context, fallback *Logger) *Logger {
	if l, ok := ctx.Value(loggerCtxKey).(*Logger); ok && l != nil {
		return l
	}
	return fallback
}
