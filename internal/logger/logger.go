// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog.Logger with the constructors and
// context helpers used by the museum-user-api server and client.
//
// Request handlers obtain their logger through FromRequest or FromContext;
// the HTTP trace middleware stores a child logger carrying the trace id in
// the request context.
package logger

import (
	"context"
	"net/http"
	"os"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// TraceIDField is the field under which request loggers carry the trace id.
const TraceIDField = "trace_id"

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a JSON logger writing to os.Stdout.
//
// Every entry carries a "role" field, a timestamp and a "func" caller field
// holding the fully-qualified function name. level is parsed with
// zerolog.ParseLevel; an empty or unknown value falls back to debug.
func NewLogger(role string, level ...string) *Logger {
	zerolog.SetGlobalLevel(parseLevel(level...))
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(os.Stdout).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

func parseLevel(level ...string) zerolog.Level {
	if len(level) == 0 || strings.TrimSpace(level[0]) == "" {
		return zerolog.DebugLevel
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level[0])))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.DebugLevel
	}

	return lvl
}

// Nop returns a *Logger that discards all output. Used in tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// WithTraceID returns a request logger that adds "trace_id" to every entry.
// The receiver is left unchanged.
func (l *Logger) WithTraceID(traceID string) *Logger {
	return &Logger{l.With().Str(TraceIDField, traceID).Logger()}
}

// FromRequest returns the logger stored in the request context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger stored in ctx. When none is attached,
// zerolog's default context logger is returned, so the result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
