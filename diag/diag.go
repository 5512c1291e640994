/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package diag

import (
	"context"
	"log/slog"
	"os"
	"strconv"
	"sync"
)

// LevelTrace sits below slog.LevelDebug and is enabled by QUERYWATCH_TRACE.
const LevelTrace = slog.Level(-8)

// Environment flags controlling verbosity. Read once at first use.
const (
	EnvDebug = "QUERYWATCH_DEBUG"
	EnvTrace = "QUERYWATCH_TRACE"
)

var (
	mu     sync.RWMutex
	logger *slog.Logger
)

func envFlag(name string) bool {
	v, ok := os.LookupEnv(name)
	if !ok {
		return false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		// Any non-empty, non-boolean value counts as enabled.
		return v != ""
	}
	return b
}

func minLevel() slog.Level {
	switch {
	case envFlag(EnvTrace):
		return LevelTrace
	case envFlag(EnvDebug):
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

func defaultLogger() *slog.Logger {
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: minLevel()})
	return slog.New(h).With("component", "querywatch")
}

func get() *slog.Logger {
	mu.RLock()
	l := logger
	mu.RUnlock()
	if l != nil {
		return l
	}

	mu.Lock()
	defer mu.Unlock()
	if logger == nil {
		logger = defaultLogger()
	}
	return logger
}

// SetLogger replaces the package logger. Intended for tests and for hosts
// that route library diagnostics into their own logging setup.
func SetLogger(l *slog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

// Debug logs a debug-level diagnostic, gated by QUERYWATCH_DEBUG.
func Debug(msg string, args ...any) {
	get().Debug(msg, args...)
}

// Trace logs a trace-level diagnostic, gated by QUERYWATCH_TRACE.
func Trace(msg string, args ...any) {
	get().Log(context.Background(), LevelTrace, msg, args...)
}

// Error logs a fetch or store failure. Always emitted; never part of the
// functional contract.
func Error(msg string, args ...any) {
	get().Error(msg, args...)
}

// ReportIssue emits a developer-facing warning about a configuration problem,
// such as resolving a store that was never registered.
func ReportIssue(msg string, args ...any) {
	get().Warn(msg, args...)
}
