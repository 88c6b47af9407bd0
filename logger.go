// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gxview

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/gxview/gfx"
	"github.com/gogpu/gxview/gx"
	"github.com/gogpu/gxview/viewer"
)

// nopHandler is a slog.Handler that silently discards all log records.
// The Enabled method returns false so the caller skips message formatting
// entirely, making disabled logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for gxview and all its sub-packages.
// By default, gxview produces no log output.
//
// SetLogger is safe for concurrent use. Pass nil to restore the default
// silent behavior.
//
// Log levels used by gxview:
//   - [slog.LevelDebug]: program and pipeline creation, uniform block sizes
//   - [slog.LevelInfo]: backend and adapter selection
//   - [slog.LevelWarn]: fallbacks for unsupported content, lifecycle violations, leaks
//
// Example:
//
//	gxview.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)

	gx.SetLogger(l)
	gfx.SetLogger(l)
	viewer.SetLogger(l)
}

// Logger returns the current logger used by gxview.
// The returned logger is never nil.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
