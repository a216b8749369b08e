// Copyright (c) 2024, The Psychos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a [slog.Handler] that discards all records.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var nopLogger = slog.New(nopHandler{})

// loggerPtr is empty until the first SetLogger call.
var loggerPtr atomic.Pointer[slog.Logger]

// SetLogger sets the logger used for the debug diagnostics of this
// package (graph construction, resolved conversion paths, registrations).
// By default nothing is logged. Passing nil restores the silent default.
// It is safe for concurrent use.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = nopLogger
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger of this package.
func Logger() *slog.Logger {
	return logger()
}

func logger() *slog.Logger {
	if l := loggerPtr.Load(); l != nil {
		return l
	}
	return nopLogger
}
