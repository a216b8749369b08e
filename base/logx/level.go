// Copyright (c) 2024, The Psychos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides structured logging with colored terminal
// output on top of [log/slog].
package logx

import "log/slog"

// UserLevel is the minimum level of the records written by the handler
// that [SetDefaultLogger] installs. Command line apps set it from their
// -vv, -v and -q flags through [LevelFromFlags]; warnings and errors
// are shown by default.
var UserLevel = slog.LevelWarn

// LevelFromFlags maps the verbosity flags of a command to a level.
// The most verbose flag given wins, so -vv overrides -q:
//
//	vv: debug, v: info, q: error, none: warn
func LevelFromFlags(vv, v, q bool) slog.Level {
	if vv {
		return slog.LevelDebug
	}
	if v {
		return slog.LevelInfo
	}
	if q {
		return slog.LevelError
	}
	return slog.LevelWarn
}
