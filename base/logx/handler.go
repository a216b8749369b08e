// Copyright (c) 2024, The Psychos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Handler is a [slog.Handler] whose output resembles that of [log.Logger],
// with the level name colored by [LevelColor]. Use [NewHandler] to make
// a new [Handler] from a writer and options.
type Handler struct {
	opts      slog.HandlerOptions
	prefix    string // group prefix for attribute keys
	preformat string // attributes added with WithAttrs
	mu        *sync.Mutex
	w         io.Writer
}

// NewHandler makes a new [Handler] for the given writer with the given options.
func NewHandler(w io.Writer, opts *slog.HandlerOptions) *Handler {
	h := &Handler{w: w, mu: &sync.Mutex{}}
	if opts != nil {
		h.opts = *opts
	}
	if h.opts.Level == nil {
		h.opts.Level = slog.LevelInfo
	}
	return h
}

// SetDefaultLogger sets the default logger to be a [Handler] writing
// to [os.Stderr] at the level of [UserLevel]. It should be called
// again whenever [UserLevel] changes.
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr, &slog.HandlerOptions{Level: UserLevel})))
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := *h
	nh.prefix += name + "."
	return &nh
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	var sb strings.Builder
	for _, a := range attrs {
		h.appendAttr(&sb, h.prefix, a)
	}
	nh := *h
	nh.preformat += sb.String()
	return &nh
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	var sb strings.Builder
	if !r.Time.IsZero() {
		sb.WriteString(r.Time.Format(time.TimeOnly))
		sb.WriteByte(' ')
	}
	sb.WriteString(LevelColor(r.Level, r.Level.String()))
	sb.WriteByte(' ')
	sb.WriteString(r.Message)
	sb.WriteString(h.preformat)
	r.Attrs(func(a slog.Attr) bool {
		h.appendAttr(&sb, h.prefix, a)
		return true
	})
	sb.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, sb.String())
	return err
}

// appendAttr writes " key=value" for the given attribute, flattening groups.
func (h *Handler) appendAttr(sb *strings.Builder, prefix string, a slog.Attr) {
	if h.opts.ReplaceAttr != nil && a.Value.Kind() != slog.KindGroup {
		a = h.opts.ReplaceAttr(nil, a)
	}
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		if a.Key != "" {
			prefix += a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			h.appendAttr(sb, prefix, ga)
		}
		return
	}
	val := a.Value.String()
	if val == "" || strings.ContainsAny(val, " \t\n\"=") {
		val = strconv.Quote(val)
	}
	sb.WriteByte(' ')
	sb.WriteString(prefix + a.Key)
	sb.WriteByte('=')
	sb.WriteString(val)
}
