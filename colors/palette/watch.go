// Copyright (c) 2024, The Psychos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/memory-formation/psychos/base/fsx"
	"github.com/memory-formation/psychos/colors"
)

// Watch registers the palette in the given file and registers it
// again every time the file is written or replaced, until ctx is done.
// After every load attempt, onLoad (if non-nil) is called with the
// palette or the error. Names are never removed from the registry,
// so entries deleted from the file stay registered.
//
// The initial load must succeed; errors on later reloads are passed
// to onLoad and watching continues.
func Watch(ctx context.Context, filename string, reg *colors.Registry, onLoad func(p *Palette, err error)) error {
	filename = fsx.ExpandPath(filename)
	abs, err := filepath.Abs(filename)
	if err != nil {
		return err
	}
	load := func() error {
		p, err := Open(abs)
		if err == nil {
			err = p.Register(reg)
		}
		if onLoad != nil {
			onLoad(p, err)
		}
		return err
	}
	if err := load(); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	// the directory is watched so that atomic replacements by editors are seen
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs || !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			slog.Debug("palette changed", "file", abs, "op", event.Op.String())
			if err := load(); err != nil && onLoad == nil {
				slog.Error("error reloading palette", "file", abs, "err", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("palette watcher", "file", abs, "err", err)
		}
	}
}
