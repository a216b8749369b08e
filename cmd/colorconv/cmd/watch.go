// Copyright (c) 2024, The Psychos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/memory-formation/psychos/base/logx"
	"github.com/memory-formation/psychos/cmd/colorconv/config"
	"github.com/memory-formation/psychos/colors"
	"github.com/memory-formation/psychos/colors/palette"
)

// Watch registers the palette file of the config and registers it
// again every time it changes, until interrupted.
func Watch(c *config.Config) error {
	if err := setup(c); err != nil {
		return err
	}
	ctx := c.Ctx
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	w := c.Writer()
	return palette.Watch(ctx, c.Watch.File, colors.DefaultRegistry, func(p *palette.Palette, err error) {
		if err != nil {
			slog.Error("error loading palette", "file", c.Watch.File, "err", err)
			return
		}
		fmt.Fprintln(w, logx.SuccessColor(fmt.Sprintf("registered %d colors from %s", len(p.Colors), c.Watch.File)))
	})
}
