// Copyright (c) 2024, The Psychos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"log/slog"

	"github.com/memory-formation/psychos/base/logx"
	"github.com/memory-formation/psychos/cmd/colorconv/config"
	"github.com/memory-formation/psychos/colors/palette"
)

// Palette validates and lists the palette file of the config,
// and writes it to the output file if there is one.
func Palette(c *config.Config) error {
	if err := setup(c); err != nil {
		return err
	}
	p, err := palette.Open(c.Palette.File)
	if err != nil {
		return err
	}
	if err := p.Validate(); err != nil {
		return err
	}
	if p.Name != "" {
		fmt.Fprintln(c.Writer(), logx.TitleColor(p.Name))
	}
	if err := printEntries(c, p.Colors); err != nil {
		return err
	}
	if c.Palette.Output == "" {
		return nil
	}
	if err := p.Save(c.Palette.Output); err != nil {
		return err
	}
	slog.Info("saved palette", "file", c.Palette.Output, "colors", len(p.Colors))
	return nil
}
