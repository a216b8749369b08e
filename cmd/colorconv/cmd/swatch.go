// Copyright (c) 2024, The Psychos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"strings"

	"github.com/memory-formation/psychos/base/logx"
	"github.com/memory-formation/psychos/cmd/colorconv/config"
	"github.com/memory-formation/psychos/colors"
)

// Swatch prints a swatch of each color of the config with its hex value.
func Swatch(c *config.Config) error {
	if err := setup(c); err != nil {
		return err
	}
	w := c.Writer()
	for _, lit := range c.Swatch.Colors {
		col, err := newColor(lit, "")
		if err != nil {
			return err
		}
		hex, err := col.AsHex()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s %s %s\n", swatch(col, c.Swatch.Width), hex, lit)
	}
	return nil
}

// swatch returns a colored block of the given width.
func swatch(col colors.Color, width int) string {
	return logx.Swatch(col, strings.Repeat(" ", max(width, 1)))
}
