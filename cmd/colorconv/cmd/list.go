// Copyright (c) 2024, The Psychos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"

	"github.com/memory-formation/psychos/cmd/colorconv/config"
	"github.com/memory-formation/psychos/colors"
	"github.com/memory-formation/psychos/colors/palette"
)

// List prints the registered color names containing the
// filter of the config, sorted by name.
func List(c *config.Config) error {
	if err := setup(c); err != nil {
		return err
	}
	p := palette.FromRegistry(colors.DefaultRegistry, c.List.Filter)
	slices.SortFunc(p.Colors, func(a, b palette.Entry) int {
		return cmp.Compare(a.Name, b.Name)
	})
	slog.Info("listing colors", "count", len(p.Colors), "filter", c.List.Filter)
	return printEntries(c, p.Colors)
}

// printEntries prints a swatch line for each of the given entries.
func printEntries(c *config.Config, entries []palette.Entry) error {
	w := c.Writer()
	for _, e := range entries {
		col, err := colors.New(e.Hex, colors.Hex)
		if err != nil {
			return fmt.Errorf("color %q: %w", e.Name, err)
		}
		hex, err := col.AsHex()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s %s %s\n", swatch(col, 4), hex, e.Name)
	}
	return nil
}
