// Copyright (c) 2024, The Psychos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"

	"github.com/memory-formation/psychos/base/errors"
	"github.com/memory-formation/psychos/base/logx"
	"github.com/memory-formation/psychos/cmd/colorconv/config"
	"github.com/memory-formation/psychos/colors"
)

// Convert prints the color of the config in every space,
// or only in the space given by the To option.
func Convert(c *config.Config) error {
	if err := setup(c); err != nil {
		return err
	}
	col, err := newColor(c.Convert.Color, c.Convert.Space)
	if err != nil {
		return err
	}
	targets := colors.SpacesValues()
	if c.Convert.To != "" {
		sp, err := colors.SpaceFromString(c.Convert.To)
		if err != nil {
			return err
		}
		targets = []colors.Space{sp}
	}

	w := c.Writer()
	fmt.Fprintf(w, "%s %v (%v)\n", logx.Swatch(col, "    "), col, col.Space())
	for _, sp := range targets {
		v, err := col.Convert(sp)
		str := v.String()
		if err != nil {
			// a missing name is expected for most colors
			if !errors.Is(err, colors.ErrNoNameForColor) || len(targets) == 1 {
				return err
			}
			str = "-"
		}
		fmt.Fprintf(w, "%-8s %s", sp, str)
		if c.Convert.Path {
			p, err := colors.DefaultGraph().FindPath(col.Space(), sp)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "  [%v]", p)
		}
		fmt.Fprintln(w)
	}
	return nil
}
