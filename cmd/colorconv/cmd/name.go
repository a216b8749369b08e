// Copyright (c) 2024, The Psychos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"

	"github.com/memory-formation/psychos/cmd/colorconv/config"
)

// Name prints the registered name of the color of the config.
// Only exact matches are named.
func Name(c *config.Config) error {
	if err := setup(c); err != nil {
		return err
	}
	col, err := newColor(c.Name.Color, "")
	if err != nil {
		return err
	}
	nm, err := col.AsName()
	if err != nil {
		return err
	}
	fmt.Fprintln(c.Writer(), nm)
	return nil
}
