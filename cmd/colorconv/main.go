// Copyright (c) 2024, The Psychos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command colorconv converts colors between hex strings, names,
// RGB, HSV, HSL, CMYK and YIQ, and manages palette files of named colors.
package main

import (
	"github.com/memory-formation/psychos/cli"
	"github.com/memory-formation/psychos/cmd/colorconv/cmd"
	"github.com/memory-formation/psychos/cmd/colorconv/config"
)

func main() {
	opts := cli.DefaultOptions("colorconv", "colorconv converts colors between hex strings, names, RGB, HSV, HSL, CMYK and YIQ.")
	cli.Run(opts, &config.Config{}, cmd.Cmds()...)
}
