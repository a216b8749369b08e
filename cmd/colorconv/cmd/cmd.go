// Copyright (c) 2024, The Psychos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd implements the commands of colorconv.
package cmd

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/memory-formation/psychos/cli"
	"github.com/memory-formation/psychos/cmd/colorconv/config"
	"github.com/memory-formation/psychos/colors"
	"github.com/memory-formation/psychos/colors/palette"
)

// Cmds returns the commands of colorconv, with convert as the root command.
func Cmds() []*cli.Cmd[*config.Config] {
	return []*cli.Cmd[*config.Config]{
		{Func: Convert, Name: "convert", Doc: "convert converts a color to every space, or to the space given by -to", Root: true},
		{Func: List, Name: "list", Doc: "list lists the registered color names"},
		{Func: Name, Name: "name", Doc: "name prints the registered name of a color"},
		{Func: Swatch, Name: "swatch", Doc: "swatch prints a swatch of each given color"},
		{Func: Palette, Name: "palette", Doc: "palette validates and lists a palette file"},
		{Func: Watch, Name: "watch", Doc: "watch registers a palette file every time it changes"},
	}
}

// setup routes the color diagnostics to the default logger
// and registers the configured palettes.
func setup(c *config.Config) error {
	colors.SetLogger(slog.Default())
	return palette.Load(colors.DefaultRegistry, c.Palettes...)
}

// ParseLiteral returns the color literal given on a command line:
// comma separated components, optionally enclosed in parentheses or
// brackets, are returned as []int if all of them are integers and
// as []float64 if all of them are numbers. Other literals are
// returned as given.
func ParseLiteral(s string) any {
	s = strings.TrimSpace(s)
	if !strings.Contains(s, ",") {
		return s
	}
	inner := strings.TrimSpace(strings.Trim(s, "()[]"))
	parts := strings.Split(inner, ",")
	ints := make([]int, len(parts))
	floats := make([]float64, len(parts))
	mixed := make([]any, len(parts))
	allInt, allNum := true, true
	for i, p := range parts {
		p = strings.TrimSpace(p)
		mixed[i] = p
		if n, err := strconv.Atoi(p); err == nil {
			ints[i], floats[i], mixed[i] = n, float64(n), n
			continue
		}
		allInt = false
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			allNum = false
			continue
		}
		floats[i], mixed[i] = f, f
	}
	switch {
	case allInt:
		return ints
	case allNum:
		return floats
	}
	return mixed
}

// newColor returns the color given on a command line in the given space,
// which is inferred if empty.
func newColor(literal, space string) (colors.Color, error) {
	return colors.NewFromString(ParseLiteral(literal), space)
}
