// Copyright (c) 2024, The Psychos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration structs for colorconv.
package config

import (
	"context"
	"io"
	"os"
)

// Config is the main config struct that contains all of the configuration
// options for colorconv.
type Config struct {

	// Includes are other config files to read before this one.
	Includes []string `desc:"other config files to read before this one"`

	// Palettes are palette files (TOML or YAML) registered
	// before running any command.
	Palettes []string `desc:"palette files (TOML or YAML) registered before running the command"`

	// the configuration options for the convert command
	Convert Convert `cmd:"convert"`

	// the configuration options for the list command
	List List `cmd:"list"`

	// the configuration options for the name command
	Name Name `cmd:"name"`

	// the configuration options for the swatch command
	Swatch Swatch `cmd:"swatch"`

	// the configuration options for the palette command
	Palette Palette `cmd:"palette"`

	// the configuration options for the watch command
	Watch Watch `cmd:"watch"`

	// Out is where command output is written; standard output if nil.
	Out io.Writer `flag:"-" toml:"-"`

	// Ctx bounds long-running commands; they run until
	// interrupted if nil.
	Ctx context.Context `flag:"-" toml:"-"`
}

// IncludesPtr implements [cli.Includer].
func (c *Config) IncludesPtr() *[]string { return &c.Includes }

// Writer returns the output writer of the commands.
func (c *Config) Writer() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

type Convert struct {

	// Color is the color to convert: a hex string, a name,
	// or comma separated components such as 255,87,51.
	Color string `posarg:"0" desc:"the color to convert: hex, name, or comma separated components"`

	// Space is the space of the color; it is inferred if empty.
	Space string `desc:"the space of the color (inferred if empty)"`

	// To only prints the representation in this space.
	To string `desc:"only print the representation in this space"`

	// Path prints the conversion path of each representation.
	Path bool `desc:"print the conversion path of each representation"`
}

type List struct {

	// Filter only lists names containing this string.
	Filter string `desc:"only list names containing this string"`
}

type Name struct {

	// Color is the color to name.
	Color string `posarg:"0" desc:"the color to name"`
}

type Swatch struct {

	// Colors are the colors to print.
	Colors []string `posarg:"all" desc:"the colors to print"`

	// Width is the width of each swatch in characters.
	Width int `default:"8" desc:"the width of each swatch in characters"`
}

type Palette struct {

	// File is the palette file to validate and list.
	File string `posarg:"0" desc:"the palette file to validate and list"`

	// Output writes the palette to this file, in the format
	// implied by its extension.
	Output string `desc:"write the palette to this file (.toml, .yaml or .yml)"`
}

type Watch struct {

	// File is the palette file to watch.
	File string `posarg:"0" desc:"the palette file to watch"`
}
