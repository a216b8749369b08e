// Copyright (c) 2024, The Psychos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package palette reads and writes palette files: ordered lists of
// named colors in TOML or YAML that extend a [colors.Registry].
//
// A TOML palette looks like:
//
//	name = "lab"
//
//	[[colors]]
//	name = "stimulus red"
//	hex = "#C8102E"
//
// and the YAML form uses the same keys.
package palette

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/memory-formation/psychos/base/errors"
	"github.com/memory-formation/psychos/base/iox/tomlx"
	"github.com/memory-formation/psychos/base/iox/yamlx"
	"github.com/memory-formation/psychos/colors"
)

// Format is the encoding of a palette file.
type Format int32

const (
	// TOML is the default palette format.
	TOML Format = iota

	// YAML palettes use the .yaml or .yml extension.
	YAML
)

func (f Format) String() string {
	if f == YAML {
		return "yaml"
	}
	return "toml"
}

// FormatFromFilename returns the format implied by the extension
// of the given file name.
func FormatFromFilename(filename string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return TOML, fmt.Errorf("palette: unknown palette file extension %q (must be .toml, .yaml or .yml)", filepath.Ext(filename))
}

// Entry is a named color of a palette.
type Entry struct {
	Name string `toml:"name" yaml:"name"`
	Hex  string `toml:"hex" yaml:"hex"`
}

// Palette is an ordered list of named colors.
type Palette struct {
	// Name is an optional label for the palette.
	Name string `toml:"name,omitempty" yaml:"name,omitempty"`

	// Colors are the entries in the order they are registered.
	Colors []Entry `toml:"colors" yaml:"colors"`
}

// Add appends a new entry to the palette.
func (p *Palette) Add(name, hex string) *Palette {
	p.Colors = append(p.Colors, Entry{Name: name, Hex: hex})
	return p
}

// Open reads the palette from the given file, in the format
// implied by its extension. A leading "~" is expanded to the
// home directory.
func Open(filename string) (*Palette, error) {
	f, err := FormatFromFilename(filename)
	if err != nil {
		return nil, err
	}
	p := &Palette{}
	switch f {
	case YAML:
		err = yamlx.Open(p, filename)
	default:
		err = tomlx.Open(p, filename)
	}
	if err != nil {
		return nil, fmt.Errorf("palette.Open %s: %w", filename, err)
	}
	return p, nil
}

// Read reads a palette in the given format from the given reader.
func Read(r io.Reader, f Format) (*Palette, error) {
	p := &Palette{}
	var err error
	switch f {
	case YAML:
		err = yamlx.Read(p, r)
	default:
		err = tomlx.Read(p, r)
	}
	if err != nil {
		return nil, fmt.Errorf("palette.Read: %w", err)
	}
	return p, nil
}

// Write writes the palette in the given format to the given writer.
func (p *Palette) Write(w io.Writer, f Format) error {
	if f == YAML {
		return yamlx.Write(p, w)
	}
	return tomlx.Write(p, w)
}

// Save writes the palette to the given file, in the format
// implied by its extension.
func (p *Palette) Save(filename string) error {
	f, err := FormatFromFilename(filename)
	if err != nil {
		return err
	}
	if f == YAML {
		return yamlx.Save(p, filename)
	}
	return tomlx.Save(p, filename)
}

// Validate checks that every entry has a name and a hex value that
// parses as a 6 digit hex color. All problems are reported together.
func (p *Palette) Validate() error {
	var errs []error
	for i, e := range p.Colors {
		if colors.NormalizeName(e.Name) == "" {
			errs = append(errs, fmt.Errorf("palette entry %d: empty name", i))
			continue
		}
		if _, err := colors.New(e.Hex, colors.Hex); err != nil {
			errs = append(errs, fmt.Errorf("palette entry %d (%s): %w", i, e.Name, err))
		}
	}
	return errors.Join(errs...)
}

// Register validates the palette and registers all of its entries
// in the given registry, in order. Nothing is registered if the
// palette is invalid.
func (p *Palette) Register(reg *colors.Registry) error {
	if err := p.Validate(); err != nil {
		return err
	}
	for _, e := range p.Colors {
		reg.Register(e.Name, e.Hex)
	}
	return nil
}

// Load opens the given palette files and registers them in the
// given registry, in order, so that later files override earlier ones.
func Load(reg *colors.Registry, filenames ...string) error {
	for _, fn := range filenames {
		p, err := Open(fn)
		if err != nil {
			return err
		}
		if err := p.Register(reg); err != nil {
			return fmt.Errorf("palette %s: %w", fn, err)
		}
	}
	return nil
}

// FromRegistry returns a palette holding the names of the given
// registry that contain the given substring, in registration order.
// An empty filter matches every name.
func FromRegistry(reg *colors.Registry, filter string) *Palette {
	filter = colors.NormalizeName(filter)
	p := &Palette{}
	for _, nm := range reg.Names() {
		if !strings.Contains(nm, filter) {
			continue
		}
		hex, _ := reg.Lookup(nm)
		p.Add(nm, hex)
	}
	return p
}
