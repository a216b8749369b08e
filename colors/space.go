// Copyright (c) 2024, The Psychos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"strconv"
	"strings"
)

// Space is a named representation of color with a fixed
// component count and numeric range.
type Space int32

const (
	// Hex is a "#RRGGBB" string. On output, a translucent color
	// keeps its alpha pair ("#RRGGBBAA").
	Hex Space = iota

	// Hexa is a "#RRGGBBAA" string.
	Hexa

	// Name is a color name registered in a [Registry].
	Name

	// RGB is red, green and blue in [0, 1].
	RGB

	// RGBA is red, green, blue and alpha in [0, 1].
	RGBA

	// RGB255 is red, green and blue in [0, 255].
	RGB255

	// RGBA255 is red, green, blue and alpha in [0, 255].
	RGBA255

	// HSV is hue, saturation and value in [0, 1],
	// with hue as a fraction of the circle.
	HSV

	// HSL is hue, saturation and lightness in [0, 1],
	// with hue as a fraction of the circle.
	HSL

	// CMYK is cyan, magenta, yellow and key (black) in [0, 1].
	CMYK

	// YIQ is the NTSC luma (Y, in [0, 1]) and chroma (I and Q) representation.
	YIQ

	spacesN
)

var spaceNames = [spacesN]string{"hex", "hexa", "name", "rgb", "rgba", "rgb255", "rgba255", "hsv", "hsl", "cmyk", "yiq"}

// String returns the lower-case identifier of the space.
func (s Space) String() string {
	if s.IsValid() {
		return spaceNames[s]
	}
	return strconv.FormatInt(int64(s), 10)
}

// IsValid returns whether s is one of the defined spaces.
func (s Space) IsValid() bool {
	return s >= 0 && s < spacesN
}

// SetString sets the space from its identifier, ignoring case and
// surrounding whitespace.
func (s *Space) SetString(str string) error {
	key := strings.ToLower(strings.TrimSpace(str))
	for i, nm := range spaceNames {
		if nm == key {
			*s = Space(i)
			return nil
		}
	}
	return &Error{Op: "colors.Space.SetString", Value: str, Err: ErrInvalidColorSpace}
}

// SpaceFromString returns the space with the given identifier.
func SpaceFromString(str string) (Space, error) {
	var s Space
	err := s.SetString(str)
	return s, err
}

// SpacesValues returns all defined spaces in order.
func SpacesValues() []Space {
	res := make([]Space, spacesN)
	for i := range res {
		res[i] = Space(i)
	}
	return res
}

// MarshalText implements [encoding.TextMarshaler].
func (s Space) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (s *Space) UnmarshalText(text []byte) error {
	return s.SetString(string(text))
}

// Family partitions the spaces into normalized float spaces
// and display spaces.
type Family int32

const (
	// Normalized spaces have float components nominally in [0, 1].
	Normalized Family = iota

	// Display spaces are hex strings, names and 0-255 tuples.
	Display
)

// String returns the name of the family.
func (f Family) String() string {
	if f == Display {
		return "display"
	}
	return "normalized"
}

// Family returns the family the space belongs to.
func (s Space) Family() Family {
	switch s {
	case Hex, Hexa, Name, RGB255, RGBA255:
		return Display
	}
	return Normalized
}

// Channels returns the canonical component count of the space.
// The string spaces report 1.
func (s Space) Channels() int {
	switch s {
	case Hex, Hexa, Name:
		return 1
	case RGBA, RGBA255, CMYK:
		return 4
	}
	return 3
}

// HasAlpha returns whether values in the space carry an alpha channel.
func (s Space) HasAlpha() bool {
	return s == Hexa || s == RGBA || s == RGBA255
}

// IsText returns whether values in the space are strings.
func (s Space) IsText() bool {
	return s == Hex || s == Hexa || s == Name
}

// componentRange returns the inclusive range of the i'th component of s.
func (s Space) componentRange(i int) (lo, hi float64) {
	switch s {
	case RGB255, RGBA255:
		return 0, 255
	case YIQ:
		if i > 0 {
			return -1, 1
		}
	}
	return 0, 1
}
