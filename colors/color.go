// Copyright (c) 2024, The Psychos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"
	"image/color"

	"github.com/memory-formation/psychos/base/errors"
)

// Color is a color value in a resolved [Space]. It keeps the literal
// it was created from, and every conversion is derived from that
// literal through the [Graph] without modifying the color.
//
// The zero Color holds no value; see [Color.IsNil].
type Color struct {
	raw   any
	value Value
	space Space

	// rgba is the canonical form used for equality.
	rgba [4]float64

	graph *Graph
}

// New returns a new color from the given literal using [DefaultGraph].
// See [Graph.New].
func New(value any, space ...Space) (Color, error) {
	return defaultGraph.New(value, space...)
}

// MustNew returns a new color from the given literal.
// It panics on any resulting error; see [New] for
// a version that returns an error.
func MustNew(value any, space ...Space) Color {
	c, err := New(value, space...)
	if err != nil {
		panic("colors.MustNew: " + err.Error())
	}
	return c
}

// LogNew returns a new color from the given literal.
// It logs any resulting error and returns the nil color;
// see [New] for a version that returns an error.
func LogNew(value any, space ...Space) Color {
	return errors.Log1(New(value, space...))
}

// NewFromString returns a new color from the given literal and
// space identifier, as typically given on a command line or in a
// configuration file. An empty space identifier infers the space.
func NewFromString(value any, space string) (Color, error) {
	if space == "" {
		return New(value)
	}
	sp, err := SpaceFromString(space)
	if err != nil {
		return Color{}, err
	}
	return New(value, sp)
}

// New returns a new color from the given literal. Without a space,
// the space is inferred by [Graph.Classify]; otherwise the literal
// is validated against the given space. A nil literal returns the
// nil color. A [Color] literal is copied, converted to the given
// space if there is one.
func (g *Graph) New(value any, space ...Space) (Color, error) {
	if value == nil {
		return Color{}, nil
	}
	if len(space) > 1 {
		return Color{}, newError("colors.New", space, ErrInvalidColorSpace, "at most one space may be given, got %d", len(space))
	}
	if pc, ok := value.(*Color); ok {
		if pc == nil {
			return Color{}, nil
		}
		value = *pc
	}
	if oc, ok := value.(Color); ok {
		if oc.IsNil() || len(space) == 0 {
			return oc, nil
		}
		v, err := oc.Convert(space[0])
		if err != nil {
			return Color{}, err
		}
		return g.newColor(v.Literal(), space[0], v)
	}

	var sp Space
	var v Value
	var err error
	if len(space) == 0 {
		sp, v, err = g.Classify(value)
	} else {
		sp = space[0]
		v, err = g.coerce(value, sp)
	}
	if err != nil {
		return Color{}, err
	}
	return g.newColor(value, sp, v)
}

// newColor computes the canonical form of the color.
func (g *Graph) newColor(raw any, sp Space, v Value) (Color, error) {
	c := Color{raw: raw, value: v, space: sp, graph: g}
	canon, err := g.Convert(v, sp, RGBA)
	if err != nil {
		return Color{}, err
	}
	copy(c.rgba[:], canon.Comps)
	return c, nil
}

// IsNil returns whether the color holds no value.
func (c Color) IsNil() bool {
	return c.graph == nil
}

// Raw returns the literal the color was created from.
func (c Color) Raw() any {
	return c.raw
}

// Space returns the resolved space of the color.
func (c Color) Space() Space {
	return c.space
}

// Value returns the literal as a [Value] in [Color.Space].
func (c Color) Value() Value {
	return c.value
}

// Alpha returns the alpha channel in [0, 1]. It is 1 for
// colors whose space has no alpha.
func (c Color) Alpha() float64 {
	if c.IsNil() {
		return 0
	}
	return c.rgba[3]
}

// Key returns the canonical RGBA form of the color, usable as a map key.
func (c Color) Key() [4]float64 {
	return c.rgba
}

// Equal returns whether both colors denote the same color, comparing
// their canonical RGBA forms exactly. Two nil colors are equal.
func (c Color) Equal(o Color) bool {
	if c.IsNil() || o.IsNil() {
		return c.IsNil() == o.IsNil()
	}
	return c.rgba == o.rgba
}

// String returns the color as "Color(<literal>)".
func (c Color) String() string {
	if c.IsNil() {
		return "Color(nil)"
	}
	return fmt.Sprintf("Color(%v)", c.raw)
}

// Convert returns the color in the given space.
func (c Color) Convert(to Space) (Value, error) {
	if c.IsNil() {
		return Value{}, &Error{Op: "colors.Color.Convert", Value: to, Err: ErrNilColor}
	}
	if to == Name {
		nm, err := c.AsName()
		return TextValue(nm), err
	}
	return c.graph.Convert(c.value, c.space, to)
}

// AsRGB returns the color as red, green and blue in [0, 1].
func (c Color) AsRGB() ([3]float64, error) {
	v, err := c.Convert(RGB)
	if err != nil {
		return [3]float64{}, err
	}
	return [3]float64(v.Comps), nil
}

// AsRGBA returns the color as red, green, blue and alpha in [0, 1].
func (c Color) AsRGBA() ([4]float64, error) {
	v, err := c.Convert(RGBA)
	if err != nil {
		return [4]float64{}, err
	}
	return [4]float64(v.Comps), nil
}

// AsRGB255 returns the color as red, green and blue in [0, 255].
func (c Color) AsRGB255() ([3]int, error) {
	v, err := c.Convert(RGB255)
	if err != nil {
		return [3]int{}, err
	}
	return [3]int(v.Ints()), nil
}

// AsRGBA255 returns the color as red, green, blue and alpha in [0, 255].
func (c Color) AsRGBA255() ([4]int, error) {
	v, err := c.Convert(RGBA255)
	if err != nil {
		return [4]int{}, err
	}
	return [4]int(v.Ints()), nil
}

// AsHex returns the color as an upper-case "#RRGGBB" string,
// or "#RRGGBBAA" if it is not fully opaque.
func (c Color) AsHex() (string, error) {
	v, err := c.Convert(Hex)
	return v.Text, err
}

// AsHexa returns the color as an upper-case "#RRGGBBAA" string.
func (c Color) AsHexa() (string, error) {
	v, err := c.Convert(Hexa)
	return v.Text, err
}

// AsName returns the first registered name whose hex value matches
// the color exactly. It always goes through [Hex], so a color created
// from an alias such as "cyan" is named by the earlier "aqua".
// It fails with [ErrNoNameForColor] if no name matches.
func (c Color) AsName() (string, error) {
	if c.IsNil() {
		return "", &Error{Op: "colors.Color.AsName", Err: ErrNilColor}
	}
	hex, err := c.graph.Convert(c.value, c.space, Hex)
	if err != nil {
		return "", err
	}
	if c.graph.names == nil {
		return "", newError("colors.Color.AsName", hex.Text, ErrNoNameForColor, "no registry")
	}
	nm, err := c.graph.names.hexToName(hex)
	return nm.Text, err
}

// AsHSV returns the color as hue, saturation and value in [0, 1].
func (c Color) AsHSV() ([3]float64, error) {
	return c.as3(HSV)
}

// AsHSL returns the color as hue, saturation and lightness in [0, 1].
func (c Color) AsHSL() ([3]float64, error) {
	return c.as3(HSL)
}

// AsYIQ returns the color as luma and chroma (Y, I, Q).
func (c Color) AsYIQ() ([3]float64, error) {
	return c.as3(YIQ)
}

// AsCMYK returns the color as cyan, magenta, yellow and key in [0, 1].
func (c Color) AsCMYK() ([4]float64, error) {
	v, err := c.Convert(CMYK)
	if err != nil {
		return [4]float64{}, err
	}
	return [4]float64(v.Comps), nil
}

func (c Color) as3(sp Space) ([3]float64, error) {
	v, err := c.Convert(sp)
	if err != nil {
		return [3]float64{}, err
	}
	return [3]float64(v.Comps), nil
}

// NRGBA returns the color as a non-premultiplied [color.NRGBA],
// the form expected by most drawing toolkits. The nil color is
// transparent black.
func (c Color) NRGBA() color.NRGBA {
	if c.IsNil() {
		return color.NRGBA{}
	}
	return color.NRGBA{
		R: uint8(to255(c.rgba[0])),
		G: uint8(to255(c.rgba[1])),
		B: uint8(to255(c.rgba[2])),
		A: uint8(to255(c.rgba[3])),
	}
}

// RGBA implements [color.Color].
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// MarshalText implements [encoding.TextMarshaler] using [Color.AsHex].
// The nil color marshals to an empty string.
func (c Color) MarshalText() ([]byte, error) {
	if c.IsNil() {
		return []byte{}, nil
	}
	hex, err := c.AsHex()
	return []byte(hex), err
}

// UnmarshalText implements [encoding.TextUnmarshaler], accepting
// hex strings and registered names. An empty string is the nil color.
func (c *Color) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*c = Color{}
		return nil
	}
	nc, err := New(string(text))
	if err != nil {
		return err
	}
	*c = nc
	return nil
}
