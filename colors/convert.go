// Copyright (c) 2024, The Psychos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ConvertFunc is a primitive conversion between two adjacent spaces.
// It must not modify its argument.
type ConvertFunc func(v Value) (Value, error)

// parseHex parses "#" followed by 2*n hex digits into n components
// in [0, 255]. The leading "#" is optional, as registered names may
// store bare digits.
func parseHex(op, str string, n int) (Value, error) {
	digits := strings.TrimPrefix(strings.TrimSpace(str), "#")
	if len(digits) != 2*n {
		return Value{}, newError(op, str, ErrInvalidColorComponent, "hex color must have %d digits, got %d digits", 2*n, len(digits))
	}
	comps := make([]float64, n)
	for i := range comps {
		c, err := strconv.ParseUint(digits[2*i:2*i+2], 16, 8)
		if err != nil {
			return Value{}, newError(op, str, ErrInvalidColorComponent, "invalid hex digits %q", digits[2*i:2*i+2])
		}
		comps[i] = float64(c)
	}
	return CompsValue(comps...), nil
}

// formatHex formats 0-255 components as an upper-case hex string.
func formatHex(comps []float64) string {
	var sb strings.Builder
	sb.WriteByte('#')
	for _, c := range comps {
		fmt.Fprintf(&sb, "%02X", round255(c))
	}
	return sb.String()
}

func hexToRGB255(v Value) (Value, error) {
	return parseHex("colors.hexToRGB255", v.Text, 3)
}

func rgb255ToHex(v Value) (Value, error) {
	return TextValue(formatHex(v.Comps[:3])), nil
}

func hexaToRGBA255(v Value) (Value, error) {
	return parseHex("colors.hexaToRGBA255", v.Text, 4)
}

func rgba255ToHexa(v Value) (Value, error) {
	return TextValue(formatHex(v.Comps[:4])), nil
}

// rgba255ToHex omits the alpha pair for opaque colors only.
func rgba255ToHex(v Value) (Value, error) {
	if round255(v.Comps[3]) == 255 {
		return TextValue(formatHex(v.Comps[:3])), nil
	}
	return TextValue(formatHex(v.Comps[:4])), nil
}

// divide returns a converter dividing every component by d.
func divide(d float64) ConvertFunc {
	return func(v Value) (Value, error) {
		res := make([]float64, len(v.Comps))
		for i, c := range v.Comps {
			res[i] = c / d
		}
		return CompsValue(res...), nil
	}
}

// to255Comps converts normalized components to rounded, clamped 0-255 values.
func to255Comps(v Value) (Value, error) {
	res := make([]float64, len(v.Comps))
	for i, c := range v.Comps {
		res[i] = float64(to255(c))
	}
	return CompsValue(res...), nil
}

// addAlpha returns a converter appending the given opaque alpha value.
func addAlpha(opaque float64) ConvertFunc {
	return func(v Value) (Value, error) {
		return CompsValue(v.Comps[0], v.Comps[1], v.Comps[2], opaque), nil
	}
}

func dropAlpha(v Value) (Value, error) {
	return CompsValue(v.Comps[0], v.Comps[1], v.Comps[2]), nil
}

// hueFraction maps a hue in degrees to [0, 1).
func hueFraction(deg float64) float64 {
	h := math.Mod(deg/360, 1)
	if h < 0 {
		h++
	}
	return h
}

// hueDegrees maps a hue fraction to [0, 360), wrapping 1 to 0.
func hueDegrees(h float64) float64 {
	return math.Mod(h, 1) * 360
}

func rgbToHSV(v Value) (Value, error) {
	h, s, val := colorful.Color{R: v.Comps[0], G: v.Comps[1], B: v.Comps[2]}.Hsv()
	return CompsValue(hueFraction(h), clamp01(s), clamp01(val)), nil
}

func hsvToRGB(v Value) (Value, error) {
	c := colorful.Hsv(hueDegrees(v.Comps[0]), v.Comps[1], v.Comps[2])
	return CompsValue(clamp01(c.R), clamp01(c.G), clamp01(c.B)), nil
}

func rgbToHSL(v Value) (Value, error) {
	h, s, l := colorful.Color{R: v.Comps[0], G: v.Comps[1], B: v.Comps[2]}.Hsl()
	return CompsValue(hueFraction(h), clamp01(s), clamp01(l)), nil
}

func hslToRGB(v Value) (Value, error) {
	c := colorful.Hsl(hueDegrees(v.Comps[0]), v.Comps[1], v.Comps[2])
	return CompsValue(clamp01(c.R), clamp01(c.G), clamp01(c.B)), nil
}

func rgbToCMYK(v Value) (Value, error) {
	r, g, b := v.Comps[0], v.Comps[1], v.Comps[2]
	k := 1 - math.Max(r, math.Max(g, b))
	if k >= 1 {
		return CompsValue(0, 0, 0, 1), nil
	}
	return CompsValue(
		clamp01((1-r-k)/(1-k)),
		clamp01((1-g-k)/(1-k)),
		clamp01((1-b-k)/(1-k)),
		k,
	), nil
}

func cmykToRGB(v Value) (Value, error) {
	c, m, y, k := v.Comps[0], v.Comps[1], v.Comps[2], v.Comps[3]
	return CompsValue((1-c)*(1-k), (1-m)*(1-k), (1-y)*(1-k)), nil
}

// NTSC YIQ coefficients.
const (
	yiqYR, yiqYG, yiqYB = 0.30, 0.59, 0.11
	yiqIR, yiqIB        = 0.74, -0.27
	yiqQR, yiqQB        = 0.48, 0.41
)

func rgbToYIQ(v Value) (Value, error) {
	r, g, b := v.Comps[0], v.Comps[1], v.Comps[2]
	y := yiqYR*r + yiqYG*g + yiqYB*b
	i := yiqIR*(r-y) + yiqIB*(b-y)
	q := yiqQR*(r-y) + yiqQB*(b-y)
	return CompsValue(y, i, q), nil
}

func yiqToRGB(v Value) (Value, error) {
	y, i, q := v.Comps[0], v.Comps[1], v.Comps[2]
	r := y + 0.9468822170900693*i + 0.6235565819861433*q
	g := y - 0.27478764629897834*i - 0.6356910791873801*q
	b := y - 1.1085450346420322*i + 1.7090069284064666*q
	return CompsValue(clamp01(r), clamp01(g), clamp01(b)), nil
}
