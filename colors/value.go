// Copyright (c) 2024, The Psychos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"math"
	"strconv"
	"strings"
)

// Value is a color representation in some [Space]: a string for the
// text spaces (hex, hexa, name) or a tuple of components otherwise.
// Values flowing through a [Graph] are never mutated in place.
type Value struct {
	// Text holds hex strings and color names.
	Text string

	// Comps holds the components of tuple spaces.
	Comps []float64
}

// TextValue returns a string [Value].
func TextValue(s string) Value {
	return Value{Text: s}
}

// CompsValue returns a tuple [Value] holding the given components.
func CompsValue(comps ...float64) Value {
	return Value{Comps: comps}
}

// IsText returns whether the value holds a string.
func (v Value) IsText() bool {
	return v.Comps == nil
}

func (v Value) clone() Value {
	if v.Comps == nil {
		return v
	}
	return Value{Text: v.Text, Comps: append([]float64(nil), v.Comps...)}
}

// Literal returns the text for string values and a copy
// of the components otherwise.
func (v Value) Literal() any {
	if v.IsText() {
		return v.Text
	}
	return append([]float64(nil), v.Comps...)
}

// Ints returns the components rounded to the nearest integer
// and clamped to [0, 255].
func (v Value) Ints() []int {
	res := make([]int, len(v.Comps))
	for i, c := range v.Comps {
		res[i] = round255(c)
	}
	return res
}

// String returns the text, or the components as "(a, b, c)".
func (v Value) String() string {
	if v.IsText() {
		return v.Text
	}
	strs := make([]string, len(v.Comps))
	for i, c := range v.Comps {
		strs[i] = strconv.FormatFloat(c, 'g', 6, 64)
	}
	return "(" + strings.Join(strs, ", ") + ")"
}

// to255 scales a normalized component to [0, 255].
func to255(c float64) int {
	return round255(c * 255)
}

// round255 rounds c half away from zero and clamps it to [0, 255]
// to absorb floating point error.
func round255(c float64) int {
	v := math.Round(c)
	switch {
	case v < 0 || math.IsNaN(v):
		return 0
	case v > 255:
		return 255
	}
	return int(v)
}

// clamp01 clamps c to [0, 1].
func clamp01(c float64) float64 {
	return math.Max(0, math.Min(1, c))
}
