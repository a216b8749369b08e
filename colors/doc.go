// Copyright (c) 2024, The Psychos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides a color value type and a conversion engine
// between a fixed set of color spaces: hex strings, registered color
// names, normalized and 0-255 RGB(A), HSV, HSL, CMYK and YIQ.
//
// Conversions are resolved as shortest paths in a [Graph] of primitive
// converters, with rgb and rgba as the hub between the display spaces
// (hex, names, 0-255 tuples) and the normalized ones:
//
//	c, err := colors.New("#32cd32")
//	hsv, err := c.AsHSV() // [0.333 0.756 0.804]
//
// The space of a literal is inferred by [Classify] unless given
// explicitly:
//
//	c, err := colors.New([]int{128, 128, 128, 128}, colors.RGBA255)
//	hexa, err := c.AsHexa() // "#80808080"
//
// Color names live in a [Registry]; [DefaultRegistry] holds the CSS
// color names and can be extended with [RegisterColor].
package colors
