// Copyright (c) 2024, The Psychos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	v, err := hexToRGB255(TextValue("#FF5733"))
	require.NoError(t, err)
	assert.Equal(t, []float64{255, 87, 51}, v.Comps)

	v, err = hexToRGB255(TextValue("ff5733"))
	require.NoError(t, err)
	assert.Equal(t, []float64{255, 87, 51}, v.Comps)

	v, err = hexaToRGBA255(TextValue("#80808080"))
	require.NoError(t, err)
	assert.Equal(t, []float64{128, 128, 128, 128}, v.Comps)

	_, err = hexToRGB255(TextValue("#GG5733"))
	assert.ErrorIs(t, err, ErrInvalidColorComponent)
	_, err = hexToRGB255(TextValue("#FF57"))
	assert.ErrorIs(t, err, ErrInvalidColorComponent)
}

func TestFormatHex(t *testing.T) {
	assert.Equal(t, "#FF5733", formatHex([]float64{255, 87, 51}))
	assert.Equal(t, "#000A0B", formatHex([]float64{0, 10.4, 10.5}))
	assert.Equal(t, "#FF00", formatHex([]float64{300, -4}))

	v, err := rgba255ToHex(CompsValue(255, 0, 0, 254.6))
	require.NoError(t, err)
	assert.Equal(t, "#FF0000", v.Text)
}

func TestHSVReference(t *testing.T) {
	tests := []struct {
		rgb, hsv []float64
	}{
		{[]float64{1, 0, 0}, []float64{0, 1, 1}},
		{[]float64{0, 1, 0}, []float64{1.0 / 3, 1, 1}},
		{[]float64{0, 0, 1}, []float64{2.0 / 3, 1, 1}},
		{[]float64{1, 0, 1}, []float64{5.0 / 6, 1, 1}},
		{[]float64{0.5, 0.5, 0.5}, []float64{0, 0, 0.5}},
		{[]float64{0, 0, 0}, []float64{0, 0, 0}},
	}
	for _, tt := range tests {
		v, err := rgbToHSV(CompsValue(tt.rgb...))
		require.NoError(t, err)
		assert.InDeltaSlice(t, tt.hsv, v.Comps, 1e-9, "%v", tt.rgb)

		back, err := hsvToRGB(v)
		require.NoError(t, err)
		assert.InDeltaSlice(t, tt.rgb, back.Comps, 1e-9, "%v", tt.rgb)
	}
}

func TestHSLReference(t *testing.T) {
	tests := []struct {
		rgb, hsl []float64
	}{
		{[]float64{1, 0, 0}, []float64{0, 1, 0.5}},
		{[]float64{0, 0.5, 0}, []float64{1.0 / 3, 1, 0.25}},
		{[]float64{1, 1, 1}, []float64{0, 0, 1}},
		{[]float64{0.75, 0.25, 0.25}, []float64{0, 0.5, 0.5}},
	}
	for _, tt := range tests {
		v, err := rgbToHSL(CompsValue(tt.rgb...))
		require.NoError(t, err)
		assert.InDeltaSlice(t, tt.hsl, v.Comps, 1e-9, "%v", tt.rgb)

		back, err := hslToRGB(v)
		require.NoError(t, err)
		assert.InDeltaSlice(t, tt.rgb, back.Comps, 1e-9, "%v", tt.rgb)
	}
}

func TestCMYKReference(t *testing.T) {
	tests := []struct {
		rgb, cmyk []float64
	}{
		{[]float64{1, 0, 0}, []float64{0, 1, 1, 0}},
		{[]float64{0, 0, 0}, []float64{0, 0, 0, 1}},
		{[]float64{1, 1, 1}, []float64{0, 0, 0, 0}},
		{[]float64{0.5, 0.25, 0}, []float64{0, 0.5, 1, 0.5}},
	}
	for _, tt := range tests {
		v, err := rgbToCMYK(CompsValue(tt.rgb...))
		require.NoError(t, err)
		assert.InDeltaSlice(t, tt.cmyk, v.Comps, 1e-9, "%v", tt.rgb)

		back, err := cmykToRGB(v)
		require.NoError(t, err)
		assert.InDeltaSlice(t, tt.rgb, back.Comps, 1e-9, "%v", tt.rgb)
	}
}

func TestYIQReference(t *testing.T) {
	tests := []struct {
		rgb, yiq []float64
	}{
		{[]float64{1, 0, 0}, []float64{0.3, 0.599, 0.213}},
		{[]float64{1, 1, 1}, []float64{1, 0, 0}},
		{[]float64{0, 0, 0}, []float64{0, 0, 0}},
		{[]float64{0, 0, 1}, []float64{0.11, -0.3217, 0.3121}},
	}
	for _, tt := range tests {
		v, err := rgbToYIQ(CompsValue(tt.rgb...))
		require.NoError(t, err)
		assert.InDeltaSlice(t, tt.yiq, v.Comps, 1e-9, "%v", tt.rgb)

		back, err := yiqToRGB(v)
		require.NoError(t, err)
		assert.InDeltaSlice(t, tt.rgb, back.Comps, 1e-6, "%v", tt.rgb)
	}
}

func TestHueWrap(t *testing.T) {
	assert.Equal(t, 0.0, hueFraction(360))
	assert.InDelta(t, 0.75, hueFraction(-90), 1e-12)
	assert.Equal(t, 0.0, hueDegrees(1))
	assert.Equal(t, 180.0, hueDegrees(0.5))
}

func TestConvertersDoNotMutate(t *testing.T) {
	in := CompsValue(0.2, 0.4, 0.6)
	for _, fn := range []ConvertFunc{rgbToHSV, rgbToHSL, rgbToCMYK, rgbToYIQ, to255Comps, divide(255), addAlpha(1)} {
		_, err := fn(in)
		require.NoError(t, err)
		assert.Equal(t, []float64{0.2, 0.4, 0.6}, in.Comps)
	}
}
