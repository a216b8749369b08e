// Copyright (c) 2024, The Psychos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"encoding/json"
	"errors"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTripRGB255(t *testing.T) {
	for r := 0; r < 256; r += 15 {
		for g := 0; g < 256; g += 17 {
			for b := 0; b < 256; b += 51 {
				hex, err := MustNew([]int{r, g, b}).AsHex()
				require.NoError(t, err)
				got, err := MustNew(hex).AsRGB255()
				require.NoError(t, err)
				assert.Equal(t, [3]int{r, g, b}, got, hex)
			}
		}
	}
}

func TestAlphaDefault(t *testing.T) {
	c := MustNew([]int{255, 0, 0})
	rgba, err := c.AsRGBA()
	require.NoError(t, err)
	assert.Equal(t, [4]float64{1, 0, 0, 1}, rgba)

	rgba255, err := c.AsRGBA255()
	require.NoError(t, err)
	assert.Equal(t, [4]int{255, 0, 0, 255}, rgba255)

	hexa, err := c.AsHexa()
	require.NoError(t, err)
	assert.Equal(t, "#FF0000FF", hexa)
	assert.Equal(t, 1.0, c.Alpha())
}

func TestScaleInference(t *testing.T) {
	assert.Equal(t, RGB, MustNew([]float64{0.5, 0.5, 0.5}).Space())
	assert.Equal(t, RGB255, MustNew([]float64{128, 128, 128}).Space())
	assert.Equal(t, RGB255, MustNew([]int{1, 1, 1}).Space())
	assert.Equal(t, RGBA, MustNew([]float64{0.5, 0.5, 0.5, 0.5}).Space())
	assert.Equal(t, RGBA255, MustNew([4]int{1, 2, 3, 4}).Space())
}

func TestHexFormatting(t *testing.T) {
	hex, err := MustNew([]int{255, 87, 51}).AsHex()
	require.NoError(t, err)
	assert.Equal(t, "#FF5733", hex)

	hexa, err := MustNew([]int{128, 128, 128, 128}, RGBA255).AsHexa()
	require.NoError(t, err)
	assert.Equal(t, "#80808080", hexa)

	// translucent colors keep their alpha pair
	hex, err = MustNew([]float64{0.5, 0.5, 0.5, 0.5}).AsHex()
	require.NoError(t, err)
	assert.Equal(t, "#80808080", hex)

	hex, err = MustNew("#ff573380").AsHex()
	require.NoError(t, err)
	assert.Equal(t, "#FF573380", hex)

	hex, err = MustNew("#ff5733ff").AsHex()
	require.NoError(t, err)
	assert.Equal(t, "#FF5733", hex)
}

func TestHexSameSpaceUpperCase(t *testing.T) {
	c := MustNew("#32cd32")
	hex, err := c.AsHex()
	require.NoError(t, err)
	assert.Equal(t, "#32CD32", hex)
	assert.Equal(t, "#32cd32", c.Raw())
	assert.Equal(t, "Color(#32cd32)", c.String())

	hex, err = MustNew(" #32cd32 ", Hex).AsHex()
	require.NoError(t, err)
	assert.Equal(t, "#32CD32", hex)

	hexa, err := MustNew("#ff573380").AsHexa()
	require.NoError(t, err)
	assert.Equal(t, "#FF573380", hexa)

	hexa, err = MustNew("#ff573380", Hexa).AsHexa()
	require.NoError(t, err)
	assert.Equal(t, "#FF573380", hexa)

	b, err := MustNew("#32cd32").MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "#32CD32", string(b))

	v, err := MustNew("#abcdef").Convert(Hex)
	require.NoError(t, err)
	assert.Equal(t, "#ABCDEF", v.Text)
}

func TestNamedLookup(t *testing.T) {
	rgba, err := MustNew("blue").AsRGBA()
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 0, 1, 1}, rgba[:], 1e-9)

	name, err := MustNew("#0000FF").AsName()
	require.NoError(t, err)
	assert.Equal(t, "blue", name)

	hex, err := MustNew("Light Blue").AsHex()
	require.NoError(t, err)
	assert.Equal(t, "#ADD8E6", hex)

	name, err = MustNew("cyan").AsName()
	require.NoError(t, err)
	assert.Equal(t, "aqua", name)

	_, err = MustNew("#123457").AsName()
	assert.ErrorIs(t, err, ErrNoNameForColor)
}

func TestReferenceValues(t *testing.T) {
	c := MustNew("#FF5733")
	rgba, err := c.AsRGBA()
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1.0, 0.341176, 0.2, 1.0}, rgba[:], 1e-6)

	rgb255, err := c.AsRGB255()
	require.NoError(t, err)
	assert.Equal(t, [3]int{255, 87, 51}, rgb255)

	hsv, err := MustNew("#32cd32").AsHSV()
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.333, 0.756, 0.804}, hsv[:], 1e-3)

	hsl, err := MustNew([]int{0, 255, 0}).AsHSL()
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1.0 / 3, 1, 0.5}, hsl[:], 1e-9)

	cmyk, err := c.AsCMYK()
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 0.658824, 0.8, 0}, cmyk[:], 1e-6)

	yiq, err := MustNew("red").AsYIQ()
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.3, 0.599, 0.213}, yiq[:], 1e-9)
}

func TestIdempotence(t *testing.T) {
	for _, lit := range []any{"#FF5733", "tomato", []int{1, 2, 3}, []float64{0.1, 0.2, 0.3, 0.4}} {
		c := MustNew(lit)
		d := MustNew(c)
		assert.True(t, c.Equal(d), "%v", lit)
		assert.Equal(t, c.Space(), d.Space())

		pd := MustNew(&c)
		assert.True(t, c.Equal(pd))
	}
}

func TestConvertWithSpace(t *testing.T) {
	c := MustNew("#FF0000")
	d, err := New(c, HSV)
	require.NoError(t, err)
	assert.Equal(t, HSV, d.Space())
	assert.Equal(t, []float64{0, 1, 1}, d.Raw())

	rgba, err := d.AsRGBA()
	require.NoError(t, err)
	assert.Equal(t, [4]float64{1, 0, 0, 1}, rgba)

	// the source color is not modified
	assert.Equal(t, Hex, c.Space())
	assert.Equal(t, "#FF0000", c.Raw())
}

func TestConversionsArePure(t *testing.T) {
	lit := []float64{0.2, 0.4, 0.6}
	c := MustNew(lit)
	v, err := c.Convert(RGB)
	require.NoError(t, err)
	v.Comps[0] = 1
	lit[1] = 1

	rgb, err := c.AsRGB()
	require.NoError(t, err)
	assert.Equal(t, [3]float64{0.2, 0.4, 0.6}, rgb)
}

func TestEqual(t *testing.T) {
	assert.True(t, MustNew("red").Equal(MustNew("#FF0000")))
	assert.True(t, MustNew([]int{255, 0, 0}).Equal(MustNew([]float64{1, 0, 0})))
	assert.True(t, MustNew("red").Equal(MustNew("#FF0000FF")))
	assert.False(t, MustNew("red").Equal(MustNew("#FF000080")))
	assert.False(t, MustNew("red").Equal(Color{}))
	assert.True(t, Color{}.Equal(Color{}))

	set := map[[4]float64]bool{MustNew("red").Key(): true}
	assert.True(t, set[MustNew([]int{255, 0, 0, 255}).Key()])
}

func TestNewErrors(t *testing.T) {
	tests := []struct {
		value any
		space []Space
		err   error
	}{
		{"notacolor", nil, ErrUnknownColorName},
		{[]any{0.5, 0.5, "x"}, nil, ErrInvalidColorComponent},
		{[]int{1, 2}, nil, ErrInvalidColorArity},
		{[]int{1, 2, 3, 4, 5}, nil, ErrInvalidColorArity},
		{[]int{256, 0, 0}, nil, ErrInvalidColorComponent},
		{[]float64{-0.5, 0, 0}, nil, ErrInvalidColorComponent},
		{42, nil, ErrUnsupportedColorFormat},
		{map[string]int{"r": 1}, nil, ErrUnsupportedColorFormat},
		{"#FF5733", []Space{RGB}, ErrInvalidColorComponent},
		{[]int{1, 2, 3}, []Space{Hex}, ErrInvalidColorComponent},
		{"#FF5733", []Space{Hexa}, ErrInvalidColorComponent},
		{[]float64{0.1, 0.2, 0.3, 0.4}, []Space{RGB}, ErrInvalidColorComponent},
		{[]float64{0.1, 0.2, 0.3}, []Space{CMYK}, ErrInvalidColorComponent},
		{[]int{1, 2, 3, 4, 5}, []Space{RGB}, ErrInvalidColorArity},
		{[]int{1, 2, 3}, []Space{HSV}, ErrInvalidColorComponent},
		{"red", []Space{Space(42)}, ErrInvalidColorSpace},
		{"red", []Space{Name, Hex}, ErrInvalidColorSpace},
	}
	for _, tt := range tests {
		c, err := New(tt.value, tt.space...)
		assert.ErrorIs(t, err, tt.err, "%v %v", tt.value, tt.space)
		assert.True(t, c.IsNil())
	}
}

func TestErrorDetails(t *testing.T) {
	_, err := New("tomatoe")
	require.Error(t, err)
	var cerr *Error
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, "colors.Classify", cerr.Op)
	assert.Equal(t, "tomatoe", cerr.Value)
	assert.Contains(t, err.Error(), `did you mean "tomato"?`)
}

func TestExplicitSpace(t *testing.T) {
	c := MustNew([]float64{0.25, 1, 1}, HSV)
	rgb255, err := c.AsRGB255()
	require.NoError(t, err)
	assert.Equal(t, [3]int{128, 255, 0}, rgb255)

	c = MustNew([]float64{0, 0, 0, 1}, CMYK)
	hex, err := c.AsHex()
	require.NoError(t, err)
	assert.Equal(t, "#000000", hex)

	c, err = NewFromString("#ff5733", "HEX")
	require.NoError(t, err)
	assert.Equal(t, Hex, c.Space())

	_, err = NewFromString("#ff5733", "lab")
	assert.ErrorIs(t, err, ErrInvalidColorSpace)
}

func TestRegistration(t *testing.T) {
	RegisterColor("mycolor", "#123456")
	assert.Equal(t, "#123456", ListColors()["mycolor"])

	hex, err := MustNew("mycolor").AsHex()
	require.NoError(t, err)
	assert.Equal(t, "#123456", hex)

	name, err := MustNew("#123456").AsName()
	require.NoError(t, err)
	assert.Equal(t, "mycolor", name)
}

func TestRegistrationWithAlpha(t *testing.T) {
	g, err := NewGraph(NewEmptyRegistry())
	require.NoError(t, err)
	g.Names().Register("toolong", "#12345678ff")
	g.Names().Register("solid", "#abcdefFF")
	g.Names().Register("ghost", "#FFFFFF80")

	c, err := g.New("solid")
	require.NoError(t, err)
	hex, err := c.AsHex()
	require.NoError(t, err)
	assert.Equal(t, "#ABCDEF", hex)
	assert.Equal(t, 1.0, c.Alpha())

	_, err = g.New("ghost")
	assert.ErrorIs(t, err, ErrInvalidColorComponent)
	assert.ErrorContains(t, err, "must be opaque")

	_, err = g.New("toolong")
	assert.ErrorIs(t, err, ErrInvalidColorComponent)
}

func TestNilColor(t *testing.T) {
	c, err := New(nil)
	require.NoError(t, err)
	assert.True(t, c.IsNil())
	assert.Equal(t, "Color(nil)", c.String())

	_, err = c.AsHex()
	assert.ErrorIs(t, err, ErrNilColor)
	_, err = c.AsName()
	assert.ErrorIs(t, err, ErrNilColor)
	assert.Equal(t, color.NRGBA{}, c.NRGBA())

	var pc *Color
	c, err = New(pc)
	require.NoError(t, err)
	assert.True(t, c.IsNil())

	assert.True(t, LogNew("notacolor").IsNil())
	assert.Panics(t, func() { MustNew("notacolor") })
}

func TestString(t *testing.T) {
	assert.Equal(t, "Color(red)", MustNew("red").String())
	assert.Equal(t, "Color([1 2 3])", MustNew([]int{1, 2, 3}).String())
	assert.Equal(t, "Color(#FF5733)", MustNew("#FF5733").String())
}

func TestImageColor(t *testing.T) {
	c := MustNew(color.NRGBA{R: 255, G: 87, B: 51, A: 255})
	assert.Equal(t, RGBA255, c.Space())
	hex, err := c.AsHex()
	require.NoError(t, err)
	assert.Equal(t, "#FF5733", hex)

	assert.Equal(t, color.NRGBA{R: 128, G: 128, B: 128, A: 128}, MustNew("#80808080").NRGBA())

	r, g, b, a := MustNew("white").RGBA()
	assert.Equal(t, [4]uint32{0xffff, 0xffff, 0xffff, 0xffff}, [4]uint32{r, g, b, a})
}

func TestTextMarshaling(t *testing.T) {
	type style struct {
		Fill   Color
		Stroke Color
	}
	b, err := json.Marshal(style{Fill: MustNew("red")})
	require.NoError(t, err)
	assert.Equal(t, `{"Fill":"#FF0000","Stroke":""}`, string(b))

	var s style
	require.NoError(t, json.Unmarshal([]byte(`{"Fill":"tomato","Stroke":"#00000080"}`), &s))
	assert.True(t, s.Fill.Equal(MustNew("#FF6347")))
	assert.InDelta(t, 128.0/255, s.Stroke.Alpha(), 1e-9)

	assert.Error(t, json.Unmarshal([]byte(`{"Fill":"notacolor"}`), &s))
}
