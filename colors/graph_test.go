// Copyright (c) 2024, The Psychos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindPath(t *testing.T) {
	g := DefaultGraph()
	tests := []struct {
		from, to Space
		want     string
	}{
		{Hex, HSV, "hex -> rgb255 -> rgb -> hsv"},
		{Name, CMYK, "name -> hex -> rgb255 -> rgb -> cmyk"},
		{RGBA, Hex, "rgba -> rgba255 -> hex"},
		{RGB, Hex, "rgb -> rgb255 -> hex"},
		{Hexa, Hex, "hexa -> rgba255 -> hex"},
		{Hex, RGBA, "hex -> rgb255 -> rgb -> rgba"},
		{HSV, Hexa, "hsv -> rgb -> rgb255 -> rgba255 -> hexa"},
		{YIQ, HSL, "yiq -> rgb -> hsl"},
	}
	for _, tt := range tests {
		p, err := g.FindPath(tt.from, tt.to)
		require.NoError(t, err)
		assert.Equal(t, tt.want, p.String())

		// cached paths are identical
		p2, err := g.FindPath(tt.from, tt.to)
		require.NoError(t, err)
		assert.Equal(t, p.Spaces(), p2.Spaces())
	}
}

func TestFindPathSelf(t *testing.T) {
	p, err := DefaultGraph().FindPath(HSV, HSV)
	require.NoError(t, err)
	assert.Empty(t, p)
	assert.Nil(t, p.Spaces())
	assert.Equal(t, "", p.String())

	v, err := p.Apply(CompsValue(0.1, 0.2, 0.3))
	require.NoError(t, err)
	assert.Equal(t, []float64{0.1, 0.2, 0.3}, v.Comps)
}

func TestAllPairsConnected(t *testing.T) {
	g := DefaultGraph()
	for _, from := range SpacesValues() {
		for _, to := range SpacesValues() {
			p, err := g.FindPath(from, to)
			require.NoError(t, err, "%v -> %v", from, to)
			if from != to {
				assert.Equal(t, from, p[0].From)
				assert.Equal(t, to, p[len(p)-1].To)
			}
		}
	}
}

func TestEdges(t *testing.T) {
	edges := DefaultGraph().Edges()
	require.NotEmpty(t, edges)
	assert.Equal(t, "hex -> rgb255", edges[0].String())
	assert.Equal(t, "yiq -> rgb", edges[len(edges)-1].String())

	edges[0] = Edge{}
	assert.Equal(t, "hex -> rgb255", DefaultGraph().Edges()[0].String())
}

func TestBuilderErrors(t *testing.T) {
	_, err := NewBuilder(nil).AddStandard().Add(RGB, HSV, rgbToHSV).Build()
	assert.ErrorContains(t, err, "duplicate edge rgb -> hsv")

	_, err = NewBuilder(nil).Add(Space(99), RGB, rgbToHSV).Build()
	assert.ErrorIs(t, err, ErrInvalidColorSpace)

	_, err = NewBuilder(nil).Add(RGB, RGB, dropAlpha).Build()
	assert.ErrorContains(t, err, "self edge")

	_, err = NewBuilder(nil).Add(RGB, HSV, nil).Build()
	assert.ErrorContains(t, err, "nil function")
}

func TestValidate(t *testing.T) {
	// hsv cannot get back to rgb
	_, err := NewBuilder(nil).Add(RGB, HSV, rgbToHSV).Build()
	assert.ErrorIs(t, err, ErrNoConversionPath)

	g, err := NewBuilder(nil).Add(RGB, HSV, rgbToHSV).Add(HSV, RGB, hsvToRGB).Build()
	require.NoError(t, err)
	_, err = g.FindPath(RGB, CMYK)
	assert.ErrorIs(t, err, ErrNoConversionPath)
}

func TestGraphWithoutNames(t *testing.T) {
	g, err := NewBuilder(nil).AddStandard().Build()
	require.NoError(t, err)
	assert.Nil(t, g.Names())

	_, err = g.FindPath(Hex, Name)
	assert.ErrorIs(t, err, ErrNoConversionPath)

	_, err = g.New("red")
	assert.ErrorIs(t, err, ErrUnknownColorName)

	c, err := g.New("#FF5733")
	require.NoError(t, err)
	_, err = c.AsName()
	assert.ErrorIs(t, err, ErrNoNameForColor)
	hsv, err := c.AsHSV()
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.8, 1}, hsv[1:], 1e-9)
}

func TestCustomRegistryGraph(t *testing.T) {
	reg := NewEmptyRegistry()
	reg.Register("Brand Red", "#c8102e")
	g, err := NewGraph(reg)
	require.NoError(t, err)

	c, err := g.New("brandred")
	require.NoError(t, err)
	hex, err := c.AsHex()
	require.NoError(t, err)
	assert.Equal(t, "#C8102E", hex)

	_, err = g.New("red")
	assert.ErrorIs(t, err, ErrUnknownColorName)
}

func TestConvertFailureAborts(t *testing.T) {
	reg := NewEmptyRegistry()
	reg.Register("broken", "#12345")
	g, err := NewGraph(reg)
	require.NoError(t, err)

	c, err := g.New("broken")
	assert.ErrorIs(t, err, ErrInvalidColorComponent)
	assert.True(t, c.IsNil())
}

func TestGraphConcurrent(t *testing.T) {
	g, err := NewGraph(NewRegistry())
	require.NoError(t, err)
	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			from := SpacesValues()[i%int(spacesN)]
			for _, to := range SpacesValues() {
				_, err := g.FindPath(from, to)
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()
}
