// Copyright (c) 2024, The Psychos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"
)

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "lightblue", NormalizeName("Light Blue"))
	assert.Equal(t, "lightblue", NormalizeName("  LIGHT\tblue "))
	assert.Equal(t, "red", NormalizeName("red"))
	assert.Equal(t, "", NormalizeName("   "))
}

func TestBuiltinTable(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, len(colornames.Names)+len(extraNames), r.Len())

	hex, ok := r.Lookup("Red")
	assert.True(t, ok)
	assert.Equal(t, "#ff0000", hex)

	hex, ok = r.Lookup("eigengrau")
	assert.True(t, ok)
	assert.Equal(t, "#16161d", hex)

	names := r.Names()
	assert.Equal(t, "aliceblue", names[0])
	assert.Equal(t, "eigengrau", names[len(names)-1])
}

func TestReverseLookup(t *testing.T) {
	r := NewRegistry()
	tests := []struct {
		hex  string
		name string
		ok   bool
	}{
		{"#0000FF", "blue", true},
		{"#0000ff", "blue", true},
		{"0000ff", "blue", true},
		{"#00FFFF", "aqua", true},
		{"#808080", "gray", true},
		{"#FF00FF", "fuchsia", true},
		{"#0000FE", "", false},
	}
	for _, tt := range tests {
		nm, ok := r.ReverseLookup(tt.hex)
		assert.Equal(t, tt.ok, ok, tt.hex)
		assert.Equal(t, tt.name, nm, tt.hex)
	}
}

func TestRegister(t *testing.T) {
	r := NewEmptyRegistry()
	assert.Equal(t, 0, r.Len())
	r.Register("My Color", "#123456")
	r.Register("other", "#654321")
	assert.True(t, r.Has("mycolor"))
	assert.True(t, r.Has("MY COLOR"))
	assert.Equal(t, map[string]string{"mycolor": "#123456", "other": "#654321"}, r.List())

	// replacing keeps the position
	r.Register("mycolor", "#abcdef")
	assert.Equal(t, []string{"mycolor", "other"}, r.Names())
	hex, _ := r.Lookup("mycolor")
	assert.Equal(t, "#abcdef", hex)

	list := r.List()
	list["mycolor"] = "#000000"
	hex, _ = r.Lookup("mycolor")
	assert.Equal(t, "#abcdef", hex)
}

func TestSuggest(t *testing.T) {
	r := NewRegistry()
	s, ok := r.Suggest("tomatoe")
	assert.True(t, ok)
	assert.Equal(t, "tomato", s)

	s, ok = r.Suggest("Dark Oliv Green")
	assert.True(t, ok)
	assert.Equal(t, "darkolivegreen", s)

	_, ok = r.Suggest("qqqq")
	assert.False(t, ok)

	_, ok = NewEmptyRegistry().Suggest("red")
	assert.False(t, ok)
}

func TestRegistryConcurrent(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := range 50 {
				r.Register(fmt.Sprintf("color%d-%d", i, j), fmt.Sprintf("#%06x", i*1000+j))
			}
		}()
		go func() {
			defer wg.Done()
			for range 50 {
				_, ok := r.Lookup("red")
				assert.True(t, ok)
				r.ReverseLookup("#ff0000")
				r.List()
			}
		}()
	}
	wg.Wait()
	require.Equal(t, len(colornames.Names)+len(extraNames)+8*50, r.Len())
}
