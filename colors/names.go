// Copyright (c) 2024, The Psychos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"
	"maps"
	"strings"
	"sync"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"github.com/memory-formation/psychos/base/ordmap"
	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"
)

// extraNames are the named colors of the built-in table that are
// not part of the CSS standard.
var extraNames = []ordmap.KeyValue[string, string]{
	{Key: "eigengrau", Value: "#16161d"},
}

// Registry maps normalized color names to hex strings. It keeps the
// order in which names were first registered, so that the reverse
// lookup of a hex value shared by several names (for example "aqua"
// and "cyan") always returns the earliest one. A Registry is safe
// for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	table *ordmap.Map[string, string]
}

// NewRegistry returns a registry holding the built-in table: the
// CSS color names of [colornames] in alphabetical order, followed
// by the extra names.
func NewRegistry() *Registry {
	r := NewEmptyRegistry()
	for _, nm := range colornames.Names {
		c := colornames.Map[nm]
		r.table.Add(nm, fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
	}
	for _, kv := range extraNames {
		r.table.Add(kv.Key, kv.Value)
	}
	return r
}

// NewEmptyRegistry returns a registry without any names.
func NewEmptyRegistry() *Registry {
	return &Registry{table: ordmap.New[string, string]()}
}

// NormalizeName returns the registry key for the given name:
// case folded, with all whitespace removed.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(cases.Fold().String(name)), "")
}

// Register adds or replaces the color with the given name. The hex
// value is stored as given; it is only parsed when the name is used.
// A replaced name keeps its original position.
func (r *Registry) Register(name, hex string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := NormalizeName(name)
	r.table.Add(key, hex)
	logger().Debug("registered color", "name", key, "hex", hex)
}

// Lookup returns the hex value registered for the given name.
func (r *Registry) Lookup(name string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.table.ValueByKeyTry(NormalizeName(name))
}

// Has returns whether the given name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.Lookup(name)
	return ok
}

// ReverseLookup returns the first registered name whose hex value
// matches the given hex string exactly, ignoring case and the
// leading "#". No nearest-color search is performed.
func (r *Registry) ReverseLookup(hex string) (string, bool) {
	want := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	r.mu.RLock()
	defer r.mu.RUnlock()
	for nm, h := range r.table.All() {
		if strings.EqualFold(strings.TrimPrefix(h, "#"), want) {
			return nm, true
		}
	}
	return "", false
}

// List returns a copy of the name to hex table.
func (r *Registry) List() map[string]string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return maps.Collect(r.table.All())
}

// Names returns the registered names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.table.Keys()
}

// Len returns the number of registered names.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.table.Len()
}

// suggestThreshold is the minimum Jaro-Winkler similarity for a suggestion.
const suggestThreshold = 0.85

// Suggest returns the registered name most similar to the given one,
// for use in error messages. It returns false if nothing is close.
func (r *Registry) Suggest(name string) (string, bool) {
	key := NormalizeName(name)
	jw := metrics.NewJaroWinkler()
	best, score := "", 0.0
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, nm := range r.table.Keys() {
		if s := strutil.Similarity(key, nm, jw); s > score {
			best, score = nm, s
		}
	}
	return best, score >= suggestThreshold
}

// nameToHex is the name -> hex converter of the registry.
// The hex value is returned in upper case with a leading "#".
// Named colors are opaque: an 8 digit value is accepted only
// with an "FF" alpha pair, which is dropped.
func (r *Registry) nameToHex(v Value) (Value, error) {
	const op = "colors.nameToHex"
	hex, ok := r.Lookup(v.Text)
	if !ok {
		return Value{}, r.unknownName(op, v.Text)
	}
	digits := strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(hex), "#"))
	if len(digits) == 8 {
		if digits[6:] != "FF" {
			return Value{}, newError(op, v.Text, ErrInvalidColorComponent, "named color %q is registered as translucent %s; named colors must be opaque #RRGGBB", v.Text, hex)
		}
		digits = digits[:6]
	}
	return TextValue("#" + digits), nil
}

// hexToName is the exact reverse hex -> name converter of the registry.
func (r *Registry) hexToName(v Value) (Value, error) {
	nm, ok := r.ReverseLookup(v.Text)
	if !ok {
		return Value{}, newError("colors.hexToName", v.Text, ErrNoNameForColor, "no named color matches %s exactly", v.Text)
	}
	return TextValue(nm), nil
}

// unknownName returns an [ErrUnknownColorName] error for the given name,
// suggesting a similar registered name if there is one.
func (r *Registry) unknownName(op, name string) error {
	if s, ok := r.Suggest(name); ok {
		return newError(op, name, ErrUnknownColorName, "%q (did you mean %q?)", NormalizeName(name), s)
	}
	return newError(op, name, ErrUnknownColorName, "%q", NormalizeName(name))
}

// DefaultRegistry is the process-wide registry used by [New] and
// the package-level registration functions.
var DefaultRegistry = NewRegistry()

// RegisterColor registers the given color name in [DefaultRegistry].
func RegisterColor(name, hex string) {
	DefaultRegistry.Register(name, hex)
}

// ListColors returns a copy of the [DefaultRegistry] table.
func ListColors() map[string]string {
	return DefaultRegistry.List()
}
