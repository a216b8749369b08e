// Copyright (c) 2024, The Psychos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"
	"strings"
	"sync"

	"github.com/memory-formation/psychos/base/errors"
	"github.com/memory-formation/psychos/base/ordmap"
)

// Edge is a registered primitive conversion from one space to another.
type Edge struct {
	From, To Space
	Func     ConvertFunc
}

func (e Edge) String() string {
	return e.From.String() + " -> " + e.To.String()
}

type edgeKey struct{ from, to Space }

// Builder collects the edges of a [Graph]. The order in which edges
// are added breaks ties between equally short conversion paths.
type Builder struct {
	names *Registry
	edges *ordmap.Map[edgeKey, ConvertFunc]
	errs  []error
}

// NewBuilder returns a builder for a graph whose name conversions
// and name classification use the given registry.
func NewBuilder(names *Registry) *Builder {
	return &Builder{names: names, edges: ordmap.New[edgeKey, ConvertFunc]()}
}

// Add registers the conversion from one space to another.
// Registering the same pair twice is an error reported by [Builder.Build].
func (b *Builder) Add(from, to Space, fn ConvertFunc) *Builder {
	key := edgeKey{from, to}
	switch {
	case !from.IsValid() || !to.IsValid():
		b.errs = append(b.errs, fmt.Errorf("colors.Builder.Add: invalid edge %v -> %v: %w", from, to, ErrInvalidColorSpace))
	case from == to:
		b.errs = append(b.errs, fmt.Errorf("colors.Builder.Add: self edge on %v", from))
	case fn == nil:
		b.errs = append(b.errs, fmt.Errorf("colors.Builder.Add: nil function for edge %v -> %v", from, to))
	case b.edges.Has(key):
		b.errs = append(b.errs, fmt.Errorf("colors.Builder.Add: duplicate edge %v -> %v", from, to))
	default:
		b.edges.Add(key, fn)
	}
	return b
}

// AddStandard registers the standard converters between all spaces,
// routing cross-family conversions through rgb and rgba.
func (b *Builder) AddStandard() *Builder {
	b.Add(Hex, RGB255, hexToRGB255).Add(RGB255, Hex, rgb255ToHex)
	b.Add(Hexa, RGBA255, hexaToRGBA255).Add(RGBA255, Hexa, rgba255ToHexa)
	b.Add(RGBA255, Hex, rgba255ToHex)
	if b.names != nil {
		b.Add(Name, Hex, b.names.nameToHex).Add(Hex, Name, b.names.hexToName)
	}
	b.Add(RGB255, RGB, divide(255)).Add(RGB, RGB255, to255Comps)
	b.Add(RGBA255, RGBA, divide(255)).Add(RGBA, RGBA255, to255Comps)
	b.Add(RGB, RGBA, addAlpha(1)).Add(RGBA, RGB, dropAlpha)
	b.Add(RGB255, RGBA255, addAlpha(255)).Add(RGBA255, RGB255, dropAlpha)
	b.Add(RGB, HSV, rgbToHSV).Add(HSV, RGB, hsvToRGB)
	b.Add(RGB, HSL, rgbToHSL).Add(HSL, RGB, hslToRGB)
	b.Add(RGB, CMYK, rgbToCMYK).Add(CMYK, RGB, cmykToRGB)
	b.Add(RGB, YIQ, rgbToYIQ).Add(YIQ, RGB, yiqToRGB)
	return b
}

// Build returns the immutable graph of the registered edges.
// It fails if any edge was invalid or if the graph is not
// connected through the rgb hub (see [Graph.Validate]).
func (b *Builder) Build() (*Graph, error) {
	if len(b.errs) > 0 {
		return nil, errors.Join(b.errs...)
	}
	g := &Graph{names: b.names, adj: make(map[Space][]Edge)}
	for key, fn := range b.edges.All() {
		e := Edge{From: key.from, To: key.to, Func: fn}
		g.adj[key.from] = append(g.adj[key.from], e)
		g.edges = append(g.edges, e)
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	logger().Debug("built color conversion graph", "edges", len(g.edges))
	return g, nil
}

// Graph is a directed graph of color spaces whose edges are primitive
// converters. A Graph is immutable and safe for concurrent use.
type Graph struct {
	names *Registry
	adj   map[Space][]Edge
	edges []Edge

	// paths caches resolved paths by [edgeKey].
	paths sync.Map
}

// NewGraph returns a graph with the standard converters,
// using the given registry for color names.
func NewGraph(names *Registry) (*Graph, error) {
	return NewBuilder(names).AddStandard().Build()
}

// Names returns the registry used by the graph. It is nil for
// graphs built without one.
func (g *Graph) Names() *Registry {
	return g.names
}

// Edges returns the edges of the graph in registration order.
func (g *Graph) Edges() []Edge {
	return append([]Edge(nil), g.edges...)
}

// reachable returns the set of spaces reachable from the given space,
// including itself.
func (g *Graph) reachable(from Space) map[Space]bool {
	seen := map[Space]bool{from: true}
	queue := []Space{from}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		for _, e := range g.adj[s] {
			if !seen[e.To] {
				seen[e.To] = true
				queue = append(queue, e.To)
			}
		}
	}
	return seen
}

// Validate checks that every space reachable from the rgb hub can
// in turn reach every other space reachable from it.
func (g *Graph) Validate() error {
	hub := g.reachable(RGB)
	for s := range hub {
		rs := g.reachable(s)
		for t := range hub {
			if !rs[t] {
				return &Error{Op: "colors.Graph.Validate", Err: ErrNoConversionPath, Detail: s.String() + " -> " + t.String()}
			}
		}
	}
	return nil
}

// FindPath returns the shortest sequence of converters from one space
// to another, breaking ties by edge registration order. The path from
// a space to itself is empty.
func (g *Graph) FindPath(from, to Space) (Path, error) {
	if from == to {
		return Path{}, nil
	}
	key := edgeKey{from, to}
	if p, ok := g.paths.Load(key); ok {
		return p.(Path), nil
	}
	prev := map[Space]Edge{}
	seen := map[Space]bool{from: true}
	queue := []Space{from}
	for len(queue) > 0 && !seen[to] {
		s := queue[0]
		queue = queue[1:]
		for _, e := range g.adj[s] {
			if seen[e.To] {
				continue
			}
			seen[e.To] = true
			prev[e.To] = e
			queue = append(queue, e.To)
		}
	}
	if !seen[to] {
		return nil, &Error{Op: "colors.Graph.FindPath", Err: ErrNoConversionPath, Detail: from.String() + " -> " + to.String()}
	}
	var path Path
	for s := to; s != from; s = prev[s].From {
		path = append(Path{prev[s]}, path...)
	}
	g.paths.Store(key, path)
	logger().Debug("resolved conversion path", "path", path.String())
	return path, nil
}

// Convert converts the given value from one space to another.
func (g *Graph) Convert(v Value, from, to Space) (Value, error) {
	path, err := g.FindPath(from, to)
	if err != nil {
		return Value{}, err
	}
	return path.Apply(v)
}

// Path is an ordered sequence of edges, each one starting
// in the space where the previous one ended.
type Path []Edge

// Apply runs the converters of the path left to right. Any failure
// aborts the whole conversion and no partial result is returned.
// The empty path returns a copy of v.
func (p Path) Apply(v Value) (Value, error) {
	if len(p) == 0 {
		return v.clone(), nil
	}
	for _, e := range p {
		res, err := e.Func(v)
		if err != nil {
			return Value{}, err
		}
		v = res
	}
	return v, nil
}

// Spaces returns the spaces visited by the path, including both ends.
// It is nil for the empty path.
func (p Path) Spaces() []Space {
	if len(p) == 0 {
		return nil
	}
	res := []Space{p[0].From}
	for _, e := range p {
		res = append(res, e.To)
	}
	return res
}

// String returns the path as "a -> b -> c".
func (p Path) String() string {
	spaces := p.Spaces()
	strs := make([]string, len(spaces))
	for i, s := range spaces {
		strs[i] = s.String()
	}
	return strings.Join(strs, " -> ")
}

// defaultGraph is built once from [DefaultRegistry].
var defaultGraph = errors.Must1(NewGraph(DefaultRegistry))

// DefaultGraph returns the process-wide graph used by [New].
func DefaultGraph() *Graph {
	return defaultGraph
}
