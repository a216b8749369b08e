// Copyright (c) 2024, The Psychos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"
	"image/color"
	"reflect"
	"regexp"
	"strings"

	"github.com/memory-formation/psychos/base/errors"
)

var (
	hexPattern  = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
	hexaPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{8}$`)
)

// Classify infers the space of the given literal using [DefaultGraph].
// See [Graph.Classify].
func Classify(value any) (Space, Value, error) {
	return defaultGraph.Classify(value)
}

// Classify infers the space of the given literal and returns it
// together with the literal as a [Value]:
//
//   - "#" followed by 6 or 8 hex digits is [Hex] or [Hexa]; any other
//     string is a [Name] that must be registered.
//   - slices and arrays must have 3 or 4 numeric elements. All integers
//     are [RGB255]/[RGBA255]. Floats (or mixed numbers, taken as floats)
//     are [RGB]/[RGBA] if all are <= 1 and [RGB255]/[RGBA255] otherwise.
//   - [image/color.Color] values are [RGBA255].
//
// The classified value is validated against the ranges of its space.
func (g *Graph) Classify(value any) (Space, Value, error) {
	const op = "colors.Classify"
	switch v := value.(type) {
	case string:
		s := strings.TrimSpace(v)
		switch {
		case hexPattern.MatchString(s):
			return Hex, TextValue(strings.ToUpper(s)), nil
		case hexaPattern.MatchString(s):
			return Hexa, TextValue(strings.ToUpper(s)), nil
		}
		if g.names == nil || !g.names.Has(s) {
			return 0, Value{}, g.unknownName(op, s)
		}
		return Name, TextValue(NormalizeName(s)), nil
	case Color:
		if v.IsNil() {
			return 0, Value{}, &Error{Op: op, Value: v, Err: ErrNilColor}
		}
		return v.space, v.value, nil
	case *Color:
		if v == nil {
			return 0, Value{}, &Error{Op: op, Err: ErrNilColor}
		}
		return g.Classify(*v)
	case color.Color:
		c := color.NRGBAModel.Convert(v).(color.NRGBA)
		return RGBA255, CompsValue(float64(c.R), float64(c.G), float64(c.B), float64(c.A)), nil
	}

	comps, allInt, err := numericSequence(op, value)
	if err != nil {
		return 0, Value{}, err
	}
	sp := RGB
	if allInt {
		sp = RGB255
	} else {
		for _, c := range comps {
			if c > 1 {
				sp = RGB255
				break
			}
		}
	}
	if len(comps) == 4 {
		sp++ // the alpha variant directly follows each space
	}
	val := CompsValue(comps...)
	if err := checkRanges(op, value, sp, val); err != nil {
		return 0, Value{}, err
	}
	return sp, val, nil
}

// coerce validates the given literal against an explicitly requested space.
func (g *Graph) coerce(value any, sp Space) (Value, error) {
	const op = "colors.New"
	if !sp.IsValid() {
		return Value{}, &Error{Op: op, Value: sp, Err: ErrInvalidColorSpace}
	}
	if sp.IsText() {
		str, ok := value.(string)
		if !ok {
			return Value{}, newError(op, value, ErrInvalidColorComponent, "space %v needs a string, got %T", sp, value)
		}
		str = strings.TrimSpace(str)
		switch sp {
		case Hex:
			if !hexPattern.MatchString(str) {
				return Value{}, newError(op, value, ErrInvalidColorComponent, "%q is not a #RRGGBB hex color", str)
			}
			str = strings.ToUpper(str)
		case Hexa:
			if !hexaPattern.MatchString(str) {
				return Value{}, newError(op, value, ErrInvalidColorComponent, "%q is not a #RRGGBBAA hex color", str)
			}
			str = strings.ToUpper(str)
		case Name:
			if g.names == nil || !g.names.Has(str) {
				return Value{}, g.unknownName(op, str)
			}
			str = NormalizeName(str)
		}
		return TextValue(str), nil
	}

	if c, ok := value.(color.Color); ok && sp == RGBA255 {
		nc := color.NRGBAModel.Convert(c).(color.NRGBA)
		return CompsValue(float64(nc.R), float64(nc.G), float64(nc.B), float64(nc.A)), nil
	}
	comps, _, err := numericSequence(op, value)
	if errors.Is(err, ErrUnsupportedColorFormat) {
		return Value{}, newError(op, value, ErrInvalidColorComponent, "space %v needs a numeric tuple, got %T", sp, value)
	}
	if err != nil {
		return Value{}, err
	}
	if len(comps) != sp.Channels() {
		return Value{}, newError(op, value, ErrInvalidColorComponent, "space %v needs %d components, got %d", sp, sp.Channels(), len(comps))
	}
	val := CompsValue(comps...)
	if err := checkRanges(op, value, sp, val); err != nil {
		return Value{}, err
	}
	return val, nil
}

// unknownName returns an [ErrUnknownColorName] error for the given name.
func (g *Graph) unknownName(op, name string) error {
	if g.names == nil {
		return newError(op, name, ErrUnknownColorName, "%q (no registry)", name)
	}
	return g.names.unknownName(op, name)
}

// numericSequence returns the elements of a slice or array of 3 or 4
// numbers as floats, and whether all of them are integers.
func numericSequence(op string, value any) ([]float64, bool, error) {
	if value == nil {
		return nil, false, newError(op, value, ErrUnsupportedColorFormat, "nil value")
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false, newError(op, value, ErrUnsupportedColorFormat, "%v of type %T", value, value)
	}
	n := rv.Len()
	if n != 3 && n != 4 {
		return nil, false, newError(op, value, ErrInvalidColorArity, "color tuple must have 3 (RGB) or 4 (RGBA) elements, got %d", n)
	}
	comps := make([]float64, n)
	allInt := true
	for i := range n {
		el := rv.Index(i)
		for el.Kind() == reflect.Interface || el.Kind() == reflect.Pointer {
			if el.IsNil() {
				return nil, false, newError(op, value, ErrInvalidColorComponent, "color tuple contains non-numeric elements: %v", value)
			}
			el = el.Elem()
		}
		switch el.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			comps[i] = float64(el.Int())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			comps[i] = float64(el.Uint())
		case reflect.Float32, reflect.Float64:
			comps[i] = el.Float()
			allInt = false
		default:
			return nil, false, newError(op, value, ErrInvalidColorComponent, "color tuple contains non-numeric elements: %v", value)
		}
	}
	return comps, allInt, nil
}

// checkRanges validates the components of val against the ranges of sp.
func checkRanges(op string, value any, sp Space, val Value) error {
	for i, c := range val.Comps {
		lo, hi := sp.componentRange(i)
		if !(c >= lo && c <= hi) {
			return newError(op, value, ErrInvalidColorComponent, "component %d of %v is %s, outside of [%g, %g] for space %v", i, value, fmt.Sprint(c), lo, hi, sp)
		}
	}
	return nil
}
