// Copyright (c) 2024, The Psychos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"encoding"
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/memory-formation/psychos/base/ordmap"
)

// Field represents a struct field in a configuration object.
// It is passed around in flag parsing functions, but it should
// not typically be used by end-user code going through the
// standard Run/Config/SetFromArgs API.
type Field struct {
	// Field is the reflect struct field object for this field
	Field reflect.StructField

	// Value is the reflect value of the settable field
	Value reflect.Value

	// Name is the fully qualified, nested name of this field (eg: A.B.C).
	// It is as it appears in code, and is NOT transformed something like kebab-case.
	Name string

	// Names contains all of the possible end-user names for this field as a flag.
	// It defaults to the kebab-case name of the field, but custom names can be
	// specified via the flag struct tag.
	Names []string
}

// Fields is a simple type alias for an ordered map of [Field] objects.
type Fields = ordmap.Map[string, *Field]

var textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()

// isLeaf returns whether fields of the given type are set as a whole
// rather than recursed into.
func isLeaf(typ reflect.Type) bool {
	return typ.Kind() != reflect.Struct || reflect.PointerTo(typ).Implements(textUnmarshalerType)
}

// AddFields adds to the given fields map all of the fields of the given
// object, in the context of the given command name. Fields with a `cmd:`
// tag are only added for the listed commands; fields tagged `flag:"-"`
// are skipped. It returns an error if two fields share a flag name.
func AddFields(obj any, allFields *Fields, cmd string) error {
	val := reflect.ValueOf(obj)
	if val.Kind() != reflect.Pointer || val.IsNil() || val.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("cli.AddFields: expected a non-nil pointer to a struct, got %T", obj)
	}
	used := map[string]*Field{}
	for _, f := range allFields.Values() {
		for _, nm := range f.Names {
			used[nm] = f
		}
	}
	return addFieldsImpl(val.Elem(), "", allFields, used, cmd)
}

// addFieldsImpl is the underlying implementation of [AddFields].
// usedNames is a map keyed by used flag names with values
// of their associated fields, used to track naming conflicts.
func addFieldsImpl(val reflect.Value, path string, allFields *Fields, usedNames map[string]*Field, cmd string) error {
	typ := val.Type()
	for i := range typ.NumField() {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		if cmdtag, ok := f.Tag.Lookup("cmd"); ok && !slices.Contains(strings.Split(cmdtag, ","), cmd) {
			continue // associated with a different command
		}
		flagtag, hasFlag := f.Tag.Lookup("flag")
		if flagtag == "-" {
			continue
		}
		name := f.Name
		if path != "" {
			name = path + "." + name
		}
		if !isLeaf(f.Type) {
			if err := addFieldsImpl(val.Field(i), name, allFields, usedNames, cmd); err != nil {
				return err
			}
			continue
		}
		names := []string{strcase.ToKebab(f.Name)}
		if hasFlag {
			names = strings.Split(flagtag, ",")
		}
		nf := &Field{Field: f, Value: val.Field(i), Name: name, Names: names}
		for _, nm := range names {
			if of, has := usedNames[nm]; has {
				return fmt.Errorf("cli: programmer error: fields %q and %q were both assigned the flag name %q", of.Name, nf.Name, nm)
			}
			usedNames[nm] = nf
		}
		allFields.Add(name, nf)
	}
	return nil
}

// setValue sets the given settable value from the given string.
// Slices are set from comma-separated lists.
func setValue(v reflect.Value, str string) error {
	if v.CanAddr() && v.Addr().Type().Implements(textUnmarshalerType) {
		return v.Addr().Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(str))
	}
	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() {
			v.Set(reflect.New(v.Type().Elem()))
		}
		return setValue(v.Elem(), str)
	case reflect.String:
		v.SetString(str)
	case reflect.Bool:
		b, err := strconv.ParseBool(str)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(str, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(str, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetUint(n)
	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(str, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetFloat(n)
	case reflect.Slice:
		var strs []string
		if str != "" {
			strs = strings.Split(str, ",")
		}
		sl := reflect.MakeSlice(v.Type(), len(strs), len(strs))
		for i, s := range strs {
			if err := setValue(sl.Index(i), strings.TrimSpace(s)); err != nil {
				return err
			}
		}
		v.Set(sl)
	default:
		return fmt.Errorf("unsupported field type %v", v.Type())
	}
	return nil
}
