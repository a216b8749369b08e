// Copyright (c) 2024, The Psychos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"reflect"

	"github.com/memory-formation/psychos/base/errors"
)

// SetFromDefaults sets the values of the given config object
// from `default:` struct field tag values. Errors are automatically
// logged in addition to being returned.
func SetFromDefaults(cfg any) error {
	val := reflect.ValueOf(cfg)
	if val.Kind() != reflect.Pointer || val.IsNil() || val.Elem().Kind() != reflect.Struct {
		return errors.Log(fmt.Errorf("cli.SetFromDefaults: expected a non-nil pointer to a struct, got %T", cfg))
	}
	return errors.Log(setFromDefaultsImpl(val.Elem()))
}

func setFromDefaultsImpl(val reflect.Value) error {
	typ := val.Type()
	var errs []error
	for i := range typ.NumField() {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		if !isLeaf(f.Type) {
			if err := setFromDefaultsImpl(val.Field(i)); err != nil {
				errs = append(errs, err)
			}
			continue
		}
		def, ok := f.Tag.Lookup("default")
		if !ok {
			continue
		}
		if err := setValue(val.Field(i), def); err != nil {
			errs = append(errs, fmt.Errorf("error setting field %q from default tag value %q: %w", f.Name, def, err))
		}
	}
	return errors.Join(errs...)
}
