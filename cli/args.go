// Copyright (c) 2024, The Psychos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/memory-formation/psychos/base/ordmap"
)

// SetFromArgs sets config values on the given config object from
// the given from command-line args, based on the field names in
// the config struct and the given commands. It returns the name of
// the command to run (the root command, if any, when no command is
// given), and any error. If errNotFound is set, it is an error for a
// flag to not match any field.
//
// The first arg names the command if it matches one (or is "help").
// Flags are given as -name, --name, -name=value or -name value; bool
// flags do not take a separate value. The remaining args are positional
// and set the fields with a `posarg:` tag: an index, or "all" for a
// field receiving all of them. Positional fields are required unless
// tagged `required:"-"`.
func SetFromArgs[T any](cfg T, args []string, errNotFound bool, cmds ...*Cmd[T]) (string, error) {
	return setFromArgs([]any{cfg}, args, errNotFound, cmds)
}

func setFromArgs[T any](objs []any, args []string, errNotFound bool, cmds []*Cmd[T]) (string, error) {
	cmd := ""
	if len(args) > 0 && (args[0] == "help" || cmdByName(cmds, args[0]) != nil) {
		cmd = args[0]
		args = args[1:]
	} else if rc := rootCmd(cmds); rc != nil {
		cmd = rc.Name
	}
	fields := ordmap.New[string, *Field]()
	for _, obj := range objs {
		if err := AddFields(obj, fields, cmd); err != nil {
			return cmd, err
		}
	}
	posargs, err := parseArgs(args, fields, errNotFound)
	if err != nil {
		return cmd, err
	}
	if cmd == "help" {
		return cmd, nil
	}
	return cmd, setPosArgs(fields, posargs)
}

// flagMap returns the fields keyed by every one of their flag names.
func flagMap(fields *Fields) map[string]*Field {
	res := map[string]*Field{}
	for _, f := range fields.Values() {
		for _, nm := range f.Names {
			res[nm] = f
		}
	}
	return res
}

// isFlag returns whether the given arg is a flag rather than a
// positional argument such as a negative number.
func isFlag(arg string) bool {
	if len(arg) < 2 || arg[0] != '-' {
		return false
	}
	c := arg[1]
	return !(c >= '0' && c <= '9' || c == '.')
}

// parseArgs sets the flags in args on the given fields
// and returns the positional args.
func parseArgs(args []string, fields *Fields, errNotFound bool) ([]string, error) {
	flags := flagMap(fields)
	var posargs []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			posargs = append(posargs, args[i+1:]...)
			break
		}
		if !isFlag(arg) {
			posargs = append(posargs, arg)
			continue
		}
		name := strings.TrimLeft(arg, "-")
		val, hasVal := "", false
		if eq := strings.IndexByte(name, '='); eq >= 0 {
			name, val, hasVal = name[:eq], name[eq+1:], true
		}
		f, ok := flags[name]
		if !ok {
			f, ok = flags[strcase.ToKebab(name)]
		}
		if !ok {
			if errNotFound {
				return nil, fmt.Errorf("flag %q not recognized", arg)
			}
			continue
		}
		if !hasVal {
			if f.Value.Kind() == reflect.Bool {
				val = "true"
			} else {
				if i+1 >= len(args) {
					return nil, fmt.Errorf("missing value for flag %q", arg)
				}
				i++
				val = args[i]
			}
		}
		if err := setValue(f.Value, val); err != nil {
			return nil, fmt.Errorf("error setting field %q from flag %q with value %q: %w", f.Name, arg, val, err)
		}
	}
	return posargs, nil
}

// setPosArgs sets the fields with a posarg tag from the given positional args.
func setPosArgs(fields *Fields, posargs []string) error {
	used := 0
	for _, f := range fields.Values() {
		tag, ok := f.Field.Tag.Lookup("posarg")
		if !ok {
			continue
		}
		required := f.Field.Tag.Get("required") != "-"
		if tag == "all" {
			if len(posargs) == 0 && required {
				return fmt.Errorf("missing positional arguments for %q", strcase.ToKebab(f.Field.Name))
			}
			if f.Value.Kind() != reflect.Slice {
				return fmt.Errorf("cli: programmer error: posarg \"all\" on non-slice field %q", f.Name)
			}
			sl := reflect.MakeSlice(f.Value.Type(), len(posargs), len(posargs))
			for i, pa := range posargs {
				if err := setValue(sl.Index(i), pa); err != nil {
					return fmt.Errorf("error setting field %q from positional argument %d: %w", f.Name, i, err)
				}
			}
			f.Value.Set(sl)
			used = len(posargs)
			continue
		}
		idx, err := strconv.Atoi(tag)
		if err != nil {
			return fmt.Errorf("cli: programmer error: invalid posarg tag %q on field %q", tag, f.Name)
		}
		if idx >= len(posargs) {
			if required {
				return fmt.Errorf("missing positional argument %d (%s)", idx, strcase.ToKebab(f.Field.Name))
			}
			continue
		}
		if err := setValue(f.Value, posargs[idx]); err != nil {
			return fmt.Errorf("error setting field %q from positional argument %d: %w", f.Name, idx, err)
		}
		used = max(used, idx+1)
	}
	if used < len(posargs) {
		return fmt.Errorf("unexpected positional arguments %q", posargs[used:])
	}
	return nil
}
