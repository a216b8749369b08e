// Copyright (c) 2024, The Psychos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"

	"github.com/iancoleman/strcase"
)

// Cmd represents a runnable command with configuration options.
// The type constraint is the type of the configuration
// information passed to the command.
type Cmd[T any] struct {
	// Func is the actual function that runs the command.
	// It takes configuration information and returns an error.
	Func func(T) error

	// Name is the name of the command.
	Name string

	// Doc is the documentation for the command.
	Doc string

	// Root is whether the command is the root command
	// (what is called when no subcommands are passed)
	Root bool
}

// CmdOrFunc is a generic type constraint that represents either
// a [*Cmd] with the given config type or a command function that
// takes the given config type and returns an error.
type CmdOrFunc[T any] interface {
	*Cmd[T] | func(T) error
}

// CmdFromFunc returns a new [Cmd] object from the given function,
// named after the function in kebab-case.
func CmdFromFunc[T any](fun func(T) error) (*Cmd[T], error) {
	if fun == nil {
		return nil, fmt.Errorf("cli.CmdFromFunc: nil function")
	}
	fn := runtime.FuncForPC(reflect.ValueOf(fun).Pointer()).Name()
	// we need to get rid of package name and then convert to kebab
	strs := strings.Split(fn, ".")
	cfn := strings.TrimSuffix(strs[len(strs)-1], "-fm") // method values
	return &Cmd[T]{Func: fun, Name: strcase.ToKebab(cfn)}, nil
}

// CmdFromCmdOrFunc returns a new [Cmd] object from the given
// [CmdOrFunc] object, using [CmdFromFunc] if it is a function.
func CmdFromCmdOrFunc[T any, C CmdOrFunc[T]](cmd C) (*Cmd[T], error) {
	switch c := any(cmd).(type) {
	case *Cmd[T]:
		if c == nil || c.Func == nil {
			return nil, fmt.Errorf("cli.CmdFromCmdOrFunc: nil command")
		}
		return c, nil
	case func(T) error:
		return CmdFromFunc(c)
	default:
		panic(fmt.Errorf("internal/programmer error: cli.CmdFromCmdOrFunc: impossible type %T for command %v", cmd, cmd))
	}
}

// CmdsFromCmdOrFuncs is a helper function that returns a slice
// of command objects from the given slice of [CmdOrFunc] objects,
// using [CmdFromCmdOrFunc]. It fails on duplicate names and on
// more than one root command.
func CmdsFromCmdOrFuncs[T any, C CmdOrFunc[T]](cmds []C) ([]*Cmd[T], error) {
	res := make([]*Cmd[T], len(cmds))
	names := map[string]bool{}
	hasRoot := false
	for i, cmd := range cmds {
		c, err := CmdFromCmdOrFunc[T, C](cmd)
		if err != nil {
			return nil, err
		}
		if names[c.Name] {
			return nil, fmt.Errorf("cli: duplicate command name %q", c.Name)
		}
		names[c.Name] = true
		if c.Root {
			if hasRoot {
				return nil, fmt.Errorf("cli: more than one root command (second is %q)", c.Name)
			}
			hasRoot = true
		}
		res[i] = c
	}
	return res, nil
}

// rootCmd returns the root command, or nil if there is none.
func rootCmd[T any](cmds []*Cmd[T]) *Cmd[T] {
	for _, c := range cmds {
		if c.Root {
			return c
		}
	}
	return nil
}

// cmdByName returns the command with the given name, or nil.
func cmdByName[T any](cmds []*Cmd[T], name string) *Cmd[T] {
	for _, c := range cmds {
		if c.Name == name {
			return c
		}
	}
	return nil
}
