// Copyright (c) 2024, The Psychos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli generates command line interfaces from configuration
// structs: flags are derived from struct fields, commands are functions
// taking the config, and settings can come from TOML config files.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/memory-formation/psychos/base/errors"
	"github.com/memory-formation/psychos/base/logx"
)

// Run runs an app with the given options, configuration struct,
// and commands. The configuration struct should be passed as a pointer,
// and configuration options should be defined as fields on the
// configuration struct. The commands can be specified as either
// functions, named after the function, or [Cmd] objects.
// See [Options] for information on how to configure the behavior
// of Run. Run uses [os.Args] for its arguments.
func Run[T any, C CmdOrFunc[T]](opts *Options, cfg T, cmds ...C) error {
	err := RunArgs(opts, cfg, os.Args[1:], os.Stdout, cmds...)
	errors.Log(logx.RestoreColor())
	if err != nil && opts.Fatal {
		fmt.Fprintln(os.Stderr, logx.ErrorColor("error:"), err)
		os.Exit(1)
	}
	return err
}

// RunArgs is [Run] with explicit args and output for usage
// and success messages. It never exits the program.
func RunArgs[T any, C CmdOrFunc[T]](opts *Options, cfg T, args []string, out io.Writer, cmds ...C) error {
	cs, err := CmdsFromCmdOrFuncs[T, C](cmds)
	if err != nil {
		return fmt.Errorf("error getting commands from given commands: %w", err)
	}
	cmd, err := Config(opts, cfg, args, cs...)
	if err != nil {
		return fmt.Errorf("error configuring app: %w", err)
	}
	return RunCmd(opts, cfg, cmd, out, cs...)
}

// RunCmd runs the command with the given name using the given options,
// configuration information, and available commands. If the given
// command name is "" or "help" and there is no root command, it prints
// usage information.
func RunCmd[T any](opts *Options, cfg T, cmd string, out io.Writer, cmds ...*Cmd[T]) error {
	if cmd == "help" {
		fmt.Fprintln(out, Usage(opts, cfg, "", cmds...))
		return nil
	}
	c := cmdByName(cmds, cmd)
	if c == nil && cmd == "" {
		c = rootCmd(cmds)
	}
	if c == nil {
		if cmd == "" {
			fmt.Fprintln(out, Usage(opts, cfg, "", cmds...))
			return nil
		}
		return fmt.Errorf("command %q not found", cmd)
	}
	if err := c.Func(cfg); err != nil {
		return fmt.Errorf("error running command %q: %w", c.Name, err)
	}
	if opts.PrintSuccess {
		fmt.Fprintln(out, logx.SuccessColor("Command "+c.Name+" succeeded"))
	}
	return nil
}
