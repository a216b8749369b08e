// Copyright (c) 2024, The Psychos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/memory-formation/psychos/base/errors"
	"github.com/memory-formation/psychos/base/fsx"
	"github.com/memory-formation/psychos/base/logx"
)

// MetaConfig contains meta configuration information specified
// via command line arguments that controls the initial behavior
// of cli for all apps before anything else is loaded. Its
// main purpose is to support the help command and flag and
// the specification of a custom config file on the command line.
type MetaConfig struct {
	// the file name of the config file to load
	Config string `flag:"config,cfg" desc:"the file name of the config file to load"`

	// whether to display a help message
	Help bool `flag:"h,help" desc:"show usage information and exit"`

	// whether to print debug messages
	VeryVerbose bool `flag:"vv,very-verbose" desc:"print debug messages"`

	// whether to print informational messages
	Verbose bool `flag:"v,verbose" desc:"print informational messages"`

	// whether to only print errors
	Quiet bool `flag:"q,quiet" desc:"only print errors"`
}

// Config is the main, high-level configuration setting function,
// processing config files and command-line arguments in the following order:
//   - Apply any `default:` field tag default values.
//   - Look for the -config or -cfg arg specifying a config file on the
//     [Options.IncludePaths], or else the first of [Options.DefaultFiles]
//     that is found.
//   - Open the config file, processing any Includes.
//   - Set from the command-line args, which take precedence over the file.
//
// It then sets [logx.UserLevel] from the verbosity flags and installs
// the default logger. It returns the name of the command to run
// ("help" for -h and -help).
func Config[T any](opts *Options, cfg T, args []string, cmds ...*Cmd[T]) (string, error) {
	var errs []error
	if err := SetFromDefaults(cfg); err != nil {
		errs = append(errs, err)
	}

	file := configArg(args)
	if file != "" {
		if err := openWithIncludes(opts, cfg, file); err != nil {
			return "", fmt.Errorf("error opening config file %q: %w", file, err)
		}
	} else {
		for _, fn := range opts.DefaultFiles {
			if len(fsx.FindFilesOnPaths(opts.IncludePaths, fn)) == 0 {
				continue
			}
			if err := openWithIncludes(opts, cfg, fn); err != nil {
				errs = append(errs, fmt.Errorf("error opening default config file %q: %w", fn, err))
			}
			break
		}
	}

	meta := &MetaConfig{}
	cmd, err := setFromArgs([]any{meta, cfg}, args, true, cmds)
	if err != nil && !meta.Help {
		errs = append(errs, err)
	}
	if meta.Help {
		cmd = "help"
	}
	logx.UserLevel = logx.LevelFromFlags(meta.VeryVerbose, meta.Verbose, meta.Quiet)
	logx.SetDefaultLogger()
	if file != "" {
		slog.Info("opened config file", "file", file)
	}
	return cmd, errors.Join(errs...)
}

// configArg returns the value of the -config or -cfg arg, if any.
func configArg(args []string) string {
	for i, arg := range args {
		if arg == "--" {
			break
		}
		name := strings.TrimLeft(arg, "-")
		if name == arg {
			continue
		}
		if nm, val, ok := strings.Cut(name, "="); ok {
			if nm == "config" || nm == "cfg" {
				return val
			}
			continue
		}
		if (name == "config" || name == "cfg") && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}
