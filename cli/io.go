// Copyright (c) 2024, The Psychos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"reflect"

	"github.com/memory-formation/psychos/base/errors"
	"github.com/memory-formation/psychos/base/fsx"
	"github.com/memory-formation/psychos/base/iox/tomlx"
)

// Includer is implemented by config types with an Includes field
// listing other config files to read first.
type Includer interface {
	// IncludesPtr returns a pointer to the Includes []string field containing file(s) to include
	// before processing the current config file.
	IncludesPtr() *[]string
}

// maxIncludeDepth bounds include chains, which also breaks cycles.
const maxIncludeDepth = 10

// includeStack returns the stack of include files in the natural
// order in which they are encountered (nil if none).
// Files should then be read in reverse order of the slice.
// Returns an error if any of the include files cannot be found on IncludePath.
// Does not alter cfg.
func includeStack(opts *Options, cfg Includer) ([]string, error) {
	clone := reflect.New(reflect.TypeOf(cfg).Elem()).Interface().(Includer)
	*clone.IncludesPtr() = *cfg.IncludesPtr()
	return includeStackImpl(opts, clone, nil, 0)
}

// includeStackImpl implements includeStack, operating on cloned cfg
func includeStackImpl(opts *Options, clone Includer, includes []string, depth int) ([]string, error) {
	incs := *clone.IncludesPtr()
	ni := len(incs)
	if ni == 0 {
		return includes, nil
	}
	if depth >= maxIncludeDepth {
		return includes, fmt.Errorf("includes nested more than %d deep (cycle?) at %q", maxIncludeDepth, incs)
	}
	for i := ni - 1; i >= 0; i-- {
		includes = append(includes, incs[i]) // reverse order so later overwrite earlier
	}
	var errs []error
	for _, inc := range incs {
		*clone.IncludesPtr() = nil
		err := tomlx.OpenFromPaths(clone, inc, opts.IncludePaths...)
		if err == nil {
			includes, err = includeStackImpl(opts, clone, includes, depth+1)
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("include %q: %w", inc, err))
		}
	}
	return includes, errors.Join(errs...)
}

// openWithIncludes reads the config struct from the given config file
// using the given options, looking on [Options.IncludePaths] for the file.
// It opens any Includes specified in the given config file in the natural
// include order so that includers overwrite included settings.
// Is equivalent to Open if there are no Includes. It returns an error if
// any of the include files cannot be found on [Options.IncludePaths].
func openWithIncludes(opts *Options, cfg any, file string) error {
	files := fsx.FindFilesOnPaths(opts.IncludePaths, file)
	if len(files) == 0 {
		return fmt.Errorf("openWithIncludes: no files found for %q", file)
	}
	err := tomlx.Open(cfg, files[0])
	if err != nil {
		return err
	}
	incfg, ok := cfg.(Includer)
	if !ok {
		return nil
	}
	incs, err := includeStack(opts, incfg)
	if err != nil {
		return err
	}
	ni := len(incs)
	if ni == 0 {
		return nil
	}
	for i := ni - 1; i >= 0; i-- {
		if err := tomlx.OpenFromPaths(cfg, incs[i], opts.IncludePaths...); err != nil {
			return fmt.Errorf("include %q: %w", incs[i], err)
		}
	}
	// reopen original
	if err := tomlx.Open(cfg, files[0]); err != nil {
		return err
	}
	*incfg.IncludesPtr() = incs
	return nil
}
