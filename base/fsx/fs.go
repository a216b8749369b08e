// Copyright (c) 2024, The Psychos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fsx provides file system helpers for locating
// configuration and palette files.
package fsx

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/memory-formation/psychos/base/errors"
	"github.com/mitchellh/go-homedir"
)

// ExpandPath expands a leading "~" to the home directory of the user
// and cleans the result. Paths that cannot be expanded are returned
// cleaned but otherwise unchanged.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	exp, err := homedir.Expand(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return filepath.Clean(exp)
}

// FileExists checks whether given file exists, returning true if so,
// false if not, and error if there is an error in accessing the file.
func FileExists(filePath string) (bool, error) {
	info, err := os.Stat(ExpandPath(filePath))
	if err == nil {
		return !info.IsDir(), nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// FindFilesOnPaths attempts to locate given file(s) on given list of paths,
// returning the full Abs path to each file found (nil if none).
// Absolute file names are returned as is if they exist.
func FindFilesOnPaths(paths []string, files ...string) []string {
	var res []string
	for _, fn := range files {
		fn = ExpandPath(fn)
		if filepath.IsAbs(fn) {
			if ok, _ := FileExists(fn); ok {
				res = append(res, fn)
			}
			continue
		}
		for _, path := range paths {
			fp := filepath.Join(ExpandPath(path), fn)
			if ok, _ := FileExists(fp); ok {
				res = append(res, errors.Log1(filepath.Abs(fp)))
			}
		}
	}
	return res
}
