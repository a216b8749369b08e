// Copyright (c) 2024, The Psychos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

// Options contains the options passed to cli
// that control its behavior.
type Options struct {
	// AppName is the internal name of the app (typically in kebab-case).
	AppName string

	// AppAbout is the description of the app.
	AppAbout string

	// Fatal is whether to, if there is an error in [Run],
	// print it and fatally exit the program through [os.Exit]
	// with an exit code of 1.
	Fatal bool

	// PrintSuccess is whether to print a message indicating
	// that a command was successful after it is run.
	PrintSuccess bool

	// DefaultFiles are the default configuration file paths,
	// opened if found on [Options.IncludePaths] when no
	// config file is given with -config.
	DefaultFiles []string

	// IncludePaths is a list of file paths to try for finding config files
	// specified in the Includes field or via the command line -config or -cfg
	// args. A leading "~" is expanded to the home directory.
	IncludePaths []string
}

// DefaultOptions returns a new [Options] value
// with standard default values, based on the given
// app name and optional app about info.
func DefaultOptions(appName string, appAbout ...string) *Options {
	about := ""
	if len(appAbout) > 0 {
		about = appAbout[0]
	}
	return &Options{
		AppName:      appName,
		AppAbout:     about,
		Fatal:        true,
		DefaultFiles: []string{appName + ".toml"},
		IncludePaths: []string{".", "~/.config/" + appName},
	}
}
