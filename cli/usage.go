// Copyright (c) 2024, The Psychos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/memory-formation/psychos/base/errors"
	"github.com/memory-formation/psychos/base/logx"
	"github.com/memory-formation/psychos/base/ordmap"
)

// Usage returns a usage string based on the given options,
// configuration struct, current command, and available commands.
// It contains [Options.AppAbout], a list of the commands and their
// descriptions, and a list of the flags and their descriptions,
// scoped based on the current command and its associated commands
// and configuration.
func Usage[T any](opts *Options, cfg T, cmd string, cmds ...*Cmd[T]) string {
	var b strings.Builder
	if opts.AppAbout != "" {
		b.WriteString(opts.AppAbout + "\n\n")
	}
	b.WriteString(logx.TitleColor("Usage:") + "\n")
	cmdName := opts.AppName
	if cmd != "" {
		cmdName += " " + cmd
	}
	b.WriteString("\t" + logx.CmdColor(cmdName+" "))
	if cmd == "" && len(cmds) > 0 {
		b.WriteString(logx.CmdColor("<command> "))
	}
	b.WriteString(logx.CmdColor("[flags]") + "\n")

	if cmd == "" && len(cmds) > 0 {
		b.WriteString("\n" + logx.TitleColor("Commands:") + "\n")
		for _, c := range cmds {
			nm := c.Name
			if c.Root {
				nm += " (default)"
			}
			b.WriteString("\t" + logx.CmdColor(nm) + "\n")
			if c.Doc != "" {
				b.WriteString("\t    " + strings.ReplaceAll(c.Doc, "\n", "\n\t    ") + "\n")
			}
		}
	}

	scope := cmd
	if rc := rootCmd(cmds); scope == "" && rc != nil {
		scope = rc.Name
	}
	fields := ordmap.New[string, *Field]()
	errors.Log(AddFields(&MetaConfig{}, fields, scope))
	if reflect.ValueOf(cfg).Kind() == reflect.Pointer {
		errors.Log(AddFields(cfg, fields, scope))
	}
	b.WriteString("\n" + logx.TitleColor("Flags:") + "\n")
	for _, f := range fields.Values() {
		usageField(f, &b)
	}
	return b.String()
}

// usageField adds the usage info for the given field to the given builder.
func usageField(f *Field, b *strings.Builder) {
	b.WriteString("\t")
	for i, nm := range f.Names {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(logx.CmdColor("-" + nm))
	}
	if pa, ok := f.Field.Tag.Lookup("posarg"); ok {
		b.WriteString(fmt.Sprintf(" (positional arg %s)", pa))
	}
	b.WriteString("\n")
	desc := f.Field.Tag.Get("desc")
	def, hasDef := f.Field.Tag.Lookup("default")
	if desc == "" && !hasDef {
		return
	}
	b.WriteString("\t    " + desc)
	if hasDef && def != "" {
		b.WriteString(fmt.Sprintf(" (default %s)", def))
	}
	b.WriteString("\n")
}
