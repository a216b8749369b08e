// Copyright (c) 2024, The Psychos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"fmt"
	"image/color"
	"log/slog"

	"github.com/memory-formation/psychos/colors"
	"github.com/muesli/termenv"
)

// UseColor is whether to use color in log messages. It is on by default.
var UseColor = true

// ColorSchemeIsDark is whether the color scheme of the current terminal is dark-themed.
var ColorSchemeIsDark = true

// colorProfile is the termenv color profile, stored globally for convenience.
var colorProfile termenv.Profile

func init() {
	if UseColor {
		InitColor()
	}
}

// InitColor sets up the terminal environment for color output. It is called
// automatically in an init function if [UseColor] is set to true.
func InitColor() {
	restore, err := termenv.EnableVirtualTerminalProcessing(termenv.DefaultOutput())
	if err != nil {
		slog.Warn("error enabling virtual terminal processing for colored output on Windows", "err", err)
	} else {
		restoreConsole = restore
	}
	colorProfile = termenv.ColorProfile()
	ColorSchemeIsDark = termenv.HasDarkBackground()
}

// restoreConsole restores the console mode changed by [InitColor].
var restoreConsole func() error

// RestoreColor restores the console mode that [InitColor] changed for
// colored output on Windows. It is a no-op if nothing was changed,
// and safe to call more than once.
func RestoreColor() error {
	restore := restoreConsole
	restoreConsole = nil
	if restore == nil {
		return nil
	}
	return restore()
}

// SetColorProfile overrides the detected terminal color profile,
// for example to force [termenv.Ascii] output when writing to a file.
func SetColorProfile(p termenv.Profile) {
	colorProfile = p
}

// ApplyColor applies the given color to the given string
// and returns the resulting string. If [UseColor] is set
// to false, it just returns the string it was passed.
func ApplyColor(clr color.Color, str string) string {
	if !UseColor {
		return str
	}
	return termenv.String(str).Foreground(colorProfile.FromColor(clr)).String()
}

// Swatch returns the given string printed in a contrasting foreground
// on a background of the given color. Without [UseColor] the string is
// returned as is.
func Swatch(clr color.Color, str string) string {
	if !UseColor {
		return str
	}
	fg := colors.MustNew("black")
	if c, err := colors.New(clr); err == nil {
		if yiq, err := c.AsYIQ(); err == nil && yiq[0] < 0.5 {
			fg = colors.MustNew("white")
		}
	}
	return termenv.String(str).
		Foreground(colorProfile.FromColor(fg)).
		Background(colorProfile.FromColor(clr)).
		String()
}

// schemeColor returns the named color for the light or dark terminal scheme.
func schemeColor(light, dark string) colors.Color {
	if ColorSchemeIsDark {
		return colors.MustNew(dark)
	}
	return colors.MustNew(light)
}

// LevelColor applies the color associated with the given level to the
// given string and returns the resulting string. If [UseColor] is set
// to false, it just returns the string it was passed.
func LevelColor(level slog.Level, str string) string {
	switch {
	case level >= slog.LevelError:
		return ErrorColor(str)
	case level >= slog.LevelWarn:
		return WarnColor(str)
	case level >= slog.LevelInfo:
		return InfoColor(str)
	}
	return DebugColor(str)
}

// DebugColor applies the color associated with the debug level to
// the given string and returns the resulting string.
func DebugColor(str string) string {
	return ApplyColor(schemeColor("slategray", "lightslategray"), str)
}

// InfoColor applies the color associated with the info level to
// the given string and returns the resulting string.
func InfoColor(str string) string {
	return ApplyColor(schemeColor("steelblue", "lightskyblue"), str)
}

// WarnColor applies the color associated with the warn level to
// the given string and returns the resulting string.
func WarnColor(str string) string {
	return ApplyColor(schemeColor("darkorange", "gold"), str)
}

// ErrorColor applies the color associated with the error level to
// the given string and returns the resulting string.
func ErrorColor(str string) string {
	return ApplyColor(schemeColor("crimson", "tomato"), str)
}

// SuccessColor applies the color associated with success to the
// given string and returns the resulting string.
func SuccessColor(str string) string {
	return ApplyColor(schemeColor("seagreen", "lightgreen"), str)
}

// CmdColor applies the color associated with terminal commands and
// arguments to the given string and returns the resulting string.
func CmdColor(str string) string {
	return ApplyColor(schemeColor("mediumpurple", "plum"), str)
}

// TitleColor applies the color associated with titles and section
// headers to the given string and returns the resulting string.
func TitleColor(str string) string {
	if !UseColor {
		return str
	}
	return termenv.String(str).Foreground(colorProfile.FromColor(schemeColor("royalblue", "cornflowerblue"))).Bold().String()
}

// PrintlnColor prints the given values with the given color
// followed by a newline.
func PrintlnColor(clr color.Color, a ...any) {
	fmt.Println(ApplyColor(clr, fmt.Sprint(a...)))
}
