// Copyright (c) 2024, The Psychos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"

	"github.com/memory-formation/psychos/base/errors"
)

// Sentinel errors reported by the color engine. Every error returned
// by this package wraps exactly one of them; test with [errors.Is].
var (
	// ErrUnsupportedColorFormat is returned for values that are neither
	// strings nor fixed-length numeric sequences.
	ErrUnsupportedColorFormat = errors.New("unsupported color format")

	// ErrInvalidColorArity is returned for sequences whose length is not 3 or 4.
	ErrInvalidColorArity = errors.New("invalid color arity")

	// ErrInvalidColorComponent is returned for non-numeric or out-of-range
	// components, and for values that do not match an explicit space.
	ErrInvalidColorComponent = errors.New("invalid color component")

	// ErrUnknownColorName is returned for names missing from the registry.
	ErrUnknownColorName = errors.New("unknown color name")

	// ErrNoNameForColor is returned when no registered name matches a color exactly.
	ErrNoNameForColor = errors.New("no name for color")

	// ErrNoConversionPath is returned when the graph has no route between two
	// spaces. It signals a graph configuration bug rather than bad input.
	ErrNoConversionPath = errors.New("no conversion path")

	// ErrInvalidColorSpace is returned for unknown space identifiers.
	ErrInvalidColorSpace = errors.New("invalid color space")

	// ErrNilColor is returned when converting a color that holds no value.
	ErrNilColor = errors.New("nil color")
)

// Error describes a failed color operation.
type Error struct {
	// Op is the operation that failed, for example "colors.New".
	Op string

	// Value is the offending input, if any.
	Value any

	// Err is one of the sentinel errors of this package.
	Err error

	// Detail is an optional human-readable explanation.
	Detail string
}

func (e *Error) Error() string {
	msg := e.Op + ": " + e.Err.Error()
	if e.Detail != "" {
		msg += ": " + e.Detail
	} else if e.Value != nil {
		msg += fmt.Sprintf(": %v", e.Value)
	}
	return msg
}

// Unwrap returns the sentinel error.
func (e *Error) Unwrap() error {
	return e.Err
}

func newError(op string, val any, err error, format string, args ...any) *Error {
	return &Error{Op: op, Value: val, Err: err, Detail: fmt.Sprintf(format, args...)}
}
