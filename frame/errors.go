// SPDX-License-Identifier: MIT
// Package frame: sentinel error set.
// All public functions return these sentinels (wrapped with a
// "Frame.<Method>(args): %w" context) and callers match them via errors.Is.
// Out-of-bounds reads are NOT errors: Get returns the NA cell instead.

package frame

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRow is the hard lookup failure: a row id resolved to nothing.
	ErrInvalidRow = errors.New("frame: invalid row")

	// ErrInvalidColumn is the hard lookup failure: a column id resolved to nothing.
	ErrInvalidColumn = errors.New("frame: invalid column")

	// ErrOutOfRange indicates a position outside the frame on a write or an
	// explicit integer selector.
	ErrOutOfRange = errors.New("frame: position out of range")

	// ErrDimensionMismatch indicates data longer than the target axis or
	// labels that do not match the data shape.
	ErrDimensionMismatch = errors.New("frame: dimension mismatch")

	// ErrRagged indicates rows of unequal length passed to New.
	ErrRagged = errors.New("frame: ragged rows")

	// ErrBadSelector indicates an id or selector of an unsupported type.
	ErrBadSelector = errors.New("frame: unsupported selector")

	// ErrPlaceholder is returned by mutators on a placeholder frame.
	ErrPlaceholder = errors.New("frame: placeholder frame has no storage")

	// ErrNoFrames is returned by joins called without operands.
	ErrNoFrames = errors.New("frame: no frames to join")

	// ErrNilFrame is returned when a nil *Frame is passed.
	ErrNilFrame = errors.New("frame: nil frame")
)

// frameErrorf wraps err with the method name and its arguments.
func frameErrorf(method string, args any, err error) error {
	return fmt.Errorf("Frame.%s(%v): %w", method, args, err)
}
