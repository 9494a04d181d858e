// SPDX-License-Identifier: MIT
// Package frame: the ad hoc whole-frame stringifier.
//
// Format is meant for debugging and logs. Files are written by textio.Writer.

package frame

import (
	"strings"

	"github.com/katalvlaran/lvframe/cell"
)

// Stringifier defaults.
const (
	DefaultFormatSep       = "\t"
	DefaultFormatPrecision = cell.DefaultPrecision
)

// FormatOption configures Format.
type FormatOption func(*formatOptions)

type formatOptions struct {
	sep    string
	dp     int
	header bool
	index  bool
}

// WithSep sets the field separator. Panics on an empty separator.
func WithSep(sep string) FormatOption {
	if sep == "" {
		panic("frame: WithSep requires a non-empty separator")
	}

	return func(o *formatOptions) { o.sep = sep }
}

// WithPrecision sets the decimal places of non-integral numbers. A negative
// value selects the shortest exact representation.
func WithPrecision(dp int) FormatOption {
	return func(o *formatOptions) { o.dp = dp }
}

// WithHeader toggles the column label line.
func WithHeader(on bool) FormatOption {
	return func(o *formatOptions) { o.header = on }
}

// WithIndex toggles the leading row label field.
func WithIndex(on bool) FormatOption {
	return func(o *formatOptions) { o.index = on }
}

// Format renders t line by line (header first when enabled), joined by "\n"
// with no trailing newline.
func Format(t Table, opts ...FormatOption) string {
	o := formatOptions{sep: DefaultFormatSep, dp: DefaultFormatPrecision, header: true, index: true}
	for _, opt := range opts {
		opt(&o)
	}

	nr, nc := t.Shape()
	lines := make([]string, 0, nr+1)
	fields := make([]string, 0, nc+1)
	if o.header {
		if o.index {
			fields = append(fields, "")
		}
		for j := 0; j < nc; j++ {
			fields = append(fields, t.ColName(j))
		}
		lines = append(lines, strings.Join(fields, o.sep))
	}
	for i := 0; i < nr; i++ {
		fields = fields[:0]
		if o.index {
			fields = append(fields, t.RowName(i))
		}
		for j := 0; j < nc; j++ {
			fields = append(fields, cell.Format(t.Get(i, j), o.dp))
		}
		lines = append(lines, strings.Join(fields, o.sep))
	}

	return strings.Join(lines, "\n")
}
