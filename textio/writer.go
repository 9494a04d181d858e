// SPDX-License-Identifier: MIT

package textio

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/lvframe/cell"
	"github.com/katalvlaran/lvframe/frame"
)

// Writer defaults.
const (
	DefaultWriteHeader = true
	DefaultWriteIndex  = true
	DefaultPrecision   = cell.DefaultPrecision
)

// Writer renders tables as delimited text, the inverse of Reader.
type Writer struct {
	header bool
	index  bool
	sep    string
	dp     int
}

// Option configures a Writer.
type Option func(*Writer)

// WithHeader toggles the column label line.
func WithHeader(on bool) Option { return func(w *Writer) { w.header = on } }

// WithIndex toggles the leading row label field.
func WithIndex(on bool) Option { return func(w *Writer) { w.index = on } }

// WithSep sets the field separator. Panics on "".
func WithSep(sep string) Option {
	if sep == "" {
		panic("textio: WithSep requires a non-empty separator")
	}

	return func(w *Writer) { w.sep = sep }
}

// WithPrecision sets the decimal places of non-integral numbers.
// Panics on a negative value.
func WithPrecision(dp int) Option {
	if dp < 0 {
		panic(fmt.Sprintf("textio: WithPrecision(%d): precision must be >= 0", dp))
	}

	return func(w *Writer) { w.dp = dp }
}

// NewWriter returns a Writer with the defaults (header, index, tab, 3 dp)
// overridden by opts.
func NewWriter(opts ...Option) Writer {
	w := Writer{header: DefaultWriteHeader, index: DefaultWriteIndex, sep: DefaultSep, dp: DefaultPrecision}
	for _, opt := range opts {
		opt(&w)
	}

	return w
}

// Lines renders t: an optional header line (starting with an empty field
// when the index is written) followed by one line per row.
// Complexity: O(r*c).
func (w Writer) Lines(t frame.Table) []string {
	nr, nc := t.Shape()
	out := make([]string, 0, nr+1)
	fields := make([]string, 0, nc+1)
	if w.header {
		if w.index {
			fields = append(fields, "")
		}
		for j := 0; j < nc; j++ {
			fields = append(fields, t.ColName(j))
		}
		out = append(out, strings.Join(fields, w.sep))
	}
	var i, j int
	for i = 0; i < nr; i++ {
		fields = fields[:0]
		if w.index {
			fields = append(fields, t.RowName(i))
		}
		for j = 0; j < nc; j++ {
			fields = append(fields, cell.Format(t.Get(i, j), w.dp))
		}
		out = append(out, strings.Join(fields, w.sep))
	}

	return out
}

// Write streams Lines(t) to dst, each line terminated by '\n'.
func (w Writer) Write(dst io.Writer, t frame.Table) error {
	bw := bufio.NewWriter(dst)
	for _, line := range w.Lines(t) {
		if _, err := bw.WriteString(line); err != nil {
			return fmt.Errorf("textio: write: %w", err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("textio: write: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("textio: flush: %w", err)
	}

	return nil
}
