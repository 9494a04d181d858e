// SPDX-License-Identifier: MIT

// Package textio converts between frames and line-oriented delimited text.
//
// The format is deliberately small: one record per line, an optional header
// line, an optional leading label column, fields split on a fixed separator,
// at most one surrounding pair of double quotes per field (not escape-aware).
// There are no multi-line cells and no escaped separators.
//
// Reader is tolerant: malformed or ragged lines never fail, short lines are
// padded with the default cell and extra fields are dropped. Writer is its
// inverse; Read(Write(f)) reproduces f up to number formatting precision.
package textio

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/lvframe/cell"
	"github.com/katalvlaran/lvframe/frame"
	"github.com/katalvlaran/lvframe/index"
)

// Reader defaults.
const (
	DefaultSep       = "\t"
	DefaultHeader    = 1
	DefaultIndexCols = 0
	DefaultKeepNA    = true

	// maxLineBytes bounds a single line read by ReadFrom.
	maxLineBytes = 16 << 20
)

// Reader parses delimited text into frames. The zero value is not ready for
// use; start from NewReader. Configuration methods have value receivers and
// return a modified copy, so a Reader can be shared and specialised freely.
type Reader struct {
	sep       string
	header    int
	indexCols int
	ignore    map[int]struct{}
	keepNA    bool
}

// NewReader returns a Reader with the package defaults: tab separator, one
// header line, no index column, NA tokens kept as NA.
func NewReader() Reader {
	return Reader{sep: DefaultSep, header: DefaultHeader, indexCols: DefaultIndexCols, keepNA: DefaultKeepNA}
}

// Sep returns a copy using sep as field separator. Panics on "".
func (r Reader) Sep(sep string) Reader {
	if sep == "" {
		panic("textio: Reader.Sep requires a non-empty separator")
	}
	r.sep = sep

	return r
}

// Header returns a copy expecting n header lines (n <= 0 disables the header).
func (r Reader) Header(n int) Reader {
	if n < 0 {
		n = 0
	}
	r.header = n

	return r
}

// IndexCols returns a copy treating the first n fields of each line as the
// row label.
func (r Reader) IndexCols(n int) Reader {
	if n < 0 {
		n = 0
	}
	r.indexCols = n

	return r
}

// Ignore returns a copy that skips the given raw line numbers (0-based,
// counted before empty-line removal). Repeated calls accumulate.
func (r Reader) Ignore(lines ...int) Reader {
	next := make(map[int]struct{}, len(r.ignore)+len(lines))
	for k := range r.ignore {
		next[k] = struct{}{}
	}
	for _, l := range lines {
		next[l] = struct{}{}
	}
	r.ignore = next

	return r
}

// KeepNA returns a copy with NA coercion switched on or off. When off, NA
// tokens and empty fields become empty text.
func (r Reader) KeepNA(on bool) Reader {
	r.keepNA = on

	return r
}

// Read parses lines. It never fails.
//
// Implementation:
//   - Stage 1: drop ignored and empty lines, strip a trailing '\r'. A line
//     holding only separators is a row of empty fields and is kept.
//   - Stage 2: the first r.header kept lines are header lines; labels come
//     from the first one after its index fields.
//   - Stage 3: split and unquote the data lines (see ReadRecords).
//
// Complexity: O(total bytes).
func (r Reader) Read(lines []string) *frame.Frame {
	records := make([][]string, 0, len(lines))
	for i, line := range lines {
		if _, skip := r.ignore[i]; skip {
			continue
		}
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		records = append(records, r.split(line))
	}

	return r.ReadRecords(records)
}

// ReadFrom scans src line by line and parses the result with Read.
// Only I/O errors are reported.
func (r Reader) ReadFrom(src io.Reader) (*frame.Frame, error) {
	sc := bufio.NewScanner(src)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	var lines []string
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("textio: read: %w", err)
	}

	return r.Read(lines), nil
}

// ReadRecords builds a frame from already split records (header records
// first). Ignore does not apply here; fields are used verbatim, without
// quote stripping.
func (r Reader) ReadRecords(records [][]string) *frame.Frame {
	var labels []string
	hasHeader := r.header > 0 && len(records) > 0
	if hasHeader {
		labels = tail(records[0], r.indexCols)
		skip := r.header
		if skip > len(records) {
			skip = len(records)
		}
		records = records[skip:]
	}

	width := len(labels)
	if !hasHeader {
		for _, rec := range records {
			if w := len(rec) - r.indexCols; w > width {
				width = w
			}
		}
	}

	data := make([][]cell.Value, len(records))
	rowLabels := make([]string, len(records))
	pad := cell.Parse("", r.keepNA)
	for i, rec := range records {
		rowLabels[i] = r.rowLabel(rec)
		fields := tail(rec, r.indexCols)
		row := make([]cell.Value, width)
		for j := range row {
			if j < len(fields) {
				row[j] = cell.Parse(fields[j], r.keepNA)
				continue
			}
			row[j] = pad
		}
		data[i] = row
	}

	var rows, cols index.Index = index.Numeric(len(data)), index.Letters(width)
	if r.indexCols > 0 {
		rows = index.NewLabels(rowLabels...)
	}
	if hasHeader {
		cols = index.NewLabels(labels...)
	}
	f, err := frame.New(data, rows, cols)
	if err != nil {
		// rows and widths are consistent by construction
		panic(fmt.Sprintf("textio: inconsistent frame shape: %v", err))
	}

	return f
}

// split cuts a line on the separator and unquotes every field.
func (r Reader) split(line string) []string {
	fields := strings.Split(line, r.sep)
	for i, f := range fields {
		fields[i] = unquote(f)
	}

	return fields
}

// rowLabel joins the index fields of rec with the separator.
func (r Reader) rowLabel(rec []string) string {
	if r.indexCols == 0 {
		return ""
	}
	n := r.indexCols
	if n > len(rec) {
		n = len(rec)
	}

	return strings.Join(rec[:n], r.sep)
}

// tail returns rec without its first n fields.
func tail(rec []string, n int) []string {
	if n >= len(rec) {
		return nil
	}

	return rec[n:]
}

// unquote strips one surrounding pair of double quotes.
func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}

	return s
}
