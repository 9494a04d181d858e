// SPDX-License-Identifier: MIT

// Package frame implements the labeled two-dimensional cell container.
//
// A Frame stores cells row-major ([][]cell.Value) together with a row Index
// and a column Index. Every row has exactly Cols() cells and the row count
// equals the row Index size.
//
// Frames are immutable. Every operation (Set, SetRow, SetCol, ILoc, T, Apply,
// joins) returns a new *Frame; unchanged rows may be shared between frames,
// which is safe because no *Frame ever writes to its storage. In-place work
// goes through Builder, whose Frame() method hands out an independent
// snapshot. An undo history can therefore keep every step without copying.
//
// Besides the dense variant there is a placeholder variant (see Placeholder)
// that reports a shape from its indices without any storage; it backs empty
// spreadsheet-like views where every cell reads as NA.
package frame

import (
	"github.com/katalvlaran/lvframe/cell"
	"github.com/katalvlaran/lvframe/index"
)

// variant tags the storage representation of a Frame.
type variant uint8

const (
	variantDense       variant = iota // materialized row-major storage
	variantPlaceholder                // shape only, every cell NA
)

// store is the raw triple shared by Frame (copy-on-write) and Builder (in place).
type store struct {
	data [][]cell.Value // row-major, len(data[i]) == cols.Len()
	rows index.Index    // len == len(data) for dense frames
	cols index.Index
}

// Frame is an immutable labeled grid of cells.
type Frame struct {
	store
	variant variant
}

// Compile-time conformance with the Table contract.
var _ Table = (*Frame)(nil)

// New builds a dense Frame from row-major data.
//
// Implementation:
//   - Stage 1: default nil indices (Numeric rows, Letters columns).
//   - Stage 2: validate every row length against the column count (ErrRagged)
//     and the row index size against len(data) (ErrDimensionMismatch).
//   - Stage 3: deep-copy data so the caller keeps ownership of its slices.
//
// Complexity: O(r*c) time and space.
func New(data [][]cell.Value, rows, cols index.Index) (*Frame, error) {
	if cols == nil {
		w := 0
		if len(data) > 0 {
			w = len(data[0])
		}
		cols = index.Letters(w)
	}
	if rows == nil {
		rows = index.Numeric(len(data))
	}
	if rows.Len() != len(data) {
		return nil, frameErrorf("New", len(data), ErrDimensionMismatch)
	}
	w := cols.Len()
	cp := make([][]cell.Value, len(data))
	for i, row := range data {
		if len(row) != w {
			return nil, frameErrorf("New", i, ErrRagged)
		}
		cp[i] = append(make([]cell.Value, 0, w), row...)
	}

	return wrap(cp, rows, cols), nil
}

// FromRecords types raw values with cell.Make (NA kept) and builds a Frame.
// Short records are padded with NA up to the column count, which is
// len(colLabels) when given and the widest record otherwise. Records longer
// than colLabels fail with ErrDimensionMismatch.
// Nil label slices default to Numeric rows / Letters columns.
func FromRecords(records [][]any, rowLabels, colLabels []string) (*Frame, error) {
	w := len(colLabels)
	if colLabels == nil {
		for _, r := range records {
			if len(r) > w {
				w = len(r)
			}
		}
	}
	data := make([][]cell.Value, len(records))
	for i, r := range records {
		if len(r) > w {
			return nil, frameErrorf("FromRecords", i, ErrDimensionMismatch)
		}
		row := make([]cell.Value, w)
		for j, raw := range r {
			row[j] = cell.Make(raw, true)
		}
		data[i] = row
	}

	var rows, cols index.Index
	if rowLabels != nil {
		if len(rowLabels) != len(records) {
			return nil, frameErrorf("FromRecords", rowLabels, ErrDimensionMismatch)
		}
		rows = index.NewLabels(rowLabels...)
	} else {
		rows = index.Numeric(len(records))
	}
	if colLabels != nil {
		cols = index.NewLabels(colLabels...)
	} else {
		cols = index.Letters(w)
	}

	return wrap(data, rows, cols), nil
}

// Empty returns a 0×0 dense frame.
func Empty() *Frame {
	return wrap([][]cell.Value{}, index.Labels{}, index.Labels{})
}

// Placeholder returns a rows×cols frame without storage: rows are labelled
// 1..n, columns A, B, ...; every cell reads as NA and mutators fail with
// ErrPlaceholder. Negative sizes are treated as zero.
func Placeholder(rows, cols int) *Frame {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}

	return &Frame{
		store:   store{rows: index.Numeric(rows), cols: index.Letters(cols)},
		variant: variantPlaceholder,
	}
}

// wrap adopts data without copying.
func wrap(data [][]cell.Value, rows, cols index.Index) *Frame {
	return &Frame{store: store{data: data, rows: rows, cols: cols}}
}

// IsPlaceholder reports whether f is the storage-less variant.
func (f *Frame) IsPlaceholder() bool { return f.variant == variantPlaceholder }

// Materialize converts a placeholder into a dense NA frame of the same shape
// and labels. Dense frames are returned as-is.
// Complexity: O(r*c).
func (f *Frame) Materialize() *Frame {
	if !f.IsPlaceholder() {
		return f
	}
	r, c := f.Shape()
	data := make([][]cell.Value, r)
	for i := range data {
		data[i] = make([]cell.Value, c) // zero Value is NA
	}

	return wrap(data, f.rows, f.cols)
}

// Shape returns (rows, cols). It is computed from storage on every call
// (from the indices for placeholders).
func (f *Frame) Shape() (rows, cols int) {
	if f.IsPlaceholder() {
		return f.rows.Len(), f.cols.Len()
	}

	return len(f.data), f.cols.Len()
}

// Rows returns the row index.
func (f *Frame) Rows() index.Index { return f.rows }

// Cols returns the column index.
func (f *Frame) Cols() index.Index { return f.cols }

// RowName returns the label of row r ("" out of range).
func (f *Frame) RowName(r int) string {
	lbl, _ := f.rows.Get(r)

	return lbl
}

// ColName returns the label of column c ("" out of range).
func (f *Frame) ColName(c int) string {
	lbl, _ := f.cols.Get(c)

	return lbl
}

// Get returns the cell at (r, c), or NA when the position is outside the
// frame. It never fails.
// Complexity: O(1).
func (f *Frame) Get(r, c int) cell.Value {
	nr, nc := f.Shape()
	if r < 0 || r >= nr || c < 0 || c >= nc || f.IsPlaceholder() {
		return cell.NA()
	}

	return f.data[r][c]
}

// Copy returns a deep copy: fresh storage, copied indices.
// Complexity: O(r*c).
func (f *Frame) Copy() *Frame {
	if f.IsPlaceholder() {
		return &Frame{store: store{rows: f.rows.Copy(), cols: f.cols.Copy()}, variant: variantPlaceholder}
	}
	data := make([][]cell.Value, len(f.data))
	for i, row := range f.data {
		data[i] = append(make([]cell.Value, 0, len(row)), row...)
	}

	return wrap(data, f.rows.Copy(), f.cols.Copy())
}

// shallow returns a working copy whose outer slice is fresh and whose rows
// are shared. Callers must copy a row before writing to it.
func (f *Frame) shallow() store {
	data := make([][]cell.Value, len(f.data))
	copy(data, f.data)

	return store{data: data, rows: f.rows, cols: f.cols}
}

// String renders the frame with the default Format options.
func (f *Frame) String() string { return Format(f) }
