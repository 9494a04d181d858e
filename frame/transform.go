// SPDX-License-Identifier: MIT
// Package frame: whole-frame transforms and axis reductions.

package frame

import (
	"github.com/katalvlaran/lvframe/cell"
	"github.com/katalvlaran/lvframe/index"
)

// T returns the transpose: storage is rebuilt (never aliased) and the row
// and column indices swap. Placeholders transpose to placeholders.
// Complexity: O(r*c).
func (f *Frame) T() *Frame {
	if f.IsPlaceholder() {
		return &Frame{store: store{rows: f.cols, cols: f.rows}, variant: variantPlaceholder}
	}
	r, c := f.Shape()
	data := make([][]cell.Value, c)
	var i, j int
	for j = 0; j < c; j++ {
		row := make([]cell.Value, r)
		for i = 0; i < r; i++ {
			row[i] = f.data[i][j]
		}
		data[j] = row
	}

	return wrap(data, f.cols, f.rows)
}

// Apply returns a same-shape frame whose cell (r, c) is fn(Get(r, c), r, c).
// Labels are kept.
// Complexity: O(r*c) calls of fn.
func (f *Frame) Apply(fn func(v cell.Value, r, c int) cell.Value) *Frame {
	nr, nc := f.Shape()
	data := make([][]cell.Value, nr)
	var i, j int
	for i = 0; i < nr; i++ {
		row := make([]cell.Value, nc)
		for j = 0; j < nc; j++ {
			row[j] = fn(f.Get(i, j), i, j)
		}
		data[i] = row
	}

	return wrap(data, f.rows, f.cols)
}

// Each visits every cell in row-major order until fn returns false.
func (f *Frame) Each(fn func(v cell.Value, r, c int) bool) {
	nr, nc := f.Shape()
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			if !fn(f.Get(i, j), i, j) {
				return
			}
		}
	}
}

// Map evaluates fn on every cell and returns the raw results row-major.
// It is the escape hatch for outputs that are not cells.
func Map[T any](t Table, fn func(v cell.Value, r, c int) T) [][]T {
	nr, nc := t.Shape()
	out := make([][]T, nr)
	for i := range out {
		row := make([]T, nc)
		for j := range row {
			row[j] = fn(t.Get(i, j), i, j)
		}
		out[i] = row
	}

	return out
}

// RowMap reduces every row to one value. fn receives a copy of the row.
func RowMap[T any](t Table, fn func(row []cell.Value, r int) T) []T {
	nr, nc := t.Shape()
	out := make([]T, nr)
	for i := range out {
		row := make([]cell.Value, nc)
		for j := range row {
			row[j] = t.Get(i, j)
		}
		out[i] = fn(row, i)
	}

	return out
}

// ColMap reduces every column to one value. fn receives a copy of the column.
func ColMap[T any](t Table, fn func(col []cell.Value, c int) T) []T {
	nr, nc := t.Shape()
	out := make([]T, nc)
	for j := range out {
		col := make([]cell.Value, nr)
		for i := range col {
			col[i] = t.Get(i, j)
		}
		out[j] = fn(col, j)
	}

	return out
}

// RowApply reduces every row with fn and wraps the results, typed with
// cell.Make, as a single-column frame labelled label that keeps the row index.
func (f *Frame) RowApply(label string, fn func(row []cell.Value, r int) any) *Frame {
	raw := RowMap[any](f, fn)
	data := make([][]cell.Value, len(raw))
	for i, v := range raw {
		data[i] = []cell.Value{cell.Make(v, true)}
	}

	return wrap(data, f.rows, index.NewLabels(label))
}
