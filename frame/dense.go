// SPDX-License-Identifier: MIT
// Package frame: numeric export for matrix consumers.

package frame

import (
	"github.com/katalvlaran/lvframe/cell"
	"github.com/katalvlaran/lvframe/index"
	"github.com/katalvlaran/lvframe/matrix"
)

// ToDense exports the numeric view of t: numbers as-is, dates as Unix
// seconds, NA and text as NaN (the missing marker of the matrix package).
// Complexity: O(r*c).
func ToDense(t Table) *matrix.Dense {
	nr, nc := t.Shape()
	buf := make([]float64, nr*nc)
	var i, j int
	for i = 0; i < nr; i++ {
		for j = 0; j < nc; j++ {
			buf[i*nc+j] = t.Get(i, j).Numeric()
		}
	}
	m, _ := matrix.NewDenseFrom(nr, nc, buf) // shape matches buf by construction

	return m
}

// ToDense is the method form of the package-level ToDense.
func (f *Frame) ToDense() *matrix.Dense { return ToDense(f) }

// FromDense wraps a numeric matrix as a frame (NaN becomes NA). Nil indices
// default to Numeric rows and Letters columns.
//
// Errors:
//   - ErrNilFrame when m is nil; ErrDimensionMismatch when an index size
//     differs from the matrix shape.
func FromDense(m *matrix.Dense, rows, cols index.Index) (*Frame, error) {
	if m == nil {
		return nil, frameErrorf("FromDense", nil, ErrNilFrame)
	}
	nr, nc := m.Shape()
	if rows == nil {
		rows = index.Numeric(nr)
	}
	if cols == nil {
		cols = index.Letters(nc)
	}
	if rows.Len() != nr || cols.Len() != nc {
		return nil, frameErrorf("FromDense", []int{nr, nc}, ErrDimensionMismatch)
	}
	data := make([][]cell.Value, nr)
	for i := range data {
		src := m.Row(i)
		row := make([]cell.Value, nc)
		for j, v := range src {
			row[j] = cell.Number(v)
		}
		data[i] = row
	}

	return wrap(data, rows, cols), nil
}
