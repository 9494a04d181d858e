// SPDX-License-Identifier: MIT
// Package frame: Annotated, a frame with per-row and per-column metadata.

package frame

import (
	"github.com/katalvlaran/lvframe/cell"
	"github.com/katalvlaran/lvframe/index"
)

// Annotated couples a primary frame with two metadata frames: RowMeta has one
// row per primary row, ColMeta one row per primary column. Like Frame it is
// immutable; every mutator returns a new *Annotated.
type Annotated struct {
	data    *Frame
	rowMeta *Frame
	colMeta *Frame
}

var _ Table = (*Annotated)(nil)

// NewAnnotated validates and assembles an annotated frame. A nil metadata
// frame becomes a zero-column frame mirroring the matching primary index.
//
// Errors:
//   - ErrNilFrame when data is nil.
//   - ErrDimensionMismatch when rowMeta does not have one row per primary row
//     or colMeta one row per primary column.
func NewAnnotated(data, rowMeta, colMeta *Frame) (*Annotated, error) {
	if data == nil {
		return nil, frameErrorf("NewAnnotated", "data", ErrNilFrame)
	}
	if rowMeta == nil {
		rowMeta = blankMeta(data.rows)
	}
	if colMeta == nil {
		colMeta = blankMeta(data.cols)
	}
	nr, nc := data.Shape()
	if r, _ := rowMeta.Shape(); r != nr {
		return nil, frameErrorf("NewAnnotated", "rowMeta", ErrDimensionMismatch)
	}
	if r, _ := colMeta.Shape(); r != nc {
		return nil, frameErrorf("NewAnnotated", "colMeta", ErrDimensionMismatch)
	}

	return &Annotated{data: data, rowMeta: rowMeta, colMeta: colMeta}, nil
}

// blankMeta returns a zero-column frame with one row per label of ix.
func blankMeta(ix index.Index) *Frame {
	data := make([][]cell.Value, ix.Len())
	for i := range data {
		data[i] = []cell.Value{}
	}

	return wrap(data, ix, index.Labels{})
}

// appendBlank returns f with one NA row labelled label appended.
func appendBlank(f *Frame, label string) *Frame {
	s := f.Materialize().shallow()
	s.data = append(s.data, make([]cell.Value, s.cols.Len()))
	s.rows = grow(s.rows, label)

	return &Frame{store: s}
}

// Data returns the primary frame.
func (a *Annotated) Data() *Frame { return a.data }

// RowMeta returns the per-row metadata frame.
func (a *Annotated) RowMeta() *Frame { return a.rowMeta }

// ColMeta returns the per-column metadata frame.
func (a *Annotated) ColMeta() *Frame { return a.colMeta }

func (a *Annotated) Shape() (rows, cols int) { return a.data.Shape() }
func (a *Annotated) Get(r, c int) cell.Value { return a.data.Get(r, c) }
func (a *Annotated) RowName(r int) string    { return a.data.RowName(r) }
func (a *Annotated) ColName(c int) string    { return a.data.ColName(c) }
func (a *Annotated) Rows() index.Index       { return a.data.Rows() }
func (a *Annotated) Cols() index.Index       { return a.data.Cols() }

// Set replaces one primary cell; metadata is shared unchanged.
func (a *Annotated) Set(r, c int, v any) (*Annotated, error) {
	d, err := a.data.Set(r, c, v)
	if err != nil {
		return nil, err
	}

	return &Annotated{data: d, rowMeta: a.rowMeta, colMeta: a.colMeta}, nil
}

// SetRow upserts a primary row (see Frame.SetRow). When a row is appended
// RowMeta gains a blank row with the same label.
func (a *Annotated) SetRow(id any, data []any) (*Annotated, error) {
	d, err := a.data.SetRow(id, data)
	if err != nil {
		return nil, err
	}
	out := &Annotated{data: d, rowMeta: a.rowMeta, colMeta: a.colMeta}
	nr, nc := d.Shape()
	if or, oc := a.data.Shape(); nr > or {
		out.rowMeta = appendBlank(a.rowMeta, d.RowName(nr-1))
		// a 0×0 primary adopts its columns from the first row
		for j := oc; j < nc; j++ {
			out.colMeta = appendBlank(out.colMeta, d.ColName(j))
		}
	}

	return out, nil
}

// SetCol upserts a primary column (see Frame.SetCol). When a column is
// appended ColMeta gains a blank row with the same label.
func (a *Annotated) SetCol(id any, data []any) (*Annotated, error) {
	d, err := a.data.SetCol(id, data)
	if err != nil {
		return nil, err
	}
	out := &Annotated{data: d, rowMeta: a.rowMeta, colMeta: a.colMeta}
	nr, nc := d.Shape()
	if or, oc := a.data.Shape(); nc > oc {
		out.colMeta = appendBlank(a.colMeta, d.ColName(nc-1))
		// a primary without rows adopts them from the first column
		for i := or; i < nr; i++ {
			out.rowMeta = appendBlank(out.rowMeta, d.RowName(i))
		}
	}

	return out, nil
}

// T transposes the primary and swaps the metadata frames.
func (a *Annotated) T() *Annotated {
	return &Annotated{data: a.data.T(), rowMeta: a.colMeta, colMeta: a.rowMeta}
}

// ILoc slices the primary with the iloc grammar and keeps the metadata rows
// of the selected primary rows and columns, in the same order.
func (a *Annotated) ILoc(rows, cols any) (*Annotated, error) {
	rp, err := selectAxis(a.data.rows, axisRow, rows)
	if err != nil {
		return nil, frameErrorf("Annotated.ILoc", []any{rows, cols}, err)
	}
	cp, err := selectAxis(a.data.cols, axisCol, cols)
	if err != nil {
		return nil, frameErrorf("Annotated.ILoc", []any{rows, cols}, err)
	}
	_, rmc := a.rowMeta.Shape()
	_, cmc := a.colMeta.Shape()

	return &Annotated{
		data:    a.data.take(rp, cp),
		rowMeta: a.rowMeta.take(rp, span(0, rmc)),
		colMeta: a.colMeta.take(cp, span(0, cmc)),
	}, nil
}

// Copy deep-copies all three frames.
func (a *Annotated) Copy() *Annotated {
	return &Annotated{data: a.data.Copy(), rowMeta: a.rowMeta.Copy(), colMeta: a.colMeta.Copy()}
}

// String renders the primary frame.
func (a *Annotated) String() string { return Format(a) }
