// SPDX-License-Identifier: MIT
// Package frame: Builder, the single mutable frame type.

package frame

import (
	"github.com/katalvlaran/lvframe/cell"
	"github.com/katalvlaran/lvframe/index"
)

// Builder accumulates cells in place. It owns its storage exclusively and
// only publishes deep snapshots through Frame, so a published *Frame never
// changes after a later Builder write.
//
// A Builder is not safe for concurrent use.
type Builder struct {
	s store
}

// NewBuilder returns an empty builder with the given column labels
// (Letters columns are created on the first row when cols is empty).
func NewBuilder(cols ...string) *Builder {
	var ci index.Index = index.Labels{}
	if len(cols) > 0 {
		ci = index.NewLabels(cols...)
	}

	return &Builder{s: store{data: [][]cell.Value{}, rows: index.Labels{}, cols: ci}}
}

// Builder returns a builder seeded with a deep copy of f. Placeholders are
// materialized first.
// Complexity: O(r*c).
func (f *Frame) Builder() *Builder {
	cp := f.Materialize().Copy()

	return &Builder{s: cp.store}
}

// Shape returns the current (rows, cols).
func (b *Builder) Shape() (rows, cols int) { return len(b.s.data), b.s.cols.Len() }

// Set writes cell.Make(v, true) at (r, c).
// Errors: ErrOutOfRange.
func (b *Builder) Set(r, c int, v any) error {
	if err := b.s.setCell(r, c, cell.Make(v, true), false); err != nil {
		return frameErrorf("Builder.Set", []int{r, c}, err)
	}

	return nil
}

// SetRow upserts a row in place with the rules of Frame.SetRow.
func (b *Builder) SetRow(id any, data []any) error {
	if err := b.s.upsertRow(id, cell.MakeAll(data, true), false); err != nil {
		return frameErrorf("Builder.SetRow", id, err)
	}

	return nil
}

// SetCol upserts a column in place with the rules of Frame.SetCol.
func (b *Builder) SetCol(id any, data []any) error {
	if err := b.s.upsertCol(id, cell.MakeAll(data, true), false); err != nil {
		return frameErrorf("Builder.SetCol", id, err)
	}

	return nil
}

// AppendRow appends a row labelled label, typing each value with
// cell.Make. Unlike SetRow it never overwrites an existing row with a
// matching label.
// Errors: ErrDimensionMismatch when data is longer than the column count.
func (b *Builder) AppendRow(label string, data ...any) error {
	vals := cell.MakeAll(data, true)
	if len(b.s.data) == 0 && b.s.cols.Len() == 0 {
		b.s.cols = index.Letters(len(vals))
	}
	row, err := pad(vals, b.s.cols.Len())
	if err != nil {
		return frameErrorf("Builder.AppendRow", label, err)
	}
	b.s.rows = grow(b.s.rows, label)
	b.s.data = append(b.s.data, row)

	return nil
}

// Frame returns an independent snapshot of the builder's contents.
// Complexity: O(r*c).
func (b *Builder) Frame() *Frame {
	return wrap(b.s.data, b.s.rows, b.s.cols).Copy()
}
