// SPDX-License-Identifier: MIT
// Package frame: upsert kernels shared by the pure Frame mutators and Builder.
//
// Every kernel takes a cow ("copy on write") flag. Frame methods run them on a
// shallow working copy with cow=true, so any row they touch is cloned first
// and the receiver never changes. Builder owns its rows and runs them with
// cow=false, writing in place.

package frame

import (
	"errors"
	"strconv"

	"github.com/katalvlaran/lvframe/cell"
	"github.com/katalvlaran/lvframe/index"
)

// Set returns a new frame with (r, c) replaced by cell.Make(v, true).
//
// Errors:
//   - ErrPlaceholder on the storage-less variant.
//   - ErrOutOfRange when (r, c) is outside the frame.
//
// Complexity: O(r + c): the outer row slice and one row are copied.
func (f *Frame) Set(r, c int, v any) (*Frame, error) {
	if f.IsPlaceholder() {
		return nil, frameErrorf("Set", []int{r, c}, ErrPlaceholder)
	}
	s := f.shallow()
	if err := s.setCell(r, c, cell.Make(v, true), true); err != nil {
		return nil, frameErrorf("Set", []int{r, c}, err)
	}

	return &Frame{store: s}, nil
}

// SetRow upserts a row. When id resolves to an existing row (int position or
// first label match) its cells are overwritten; otherwise a row is appended
// and the row index grows by one label (the 1-based position for int ids, the
// literal label for string ids). data is typed with cell.Make and padded with
// NA to the column count. On a frame with no columns and no rows the columns
// are created from data.
//
// Errors:
//   - ErrPlaceholder; ErrBadSelector for unsupported id types;
//     ErrDimensionMismatch when data is longer than the column count.
func (f *Frame) SetRow(id any, data []any) (*Frame, error) {
	if f.IsPlaceholder() {
		return nil, frameErrorf("SetRow", id, ErrPlaceholder)
	}
	s := f.shallow()
	if err := s.upsertRow(id, cell.MakeAll(data, true), true); err != nil {
		return nil, frameErrorf("SetRow", id, err)
	}

	return &Frame{store: s}, nil
}

// SetCol upserts a column; see SetRow for the resolution rules. Appending a
// column to a frame without columns regroups data into singleton rows, and
// creates the rows (Numeric labels) when the frame has none.
//
// Errors:
//   - ErrPlaceholder; ErrBadSelector; ErrDimensionMismatch when data is longer
//     than the row count of a non-empty frame.
func (f *Frame) SetCol(id any, data []any) (*Frame, error) {
	if f.IsPlaceholder() {
		return nil, frameErrorf("SetCol", id, ErrPlaceholder)
	}
	s := f.shallow()
	if err := s.upsertCol(id, cell.MakeAll(data, true), true); err != nil {
		return nil, frameErrorf("SetCol", id, err)
	}

	return &Frame{store: s}, nil
}

// setCell writes v at (r, c).
func (s *store) setCell(r, c int, v cell.Value, cow bool) error {
	if r < 0 || r >= len(s.data) || c < 0 || c >= s.cols.Len() {
		return ErrOutOfRange
	}
	row := s.data[r]
	if cow {
		row = append(make([]cell.Value, 0, len(row)), row...)
	}
	row[c] = v
	s.data[r] = row

	return nil
}

// lookupForUpsert resolves id; found=false means "append".
func (s *store) lookupForUpsert(ax axis, id any) (pos int, found bool, err error) {
	pos, err = s.resolve(ax, id)
	switch {
	case err == nil:
		return pos, true, nil
	case errors.Is(err, ErrBadSelector):
		return -1, false, err
	default:
		return -1, false, nil
	}
}

// newLabel picks the label of an appended entry: the 1-based position for
// int ids, the literal otherwise.
func newLabel(id any, n int) string {
	if s, ok := id.(string); ok {
		return s
	}

	return strconv.Itoa(n + 1)
}

// grow appends label to ix. The on-demand variants only stay on-demand while
// the new label is the computed one; otherwise the index is materialized.
func grow(ix index.Index, label string) index.Index {
	if _, ok := ix.(index.Labels); !ok {
		next := ix.Append(label)
		if got, _ := next.Get(next.Len() - 1); got == label {
			return next
		}
		ix = index.NewLabels(ix.Labels()...)
	}

	return ix.Append(label)
}

// pad copies vals into a fresh slice of length width, padding with NA.
// The result never aliases vals.
func pad(vals []cell.Value, width int) ([]cell.Value, error) {
	if len(vals) > width {
		return nil, ErrDimensionMismatch
	}
	out := make([]cell.Value, width)
	copy(out, vals)

	return out, nil
}

// upsertRow implements SetRow on the store.
//
// Implementation:
//   - Stage 1: resolve id; empty 0×0 stores adopt len(vals) Letters columns.
//   - Stage 2: pad vals to the column count.
//   - Stage 3: store the fresh padded row at pos, or append it and grow the
//     row index. Rows are replaced whole, so cow needs no extra copy here.
//
// Complexity: O(c) plus O(r) for label resolution.
func (s *store) upsertRow(id any, vals []cell.Value, _ bool) error {
	pos, found, err := s.lookupForUpsert(axisRow, id)
	if err != nil {
		return err
	}
	if len(s.data) == 0 && s.cols.Len() == 0 {
		s.cols = index.Letters(len(vals))
	}
	row, err := pad(vals, s.cols.Len())
	if err != nil {
		return err
	}
	if found {
		s.data[pos] = row
		return nil
	}
	s.rows = grow(s.rows, newLabel(id, len(s.data)))
	s.data = append(s.data, row)

	return nil
}

// upsertCol implements SetCol on the store.
//
// Implementation:
//   - Stage 1: resolve id.
//   - Stage 2: a store without rows adopts len(vals) rows (Numeric labels).
//   - Stage 3: pad vals to the row count.
//   - Stage 4: overwrite position pos of every row, or append one cell to
//     every row and grow the column index.
//
// Complexity: O(r) rows touched; O(r*c) copying when cow is set.
func (s *store) upsertCol(id any, vals []cell.Value, cow bool) error {
	pos, found, err := s.lookupForUpsert(axisCol, id)
	if err != nil {
		return err
	}
	if len(s.data) == 0 && len(vals) > 0 {
		w := s.cols.Len()
		s.data = make([][]cell.Value, len(vals))
		for i := range s.data {
			s.data[i] = make([]cell.Value, w)
		}
		s.rows = index.Numeric(len(vals))
	}
	col, err := pad(vals, len(s.data))
	if err != nil {
		return err
	}

	var row []cell.Value
	for i := range s.data {
		row = s.data[i]
		switch {
		case found && cow:
			row = append(make([]cell.Value, 0, len(row)), row...)
			row[pos] = col[i]
		case found:
			row[pos] = col[i]
		case cow:
			row = append(append(make([]cell.Value, 0, len(row)+1), row...), col[i])
		default:
			row = append(row, col[i])
		}
		s.data[i] = row
	}
	if !found {
		s.cols = grow(s.cols, newLabel(id, s.cols.Len()))
	}

	return nil
}
