// SPDX-License-Identifier: MIT

package frame

import (
	"github.com/katalvlaran/lvframe/cell"
	"github.com/katalvlaran/lvframe/index"
	"github.com/katalvlaran/lvframe/series"
)

// axis selects the row or column side of a frame.
type axis uint8

const (
	axisRow axis = iota
	axisCol
)

// index returns the Index of ax.
func (s *store) index(ax axis) index.Index {
	if ax == axisRow {
		return s.rows
	}

	return s.cols
}

// invalid returns the hard lookup sentinel of ax.
func (ax axis) invalid() error {
	if ax == axisRow {
		return ErrInvalidRow
	}

	return ErrInvalidColumn
}

// resolve maps an id (int position or string label) to one position.
//
// Implementation:
//   - int: accepted when inside [0, n).
//   - string: index.Find (case-folded substring); the first match wins.
//
// Errors:
//   - ErrInvalidRow / ErrInvalidColumn when nothing matches.
//   - ErrBadSelector for other id types.
//
// Complexity: O(n) for labels, O(1) for positions.
func (s *store) resolve(ax axis, id any) (int, error) {
	ix := s.index(ax)
	switch x := id.(type) {
	case int:
		if x < 0 || x >= ix.Len() {
			return -1, ax.invalid()
		}
		return x, nil
	case string:
		pos := ix.Find(x)
		if len(pos) == 0 {
			return -1, ax.invalid()
		}
		return pos[0], nil
	default:
		return -1, ErrBadSelector
	}
}

// FindRow returns every row position whose label contains label (case-folded).
func (f *Frame) FindRow(label string) []int { return f.rows.Find(label) }

// FindCol returns every column position whose label contains label (case-folded).
func (f *Frame) FindCol(label string) []int { return f.cols.Find(label) }

// Col returns a copy of one column as a Series indexed by the row labels.
// id is an int position or a string label (first Find match).
//
// Errors:
//   - ErrInvalidColumn when id resolves to nothing; ErrBadSelector for other types.
//
// Complexity: O(r).
func (f *Frame) Col(id any) (*series.Series, error) {
	c, err := f.resolve(axisCol, id)
	if err != nil {
		return nil, frameErrorf("Col", id, err)
	}
	nr, _ := f.Shape()
	vals := make([]cell.Value, nr)
	for i := range vals {
		vals[i] = f.Get(i, c)
	}

	return series.Wrap(f.ColName(c), vals, f.rows), nil
}

// Row returns a copy of one row as a Series indexed by the column labels.
// id is an int position or a string label (first Find match).
//
// Errors:
//   - ErrInvalidRow when id resolves to nothing; ErrBadSelector for other types.
//
// Complexity: O(c).
func (f *Frame) Row(id any) (*series.Series, error) {
	r, err := f.resolve(axisRow, id)
	if err != nil {
		return nil, frameErrorf("Row", id, err)
	}

	return series.Wrap(f.RowName(r), f.rowValues(r), f.cols), nil
}

// rowValues copies row r (NA cells for placeholders).
func (f *Frame) rowValues(r int) []cell.Value {
	_, nc := f.Shape()
	vals := make([]cell.Value, nc)
	if !f.IsPlaceholder() {
		copy(vals, f.data[r])
	}

	return vals
}
