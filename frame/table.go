// SPDX-License-Identifier: MIT

package frame

import (
	"github.com/katalvlaran/lvframe/cell"
	"github.com/katalvlaran/lvframe/index"
)

// Table is the read-only capability contract shared by *Frame and
// *Annotated. Writers, exporters and the stringifier depend on Table only.
type Table interface {
	// Shape returns (rows, cols).
	Shape() (rows, cols int)
	// Get returns the cell at (r, c), NA when out of range.
	Get(r, c int) cell.Value
	// RowName returns the label of row r.
	RowName(r int) string
	// ColName returns the label of column c.
	ColName(c int) string
	// Rows returns the row index.
	Rows() index.Index
	// Cols returns the column index.
	Cols() index.Index
}

// Equal reports whether a and b have the same shape, the same row and
// column labels and pairwise equal cells (cell.Value.Equal).
// Complexity: O(r*c).
func Equal(a, b Table) bool {
	ar, ac := a.Shape()
	br, bc := b.Shape()
	if ar != br || ac != bc {
		return false
	}
	if !index.Equal(a.Rows(), b.Rows()) || !index.Equal(a.Cols(), b.Cols()) {
		return false
	}
	var i, j int
	for i = 0; i < ar; i++ {
		for j = 0; j < ac; j++ {
			if !a.Get(i, j).Equal(b.Get(i, j)) {
				return false
			}
		}
	}

	return true
}
