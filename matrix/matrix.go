// SPDX-License-Identifier: MIT

// Package matrix defines the numeric view handed to analysis consumers.
//
// What & Why:
//
//	Frames hold tagged cells; clustering, correlation and heatmap scaling want
//	plain float64 rows. Dense is that view: row-major, fully materialized, and
//	NaN means "missing" (NA or non-numeric cell). Every statistic here is
//	NaN-aware and skips missing entries instead of propagating them.
//
// Complexity:
//
//	Rows() and Cols() run in O(1) time.
//	At() and Set() perform bounds checking in O(1) time, returning an error on invalid indices.
//	Clone() performs a deep copy in O(rows*cols) time.
package matrix

// Matrix is the read-only contract consumed by statistics and clustering.
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)
}
