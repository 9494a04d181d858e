// SPDX-License-Identifier: MIT

// Package index maps axis positions to labels and back.
//
// An Index is an ordered label sequence for one axis of a Series or Frame.
// Three variants implement it:
//
//	Labels  - materialized []string
//	Numeric - computed 1-based numbers ("1", "2", ...), no storage
//	Letters - computed spreadsheet letters ("A".."Z", "AA", ...), no storage
//
// Label search is always "contains", never "equals": Find case-folds both
// sides and reports every position whose label contains the query.
//
// All variants are immutable values; Filter and Append return new indices.
package index

import (
	"strings"

	"golang.org/x/text/cases"
)

// Index is the read-only contract shared by every axis labelling.
type Index interface {
	// Len returns the number of labels.
	Len() int

	// Get returns the label at pos; ok is false when pos is out of range.
	Get(pos int) (label string, ok bool)

	// Find returns every position whose case-folded label contains the
	// case-folded query, in ascending order. Find("") matches all positions.
	Find(label string) []int

	// Filter returns a new Index restricted to positions, in the given
	// order. Out-of-range positions yield empty labels.
	Filter(positions []int) Index

	// Append returns a new Index with one more label.
	Append(label string) Index

	// Labels materializes all labels.
	Labels() []string

	// Copy returns an independent Index.
	Copy() Index
}

// Compile-time conformance.
var (
	_ Index = Labels(nil)
	_ Index = Numeric(0)
	_ Index = Letters(0)
)

// fold applies Unicode case folding. A cases.Caser keeps state and is not
// safe for concurrent use, so one is built per call.
func fold(s string) string {
	return cases.Fold().String(s)
}

// contains reports whether folded label contains folded query.
func contains(label, foldedQuery string) bool {
	return strings.Contains(fold(label), foldedQuery)
}

// find is the generic scan used by every variant.
// Complexity: O(n * L) where L is the label length.
func find(ix Index, query string) []int {
	q := fold(query)
	n := ix.Len()
	out := make([]int, 0, 1)
	var (
		i   int
		lbl string
	)
	for i = 0; i < n; i++ {
		lbl, _ = ix.Get(i)
		if contains(lbl, q) {
			out = append(out, i)
		}
	}

	return out
}

// filter materializes the labels at positions.
func filter(ix Index, positions []int) Index {
	out := make(Labels, len(positions))
	for i, p := range positions {
		out[i], _ = ix.Get(p)
	}

	return out
}

// Equal reports whether a and b hold the same label sequence.
func Equal(a, b Index) bool {
	if a.Len() != b.Len() {
		return false
	}
	var la, lb string
	for i := 0; i < a.Len(); i++ {
		la, _ = a.Get(i)
		lb, _ = b.Get(i)
		if la != lb {
			return false
		}
	}

	return true
}

// Exact returns the positions whose label equals label exactly (no folding).
func Exact(ix Index, label string) []int {
	out := make([]int, 0, 1)
	var lbl string
	for i := 0; i < ix.Len(); i++ {
		if lbl, _ = ix.Get(i); lbl == label {
			out = append(out, i)
		}
	}

	return out
}
