// SPDX-License-Identifier: MIT

// Package series implements a one-dimensional labeled vector of cells.
//
// A Series owns its values and an index.Index of the same length; the two are
// always re-sliced together. Series are immutable: Set and Filter return new
// Series, Values returns a defensive copy.
package series

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/lvframe/cell"
	"github.com/katalvlaran/lvframe/index"
)

var (
	// ErrLengthMismatch is returned when values and index sizes differ.
	ErrLengthMismatch = errors.New("series: values and index length differ")

	// ErrOutOfRange is returned by Set for an invalid position.
	ErrOutOfRange = errors.New("series: position out of range")
)

// Series is a named, labeled vector of cells.
type Series struct {
	name   string
	values []cell.Value
	idx    index.Index
}

// New builds a Series from values and idx. A nil idx defaults to
// index.Numeric(len(values)). values are copied.
func New(name string, values []cell.Value, idx index.Index) (*Series, error) {
	if idx == nil {
		idx = index.Numeric(len(values))
	}
	if idx.Len() != len(values) {
		return nil, fmt.Errorf("series.New(%q): %d values, %d labels: %w", name, len(values), idx.Len(), ErrLengthMismatch)
	}
	cp := make([]cell.Value, len(values))
	copy(cp, values)

	return &Series{name: name, values: cp, idx: idx}, nil
}

// Of types raw values with cell.Make (NA kept) under a Numeric index.
func Of(name string, raw ...any) *Series {
	return &Series{name: name, values: cell.MakeAll(raw, true), idx: index.Numeric(len(raw))}
}

// Wrap adopts values without copying. The caller must not retain values.
// It is used by frame, which always hands over freshly allocated slices.
func Wrap(name string, values []cell.Value, idx index.Index) *Series {
	return &Series{name: name, values: values, idx: idx}
}

// Name returns the label the Series was taken from (row or column name).
func (s *Series) Name() string { return s.name }

// Len returns the number of values.
func (s *Series) Len() int { return len(s.values) }

// Index returns the owning index.
func (s *Series) Index() index.Index { return s.idx }

// Label returns the label at position i ("" out of range).
func (s *Series) Label(i int) string {
	lbl, _ := s.idx.Get(i)

	return lbl
}

// Get returns the value at i, or NA when i is out of range.
func (s *Series) Get(i int) cell.Value {
	if i < 0 || i >= len(s.values) {
		return cell.NA()
	}

	return s.values[i]
}

// Set returns a copy of s with position i replaced by cell.Make(v, true).
func (s *Series) Set(i int, v any) (*Series, error) {
	if i < 0 || i >= len(s.values) {
		return nil, fmt.Errorf("Series.Set(%d): %w", i, ErrOutOfRange)
	}
	cp := s.Values()
	cp[i] = cell.Make(v, true)

	return &Series{name: s.name, values: cp, idx: s.idx}, nil
}

// Values returns a copy of the values.
func (s *Series) Values() []cell.Value {
	out := make([]cell.Value, len(s.values))
	copy(out, s.values)

	return out
}

// Floats projects the values onto float64 (see cell.Value.Numeric).
func (s *Series) Floats() []float64 {
	out := make([]float64, len(s.values))
	for i, v := range s.values {
		out[i] = v.Numeric()
	}

	return out
}

// Uniq returns the distinct values sorted by cell.Compare.
// Complexity: O(n log n).
func (s *Series) Uniq() []cell.Value {
	out := s.Values()
	sort.SliceStable(out, func(i, j int) bool { return cell.Compare(out[i], out[j]) < 0 })

	w := 0
	for r := range out {
		if w > 0 && cell.Compare(out[w-1], out[r]) == 0 {
			continue
		}
		out[w] = out[r]
		w++
	}

	return out[:w]
}

// Filter returns the values at positions with a correspondingly filtered
// index. Duplicated positions are kept; out-of-range positions yield NA.
func (s *Series) Filter(positions []int) *Series {
	vals := make([]cell.Value, len(positions))
	for i, p := range positions {
		vals[i] = s.Get(p)
	}

	return &Series{name: s.name, values: vals, idx: s.idx.Filter(positions)}
}

// Sum adds the numeric values, skipping NA and non-numeric cells.
func (s *Series) Sum() float64 {
	var total float64
	for _, v := range s.values {
		if f, ok := v.Float(); ok {
			total += f
		}
	}

	return total
}

// Mean averages the numeric values; NaN when there are none.
func (s *Series) Mean() float64 {
	var (
		total float64
		n     int
	)
	for _, v := range s.values {
		if f, ok := v.Float(); ok {
			total += f
			n++
		}
	}
	if n == 0 {
		return math.NaN()
	}

	return total / float64(n)
}
