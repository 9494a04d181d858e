// SPDX-License-Identifier: MIT
// Package frame: inner joins on axis labels.

package frame

import (
	"github.com/katalvlaran/lvframe/cell"
	"github.com/katalvlaran/lvframe/index"
)

// JoinRows stacks frames vertically over their common columns.
//
// Implementation:
//   - Stage 1: collect the column labels present (exact equality) in every
//     frame, in the order they first appear in frames[0]; repeats of a label
//     in frames[0] are kept once.
//   - Stage 2: re-project each frame onto that ordered set (the first column
//     carrying each label) and drop its other columns.
//   - Stage 3: concatenate the rows; the row index is the concatenation of
//     the inputs' row labels.
//
// Errors:
//   - ErrNoFrames when called without frames; ErrNilFrame for a nil operand.
//
// Complexity: O(k·c) for the label sets plus O(Σ r·c) copying.
func JoinRows(frames ...*Frame) (*Frame, error) {
	if len(frames) == 0 {
		return nil, frameErrorf("JoinRows", 0, ErrNoFrames)
	}
	for i, f := range frames {
		if f == nil {
			return nil, frameErrorf("JoinRows", i, ErrNilFrame)
		}
	}

	common := commonLabels(frames)
	var (
		data   [][]cell.Value
		labels []string
	)
	for _, f := range frames {
		pos := make([]int, len(common))
		for k, lbl := range common {
			pos[k] = index.Exact(f.cols, lbl)[0]
		}
		nr, _ := f.Shape()
		for i := 0; i < nr; i++ {
			row := make([]cell.Value, len(pos))
			for k, c := range pos {
				row[k] = f.Get(i, c)
			}
			data = append(data, row)
			labels = append(labels, f.RowName(i))
		}
	}
	if data == nil {
		data = [][]cell.Value{}
	}

	return wrap(data, index.NewLabels(labels...), index.NewLabels(common...)), nil
}

// JoinCols places frames side by side over their common row labels. It is
// JoinRows applied to the transposed frames, transposed back.
func JoinCols(frames ...*Frame) (*Frame, error) {
	if len(frames) == 0 {
		return nil, frameErrorf("JoinCols", 0, ErrNoFrames)
	}
	ts := make([]*Frame, len(frames))
	for i, f := range frames {
		if f == nil {
			return nil, frameErrorf("JoinCols", i, ErrNilFrame)
		}
		ts[i] = f.T()
	}
	j, err := JoinRows(ts...)
	if err != nil {
		return nil, err
	}

	return j.T(), nil
}

// commonLabels returns the column labels shared by every frame, ordered by
// first appearance in frames[0], without repeats.
func commonLabels(frames []*Frame) []string {
	sets := make([]map[string]struct{}, len(frames)-1)
	for i, f := range frames[1:] {
		set := make(map[string]struct{}, f.cols.Len())
		for _, l := range f.cols.Labels() {
			set[l] = struct{}{}
		}
		sets[i] = set
	}
	seen := make(map[string]struct{})
	out := make([]string, 0, frames[0].cols.Len())
	for _, l := range frames[0].cols.Labels() {
		if _, dup := seen[l]; dup {
			continue
		}
		seen[l] = struct{}{}
		shared := true
		for _, set := range sets {
			if _, ok := set[l]; !ok {
				shared = false
				break
			}
		}
		if shared {
			out = append(out, l)
		}
	}

	return out
}
