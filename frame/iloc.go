// SPDX-License-Identifier: MIT
// Package frame: the iloc slicing DSL and isin selection.
//
// Grammar (per axis):
//
//	selector := int | string | []int | []string | []any | nil
//	string   := "" | ":" | label | range
//	range    := [endpoint] ":" [endpoint]
//	endpoint := integer | label
//
// An int is a position and must lie in [0, n). "", ":" and nil select every
// position. A string equal to a label is that label even when it contains a
// colon. A string with exactly one colon is a range: an empty start is 0 and
// an empty end is n; integer endpoints are start-inclusive, end-exclusive and
// clamped to [0, n]; label endpoints (first Find match) are inclusive on both
// sides. A reversed range selects nothing. Any other string is a label
// resolved through Find, first match. Slices concatenate the resolution of
// each element in order; duplicates are kept.

package frame

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/lvframe/cell"
	"github.com/katalvlaran/lvframe/index"
)

// ILoc returns the Cartesian selection rows × cols as a new frame. Row and
// column positions are resolved independently (see the grammar above) and
// may repeat.
//
// Implementation:
//   - Stage 1: resolve both axes into explicit position lists.
//   - Stage 2: copy the selected cells into fresh storage and filter both
//     indices with the same position lists.
//
// Errors:
//   - ErrOutOfRange for an int outside the axis.
//   - ErrInvalidRow / ErrInvalidColumn for unresolvable labels.
//   - ErrBadSelector for unsupported selector types.
//
// Complexity: O(|rows|·|cols|) plus O(n) per label token.
func (f *Frame) ILoc(rows, cols any) (*Frame, error) {
	rp, err := selectAxis(f.rows, axisRow, rows)
	if err != nil {
		return nil, frameErrorf("ILoc", []any{rows, cols}, err)
	}
	cp, err := selectAxis(f.cols, axisCol, cols)
	if err != nil {
		return nil, frameErrorf("ILoc", []any{rows, cols}, err)
	}

	return f.take(rp, cp), nil
}

// IsIn keeps the rows whose label is in rowLabels and the columns whose label
// is in colLabels. Matching is exact and case-sensitive; a nil set keeps the
// whole axis. The result follows frame order, whatever the order of the sets.
// Complexity: O(r + c + |sets|) plus the ILoc copy.
func (f *Frame) IsIn(rowLabels, colLabels []string) (*Frame, error) {
	return f.ILoc(member(f.rows, rowLabels), member(f.cols, colLabels))
}

// member returns the positions of ix whose label is in set ([]int{} when
// nothing matches, ":" when set is nil).
func member(ix index.Index, set []string) any {
	if set == nil {
		return ":"
	}
	want := make(map[string]struct{}, len(set))
	for _, s := range set {
		want[s] = struct{}{}
	}
	out := make([]int, 0, len(set))
	var lbl string
	for i := 0; i < ix.Len(); i++ {
		lbl, _ = ix.Get(i)
		if _, ok := want[lbl]; ok {
			out = append(out, i)
		}
	}

	return out
}

// selectAxis resolves one iloc argument into positions of ix.
func selectAxis(ix index.Index, ax axis, sel any) ([]int, error) {
	n := ix.Len()
	switch x := sel.(type) {
	case nil:
		return span(0, n), nil
	case int:
		if x < 0 || x >= n {
			return nil, ErrOutOfRange
		}
		return []int{x}, nil
	case string:
		return parseToken(ix, ax, x)
	case []int:
		out := make([]int, 0, len(x))
		for _, p := range x {
			if p < 0 || p >= n {
				return nil, ErrOutOfRange
			}
			out = append(out, p)
		}
		return out, nil
	case []string:
		out := make([]int, 0, len(x))
		for _, tok := range x {
			pos, err := parseToken(ix, ax, tok)
			if err != nil {
				return nil, err
			}
			out = append(out, pos...)
		}
		return out, nil
	case []any:
		out := make([]int, 0, len(x))
		for _, el := range x {
			if _, nested := el.([]any); nested {
				return nil, ErrBadSelector
			}
			pos, err := selectAxis(ix, ax, el)
			if err != nil {
				return nil, err
			}
			out = append(out, pos...)
		}
		return out, nil
	default:
		return nil, ErrBadSelector
	}
}

// parseToken resolves one string token: all, exact label, range, or label.
func parseToken(ix index.Index, ax axis, tok string) ([]int, error) {
	t := strings.TrimSpace(tok)
	if t == "" || t == ":" {
		return span(0, ix.Len()), nil
	}
	if hit := index.Exact(ix, t); len(hit) > 0 {
		return hit[:1], nil
	}
	if strings.Count(t, ":") == 1 {
		a, b, _ := strings.Cut(t, ":")
		return parseRange(ix, ax, strings.TrimSpace(a), strings.TrimSpace(b))
	}
	pos := ix.Find(t)
	if len(pos) == 0 {
		return nil, ax.invalid()
	}

	return pos[:1], nil
}

// parseRange resolves "a:b" with the endpoint rules of the grammar.
func parseRange(ix index.Index, ax axis, a, b string) ([]int, error) {
	n := ix.Len()
	lo, hi := 0, n
	if a != "" {
		if v, err := strconv.Atoi(a); err == nil {
			lo = clamp(v, n)
		} else {
			p, err := firstLabel(ix, ax, a)
			if err != nil {
				return nil, err
			}
			lo = p
		}
	}
	if b != "" {
		if v, err := strconv.Atoi(b); err == nil {
			hi = clamp(v, n)
		} else {
			p, err := firstLabel(ix, ax, b)
			if err != nil {
				return nil, err
			}
			hi = p + 1
		}
	}

	return span(lo, hi), nil
}

// firstLabel returns the first Find match of label.
func firstLabel(ix index.Index, ax axis, label string) (int, error) {
	pos := ix.Find(label)
	if len(pos) == 0 {
		return -1, ax.invalid()
	}

	return pos[0], nil
}

func clamp(v, n int) int {
	if v < 0 {
		return 0
	}
	if v > n {
		return n
	}

	return v
}

// span returns [lo, hi) as explicit positions; empty when lo >= hi.
func span(lo, hi int) []int {
	if lo >= hi {
		return []int{}
	}
	out := make([]int, hi-lo)
	for i := range out {
		out[i] = lo + i
	}

	return out
}

// take copies the rp × cp selection into a new dense frame. Placeholder
// sources yield NA cells.
func (f *Frame) take(rp, cp []int) *Frame {
	data := make([][]cell.Value, len(rp))
	for i, r := range rp {
		row := make([]cell.Value, len(cp))
		for j, c := range cp {
			row[j] = f.Get(r, c)
		}
		data[i] = row
	}

	return wrap(data, f.rows.Filter(rp), f.cols.Filter(cp))
}
