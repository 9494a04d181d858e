// SPDX-License-Identifier: MIT

package index

import (
	"strconv"
	"strings"
)

// ---------- Labels ----------

// Labels is a materialized label sequence.
type Labels []string

// NewLabels copies labels into a new Labels index.
func NewLabels(labels ...string) Labels {
	out := make(Labels, len(labels))
	copy(out, labels)

	return out
}

// Len returns the number of labels.
func (l Labels) Len() int { return len(l) }

// Get returns l[pos]; ok is false out of range.
func (l Labels) Get(pos int) (string, bool) {
	if pos < 0 || pos >= len(l) {
		return "", false
	}

	return l[pos], true
}

// Find performs the case-folded substring scan.
func (l Labels) Find(label string) []int { return find(l, label) }

// Filter returns the labels at positions.
func (l Labels) Filter(positions []int) Index { return filter(l, positions) }

// Append returns a copy with label added at the end.
func (l Labels) Append(label string) Index {
	out := make(Labels, len(l), len(l)+1)
	copy(out, l)

	return append(out, label)
}

// Labels returns a copy of the labels.
func (l Labels) Labels() []string {
	out := make([]string, len(l))
	copy(out, l)

	return out
}

// Copy returns an independent Labels.
func (l Labels) Copy() Index { return NewLabels(l...) }

// ---------- Numeric ----------

// Numeric labels position p as the decimal string of p+1.
// The value is the size; no storage is allocated.
type Numeric int

// Len returns the configured size.
func (n Numeric) Len() int { return int(n) }

// Get returns strconv.Itoa(pos+1) when pos is in range.
func (n Numeric) Get(pos int) (string, bool) {
	if pos < 0 || pos >= int(n) {
		return "", false
	}

	return strconv.Itoa(pos + 1), true
}

// Find performs the case-folded substring scan over computed labels.
func (n Numeric) Find(label string) []int { return find(n, label) }

// Filter materializes the labels at positions.
func (n Numeric) Filter(positions []int) Index { return filter(n, positions) }

// Append grows the size by one; the label argument is ignored because the
// new label is computed.
func (n Numeric) Append(string) Index { return n + 1 }

// Labels materializes all labels.
func (n Numeric) Labels() []string { return filter(n, seq(int(n))).Labels() }

// Copy returns n (values are immutable).
func (n Numeric) Copy() Index { return n }

// ---------- Letters ----------

// Letters labels position p with spreadsheet column letters
// (0 -> "A", 25 -> "Z", 26 -> "AA").
type Letters int

// Len returns the configured size.
func (n Letters) Len() int { return int(n) }

// Get returns Letter(pos) when pos is in range.
func (n Letters) Get(pos int) (string, bool) {
	if pos < 0 || pos >= int(n) {
		return "", false
	}

	return Letter(pos), true
}

// Find performs the case-folded substring scan over computed labels.
func (n Letters) Find(label string) []int { return find(n, label) }

// Filter materializes the labels at positions.
func (n Letters) Filter(positions []int) Index { return filter(n, positions) }

// Append grows the size by one; the new label is computed.
func (n Letters) Append(string) Index { return n + 1 }

// Labels materializes all labels.
func (n Letters) Labels() []string { return filter(n, seq(int(n))).Labels() }

// Copy returns n.
func (n Letters) Copy() Index { return n }

// Letter converts a zero-based position into base-26 spreadsheet letters.
// Negative positions yield "".
// Complexity: O(log26 pos).
func Letter(pos int) string {
	if pos < 0 {
		return ""
	}
	var buf [16]byte
	i := len(buf)
	for n := pos + 1; n > 0; n = (n - 1) / 26 {
		i--
		buf[i] = byte('A' + (n-1)%26)
	}

	return string(buf[i:])
}

// LetterPos is the inverse of Letter. It returns -1 for anything that is not
// a non-empty run of ASCII letters (case-insensitive).
func LetterPos(s string) int {
	if s == "" {
		return -1
	}
	n := 0
	for _, r := range strings.ToUpper(s) {
		if r < 'A' || r > 'Z' {
			return -1
		}
		n = n*26 + int(r-'A'+1)
	}

	return n - 1
}

// seq returns [0, 1, ..., n-1].
func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}
