// SPDX-License-Identifier: MIT

// Package cluster orders frame rows and columns by agglomerative
// hierarchical clustering, the usual preparation step for heatmaps.
//
// Distances come from matrix.EuclideanRows (missing cells skipped). Three
// linkages are available:
//   - Single: Kruskal's algorithm over the sorted pair list with a
//     disjoint-set forest; the merges are the minimum spanning tree edges.
//   - Complete and Average: Lance–Williams updates of the cluster distance
//     matrix after every merge.
//
// Cluster ids follow the common convention: leaves are 0..n-1 and the k-th
// merge creates cluster n+k.
package cluster

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/katalvlaran/lvframe/frame"
	"github.com/katalvlaran/lvframe/matrix"
)

// Linkage selects the inter-cluster distance.
type Linkage uint8

const (
	Average Linkage = iota
	Complete
	Single
)

var (
	// ErrNotSquare indicates a distance matrix that is not n×n.
	ErrNotSquare = matrix.ErrNonSquare

	// ErrUnknownLinkage indicates an unsupported linkage value or name.
	ErrUnknownLinkage = errors.New("cluster: unknown linkage")

	// ErrNilInput indicates a nil matrix or frame.
	ErrNilInput = errors.New("cluster: nil input")
)

// String returns the lower-case linkage name.
func (l Linkage) String() string {
	switch l {
	case Average:
		return "average"
	case Complete:
		return "complete"
	case Single:
		return "single"
	default:
		return fmt.Sprintf("Linkage(%d)", uint8(l))
	}
}

// ParseLinkage accepts "average", "complete" and "single" in any case.
func ParseLinkage(s string) (Linkage, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "average":
		return Average, nil
	case "complete":
		return Complete, nil
	case "single":
		return Single, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownLinkage, s)
	}
}

// Merge joins clusters A and B (A < B) at distance Dist; Size counts leaves.
type Merge struct {
	A, B int
	Dist float64
	Size int
}

// Dendrogram is the result of Hierarchical.
type Dendrogram struct {
	N      int     // number of leaves
	Merges []Merge // N-1 merges in agglomeration order
	Order  []int   // leaf order of a left-to-right traversal
}

// Hierarchical clusters the n items of the n×n distance matrix d (a nil
// interface is rejected; the diagonal is ignored). NaN
// distances are treated as +Inf. Ties are broken by the lowest pair.
//
// Errors:
//   - ErrNilInput, ErrNotSquare, ErrUnknownLinkage.
//
// Complexity: Single O(n² log n); Complete and Average O(n³) time, O(n²) space.
func Hierarchical(d matrix.Matrix, l Linkage) (*Dendrogram, error) {
	if d == nil {
		return nil, ErrNilInput
	}
	n, c := d.Rows(), d.Cols()
	if n != c {
		return nil, fmt.Errorf("%w: %dx%d", ErrNotSquare, n, c)
	}

	var merges []Merge
	switch l {
	case Single:
		merges = single(d)
	case Complete, Average:
		merges = lanceWilliams(d, l)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownLinkage, l)
	}

	return &Dendrogram{N: n, Merges: merges, Order: leafOrder(n, merges)}, nil
}

// at reads d[i][j] with NaN mapped to +Inf.
func at(d matrix.Matrix, i, j int) float64 {
	v, _ := d.At(i, j)
	if math.IsNaN(v) {
		return math.Inf(1)
	}

	return v
}

// dsu is a disjoint-set forest with path compression and union by rank.
type dsu struct {
	parent, rank []int
}

func newDSU(n int) *dsu {
	u := &dsu{parent: make([]int, n), rank: make([]int, n)}
	for i := range u.parent {
		u.parent[i] = i
	}

	return u
}

func (u *dsu) find(x int) int {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}

	return x
}

// union links the roots of a and b and returns the new root.
func (u *dsu) union(a, b int) int {
	ra, rb := u.find(a), u.find(b)
	if u.rank[ra] < u.rank[rb] {
		ra, rb = rb, ra
	}
	u.parent[rb] = ra
	if u.rank[ra] == u.rank[rb] {
		u.rank[ra]++
	}

	return ra
}

// single builds the single-linkage merges with Kruskal's algorithm.
func single(d matrix.Matrix) []Merge {
	n := d.Rows()
	type pair struct {
		i, j int
		w    float64
	}
	pairs := make([]pair, 0, n*(n-1)/2)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			pairs = append(pairs, pair{i: i, j: j, w: at(d, i, j)})
		}
	}
	sort.SliceStable(pairs, func(a, b int) bool { return pairs[a].w < pairs[b].w })

	u := newDSU(n)
	id := make([]int, n)   // cluster id of each root
	size := make([]int, n) // leaves under each root
	for i = range id {
		id[i] = i
		size[i] = 1
	}
	merges := make([]Merge, 0, max(n-1, 0))
	for _, p := range pairs {
		if len(merges) == n-1 {
			break
		}
		ra, rb := u.find(p.i), u.find(p.j)
		if ra == rb {
			continue
		}
		a, b := id[ra], id[rb]
		if a > b {
			a, b = b, a
		}
		s := size[ra] + size[rb]
		root := u.union(ra, rb)
		id[root] = n + len(merges)
		size[root] = s
		merges = append(merges, Merge{A: a, B: b, Dist: p.w, Size: s})
	}

	return merges
}

// lanceWilliams runs the naive agglomeration with complete or average updates.
//
// Implementation:
//   - Stage 1: copy d into a working matrix; every leaf is an active slot.
//   - Stage 2: repeat n-1 times: find the closest active pair (i<j), record
//     the merge, fold slot j into slot i with the linkage update, retire j.
func lanceWilliams(d matrix.Matrix, l Linkage) []Merge {
	n := d.Rows()
	w := make([][]float64, n)
	var i, j, k int
	for i = 0; i < n; i++ {
		w[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			w[i][j] = at(d, i, j)
		}
	}
	active := make([]bool, n)
	id := make([]int, n)
	size := make([]int, n)
	for i = 0; i < n; i++ {
		active[i], id[i], size[i] = true, i, 1
	}

	merges := make([]Merge, 0, max(n-1, 0))
	for step := 0; step < n-1; step++ {
		bi, bj, best := -1, -1, math.Inf(1)
		for i = 0; i < n; i++ {
			if !active[i] {
				continue
			}
			for j = i + 1; j < n; j++ {
				if !active[j] {
					continue
				}
				if bi < 0 || w[i][j] < best {
					bi, bj, best = i, j, w[i][j]
				}
			}
		}

		a, b := id[bi], id[bj]
		if a > b {
			a, b = b, a
		}
		si, sj := size[bi], size[bj]
		merges = append(merges, Merge{A: a, B: b, Dist: best, Size: si + sj})

		for k = 0; k < n; k++ {
			if !active[k] || k == bi || k == bj {
				continue
			}
			var v float64
			if l == Complete {
				v = math.Max(w[bi][k], w[bj][k])
			} else {
				v = (float64(si)*w[bi][k] + float64(sj)*w[bj][k]) / float64(si+sj)
			}
			w[bi][k], w[k][bi] = v, v
		}
		active[bj] = false
		id[bi] = n + step
		size[bi] = si + sj
	}

	return merges
}

// leafOrder lists the leaves under the last merge, left subtree first.
// Forests (no merges for n > 1 cannot happen here) fall back to 0..n-1.
func leafOrder(n int, merges []Merge) []int {
	if len(merges) == 0 {
		out := make([]int, n)
		for i := range out {
			out[i] = i
		}
		return out
	}
	out := make([]int, 0, n)
	stack := []int{n + len(merges) - 1}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top < n {
			out = append(out, top)
			continue
		}
		m := merges[top-n]
		stack = append(stack, m.B, m.A) // A is visited first
	}

	return out
}

// Labels cuts the dendrogram into k flat clusters and returns a cluster
// label in [0, k) per leaf, numbered by first appearance in leaf index order.
// k is clamped to [1, N].
func (dg *Dendrogram) Labels(k int) []int {
	n := dg.N
	if n == 0 {
		return []int{}
	}
	if k < 1 {
		k = 1
	}
	if k > n {
		k = n
	}
	u := newDSU(n + len(dg.Merges))
	for step := 0; step < n-k; step++ {
		m := dg.Merges[step]
		u.union(n+step, m.A)
		u.union(n+step, m.B)
	}
	label := make(map[int]int, k)
	out := make([]int, n)
	for i := 0; i < n; i++ {
		r := u.find(i)
		l, ok := label[r]
		if !ok {
			l = len(label)
			label[r] = l
		}
		out[i] = l
	}

	return out
}

// OrderRows clusters the rows of f (Euclidean distance over the numeric
// view) and returns f with its rows in dendrogram leaf order.
func OrderRows(f *frame.Frame, l Linkage) (*frame.Frame, *Dendrogram, error) {
	if f == nil {
		return nil, nil, ErrNilInput
	}
	dg, err := dendrogram(f, l)
	if err != nil {
		return nil, nil, err
	}
	g, err := f.ILoc(dg.Order, ":")
	if err != nil {
		return nil, nil, fmt.Errorf("cluster: reorder rows: %w", err)
	}

	return g, dg, nil
}

// OrderCols is OrderRows over the columns of f.
func OrderCols(f *frame.Frame, l Linkage) (*frame.Frame, *Dendrogram, error) {
	if f == nil {
		return nil, nil, ErrNilInput
	}
	dg, err := dendrogram(f.T(), l)
	if err != nil {
		return nil, nil, err
	}
	g, err := f.ILoc(":", dg.Order)
	if err != nil {
		return nil, nil, fmt.Errorf("cluster: reorder cols: %w", err)
	}

	return g, dg, nil
}

func dendrogram(f *frame.Frame, l Linkage) (*Dendrogram, error) {
	d, err := matrix.EuclideanRows(f.ToDense())
	if err != nil {
		return nil, fmt.Errorf("cluster: distances: %w", err)
	}

	return Hierarchical(d, l)
}
