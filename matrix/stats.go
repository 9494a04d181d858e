// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - NaN-aware statistics over the numeric frame view: row means, row z-scores
//     (heatmap scaling), pairwise Euclidean row distances (clustering input) and
//     Pearson column correlation.
//   - Missing entries (NaN) are skipped, never propagated, so one NA cell does not
//     blank an entire row of a heatmap.
//
// Determinism:
//   - Fixed i→j traversal for all loops; no map iteration.

package matrix

import "math"

// RowMeans returns the mean of the non-NaN entries of every row.
// A row without observations has mean NaN.
//
// Complexity: O(r*c) time, O(r) space.
func RowMeans(m *Dense) ([]float64, error) {
	if m == nil {
		return nil, matrixErrorf(opRowMeans, ErrNilMatrix)
	}
	out := make([]float64, m.r)
	var (
		i, j, n, base int
		sum, v        float64
	)
	for i = 0; i < m.r; i++ {
		base = i * m.c
		sum, n = 0, 0
		for j = 0; j < m.c; j++ {
			v = m.data[base+j]
			if math.IsNaN(v) {
				continue
			}
			sum += v
			n++
		}
		if n == 0 {
			out[i] = math.NaN()
			continue
		}
		out[i] = sum / float64(n)
	}

	return out, nil
}

// ZScoreRows standardizes each row: (x - mean) / sd over the non-NaN entries
// (sample sd, n-1). NaN entries stay NaN; rows with sd == 0 or fewer than two
// observations become 0 where observed.
//
// Implementation:
//   - Stage 1: RowMeans.
//   - Stage 2: per-row sample variance over observed entries.
//   - Stage 3: write standardized copy.
//
// Complexity: O(r*c) time and space.
func ZScoreRows(m *Dense) (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf(opZScoreRows, ErrNilMatrix)
	}
	means, err := RowMeans(m)
	if err != nil {
		return nil, matrixErrorf(opZScoreRows, err)
	}
	out := m.Clone()

	var (
		i, j, n, base int
		ss, d, sd, v  float64
	)
	for i = 0; i < m.r; i++ {
		base = i * m.c
		ss, n = 0, 0
		for j = 0; j < m.c; j++ {
			v = m.data[base+j]
			if math.IsNaN(v) {
				continue
			}
			d = v - means[i]
			ss += d * d
			n++
		}
		sd = 0
		if n > 1 {
			sd = math.Sqrt(ss / float64(n-1))
		}
		for j = 0; j < m.c; j++ {
			v = m.data[base+j]
			if math.IsNaN(v) {
				continue
			}
			if sd == 0 {
				out.data[base+j] = 0
				continue
			}
			out.data[base+j] = (v - means[i]) / sd
		}
	}

	return out, nil
}

// EuclideanRows returns the r×r matrix of distances between rows.
// Only coordinates observed in both rows contribute; the partial sum is
// rescaled by c/k (k = shared coordinates) so rows with gaps stay comparable.
// Pairs with no shared coordinate get +Inf. The diagonal is 0.
//
// Complexity: O(r²·c) time, O(r²) space.
func EuclideanRows(m *Dense) (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf(opEuclidean, ErrNilMatrix)
	}
	r, c := m.r, m.c
	out := &Dense{r: r, c: r, data: make([]float64, r*r)}

	var (
		i, j, k, n   int
		bi, bj       int
		sum, a, b, d float64
	)
	for i = 0; i < r; i++ {
		bi = i * c
		for j = i + 1; j < r; j++ {
			bj = j * c
			sum, n = 0, 0
			for k = 0; k < c; k++ {
				a, b = m.data[bi+k], m.data[bj+k]
				if math.IsNaN(a) || math.IsNaN(b) {
					continue
				}
				sum += (a - b) * (a - b)
				n++
			}
			if n == 0 {
				d = math.Inf(1)
			} else {
				d = math.Sqrt(sum * float64(c) / float64(n))
			}
			out.data[i*r+j] = d
			out.data[j*r+i] = d
		}
	}

	return out, nil
}

// Correlation returns the c×c Pearson correlation of the columns of m using
// pairwise-complete observations. Degenerate pairs (fewer than two shared
// observations, or zero variance) get 0; the diagonal is 1 for columns with
// variance and 0 otherwise.
//
// Errors:
//   - ErrNilMatrix; ErrDimensionMismatch when m has fewer than two rows.
//
// Complexity: O(r·c²) time, O(c²) space.
func Correlation(m *Dense) (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf(opCorr, ErrNilMatrix)
	}
	r, c := m.r, m.c
	if c > 0 && r < 2 {
		return nil, matrixErrorf(opCorr, ErrDimensionMismatch)
	}
	out := &Dense{r: c, c: c, data: make([]float64, c*c)}

	var p, q int
	for p = 0; p < c; p++ {
		for q = p; q < c; q++ {
			v := pearson(m, p, q)
			out.data[p*c+q] = v
			out.data[q*c+p] = v
		}
	}

	return out, nil
}

// pearson correlates columns p and q over rows where both are observed.
func pearson(m *Dense, p, q int) float64 {
	var (
		i, n                 int
		a, b                 float64
		sa, sb, saa, sbb, sab float64
	)
	for i = 0; i < m.r; i++ {
		a, b = m.data[i*m.c+p], m.data[i*m.c+q]
		if math.IsNaN(a) || math.IsNaN(b) {
			continue
		}
		sa += a
		sb += b
		saa += a * a
		sbb += b * b
		sab += a * b
		n++
	}
	if n < 2 {
		return 0
	}
	fn := float64(n)
	cov := sab - sa*sb/fn
	va := saa - sa*sa/fn
	vb := sbb - sb*sb/fn
	if va <= 0 || vb <= 0 {
		return 0
	}

	return cov / math.Sqrt(va*vb)
}
