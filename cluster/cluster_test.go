// SPDX-License-Identifier: MIT

package cluster_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvframe/cluster"
	"github.com/katalvlaran/lvframe/frame"
	"github.com/katalvlaran/lvframe/matrix"
)

// twoGroups has rows a,c near the origin and b,d near (10,10).
func twoGroups(t *testing.T) *frame.Frame {
	t.Helper()
	f, err := frame.FromRecords([][]any{
		{0, 0},
		{10, 10},
		{0.1, 0},
		{10, 10.1},
	}, []string{"a", "b", "c", "d"}, []string{"x", "y"})
	require.NoError(t, err)

	return f
}

func adjacent(order []int, p, q int) bool {
	for i := 0; i+1 < len(order); i++ {
		if (order[i] == p && order[i+1] == q) || (order[i] == q && order[i+1] == p) {
			return true
		}
	}

	return false
}

func TestOrderRows_AllLinkages(t *testing.T) {
	t.Parallel()

	for _, l := range []cluster.Linkage{cluster.Single, cluster.Complete, cluster.Average} {
		t.Run(l.String(), func(t *testing.T) {
			t.Parallel()

			g, dg, err := cluster.OrderRows(twoGroups(t), l)
			require.NoError(t, err)
			require.Len(t, dg.Merges, 3)
			assert.ElementsMatch(t, []int{0, 1, 2, 3}, dg.Order)
			assert.True(t, adjacent(dg.Order, 0, 2), "order %v", dg.Order)
			assert.True(t, adjacent(dg.Order, 1, 3), "order %v", dg.Order)

			// the first two merges join the tight pairs at distance 0.1
			assert.InDelta(t, 0.1, dg.Merges[0].Dist, 1e-9)
			assert.InDelta(t, 0.1, dg.Merges[1].Dist, 1e-9)
			last := dg.Merges[2]
			assert.Equal(t, 4, last.Size)
			assert.Equal(t, []int{4, 5}, []int{last.A, last.B})

			for i, p := range dg.Order {
				assert.Equal(t, []string{"a", "b", "c", "d"}[p], g.RowName(i))
			}
			assert.Equal(t, []int{0, 1, 0, 1}, dg.Labels(2))
			assert.Equal(t, []int{0, 0, 0, 0}, dg.Labels(0))
			assert.Equal(t, []int{0, 1, 2, 3}, dg.Labels(9))
		})
	}
}

func TestLinkageDistances(t *testing.T) {
	t.Parallel()

	// points on a line at 0, 1, 3
	d, err := matrix.NewDenseFrom(3, 3, []float64{
		0, 1, 3,
		1, 0, 2,
		3, 2, 0,
	})
	require.NoError(t, err)

	cases := []struct {
		l    cluster.Linkage
		want float64
	}{
		{cluster.Single, 2},
		{cluster.Complete, 3},
		{cluster.Average, 2.5},
	}
	for _, tc := range cases {
		dg, err := cluster.Hierarchical(d, tc.l)
		require.NoError(t, err)
		require.Len(t, dg.Merges, 2)
		assert.Equal(t, cluster.Merge{A: 0, B: 1, Dist: 1, Size: 2}, dg.Merges[0], tc.l.String())
		assert.InDelta(t, tc.want, dg.Merges[1].Dist, 1e-12, tc.l.String())
		assert.Equal(t, []int{2, 3}, []int{dg.Merges[1].A, dg.Merges[1].B})
		assert.Equal(t, []int{2, 0, 1}, dg.Order)
	}
}

func TestOrderCols(t *testing.T) {
	t.Parallel()

	g, dg, err := cluster.OrderCols(twoGroups(t).T(), cluster.Average)
	require.NoError(t, err)
	r, c := g.Shape()
	assert.Equal(t, 2, r)
	assert.Equal(t, 4, c)
	assert.True(t, adjacent(dg.Order, 0, 2))
	for i, p := range dg.Order {
		assert.Equal(t, []string{"a", "b", "c", "d"}[p], g.ColName(i))
	}
}

func TestMissingDistances(t *testing.T) {
	t.Parallel()

	d, err := matrix.NewDenseFrom(2, 2, []float64{0, math.NaN(), math.NaN(), 0})
	require.NoError(t, err)
	dg, err := cluster.Hierarchical(d, cluster.Complete)
	require.NoError(t, err)
	require.Len(t, dg.Merges, 1)
	assert.True(t, math.IsInf(dg.Merges[0].Dist, 1))
}

func TestSmallInputs(t *testing.T) {
	t.Parallel()

	d, err := matrix.NewDense(0, 0)
	require.NoError(t, err)
	dg, err := cluster.Hierarchical(d, cluster.Single)
	require.NoError(t, err)
	assert.Empty(t, dg.Merges)
	assert.Empty(t, dg.Order)
	assert.Empty(t, dg.Labels(1))

	d, err = matrix.NewDense(1, 1)
	require.NoError(t, err)
	dg, err = cluster.Hierarchical(d, cluster.Average)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, dg.Order)
}

func TestErrors(t *testing.T) {
	t.Parallel()

	_, err := cluster.Hierarchical(nil, cluster.Single)
	require.ErrorIs(t, err, cluster.ErrNilInput)

	d, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, err = cluster.Hierarchical(d, cluster.Single)
	require.ErrorIs(t, err, cluster.ErrNotSquare)

	d, err = matrix.NewDense(2, 2)
	require.NoError(t, err)
	_, err = cluster.Hierarchical(d, cluster.Linkage(9))
	require.ErrorIs(t, err, cluster.ErrUnknownLinkage)
	assert.Equal(t, "Linkage(9)", cluster.Linkage(9).String())

	_, _, err = cluster.OrderRows(nil, cluster.Single)
	require.ErrorIs(t, err, cluster.ErrNilInput)
	_, _, err = cluster.OrderCols(nil, cluster.Single)
	require.ErrorIs(t, err, cluster.ErrNilInput)
}

func TestParseLinkage(t *testing.T) {
	t.Parallel()

	for s, want := range map[string]cluster.Linkage{
		"single": cluster.Single, " Complete ": cluster.Complete, "AVERAGE": cluster.Average,
	} {
		got, err := cluster.ParseLinkage(s)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := cluster.ParseLinkage("ward")
	require.ErrorIs(t, err, cluster.ErrUnknownLinkage)
}
