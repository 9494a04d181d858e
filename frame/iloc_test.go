// SPDX-License-Identifier: MIT

package frame_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvframe/cell"
	"github.com/katalvlaran/lvframe/frame"
)

func TestILoc_FullSliceEqualsCopy(t *testing.T) {
	t.Parallel()

	f := sample(t)
	for _, sel := range []any{":", "", nil} {
		g, err := f.ILoc(sel, sel)
		require.NoError(t, err)
		assert.True(t, frame.Equal(f.Copy(), g), "selector %q", sel)
	}
}

func TestILoc_Grammar(t *testing.T) {
	t.Parallel()

	f := sample(t)
	cases := []struct {
		name     string
		rows     any
		cols     any
		wantRows []string
		wantCols []string
	}{
		{"label", "r2", ":", []string{"r2"}, []string{"Alpha", "Beta", "Gamma2"}},
		{"position", 2, 0, []string{"r3"}, []string{"Alpha"}},
		{"int range end exclusive", "0:2", ":", []string{"r1", "r2"}, []string{"Alpha", "Beta", "Gamma2"}},
		{"open end", "1:", "1:", []string{"r2", "r3"}, []string{"Beta", "Gamma2"}},
		{"open start", ":1", ":", []string{"r1"}, []string{"Alpha", "Beta", "Gamma2"}},
		{"label start inclusive", "r2:", ":", []string{"r2", "r3"}, []string{"Alpha", "Beta", "Gamma2"}},
		{"label end inclusive", ":r2", "alpha:beta", []string{"r1", "r2"}, []string{"Alpha", "Beta"}},
		{"mixed endpoints", "r1:2", "gamma", []string{"r1", "r2"}, []string{"Gamma2"}},
		{"clamped", "-5:100", ":", []string{"r1", "r2", "r3"}, []string{"Alpha", "Beta", "Gamma2"}},
		{"reversed selects nothing", "2:1", ":", []string{}, []string{"Alpha", "Beta", "Gamma2"}},
		{"duplicates kept", []any{"r3", "0:2", 0}, ":", []string{"r3", "r1", "r2", "r1"}, []string{"Alpha", "Beta", "Gamma2"}},
		{"string slice", []string{"r3", "r1"}, []string{"beta"}, []string{"r3", "r1"}, []string{"Beta"}},
		{"int slice", []int{1, 1}, []int{2}, []string{"r2", "r2"}, []string{"Gamma2"}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := f.ILoc(tc.rows, tc.cols)
			require.NoError(t, err)
			r, c := g.Shape()
			require.Equal(t, len(tc.wantRows), r)
			require.Equal(t, len(tc.wantCols), c)
			assert.Equal(t, tc.wantRows, g.Rows().Labels())
			assert.Equal(t, tc.wantCols, g.Cols().Labels())
		})
	}
}

func TestILoc_ValuesFollowSelection(t *testing.T) {
	t.Parallel()

	g, err := sample(t).ILoc([]int{2, 0}, "beta:")
	require.NoError(t, err)
	assert.True(t, g.Get(0, 0).Equal(cell.Number(8)))
	assert.True(t, g.Get(1, 1).Equal(cell.Number(3)))
}

func TestILoc_ExactLabelWinsOverRange(t *testing.T) {
	t.Parallel()

	f := mustFrame(t, [][]any{{1}, {2}, {3}}, []string{"10:00", "11:00", "12:00"}, []string{"v"})
	g, err := f.ILoc("11:00", ":")
	require.NoError(t, err)
	assert.Equal(t, []string{"11:00"}, g.Rows().Labels())

	g, err = f.ILoc(" 10:00 ", ":")
	require.NoError(t, err)
	assert.Equal(t, []string{"10:00"}, g.Rows().Labels(), "tokens are trimmed before the exact-label check")
}

func TestILoc_Errors(t *testing.T) {
	t.Parallel()

	f := sample(t)
	_, err := f.ILoc(5, ":")
	require.ErrorIs(t, err, frame.ErrOutOfRange)
	_, err = f.ILoc([]int{0, -1}, ":")
	require.ErrorIs(t, err, frame.ErrOutOfRange)
	_, err = f.ILoc("zz", ":")
	require.ErrorIs(t, err, frame.ErrInvalidRow)
	_, err = f.ILoc(":", "zz:")
	require.ErrorIs(t, err, frame.ErrInvalidColumn)
	_, err = f.ILoc(1.5, ":")
	require.ErrorIs(t, err, frame.ErrBadSelector)
	_, err = f.ILoc([]any{[]any{0}}, ":")
	require.ErrorIs(t, err, frame.ErrBadSelector)
}

func TestILoc_OnPlaceholder(t *testing.T) {
	t.Parallel()

	g, err := frame.Placeholder(100, 100).ILoc("0:2", "A:C")
	require.NoError(t, err)
	require.False(t, g.IsPlaceholder())
	r, c := g.Shape()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, []string{"A", "B", "C"}, g.Cols().Labels())
	assert.True(t, g.Get(1, 2).IsNA())
}

func TestIsIn(t *testing.T) {
	t.Parallel()

	f := sample(t)
	g, err := f.IsIn([]string{"r3", "r1", "missing"}, []string{"Beta"})
	require.NoError(t, err)
	assert.Equal(t, []string{"r1", "r3"}, g.Rows().Labels(), "frame order, not set order")
	assert.Equal(t, []string{"Beta"}, g.Cols().Labels())
	assert.True(t, g.Get(1, 0).Equal(cell.Number(8)))

	g, err = f.IsIn(nil, []string{"beta"})
	require.NoError(t, err)
	r, c := g.Shape()
	assert.Equal(t, 3, r)
	assert.Equal(t, 0, c, "membership is case-sensitive")
}
