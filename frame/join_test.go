// SPDX-License-Identifier: MIT

package frame_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvframe/cell"
	"github.com/katalvlaran/lvframe/frame"
)

func TestJoinRows_CommonColumnsInFirstOrder(t *testing.T) {
	t.Parallel()

	a := mustFrame(t, [][]any{{1, 2, 3}, {4, 5, 6}}, []string{"a1", "a2"}, []string{"X", "Y", "Z"})
	b := mustFrame(t, [][]any{{7, 8, 9}}, []string{"b1"}, []string{"Z", "Y", "W"})

	j, err := frame.JoinRows(a, b)
	require.NoError(t, err)
	r, c := j.Shape()
	assert.Equal(t, 3, r, "rows = rowsA + rowsB")
	assert.Equal(t, 2, c)
	assert.Equal(t, []string{"Y", "Z"}, j.Cols().Labels())
	assert.Equal(t, []string{"a1", "a2", "b1"}, j.Rows().Labels())

	// b is re-projected onto [Y, Z]: Y=8, Z=7.
	assert.True(t, j.Get(2, 0).Equal(cell.Number(8)))
	assert.True(t, j.Get(2, 1).Equal(cell.Number(7)))
	assert.True(t, j.Get(0, 0).Equal(cell.Number(2)))
}

func TestJoinRows_DuplicateLabelsKeptOnce(t *testing.T) {
	t.Parallel()

	a := mustFrame(t, [][]any{{1, 2}}, nil, []string{"K", "K"})
	b := mustFrame(t, [][]any{{3}}, nil, []string{"K"})
	j, err := frame.JoinRows(a, b)
	require.NoError(t, err)
	assert.Equal(t, []string{"K"}, j.Cols().Labels())
	assert.True(t, j.Get(0, 0).Equal(cell.Number(1)))
}

func TestJoinCols(t *testing.T) {
	t.Parallel()

	a := mustFrame(t, [][]any{{1}, {2}, {3}}, []string{"g1", "g2", "g3"}, []string{"s1"})
	b := mustFrame(t, [][]any{{30}, {10}}, []string{"g3", "g1"}, []string{"s2"})

	j, err := frame.JoinCols(a, b)
	require.NoError(t, err)
	assert.Equal(t, []string{"g1", "g3"}, j.Rows().Labels())
	assert.Equal(t, []string{"s1", "s2"}, j.Cols().Labels())
	assert.True(t, j.Get(0, 1).Equal(cell.Number(10)))
	assert.True(t, j.Get(1, 0).Equal(cell.Number(3)))
}

func TestJoin_Errors(t *testing.T) {
	t.Parallel()

	_, err := frame.JoinRows()
	require.ErrorIs(t, err, frame.ErrNoFrames)
	_, err = frame.JoinCols(sample(t), nil)
	require.ErrorIs(t, err, frame.ErrNilFrame)
}

func TestJoinRows_Single(t *testing.T) {
	t.Parallel()

	f := sample(t)
	j, err := frame.JoinRows(f)
	require.NoError(t, err)
	assert.True(t, frame.Equal(f, j))
}
