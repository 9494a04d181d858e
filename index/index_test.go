// SPDX-License-Identifier: MIT

package index_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvframe/index"
)

func TestLabels_FindCaseInsensitiveSubstring(t *testing.T) {
	t.Parallel()

	ix := index.NewLabels("Alpha", "Beta", "Gamma2")
	require.Equal(t, []int{2}, ix.Find("gamma"))
	require.Equal(t, []int{0, 1, 2}, ix.Find("A"), "every label contains an a")
	require.Equal(t, []int{0, 1, 2}, ix.Find(""))
	require.Empty(t, ix.Find("delta"))
}

func TestLabels_FindUnicodeFold(t *testing.T) {
	t.Parallel()

	ix := index.NewLabels("Straße", "Weg")
	require.Equal(t, []int{0}, ix.Find("STRASSE"))
}

func TestLabels_GetFilterAppend(t *testing.T) {
	t.Parallel()

	ix := index.NewLabels("a", "b", "c")

	lbl, ok := ix.Get(1)
	require.True(t, ok)
	require.Equal(t, "b", lbl)

	_, ok = ix.Get(3)
	require.False(t, ok)
	_, ok = ix.Get(-1)
	require.False(t, ok)

	f := ix.Filter([]int{2, 0, 2})
	require.Equal(t, []string{"c", "a", "c"}, f.Labels())

	g := ix.Append("d")
	require.Equal(t, 4, g.Len())
	require.Equal(t, 3, ix.Len(), "Append must not mutate the receiver")
}

func TestLabels_CopyIndependent(t *testing.T) {
	t.Parallel()

	src := []string{"x", "y"}
	ix := index.NewLabels(src...)
	src[0] = "changed"
	lbl, _ := ix.Get(0)
	require.Equal(t, "x", lbl)

	cp := ix.Copy().(index.Labels)
	cp[1] = "z"
	lbl, _ = ix.Get(1)
	require.Equal(t, "y", lbl)
}

func TestNumeric(t *testing.T) {
	t.Parallel()

	n := index.Numeric(12)
	require.Equal(t, 12, n.Len())
	lbl, ok := n.Get(0)
	require.True(t, ok)
	require.Equal(t, "1", lbl)
	_, ok = n.Get(12)
	require.False(t, ok)

	// "1" is contained in 1, 10, 11, 12.
	require.Equal(t, []int{0, 9, 10, 11}, n.Find("1"))
	require.Equal(t, []string{"3", "2"}, n.Filter([]int{2, 1}).Labels())
	require.Equal(t, 13, n.Append("ignored").Len())
}

func TestLetters(t *testing.T) {
	t.Parallel()

	cases := map[int]string{0: "A", 1: "B", 25: "Z", 26: "AA", 27: "AB", 51: "AZ", 52: "BA", 701: "ZZ", 702: "AAA"}
	for pos, want := range cases {
		assert.Equal(t, want, index.Letter(pos), "pos %d", pos)
		assert.Equal(t, pos, index.LetterPos(want), "label %s", want)
	}
	assert.Equal(t, -1, index.LetterPos(""))
	assert.Equal(t, -1, index.LetterPos("A1"))
	assert.Equal(t, 27, index.LetterPos("ab"))
	assert.Equal(t, "", index.Letter(-1))

	l := index.Letters(30)
	lbl, ok := l.Get(27)
	require.True(t, ok)
	require.Equal(t, "AB", lbl)
	require.Equal(t, []int{1, 27}, l.Find("b"))
}

func TestEqualAndExact(t *testing.T) {
	t.Parallel()

	require.True(t, index.Equal(index.Numeric(3), index.NewLabels("1", "2", "3")))
	require.False(t, index.Equal(index.Numeric(3), index.Letters(3)))
	require.Equal(t, []int{1}, index.Exact(index.NewLabels("AB", "A", "a"), "A"))
}
