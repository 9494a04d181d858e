// SPDX-License-Identifier: MIT

package history_test

import (
	"bytes"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvframe/cell"
	"github.com/katalvlaran/lvframe/config"
	"github.com/katalvlaran/lvframe/frame"
	"github.com/katalvlaran/lvframe/history"
	"github.com/katalvlaran/lvframe/logging"
)

func base(t *testing.T) *frame.Frame {
	t.Helper()
	f, err := frame.FromRecords([][]any{{1, 2}, {3, 4}}, []string{"r1", "r2"}, []string{"a", "b"})
	require.NoError(t, err)

	return f
}

func TestUndoRedo_StepsStayDistinct(t *testing.T) {
	t.Parallel()

	h := history.New()
	f0 := base(t)
	_, err := h.Push(f0, "load")
	require.NoError(t, err)

	f1, err := f0.Set(0, 0, 100)
	require.NoError(t, err)
	_, err = h.Push(f1, "set")
	require.NoError(t, err)

	f2, err := f1.SetCol("c", []any{5, 6})
	require.NoError(t, err)
	_, err = h.Push(f2, "add column")
	require.NoError(t, err)

	st, err := h.Undo()
	require.NoError(t, err)
	assert.Equal(t, "set", st.Action)
	assert.True(t, st.Frame.Get(0, 0).Equal(cell.Number(100)))

	st, err = h.Undo()
	require.NoError(t, err)
	assert.True(t, st.Frame.Get(0, 0).Equal(cell.Number(1)), "first step untouched by later edits")
	_, c := st.Frame.Shape()
	assert.Equal(t, 2, c)

	_, err = h.Undo()
	require.ErrorIs(t, err, history.ErrNothingToUndo)

	st, err = h.Redo()
	require.NoError(t, err)
	assert.Equal(t, "set", st.Action)
	st, err = h.Redo()
	require.NoError(t, err)
	assert.Equal(t, "add column", st.Action)
	_, err = h.Redo()
	require.ErrorIs(t, err, history.ErrNothingToRedo)
}

func TestPush_TruncatesRedoTail(t *testing.T) {
	t.Parallel()

	h := history.New()
	f := base(t)
	for _, a := range []string{"a", "b", "c"} {
		_, err := h.Push(f, a)
		require.NoError(t, err)
	}
	_, err := h.Undo()
	require.NoError(t, err)
	_, err = h.Undo()
	require.NoError(t, err)

	_, err = h.Push(f, "d")
	require.NoError(t, err)
	steps := h.Steps()
	require.Len(t, steps, 2)
	assert.Equal(t, "a", steps[0].Action)
	assert.Equal(t, "d", steps[1].Action)
	_, err = h.Redo()
	require.ErrorIs(t, err, history.ErrNothingToRedo)
}

func TestCapacityEvictsOldest(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logging.New(config.LoggingConfig{Level: "debug", Format: "text"}, &buf)
	h := history.New(history.WithCapacity(2), history.WithLogger(log))
	f := base(t)
	for _, a := range []string{"a", "b", "c"} {
		_, err := h.Push(f, a)
		require.NoError(t, err)
	}
	assert.Equal(t, 2, h.Len())
	cur, ok := h.Current()
	require.True(t, ok)
	assert.Equal(t, "c", cur.Action)
	assert.Equal(t, "b", h.Steps()[0].Action)
	assert.Contains(t, buf.String(), "evicted=1")

	assert.Panics(t, func() { history.WithCapacity(-1) })
}

func TestPushNilAndEmpty(t *testing.T) {
	t.Parallel()

	h := history.New()
	_, err := h.Push(nil, "x")
	require.ErrorIs(t, err, history.ErrNilFrame)
	_, ok := h.Current()
	assert.False(t, ok)
	_, err = h.Undo()
	require.ErrorIs(t, err, history.ErrNothingToUndo)
}

func TestStepMetadata(t *testing.T) {
	t.Parallel()

	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	h := history.New(history.WithClock(func() time.Time { return at }))
	a, err := h.Push(base(t), "a")
	require.NoError(t, err)
	b, err := h.Push(base(t), "b")
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, at, a.At)
}

func TestConcurrentPush(t *testing.T) {
	t.Parallel()

	h := history.New()
	f := base(t)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = h.Push(f, "p")
		}()
	}
	wg.Wait()
	assert.Equal(t, 16, h.Len())
}
