// SPDX-License-Identifier: MIT

// Package history keeps an undo/redo stack of frame versions.
//
// Every step holds its own *frame.Frame. Frames are immutable, so a step can
// never be changed retroactively by later edits; the stack only stores
// pointers. A History is safe for concurrent use.
package history

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/lvframe/frame"
	"github.com/katalvlaran/lvframe/logging"
)

var (
	// ErrNilFrame is returned by Push for a nil frame.
	ErrNilFrame = errors.New("history: nil frame")

	// ErrNothingToUndo is returned by Undo at the oldest step.
	ErrNothingToUndo = errors.New("history: nothing to undo")

	// ErrNothingToRedo is returned by Redo at the newest step.
	ErrNothingToRedo = errors.New("history: nothing to redo")
)

// Step is one recorded frame version.
type Step struct {
	ID     uuid.UUID
	Action string
	At     time.Time
	Frame  *frame.Frame
}

// History is a bounded linear undo stack with a cursor.
type History struct {
	mu       sync.Mutex
	steps    []Step
	cur      int // index of the current step, -1 when empty
	capacity int // 0 = unbounded
	log      *slog.Logger
	now      func() time.Time
}

// Option configures New.
type Option func(*History)

// WithCapacity bounds the number of kept steps; the oldest are evicted.
// Zero means unbounded. Panics on a negative value.
func WithCapacity(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("history: WithCapacity(%d): capacity must be >= 0", n))
	}

	return func(h *History) { h.capacity = n }
}

// WithLogger sets the logger receiving debug records for every transition.
func WithLogger(l *slog.Logger) Option {
	return func(h *History) {
		if l != nil {
			h.log = l
		}
	}
}

// WithClock replaces time.Now for step timestamps.
func WithClock(now func() time.Time) Option {
	return func(h *History) { h.now = now }
}

// New returns an empty history.
func New(opts ...Option) *History {
	h := &History{cur: -1, log: logging.Discard(), now: time.Now}
	for _, opt := range opts {
		opt(h)
	}

	return h
}

// Push records f as the new current step. Steps after the cursor (the redo
// tail) are discarded, and the oldest steps are evicted beyond capacity.
//
// Complexity: amortized O(1); O(n) when the redo tail or eviction copies.
func (h *History) Push(f *frame.Frame, action string) (Step, error) {
	if f == nil {
		return Step{}, ErrNilFrame
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	st := Step{ID: uuid.New(), Action: action, At: h.now(), Frame: f}
	dropped := len(h.steps) - (h.cur + 1)
	h.steps = append(h.steps[:h.cur+1], st)
	evicted := 0
	if h.capacity > 0 && len(h.steps) > h.capacity {
		evicted = len(h.steps) - h.capacity
		h.steps = append([]Step(nil), h.steps[evicted:]...)
	}
	h.cur = len(h.steps) - 1

	r, c := f.Shape()
	h.log.Debug("history push",
		slog.String("step", st.ID.String()),
		slog.String("action", action),
		slog.Int("rows", r),
		slog.Int("cols", c),
		slog.Int("dropped_redo", dropped),
		slog.Int("evicted", evicted),
	)

	return st, nil
}

// Undo moves the cursor one step back and returns the new current step.
func (h *History) Undo() (Step, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.cur <= 0 {
		return Step{}, ErrNothingToUndo
	}
	h.cur--
	h.log.Debug("history undo", slog.String("step", h.steps[h.cur].ID.String()))

	return h.steps[h.cur], nil
}

// Redo moves the cursor one step forward and returns the new current step.
func (h *History) Redo() (Step, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.cur+1 >= len(h.steps) {
		return Step{}, ErrNothingToRedo
	}
	h.cur++
	h.log.Debug("history redo", slog.String("step", h.steps[h.cur].ID.String()))

	return h.steps[h.cur], nil
}

// Current returns the current step; ok is false when nothing was pushed.
func (h *History) Current() (Step, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.cur < 0 {
		return Step{}, false
	}

	return h.steps[h.cur], true
}

// Steps returns a copy of all kept steps, oldest first, including the redo tail.
func (h *History) Steps() []Step {
	h.mu.Lock()
	defer h.mu.Unlock()

	return append([]Step(nil), h.steps...)
}

// Len returns the number of kept steps.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.steps)
}
