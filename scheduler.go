package stardust

import (
	"context"
	"sync"
	"time"
)

// Scheduler arranges repeated invocation of a per-frame callback until the
// returned Handle is stopped. The Ebitengine game loop (Game), a wall-clock
// ticker (TickerClock) and a manually stepped clock (ManualClock) implement it.
type Scheduler interface {
	Schedule(fn func()) Handle
}

// Handle cancels a scheduled frame callback. Stop is idempotent and may be
// called from inside the callback.
type Handle interface {
	Stop()
}

// FixedStepper is implemented by schedulers whose frames each stand for a
// fixed span of simulated time, independent of the wall clock. The Animator
// uses it as the frame duration when Config.FrameScaled is set.
type FixedStepper interface {
	FrameDuration() time.Duration
}

// --- ManualClock ---

// ManualClock invokes its callbacks only when Step is called. Tests use it to
// drive frames without a display.
type ManualClock struct {
	// FrameStep is the simulated duration of one Step frame. Zero means 1/60 s.
	FrameStep time.Duration

	entries []*manualEntry
}

// FrameDuration implements FixedStepper.
func (c *ManualClock) FrameDuration() time.Duration {
	if c.FrameStep > 0 {
		return c.FrameStep
	}
	return time.Second / frameRate
}

type manualEntry struct {
	fn      func()
	stopped bool
}

func (e *manualEntry) Stop() { e.stopped = true }

// Schedule registers fn to run on every Step.
func (c *ManualClock) Schedule(fn func()) Handle {
	e := &manualEntry{fn: fn}
	c.entries = append(c.entries, e)
	return e
}

// Step runs n frames. Stopped callbacks are dropped.
func (c *ManualClock) Step(n int) {
	for i := 0; i < n; i++ {
		// Callbacks scheduled during this frame first run on the next one.
		frame := append([]*manualEntry(nil), c.entries...)
		for _, e := range frame {
			if !e.stopped {
				e.fn()
			}
		}
		live := c.entries[:0]
		for _, e := range c.entries {
			if !e.stopped {
				live = append(live, e)
			}
		}
		for j := len(live); j < len(c.entries); j++ {
			c.entries[j] = nil
		}
		c.entries = live
	}
}

// Pending returns the number of callbacks still scheduled.
func (c *ManualClock) Pending() int {
	n := 0
	for _, e := range c.entries {
		if !e.stopped {
			n++
		}
	}
	return n
}

// --- TickerClock ---

// TickerClock runs callbacks on a dedicated goroutine at a fixed interval.
// Callbacks run one at a time; the Animator's own lock serializes them with
// input handlers running on other goroutines.
type TickerClock struct {
	// Interval between frames. Zero means 1/60 s.
	Interval time.Duration
	// Context, when non-nil, stops every scheduled callback once done.
	Context context.Context
}

type tickerHandle struct {
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// Stop cancels the ticker. It does not wait for an in-flight frame when
// called from inside the callback.
func (h *tickerHandle) Stop() {
	h.once.Do(h.cancel)
}

// Wait blocks until the ticker goroutine has exited.
func (h *tickerHandle) Wait() {
	<-h.done
}

// Schedule starts a goroutine that calls fn every Interval.
func (c TickerClock) Schedule(fn func()) Handle {
	parent := c.Context
	if parent == nil {
		parent = context.Background()
	}
	interval := c.Interval
	if interval <= 0 {
		interval = time.Second / 60
	}
	ctx, cancel := context.WithCancel(parent)
	h := &tickerHandle{cancel: cancel, done: make(chan struct{})}
	go func() {
		defer close(h.done)
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				fn()
			}
		}
	}()
	return h
}
