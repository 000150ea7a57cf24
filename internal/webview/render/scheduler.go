package render

import (
	"context"
	"sync"
	"time"
)

const defaultFrameInterval = 16 * time.Millisecond

// FrameScheduler defers work by paint cycles. A callback requested while a
// frame is running executes on the following frame.
type FrameScheduler interface {
	RequestFrame(fn func())
}

// Timer defers work by a duration.
type Timer interface {
	AfterFunc(d time.Duration, fn func())
}

// ImmediateScheduler runs frame callbacks synchronously. It is the
// scheduler for targets without a paint loop.
type ImmediateScheduler struct{}

func (ImmediateScheduler) RequestFrame(fn func()) { fn() }

// ImmediateTimer runs timer callbacks synchronously, ignoring the delay.
type ImmediateTimer struct{}

func (ImmediateTimer) AfterFunc(_ time.Duration, fn func()) { fn() }

// SystemTimer schedules callbacks on the runtime timer.
type SystemTimer struct{}

func (SystemTimer) AfterFunc(d time.Duration, fn func()) { time.AfterFunc(d, fn) }

// FrameClock is a ticker-driven FrameScheduler. Each Tick runs the callbacks
// queued before it started.
type FrameClock struct {
	interval time.Duration

	mu      sync.Mutex
	pending []func()
}

// NewFrameClock returns a clock ticking every interval (16ms when non-positive).
func NewFrameClock(interval time.Duration) *FrameClock {
	if interval <= 0 {
		interval = defaultFrameInterval
	}

	return &FrameClock{interval: interval}
}

// RequestFrame queues fn for the next frame.
func (c *FrameClock) RequestFrame(fn func()) {
	c.mu.Lock()
	c.pending = append(c.pending, fn)
	c.mu.Unlock()
}

// Tick runs one frame and reports how many callbacks it ran.
func (c *FrameClock) Tick() int {
	c.mu.Lock()
	batch := c.pending
	c.pending = nil
	c.mu.Unlock()

	for _, fn := range batch {
		fn()
	}

	return len(batch)
}

// Pending reports the number of callbacks waiting for the next frame.
func (c *FrameClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.pending)
}

// Run ticks until ctx is done.
func (c *FrameClock) Run(ctx context.Context) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.Tick()
		}
	}
}
