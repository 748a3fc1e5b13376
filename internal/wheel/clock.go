package wheel

import (
	"sync"
	"time"
)

// Clock supplies timestamps for spin timing.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real monotonic clock.
type SystemClock struct{}

// Now returns time.Now.
func (SystemClock) Now() time.Time { return time.Now() }

// FrameHandle identifies a scheduled frame callback. The zero value is
// never returned by a scheduler.
type FrameHandle uint64

// FrameScheduler runs a callback before the next paint. Implementations
// must run callbacks one at a time and must not run a callback after it
// has been cancelled.
type FrameScheduler interface {
	Schedule(fn func()) FrameHandle
	Cancel(h FrameHandle)
}

// ManualClock is a controllable Clock for tests and offline rendering.
type ManualClock struct {
	mu  sync.RWMutex
	now time.Time
}

// NewManualClock creates a clock frozen at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the current manual time.
func (c *ManualClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// ManualFrames is a FrameScheduler whose callbacks run only when Step is
// called. Useful to drive a Spinner deterministically.
type ManualFrames struct {
	mu      sync.Mutex
	next    FrameHandle
	pending map[FrameHandle]func()
	order   []FrameHandle
}

// NewManualFrames returns an empty manual scheduler.
func NewManualFrames() *ManualFrames {
	return &ManualFrames{pending: make(map[FrameHandle]func())}
}

// Schedule queues fn for the next Step.
func (m *ManualFrames) Schedule(fn func()) FrameHandle {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++
	h := m.next
	m.pending[h] = fn
	m.order = append(m.order, h)
	return h
}

// Cancel drops a queued callback. Unknown handles are ignored.
func (m *ManualFrames) Cancel(h FrameHandle) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.pending, h)
}

// Pending reports how many callbacks are queued.
func (m *ManualFrames) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.pending)
}

// Step runs every callback queued before the call, in scheduling order.
// Callbacks scheduled while stepping wait for the next Step. It returns the
// number of callbacks run.
func (m *ManualFrames) Step() int {
	m.mu.Lock()
	order := m.order
	m.order = nil
	var fns []func()
	for _, h := range order {
		if fn, ok := m.pending[h]; ok {
			fns = append(fns, fn)
			delete(m.pending, h)
		}
	}
	m.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
	return len(fns)
}
