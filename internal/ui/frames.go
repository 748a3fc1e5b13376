package ui

import (
	"sync"
	"time"

	"github.com/edward-ap/miniwheel/internal/wheel"
)

// DefaultFrameInterval paces animation at roughly 60 frames per second.
const DefaultFrameInterval = time.Second / 60

// FrameTicker is a wheel.FrameScheduler backed by one-shot timers whose
// callbacks hop onto the UI thread. A cancelled frame never runs, even if
// its timer already fired and is waiting for the UI thread.
type FrameTicker struct {
	interval time.Duration
	dispatch func(func())

	mu      sync.Mutex
	next    wheel.FrameHandle
	pending map[wheel.FrameHandle]*time.Timer
	closed  bool
}

// NewFrameTicker creates a frame driver. interval <= 0 uses
// DefaultFrameInterval.
func NewFrameTicker(interval time.Duration) *FrameTicker {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	return &FrameTicker{
		interval: interval,
		dispatch: CallOnMain,
		pending:  make(map[wheel.FrameHandle]*time.Timer),
	}
}

// Schedule runs fn on the UI thread after one frame interval.
func (f *FrameTicker) Schedule(fn func()) wheel.FrameHandle {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.next++
	h := f.next
	if f.closed {
		return h
	}
	f.pending[h] = time.AfterFunc(f.interval, func() {
		f.dispatch(func() { f.fire(h, fn) })
	})
	return h
}

func (f *FrameTicker) fire(h wheel.FrameHandle, fn func()) {
	f.mu.Lock()
	_, ok := f.pending[h]
	delete(f.pending, h)
	f.mu.Unlock()
	if ok {
		fn()
	}
}

// Cancel stops a scheduled frame. Unknown or already-run handles are ignored.
func (f *FrameTicker) Cancel(h wheel.FrameHandle) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if t, ok := f.pending[h]; ok {
		t.Stop()
		delete(f.pending, h)
	}
}

// Pending reports how many frames are waiting to run.
func (f *FrameTicker) Pending() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.pending)
}

// Close cancels every outstanding frame and ignores future ones.
func (f *FrameTicker) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	for h, t := range f.pending {
		t.Stop()
		delete(f.pending, h)
	}
	f.closed = true
}
