package wheel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedSource returns canned values so spins are reproducible.
type fixedSource struct {
	ints   []int
	floats []float64
}

func (f *fixedSource) IntN(n int) int {
	if len(f.ints) == 0 {
		return 0
	}
	v := f.ints[0]
	f.ints = f.ints[1:]
	return v % n
}

func (f *fixedSource) Float64() float64 {
	if len(f.floats) == 0 {
		return 0
	}
	v := f.floats[0]
	f.floats = f.floats[1:]
	return v
}

const frame = 16 * time.Millisecond

type spinHarness struct {
	clock   *ManualClock
	frames  *ManualFrames
	spinner *Spinner

	rotations []float64
	finishes  []int
}

func newSpinHarness(src Source) *spinHarness {
	h := &spinHarness{
		clock:  NewManualClock(time.Unix(1700000000, 0)),
		frames: NewManualFrames(),
	}
	h.spinner = NewSpinner(DefaultConfig(), h.clock, h.frames, src)
	h.spinner.SetOnRotation(func(r float64) { h.rotations = append(h.rotations, r) })
	h.spinner.SetOnFinish(func(idx int, _ float64) { h.finishes = append(h.finishes, idx) })
	return h
}

// run advances frame by frame until nothing is pending.
func (h *spinHarness) run(t *testing.T) {
	t.Helper()
	for i := 0; h.frames.Pending() > 0; i++ {
		if i > 10000 {
			t.Fatal("spin never settled")
		}
		h.clock.Advance(frame)
		h.frames.Step()
	}
}

func TestSpinnerSettlesOnTarget(t *testing.T) {
	h := newSpinHarness(&fixedSource{ints: []int{0}, floats: []float64{0.25}})

	require.True(t, h.spinner.Start(2))
	assert.True(t, h.spinner.IsSpinning())
	st := h.spinner.Snapshot()
	assert.Equal(t, 0.0, st.Start)
	assert.Equal(t, 5*360.0+90, st.Target)

	h.run(t)

	assert.False(t, h.spinner.IsSpinning())
	assert.Equal(t, st.Target, h.spinner.Rotation())
	require.Len(t, h.finishes, 1)
	assert.Equal(t, 0, h.finishes[0], "rotation 1890 leaves the first segment under the pointer")
}

func TestSpinnerSecondSegment(t *testing.T) {
	h := newSpinHarness(&fixedSource{ints: []int{3}, floats: []float64{0.75}})
	require.True(t, h.spinner.Start(2))
	assert.Equal(t, 8*360.0+270, h.spinner.Snapshot().Target)
	h.run(t)
	require.Len(t, h.finishes, 1)
	assert.Equal(t, 1, h.finishes[0])
}

func TestSpinnerRotationIsMonotonic(t *testing.T) {
	h := newSpinHarness(NewSource(42))
	require.True(t, h.spinner.Start(8))
	target := h.spinner.Snapshot().Target
	h.run(t)

	require.NotEmpty(t, h.rotations)
	for i := 1; i < len(h.rotations); i++ {
		if h.rotations[i] < h.rotations[i-1] {
			t.Fatalf("rotation went backwards at frame %d: %v -> %v", i, h.rotations[i-1], h.rotations[i])
		}
	}
	assert.Equal(t, target, h.rotations[len(h.rotations)-1])
	assert.Len(t, h.finishes, 1)
}

func TestSpinnerTimingIsWallClock(t *testing.T) {
	h := newSpinHarness(NewSource(7))
	require.True(t, h.spinner.Start(4))

	// one very slow frame just before the end
	h.clock.Advance(SpinDuration - time.Millisecond)
	h.frames.Step()
	assert.True(t, h.spinner.IsSpinning())
	assert.Equal(t, 1, h.frames.Pending())

	h.clock.Advance(time.Millisecond)
	h.frames.Step()
	assert.False(t, h.spinner.IsSpinning())
	assert.Equal(t, 0, h.frames.Pending())
	assert.Len(t, h.finishes, 1)
}

func TestSpinnerEasedMidpoint(t *testing.T) {
	h := newSpinHarness(&fixedSource{ints: []int{0}, floats: []float64{0}})
	require.True(t, h.spinner.Start(2))
	h.clock.Advance(SpinDuration / 2)
	h.frames.Step()
	// ease-out cubic at t=0.5 covers 87.5% of the distance
	assert.InDelta(t, 0.875*1800, h.spinner.Rotation(), 1e-6)
}

func TestSpinnerRefusesWhileSpinning(t *testing.T) {
	h := newSpinHarness(NewSource(1))
	require.True(t, h.spinner.Start(3))
	target := h.spinner.Snapshot().Target

	assert.False(t, h.spinner.Start(3))
	assert.Equal(t, target, h.spinner.Snapshot().Target)
	assert.Equal(t, 1, h.frames.Pending())

	h.run(t)
	assert.Len(t, h.finishes, 1)
}

func TestSpinnerRefusesTooFewSegments(t *testing.T) {
	h := newSpinHarness(NewSource(1))
	assert.False(t, h.spinner.Start(1))
	assert.False(t, h.spinner.Start(0))
	assert.False(t, h.spinner.Restart(1))
	assert.False(t, h.spinner.IsSpinning())
	assert.Equal(t, 0, h.frames.Pending())
	assert.Empty(t, h.finishes)
}

func TestSpinnerRestartCancelsPendingFrame(t *testing.T) {
	h := newSpinHarness(&fixedSource{ints: []int{0, 1}, floats: []float64{0.1, 0.6}})
	require.True(t, h.spinner.Start(4))
	first := h.spinner.Snapshot().Target

	h.clock.Advance(frame)
	h.frames.Step()
	midway := h.spinner.Rotation()

	require.True(t, h.spinner.Restart(4))
	assert.Equal(t, 1, h.frames.Pending(), "only the new spin may have a pending frame")
	second := h.spinner.Snapshot()
	assert.Equal(t, midway, second.Start)
	assert.NotEqual(t, first, second.Target)

	h.run(t)
	require.Len(t, h.finishes, 1)
	assert.Equal(t, second.Target, h.spinner.Rotation())
	want := ResolveIndex(second.Target, PointerAngle, SegmentWidth(4), 4)
	assert.Equal(t, want, h.finishes[0])
}

func TestSpinnerRotationAccumulatesAcrossSpins(t *testing.T) {
	h := newSpinHarness(NewSource(99))
	require.True(t, h.spinner.Start(5))
	h.run(t)
	first := h.spinner.Rotation()

	require.True(t, h.spinner.Start(5))
	st := h.spinner.Snapshot()
	assert.Equal(t, first, st.Start)
	assert.GreaterOrEqual(t, st.Target-st.Start, float64(MinSpins*360))
	assert.Less(t, st.Target-st.Start, float64((MaxSpins+1)*360))
	h.run(t)
	assert.Len(t, h.finishes, 2)
}

func TestSpinnerCloseStopsAnimation(t *testing.T) {
	h := newSpinHarness(NewSource(3))
	require.True(t, h.spinner.Start(6))
	h.spinner.Close()
	assert.False(t, h.spinner.IsSpinning())
	assert.Equal(t, 0, h.frames.Pending())

	h.clock.Advance(SpinDuration)
	h.frames.Step()
	assert.Empty(t, h.finishes)
	h.spinner.Close()
}

func TestSpinnerDropsStaleFrame(t *testing.T) {
	// a scheduler that ignores Cancel still must not let an old spin write
	leaky := &leakyFrames{}
	clock := NewManualClock(time.Unix(0, 0))
	sp := NewSpinner(DefaultConfig(), clock, leaky, NewSource(5))
	var finishes int
	sp.SetOnFinish(func(int, float64) { finishes++ })

	require.True(t, sp.Start(3))
	require.True(t, sp.Restart(3))
	target := sp.Snapshot().Target

	clock.Advance(SpinDuration)
	for len(leaky.fns) > 0 {
		fns := leaky.fns
		leaky.fns = nil
		for _, fn := range fns {
			fn()
		}
	}
	assert.Equal(t, 1, finishes)
	assert.Equal(t, target, sp.Rotation())
}

type leakyFrames struct {
	n   FrameHandle
	fns []func()
}

func (l *leakyFrames) Schedule(fn func()) FrameHandle {
	l.n++
	l.fns = append(l.fns, fn)
	return l.n
}

func (l *leakyFrames) Cancel(FrameHandle) {}

func TestSpinCountBounds(t *testing.T) {
	src := NewSource(11)
	seen := map[int]bool{}
	for i := 0; i < 2000; i++ {
		n := SpinCount(src, MinSpins, MaxSpins)
		if n < MinSpins || n > MaxSpins {
			t.Fatalf("SpinCount = %d outside [%d, %d]", n, MinSpins, MaxSpins)
		}
		seen[n] = true
		off := SpinOffset(src)
		if off < 0 || off >= 360 {
			t.Fatalf("SpinOffset = %v outside [0, 360)", off)
		}
	}
	assert.Len(t, seen, MaxSpins-MinSpins+1, "every spin count should occur")
}

func TestNewSourceIsDeterministic(t *testing.T) {
	a, b := NewSource(2024), NewSource(2024)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.IntN(100), b.IntN(100))
		assert.Equal(t, a.Float64(), b.Float64())
	}
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "spinning", Spinning.String())
}
