package wheel

import (
	"log/slog"
	"sync"
	"time"
)

const (
	// SpinDuration is the wall-clock length of every spin.
	SpinDuration = 5200 * time.Millisecond
	// MinSpins and MaxSpins bound the whole extra turns added per spin.
	MinSpins = 5
	MaxSpins = 8
)

// Config tunes a Spinner. The zero value is not useful; start from
// DefaultConfig.
type Config struct {
	Duration time.Duration
	MinSpins int
	MaxSpins int
	Pointer  float64
}

// DefaultConfig returns the standard spin timing and pointer placement.
func DefaultConfig() Config {
	return Config{
		Duration: SpinDuration,
		MinSpins: MinSpins,
		MaxSpins: MaxSpins,
		Pointer:  PointerAngle,
	}
}

// State is the Spinner's phase.
type State int

const (
	// Idle means no animation is running and a result may be shown.
	Idle State = iota
	// Spinning means frames are being produced for an active spin.
	Spinning
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Spinning:
		return "spinning"
	}
	return "unknown"
}

// SpinState is a point-in-time copy of the Spinner's internals.
type SpinState struct {
	State     State
	Rotation  float64
	Start     float64
	Target    float64
	StartedAt time.Time
	Segments  int
}

// Spinner is the spin state machine. It picks a random target rotation,
// advances the rotation once per scheduled frame along an ease-out curve
// and, when the spin ends, resolves the segment under the pointer.
//
// Rotation is cumulative across spins. At most one frame callback is ever
// pending. Methods are safe to call from any goroutine; listeners run
// outside the internal lock.
type Spinner struct {
	cfg    Config
	clock  Clock
	frames FrameScheduler
	rng    Source
	log    *slog.Logger

	mu        sync.Mutex
	state     State
	rotation  float64
	start     float64
	target    float64
	startedAt time.Time
	segments  int
	pending   FrameHandle
	gen       uint64

	onRotation func(float64)
	onFinish   func(index int, rotation float64)
}

// NewSpinner wires a Spinner to its clock, frame scheduler and random
// source. A nil clock uses the system clock and a nil source is seeded from
// the time; frames is required.
func NewSpinner(cfg Config, clock Clock, frames FrameScheduler, rng Source) *Spinner {
	if frames == nil {
		panic("wheel: NewSpinner requires a FrameScheduler")
	}
	if clock == nil {
		clock = SystemClock{}
	}
	if rng == nil {
		rng = NewTimeSource()
	}
	if cfg.Duration <= 0 {
		cfg.Duration = SpinDuration
	}
	if cfg.MaxSpins < cfg.MinSpins {
		cfg.MaxSpins = cfg.MinSpins
	}
	return &Spinner{
		cfg:    cfg,
		clock:  clock,
		frames: frames,
		rng:    rng,
		log:    slog.Default(),
	}
}

// SetLogger replaces the logger used for spin lifecycle traces.
func (s *Spinner) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
	}
	s.mu.Lock()
	s.log = l
	s.mu.Unlock()
}

// SetOnRotation registers the per-frame rotation listener.
func (s *Spinner) SetOnRotation(fn func(float64)) {
	s.mu.Lock()
	s.onRotation = fn
	s.mu.Unlock()
}

// SetOnFinish registers the listener called once when a spin settles.
func (s *Spinner) SetOnFinish(fn func(index int, rotation float64)) {
	s.mu.Lock()
	s.onFinish = fn
	s.mu.Unlock()
}

// Start begins a spin over n segments. It is refused, returning false,
// while another spin is running or when fewer than MinOptions segments
// exist.
func (s *Spinner) Start(n int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == Spinning || n < MinOptions {
		return false
	}
	s.beginLocked(n)
	return true
}

// Restart abandons any running spin and starts a new one from the current
// rotation. The abandoned spin never reports a result.
func (s *Spinner) Restart(n int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n < MinOptions {
		return false
	}
	s.beginLocked(n)
	return true
}

func (s *Spinner) beginLocked(n int) {
	extra := SpinCount(s.rng, s.cfg.MinSpins, s.cfg.MaxSpins)
	offset := SpinOffset(s.rng)

	s.start = s.rotation
	s.target = s.start + float64(extra)*FullTurn + offset
	s.startedAt = s.clock.Now()
	s.segments = n
	s.state = Spinning

	s.cancelPendingLocked()
	s.gen++
	s.scheduleLocked(s.gen)

	s.log.Debug("spin started",
		"segments", n,
		"extraSpins", extra,
		"offset", offset,
		"start", s.start,
		"target", s.target)
}

// cancelPendingLocked drops the outstanding frame, if any.
func (s *Spinner) cancelPendingLocked() {
	if s.pending != 0 {
		s.frames.Cancel(s.pending)
		s.pending = 0
	}
}

func (s *Spinner) scheduleLocked(gen uint64) {
	s.pending = s.frames.Schedule(func() { s.tick(gen) })
}

// tick advances the spin identified by gen by one frame.
func (s *Spinner) tick(gen uint64) {
	s.mu.Lock()
	if gen != s.gen || s.state != Spinning {
		// stale frame from a cancelled spin
		s.mu.Unlock()
		return
	}
	s.pending = 0

	elapsed := s.clock.Now().Sub(s.startedAt)
	progress := Progress(toMillis(elapsed), toMillis(s.cfg.Duration))
	eased := EaseOutCubic(progress)
	rot := s.start + (s.target-s.start)*eased
	if rot < s.rotation {
		rot = s.rotation
	}
	onRotation := s.onRotation

	if progress < 1 {
		s.rotation = rot
		s.scheduleLocked(gen)
		s.mu.Unlock()
		if onRotation != nil {
			onRotation(rot)
		}
		return
	}

	s.rotation = s.target
	rot = s.rotation
	idx := ResolveIndex(rot, s.cfg.Pointer, SegmentWidth(s.segments), s.segments)
	s.state = Idle
	onFinish := s.onFinish
	s.log.Debug("spin finished", "rotation", rot, "index", idx)
	s.mu.Unlock()

	if onRotation != nil {
		onRotation(rot)
	}
	if onFinish != nil {
		onFinish(idx, rot)
	}
}

// Close cancels any pending frame and returns the Spinner to Idle without
// reporting a result. It is safe to call more than once.
func (s *Spinner) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelPendingLocked()
	s.gen++
	s.state = Idle
}

// Rotation returns the cumulative rotation in degrees.
func (s *Spinner) Rotation() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rotation
}

// IsSpinning reports whether a spin is in progress.
func (s *Spinner) IsSpinning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == Spinning
}

// Snapshot copies the current spin state.
func (s *Spinner) Snapshot() SpinState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return SpinState{
		State:     s.state,
		Rotation:  s.rotation,
		Start:     s.start,
		Target:    s.target,
		StartedAt: s.startedAt,
		Segments:  s.segments,
	}
}
