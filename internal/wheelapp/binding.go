package wheelapp

import (
	"slices"
	"sync"

	"fyne.io/fyne/v2/data/binding"

	"github.com/edward-ap/miniwheel/internal/wheel"
)

// Spin button captions.
const (
	SpinText     = "Spin"
	SpinningText = "Spinning…"
)

// Binding mirrors a wheel.Session into Fyne data bindings. Widgets follow
// the bindings; user actions go straight to the Session, which calls back
// into Sync.
type Binding struct {
	session *wheel.Session

	Rotation        binding.Float
	Spinning        binding.Bool
	CanSpin         binding.Bool
	EditorCollapsed binding.Bool
	Message         binding.String
	SpinLabel       binding.String
	Labels          binding.StringList

	mu         sync.Mutex
	lastRot    float64
	labels     []string
	onBoundary func(crossed int)
	onSync     func()
}

// NewBinding creates the bindings, fills them from s and subscribes to the
// session's change and rotation listeners.
func NewBinding(s *wheel.Session) *Binding {
	b := &Binding{
		session:         s,
		Rotation:        binding.NewFloat(),
		Spinning:        binding.NewBool(),
		CanSpin:         binding.NewBool(),
		EditorCollapsed: binding.NewBool(),
		Message:         binding.NewString(),
		SpinLabel:       binding.NewString(),
		Labels:          binding.NewStringList(),
		lastRot:         s.Rotation(),
	}
	_ = b.Rotation.Set(b.lastRot)
	b.Sync()
	s.SetOnChange(b.Sync)
	s.SetOnRotation(b.setRotation)
	return b
}

// Session returns the session being mirrored.
func (b *Binding) Session() *wheel.Session { return b.session }

// SetOnBoundary registers a listener called with the number of segment
// boundaries that passed the pointer since the previous rotation update.
func (b *Binding) SetOnBoundary(fn func(crossed int)) {
	b.mu.Lock()
	b.onBoundary = fn
	b.mu.Unlock()
}

// SetOnSync registers a listener called after every Sync, for widgets that
// are rebuilt rather than bound.
func (b *Binding) SetOnSync(fn func()) {
	b.mu.Lock()
	b.onSync = fn
	b.mu.Unlock()
}

// Sync copies the session's state into the bindings. The label list is only
// replaced when it actually changed so the wheel face is not redrawn on
// every spin.
func (b *Binding) Sync() {
	s := b.session
	spinning := s.IsSpinning()
	_ = b.Spinning.Set(spinning)
	_ = b.CanSpin.Set(s.CanSpin() && !spinning)
	_ = b.EditorCollapsed.Set(s.EditorCollapsed())
	_ = b.Message.Set(s.ResultMessage())
	if spinning {
		_ = b.SpinLabel.Set(SpinningText)
	} else {
		_ = b.SpinLabel.Set(SpinText)
	}

	labels := s.DisplayLabels()
	b.mu.Lock()
	changed := !slices.Equal(labels, b.labels)
	if changed {
		b.labels = labels
	}
	fn := b.onSync
	b.mu.Unlock()
	if changed {
		_ = b.Labels.Set(labels)
	}
	if fn != nil {
		fn()
	}
}

func (b *Binding) setRotation(rot float64) {
	b.mu.Lock()
	prev := b.lastRot
	b.lastRot = rot
	n := len(b.labels)
	fn := b.onBoundary
	b.mu.Unlock()

	_ = b.Rotation.Set(rot)
	if fn == nil || n == 0 {
		return
	}
	if c := wheel.CrossedBoundaries(prev, rot, wheel.PointerAngle, wheel.SegmentWidth(n)); c > 0 {
		fn(c)
	}
}
