package wheel

import (
	"sync"
)

// Messages shown in place of a result.
const (
	MsgNotEnoughOptions = "Enter at least two options."
	MsgNoResult         = "The result will appear here."
)

// Session is the single owning context for one wheel: the option list, the
// Spinner and the last result. It is what a presentation layer talks to.
//
// Option edits are refused while a spin is running; any accepted edit
// clears the displayed result.
type Session struct {
	spinner *Spinner

	mu              sync.Mutex
	opts            *OptionList
	spinLabels      []string
	result          string
	hasResult       bool
	editorCollapsed bool

	onChange   func()
	onRotation func(float64)
	onResult   func(string)
}

// NewSession builds a session seeded with labels and driven by sp. The
// session takes over sp's rotation and finish listeners.
func NewSession(labels []string, sp *Spinner) *Session {
	s := &Session{
		spinner: sp,
		opts:    NewOptionList(labels),
	}
	sp.SetOnRotation(s.handleRotation)
	sp.SetOnFinish(s.handleFinish)
	return s
}

// SetOnChange registers a listener for option, result, spinning and editor
// visibility changes. It is not called for per-frame rotation updates.
func (s *Session) SetOnChange(fn func()) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

// SetOnRotation registers the per-frame rotation listener.
func (s *Session) SetOnRotation(fn func(float64)) {
	s.mu.Lock()
	s.onRotation = fn
	s.mu.Unlock()
}

// SetOnResult registers a listener for each settled spin's winning label.
func (s *Session) SetOnResult(fn func(string)) {
	s.mu.Lock()
	s.onResult = fn
	s.mu.Unlock()
}

// TriggerSpin starts a spin. It does nothing and returns false while
// already spinning or with fewer than two options.
func (s *Session) TriggerSpin() bool {
	return s.spin(false)
}

// Respin abandons a running spin, if any, and starts over from the current
// rotation. Only the new spin reports a result.
func (s *Session) Respin() bool {
	return s.spin(true)
}

func (s *Session) spin(restart bool) bool {
	s.mu.Lock()
	n := s.opts.Len()
	if n < MinOptions || (!restart && s.spinner.IsSpinning()) {
		s.mu.Unlock()
		return false
	}
	labels := s.opts.DisplayLabels()
	s.mu.Unlock()

	var ok bool
	if restart {
		ok = s.spinner.Restart(n)
	} else {
		ok = s.spinner.Start(n)
	}
	if !ok {
		return false
	}

	s.mu.Lock()
	s.spinLabels = labels
	s.result = ""
	s.hasResult = false
	s.mu.Unlock()
	s.notify()
	return true
}

func (s *Session) handleRotation(rot float64) {
	s.mu.Lock()
	fn := s.onRotation
	s.mu.Unlock()
	if fn != nil {
		fn(rot)
	}
}

func (s *Session) handleFinish(idx int, _ float64) {
	s.mu.Lock()
	if idx < 0 || idx >= len(s.spinLabels) {
		s.mu.Unlock()
		s.notify()
		return
	}
	s.result = s.spinLabels[idx]
	s.hasResult = true
	label := s.result
	fn := s.onResult
	s.mu.Unlock()

	if fn != nil {
		fn(label)
	}
	s.notify()
}

// AddOption appends an empty option.
func (s *Session) AddOption() bool {
	return s.edit(func(l *OptionList) bool {
		l.Add()
		return true
	})
}

// RemoveOption deletes the option at index i unless that would leave fewer
// than two options.
func (s *Session) RemoveOption(i int) bool {
	return s.edit(func(l *OptionList) bool { return l.RemoveAt(i) })
}

// SetOptionLabel replaces the stored text at index i.
func (s *Session) SetOptionLabel(i int, text string) bool {
	return s.edit(func(l *OptionList) bool { return l.SetLabel(i, text) })
}

func (s *Session) edit(fn func(*OptionList) bool) bool {
	if s.spinner.IsSpinning() {
		return false
	}
	s.mu.Lock()
	if !fn(s.opts) {
		s.mu.Unlock()
		return false
	}
	s.result = ""
	s.hasResult = false
	s.mu.Unlock()
	s.notify()
	return true
}

// ToggleEditor flips the editor panel visibility and returns whether it is
// now collapsed.
func (s *Session) ToggleEditor() bool {
	s.mu.Lock()
	s.editorCollapsed = !s.editorCollapsed
	c := s.editorCollapsed
	s.mu.Unlock()
	s.notify()
	return c
}

// SetEditorCollapsed sets the editor panel visibility without notifying.
func (s *Session) SetEditorCollapsed(c bool) {
	s.mu.Lock()
	s.editorCollapsed = c
	s.mu.Unlock()
}

// EditorCollapsed reports whether the editor panel is hidden.
func (s *Session) EditorCollapsed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editorCollapsed
}

// Rotation returns the wheel's cumulative rotation in degrees.
func (s *Session) Rotation() float64 { return s.spinner.Rotation() }

// IsSpinning reports whether a spin is running.
func (s *Session) IsSpinning() bool { return s.spinner.IsSpinning() }

// CanSpin reports whether enough options exist to spin.
func (s *Session) CanSpin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opts.Len() >= MinOptions
}

// Result returns the last winning label, if one is displayed.
func (s *Session) Result() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result, s.hasResult
}

// ResultMessage renders the banner text for the current state.
func (s *Session) ResultMessage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch {
	case s.opts.Len() < MinOptions:
		return MsgNotEnoughOptions
	case s.hasResult:
		return "Result: " + s.result
	}
	return MsgNoResult
}

// Options returns a copy of the options in order.
func (s *Session) Options() []Option {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opts.Items()
}

// DisplayLabels returns the labels as drawn on the wheel.
func (s *Session) DisplayLabels() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opts.DisplayLabels()
}

// Segments returns the current wheel layout.
func (s *Session) Segments() []Segment {
	return Segments(s.DisplayLabels())
}

// Close stops any running animation.
func (s *Session) Close() {
	s.spinner.Close()
}

func (s *Session) notify() {
	s.mu.Lock()
	fn := s.onChange
	s.mu.Unlock()
	if fn != nil {
		fn()
	}
}
