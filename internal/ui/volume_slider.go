package ui

import (
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// VolumeSlider is a compact horizontal 0..100 slider with a half-size thumb,
// used for the click and chime volume.
type VolumeSlider struct {
	widget.BaseWidget
	Value     float64
	Step      float64
	OnChanged func(float64)

	disabled bool
}

// NewVolumeSlider creates a slider at the given percentage.
func NewVolumeSlider(value float64) *VolumeSlider {
	s := &VolumeSlider{Step: 1}
	s.Value = normalizeSliderValue(0, 100, s.Step, value)
	s.ExtendBaseWidget(s)
	return s
}

// CreateRenderer implements fyne.Widget.
func (s *VolumeSlider) CreateRenderer() fyne.WidgetRenderer {
	r := &volumeSliderRenderer{
		s:     s,
		track: canvas.NewRectangle(theme.ShadowColor()),
		fill:  canvas.NewRectangle(theme.PrimaryColor()),
		thumb: canvas.NewCircle(theme.ForegroundColor()),
	}
	r.objs = []fyne.CanvasObject{r.track, r.fill, r.thumb}
	return r
}

// SetValue moves the thumb and fires OnChanged when the value changes.
func (s *VolumeSlider) SetValue(v float64) {
	nv := normalizeSliderValue(0, 100, s.Step, v)
	if nv == s.Value {
		return
	}
	s.Value = nv
	s.Refresh()
	if s.OnChanged != nil {
		s.OnChanged(nv)
	}
}

// Disable greys the slider out and ignores input.
func (s *VolumeSlider) Disable() {
	s.disabled = true
	s.Refresh()
}

// Enable accepts input again.
func (s *VolumeSlider) Enable() {
	s.disabled = false
	s.Refresh()
}

// Disabled reports whether input is ignored.
func (s *VolumeSlider) Disabled() bool { return s.disabled }

// normalizeSliderValue clamps value to [min, max] and snaps it to step.
func normalizeSliderValue(min, max, step, value float64) float64 {
	if max <= min {
		return min
	}
	v := clampFloat64(value, min, max)
	if step > 0 {
		n := math.Round((v - min) / step)
		v = clampFloat64(min+n*step, min, max)
	}
	return v
}

// Dragged implements fyne.Draggable.
func (s *VolumeSlider) Dragged(e *fyne.DragEvent) {
	s.updateFromPos(e.Position.X)
}

// DragEnd implements fyne.Draggable.
func (s *VolumeSlider) DragEnd() {}

// Tapped jumps to the tapped position.
func (s *VolumeSlider) Tapped(e *fyne.PointEvent) {
	s.updateFromPos(e.Position.X)
}

// Scrolled nudges the value with the mouse wheel.
func (s *VolumeSlider) Scrolled(ev *fyne.ScrollEvent) {
	if ev == nil || s.disabled {
		return
	}
	step := s.Step
	if step <= 0 {
		step = 1
	}
	switch {
	case ev.Scrolled.DY > 0:
		s.SetValue(s.Value + step)
	case ev.Scrolled.DY < 0:
		s.SetValue(s.Value - step)
	}
}

func (s *VolumeSlider) updateFromPos(px float32) {
	w := s.Size().Width
	if s.disabled || w <= 0 {
		return
	}
	s.SetValue(sliderValueAt(px, w))
}

// sliderValueAt converts an x offset within width w to a 0..100 value.
func sliderValueAt(px, w float32) float64 {
	if w <= 0 {
		return 0
	}
	return clampFloat64(float64(px/w), 0, 1) * 100
}

// MinSize provides a reasonable touch target height.
func (s *VolumeSlider) MinSize() fyne.Size {
	return fyne.NewSize(90, theme.IconInlineSize())
}

type volumeSliderRenderer struct {
	s     *VolumeSlider
	track *canvas.Rectangle
	fill  *canvas.Rectangle
	thumb *canvas.Circle
	objs  []fyne.CanvasObject
}

func (r *volumeSliderRenderer) Layout(sz fyne.Size) {
	trackH := float32(4)
	y := (sz.Height - trackH) / 2
	r.track.Move(fyne.NewPos(0, y))
	r.track.Resize(fyne.NewSize(sz.Width, trackH))

	frac := float32(clampFloat64(r.s.Value/100, 0, 1))
	fillW := sz.Width * frac
	r.fill.Move(fyne.NewPos(0, y))
	r.fill.Resize(fyne.NewSize(fillW, trackH))

	thumbR := theme.IconInlineSize() / 4
	cx := fillW
	if cx < thumbR {
		cx = thumbR
	}
	if cx > sz.Width-thumbR {
		cx = sz.Width - thumbR
	}
	r.thumb.Resize(fyne.NewSize(thumbR*2, thumbR*2))
	r.thumb.Move(fyne.NewPos(cx-thumbR, sz.Height/2-thumbR))
}

func (r *volumeSliderRenderer) MinSize() fyne.Size { return r.s.MinSize() }

func (r *volumeSliderRenderer) Refresh() {
	if r.s.disabled {
		r.fill.FillColor = theme.DisabledColor()
		r.thumb.FillColor = theme.DisabledColor()
	} else {
		r.fill.FillColor = theme.PrimaryColor()
		r.thumb.FillColor = theme.ForegroundColor()
	}
	r.Layout(r.s.Size())
	canvas.Refresh(r.track)
	canvas.Refresh(r.fill)
	canvas.Refresh(r.thumb)
}

func (r *volumeSliderRenderer) Destroy() {}

func (r *volumeSliderRenderer) Objects() []fyne.CanvasObject { return r.objs }
