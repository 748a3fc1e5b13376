package ui

import (
	"image/color"
	"math"
	"sync/atomic"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
)

var idleDotColor = color.NRGBA{0x80, 0x80, 0x80, 0xFF}

// SpinIndicator is a small dot next to the spin button that cycles through
// warm hues while the wheel is turning and rests gray otherwise.
type SpinIndicator struct {
	wrap   *fyne.Container
	circle *canvas.Circle
	on     atomic.Bool
}

// NewSpinIndicator constructs an indicator with the given diameter.
func NewSpinIndicator(diameter float32) *SpinIndicator {
	c := canvas.NewCircle(idleDotColor)
	c.StrokeColor = color.NRGBA{0, 0, 0, 0}
	inner := container.New(layout.NewGridWrapLayout(fyne.NewSize(diameter, diameter)), c)
	return &SpinIndicator{wrap: container.NewCenter(inner), circle: c}
}

// CanvasObject returns the fyne object suitable for embedding in layouts.
func (s *SpinIndicator) CanvasObject() fyne.CanvasObject { return s.wrap }

// Active reports whether the indicator is animating.
func (s *SpinIndicator) Active() bool { return s.on.Load() }

// SetActive starts or stops the animation.
func (s *SpinIndicator) SetActive(on bool) {
	prev := s.on.Swap(on)
	switch {
	case on && !prev:
		go s.animate()
	case !on && prev:
		CallOnMain(func() {
			s.circle.FillColor = idleDotColor
			s.circle.Refresh()
		})
	}
}

func (s *SpinIndicator) animate() {
	t := time.NewTicker(90 * time.Millisecond)
	defer t.Stop()
	hue := 0.0
	for range t.C {
		if !s.on.Load() {
			return
		}
		hue = nextSpinHue(hue)
		col := hsvToNRGBA(hue, 0.7, 0.95)
		CallOnMain(func() {
			if !s.on.Load() {
				return
			}
			s.circle.FillColor = col
			s.circle.Refresh()
		})
	}
}

// nextSpinHue advances within the red-to-yellow band and wraps.
func nextSpinHue(h float64) float64 {
	h += 6
	if h >= 60 {
		h = 0
	}
	return h
}

// hsvToNRGBA converts HSV (0..360, 0..1, 0..1) to color.NRGBA.
func hsvToNRGBA(h, s, v float64) color.NRGBA {
	h = math.Mod(math.Mod(h, 360)+360, 360)
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60.0, 2)-1))
	m := v - c
	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return color.NRGBA{
		R: uint8((r+m)*255 + 0.5),
		G: uint8((g+m)*255 + 0.5),
		B: uint8((b+m)*255 + 0.5),
		A: 0xFF,
	}
}
