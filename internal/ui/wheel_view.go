package ui

import (
	"image"
	"image/draw"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/widget"
)

// WheelView shows the rotating wheel with its fixed pointer. The face is
// rasterized once per label set and only resampled when the rotation
// changes.
type WheelView struct {
	widget.BaseWidget

	mu       sync.Mutex
	raster   *WheelRaster
	rotation float64
	minSide  float32

	img *canvas.Raster
}

// NewWheelView creates a wheel drawing labels with the theme font.
func NewWheelView(labels []string, minSide float32) *WheelView {
	if minSide <= 0 {
		minSide = 320
	}
	v := &WheelView{
		raster:  NewWheelRaster(labelFace(float64(14))),
		minSide: minSide,
	}
	v.raster.SetLabels(labels)
	v.img = canvas.NewRaster(v.draw)
	v.ExtendBaseWidget(v)
	return v
}

// CreateRenderer implements fyne.Widget.
func (v *WheelView) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(v.img)
}

// MinSize keeps the wheel legible.
func (v *WheelView) MinSize() fyne.Size {
	return fyne.NewSize(v.minSide, v.minSide)
}

// SetLabels redraws the wheel face for a new option list.
func (v *WheelView) SetLabels(labels []string) {
	v.mu.Lock()
	v.raster.SetLabels(labels)
	v.mu.Unlock()
	v.img.Refresh()
}

// SetRotation turns the wheel to deg degrees.
func (v *WheelView) SetRotation(deg float64) {
	v.mu.Lock()
	changed := deg != v.rotation
	v.rotation = deg
	v.mu.Unlock()
	if changed {
		v.img.Refresh()
	}
}

// Rotation returns the angle currently drawn.
func (v *WheelView) Rotation() float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.rotation
}

// BindRotation follows a float binding, redrawing on the UI thread.
func (v *WheelView) BindRotation(b binding.Float) {
	b.AddListener(binding.NewDataListener(func() {
		deg, err := b.Get()
		if err != nil {
			return
		}
		CallOnMain(func() { v.SetRotation(deg) })
	}))
}

// BindLabels follows a string list binding of display labels.
func (v *WheelView) BindLabels(b binding.StringList) {
	b.AddListener(binding.NewDataListener(func() {
		labels, err := b.Get()
		if err != nil {
			return
		}
		CallOnMain(func() { v.SetLabels(labels) })
	}))
}

// draw is the raster generator: a square wheel centered in w x h pixels.
func (v *WheelView) draw(w, h int) image.Image {
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	side := min(w, h)
	if side <= 0 {
		return out
	}
	v.mu.Lock()
	wheelImg := v.raster.Render(side, v.rotation)
	v.mu.Unlock()

	off := image.Pt((w-side)/2, (h-side)/2)
	draw.Draw(out, wheelImg.Bounds().Add(off), wheelImg, image.Point{}, draw.Over)
	return out
}
