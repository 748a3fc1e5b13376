package ui

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/vector"

	"github.com/edward-ap/miniwheel/internal/wheel"
)

// SegmentPalette cycles across segments by index.
var SegmentPalette = []color.NRGBA{
	{0xff, 0x7a, 0x7a, 0xff},
	{0xff, 0xb3, 0x47, 0xff},
	{0xff, 0xe0, 0x66, 0xff},
	{0x9b, 0xe1, 0x5d, 0xff},
	{0x6b, 0xe6, 0xff, 0xff},
	{0x7a, 0xa7, 0xff, 0xff},
	{0xc7, 0x7d, 0xff, 0xff},
	{0xff, 0x9b, 0xd1, 0xff},
}

var (
	rimColor     = color.NRGBA{0x22, 0x22, 0x22, 0xff}
	pointerColor = color.NRGBA{0xe5, 0x39, 0x35, 0xff}
	hubColor     = color.NRGBA{0xf5, 0xf5, 0xf5, 0xff}
	labelColor   = color.NRGBA{0x1a, 0x1a, 0x1a, 0xff}
)

const (
	rimWidth    = 3
	labelRadius = 0.62 // fraction of the wheel radius where labels sit
	hubRadius   = 0.08
	arcStepDeg  = 2.0
)

// SegmentColor returns the fill for segment i.
func SegmentColor(i int) color.NRGBA {
	return SegmentPalette[i%len(SegmentPalette)]
}

// screenPoint converts a wheel-frame angle (degrees, counter-clockwise from
// the right) at distance r from (cx, cy) into image coordinates.
func screenPoint(cx, cy, r, deg float64) (float64, float64) {
	rad := deg * math.Pi / 180
	return cx + r*math.Cos(rad), cy - r*math.Sin(rad)
}

// WheelRaster renders the wheel face once per label set and size, then
// produces rotated frames by resampling the cached face.
type WheelRaster struct {
	face   font.Face
	labels []string
	size   int
	base   *image.RGBA
}

// NewWheelRaster creates a renderer that draws labels with face.
func NewWheelRaster(face font.Face) *WheelRaster {
	return &WheelRaster{face: face}
}

// SetLabels replaces the segment labels and drops the cached face.
func (w *WheelRaster) SetLabels(labels []string) {
	w.labels = append(w.labels[:0:0], labels...)
	w.base = nil
}

// Labels returns the labels currently drawn.
func (w *WheelRaster) Labels() []string { return w.labels }

// Face returns the unrotated wheel at the given pixel size.
func (w *WheelRaster) Face(size int) *image.RGBA {
	if size < 1 {
		size = 1
	}
	if w.base == nil || w.size != size {
		w.base = renderWheelFace(size, w.labels, w.face)
		w.size = size
	}
	return w.base
}

// Render returns the wheel rotated by rotation degrees at the given size,
// with the fixed pointer drawn on top.
func (w *WheelRaster) Render(size int, rotation float64) *image.RGBA {
	img := rotateWheel(w.Face(size), rotation)
	drawPointer(img)
	return img
}

// renderWheelFace draws rim, slices, labels and hub with no rotation.
func renderWheelFace(size int, labels []string, face font.Face) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	c := float64(size) / 2
	r := c - 1
	if r <= rimWidth {
		return img
	}

	fillDisc(img, c, c, r, rimColor)
	inner := r - rimWidth

	n := len(labels)
	width := wheel.SegmentWidth(n)
	for i := 0; i < n; i++ {
		fillSlice(img, c, c, inner, float64(i)*width, float64(i+1)*width, SegmentColor(i))
	}

	if face != nil {
		maxW := int(inner * (1 - labelRadius) * 1.6)
		for i, l := range labels {
			text := rasterizeText(face, fitLabel(face, l, maxW), labelColor)
			center := wheel.SegmentCenter(i, n)
			lx, ly := screenPoint(c, c, inner*labelRadius, center)
			// text runs outward along the bisector
			drawRotated(img, text, lx, ly, -center*math.Pi/180)
		}
	}

	fillDisc(img, c, c, inner*hubRadius+rimWidth, rimColor)
	fillDisc(img, c, c, inner*hubRadius, hubColor)
	return img
}

func fillDisc(dst *image.RGBA, cx, cy, r float64, col color.Color) {
	fillSlice(dst, cx, cy, r, 0, 360, col)
}

// fillSlice rasterizes the sector [from, to] degrees with anti-aliasing.
func fillSlice(dst *image.RGBA, cx, cy, r, from, to float64, col color.Color) {
	if to <= from || r <= 0 {
		return
	}
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over

	full := to-from >= 360
	if !full {
		z.MoveTo(float32(cx), float32(cy))
	}
	steps := int(math.Ceil((to - from) / arcStepDeg))
	if steps < 1 {
		steps = 1
	}
	for s := 0; s <= steps; s++ {
		a := from + (to-from)*float64(s)/float64(steps)
		x, y := screenPoint(cx, cy, r, a)
		if s == 0 && full {
			z.MoveTo(float32(x), float32(y))
			continue
		}
		z.LineTo(float32(x), float32(y))
	}
	z.ClosePath()
	z.Draw(dst, b, image.NewUniform(col), image.Point{})
}

// rotateWheel resamples face turned by rotation degrees (counter-clockwise
// on screen, matching the wheel frame) around its center.
func rotateWheel(face *image.RGBA, rotation float64) *image.RGBA {
	b := face.Bounds()
	out := image.NewRGBA(b)
	size := b.Dx()
	c := float64(size) / 2
	r2 := c * c

	rad := wheel.NormalizeAngle(rotation) * math.Pi / 180
	cos, sin := math.Cos(rad), math.Sin(rad)

	for y := 0; y < b.Dy(); y++ {
		sy := c - (float64(y) + 0.5) // up is positive
		for x := 0; x < size; x++ {
			sx := float64(x) + 0.5 - c
			if sx*sx+sy*sy > r2 {
				continue
			}
			// undo the rotation to find the face pixel now shown here
			bx := sx*cos + sy*sin
			by := -sx*sin + sy*cos
			px := int(math.Floor(c + bx))
			py := int(math.Floor(c - by))
			if px < 0 || py < 0 || px >= size || py >= b.Dy() {
				continue
			}
			out.SetRGBA(x, y, face.RGBAAt(px, py))
		}
	}
	return out
}

// drawPointer paints the fixed marker at the pointer angle, tip inward.
func drawPointer(dst *image.RGBA) {
	b := dst.Bounds()
	c := float64(b.Dx()) / 2
	r := c - 1
	h := math.Max(8, r*0.12)
	half := h * 0.55

	tipX, tipY := screenPoint(c, c, r-h, wheel.PointerAngle)
	baseX, baseY := screenPoint(c, c, r+1, wheel.PointerAngle)
	rad := wheel.PointerAngle * math.Pi / 180
	// perpendicular to the pointer direction in screen space
	px, py := math.Sin(rad), math.Cos(rad)

	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	z.MoveTo(float32(tipX), float32(tipY))
	z.LineTo(float32(baseX+px*half), float32(baseY+py*half))
	z.LineTo(float32(baseX-px*half), float32(baseY-py*half))
	z.ClosePath()
	z.Draw(dst, b, image.NewUniform(pointerColor), image.Point{})
}
