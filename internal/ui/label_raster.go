package ui

import (
	"image"
	"image/color"
	"math"

	"fyne.io/fyne/v2/theme"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// labelFace loads the current theme font at roughly pt points scaled to the
// UI scale, falling back to a bitmap face when the font is unavailable.
func labelFace(pt float64) font.Face {
	if pt <= 0 {
		pt = 14
	}
	scale := currentScale()
	if scale <= 0 {
		scale = 1
	}
	pt *= scale * 0.75
	if pt < 6 {
		pt = 6
	}
	res := theme.TextFont()
	if res != nil {
		if data := res.Content(); len(data) > 0 {
			if ttf, err := opentype.Parse(data); err == nil {
				if face, err := opentype.NewFace(ttf, &opentype.FaceOptions{Size: pt, DPI: 96, Hinting: font.HintingFull}); err == nil {
					return face
				}
			}
		}
	}
	return basicfont.Face7x13
}

// textWidth measures s in whole pixels.
func textWidth(face font.Face, s string) int {
	return (&font.Drawer{Face: face}).MeasureString(s).Ceil()
}

// fitLabel shortens s with an ellipsis until it is at most maxW pixels wide.
func fitLabel(face font.Face, s string, maxW int) string {
	if maxW <= 0 || textWidth(face, s) <= maxW {
		return s
	}
	runes := []rune(s)
	for n := len(runes) - 1; n > 0; n-- {
		cand := string(runes[:n]) + "…"
		if textWidth(face, cand) <= maxW {
			return cand
		}
	}
	return "…"
}

// rasterizeText draws s onto a tight transparent image with a little padding
// so glyphs are not clipped.
func rasterizeText(face font.Face, s string, col color.Color) *image.RGBA {
	const pad = 2
	m := face.Metrics()
	w := textWidth(face, s) + 2*pad
	h := (m.Ascent + m.Descent).Ceil() + 2*pad
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(pad, m.Ascent.Ceil()+pad),
	}
	d.DrawString(s)
	return img
}

// drawRotated composites src onto dst centered at (cx, cy) with its x axis
// turned to point along angle (radians, screen coordinates, y down).
func drawRotated(dst *image.RGBA, src *image.RGBA, cx, cy, angle float64) {
	sw, sh := src.Bounds().Dx(), src.Bounds().Dy()
	dirX, dirY := math.Cos(angle), math.Sin(angle)
	half := math.Hypot(float64(sw), float64(sh))/2 + 1

	b := dst.Bounds()
	x0 := max(b.Min.X, int(math.Floor(cx-half)))
	x1 := min(b.Max.X, int(math.Ceil(cx+half)))
	y0 := max(b.Min.Y, int(math.Floor(cy-half)))
	y1 := min(b.Max.Y, int(math.Ceil(cy+half)))

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			u := dx*dirX + dy*dirY + float64(sw)/2
			v := -dx*dirY + dy*dirX + float64(sh)/2
			su, sv := int(math.Floor(u)), int(math.Floor(v))
			if su < 0 || sv < 0 || su >= sw || sv >= sh {
				continue
			}
			s := src.RGBAAt(su, sv)
			if s.A == 0 {
				continue
			}
			blendOver(dst, x, y, s)
		}
	}
}

// blendOver composites a premultiplied pixel over dst at (x, y).
func blendOver(dst *image.RGBA, x, y int, s color.RGBA) {
	d := dst.RGBAAt(x, y)
	inv := 255 - uint32(s.A)
	dst.SetRGBA(x, y, color.RGBA{
		R: uint8(uint32(s.R) + uint32(d.R)*inv/255),
		G: uint8(uint32(s.G) + uint32(d.G)*inv/255),
		B: uint8(uint32(s.B) + uint32(d.B)*inv/255),
		A: uint8(uint32(s.A) + uint32(d.A)*inv/255),
	})
}
