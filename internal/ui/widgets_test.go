package ui

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

func TestBannerNeedsScroll(t *testing.T) {
	tests := []struct {
		name     string
		text     float32
		viewport float32
		want     bool
	}{
		{"empty text", 0, 100, false},
		{"fits", 80, 100, false},
		{"exact", 100, 100, false},
		{"within epsilon", 100.4, 100, false},
		{"overflows", 120, 100, true},
		{"no viewport yet", 10, 0, true},
		{"negative viewport", 10, -5, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, bannerNeedsScroll(tt.text, tt.viewport))
		})
	}
}

func TestMarqueeFrame(t *testing.T) {
	work := []rune("  Result: Ramen  ")
	assert.Equal(t, string(work), marqueeFrame(work, 0))
	assert.Equal(t, " Result: Ramen   ", marqueeFrame(work, 1))
	assert.Equal(t, string(work), marqueeFrame(work, len(work)))
	assert.Equal(t, "", marqueeFrame(nil, 3))

	// multi-byte runes rotate whole
	assert.Equal(t, "…ab", marqueeFrame([]rune("ab…"), 2))
}

func TestNormalizeSliderValue(t *testing.T) {
	tests := []struct {
		name                  string
		min, max, step, value float64
		want                  float64
	}{
		{"inside", 0, 100, 1, 42, 42},
		{"snaps", 0, 100, 5, 42, 40},
		{"rounds up", 0, 100, 5, 43, 45},
		{"below", 0, 100, 1, -3, 0},
		{"above", 0, 100, 1, 130, 100},
		{"no step", 0, 100, 0, 12.5, 12.5},
		{"empty range", 10, 10, 1, 50, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, normalizeSliderValue(tt.min, tt.max, tt.step, tt.value), 1e-9)
		})
	}
}

func TestSliderValueAt(t *testing.T) {
	assert.InDelta(t, 0.0, sliderValueAt(0, 200), 1e-9)
	assert.InDelta(t, 50.0, sliderValueAt(100, 200), 1e-9)
	assert.InDelta(t, 100.0, sliderValueAt(250, 200), 1e-9)
	assert.InDelta(t, 0.0, sliderValueAt(-10, 200), 1e-9)
	assert.InDelta(t, 0.0, sliderValueAt(10, 0), 1e-9)
}

func TestVolumeSliderSetValue(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	s := NewVolumeSlider(37.6)
	assert.InDelta(t, 38.0, s.Value, 1e-9)

	var got []float64
	s.OnChanged = func(v float64) { got = append(got, v) }
	s.SetValue(38)
	s.SetValue(120)
	assert.Equal(t, []float64{100}, got)
}

func TestNextSpinHue(t *testing.T) {
	h := 0.0
	for i := 0; i < 9; i++ {
		h = nextSpinHue(h)
	}
	assert.InDelta(t, 54.0, h, 1e-9)
	assert.InDelta(t, 0.0, nextSpinHue(h), 1e-9)
}

func TestHSVToNRGBA(t *testing.T) {
	tests := []struct {
		name    string
		h, s, v float64
		want    color.NRGBA
	}{
		{"red", 0, 1, 1, color.NRGBA{0xff, 0, 0, 0xff}},
		{"yellow", 60, 1, 1, color.NRGBA{0xff, 0xff, 0, 0xff}},
		{"blue", 240, 1, 1, color.NRGBA{0, 0, 0xff, 0xff}},
		{"wraps", 360 + 120, 1, 1, color.NRGBA{0, 0xff, 0, 0xff}},
		{"gray", 200, 0, 0.5, color.NRGBA{0x80, 0x80, 0x80, 0xff}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, hsvToNRGBA(tt.h, tt.s, tt.v))
		})
	}
}
