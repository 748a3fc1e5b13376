package wheelapp

import (
	"bytes"
	"image/png"
	"log/slog"

	"fyne.io/fyne/v2"

	"github.com/edward-ap/miniwheel/internal/ui"
	"github.com/edward-ap/miniwheel/internal/wheel"
)

const iconSize = 128

// AppIcon is the window and taskbar icon: the default wheel without labels,
// rendered at start-up.
var AppIcon fyne.Resource

func init() {
	b, err := IconPNG(iconSize)
	if err != nil {
		slog.Warn("app icon render failed", "error", err)
		return
	}
	AppIcon = fyne.NewStaticResource("miniwheel.png", b)
}

// IconPNG renders the icon as a size x size PNG. The wheel is tilted half a
// segment so the pointer sits on a slice rather than a boundary.
func IconPNG(size int) ([]byte, error) {
	r := ui.NewWheelRaster(nil)
	r.SetLabels(make([]string, len(wheel.DefaultLabels)))
	img := r.Render(size, wheel.SegmentWidth(len(wheel.DefaultLabels))/2)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
