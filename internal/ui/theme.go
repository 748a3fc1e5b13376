package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// wheelTheme wraps the active theme: a larger heading for the result banner
// and the pointer red as the primary color.
type wheelTheme struct{ fyne.Theme }

func (t wheelTheme) Size(n fyne.ThemeSizeName) float32 {
	if n == theme.SizeNameHeadingText {
		return t.Theme.Size(n) * 1.25
	}
	return t.Theme.Size(n)
}

func (t wheelTheme) Color(n fyne.ThemeColorName, v fyne.ThemeVariant) color.Color {
	if n == theme.ColorNamePrimary {
		return pointerColor
	}
	return t.Theme.Color(n, v)
}

// UseWheelTheme applies the wrapper to the current app.
func UseWheelTheme() {
	app := fyne.CurrentApp()
	if app == nil {
		return
	}
	app.Settings().SetTheme(wheelTheme{Theme: app.Settings().Theme()})
}
