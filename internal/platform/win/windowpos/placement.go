// Package windowpos persists the top-left corner of the main window on
// Windows builds, where fyne does not expose window coordinates. Other
// platforms compile to no-ops.
package windowpos

import (
	"time"

	"fyne.io/fyne/v2"
)

const (
	restoreAttempts = 10
	restoreDelay    = 150 * time.Millisecond
)

// Placement is a saved window corner in screen pixels.
type Placement struct {
	X, Y  int
	Valid bool
}

// Capture reads the window's current corner. The result is invalid when the
// platform cannot report it.
func Capture(w fyne.Window) Placement {
	x, y, ok := capture(w)
	return Placement{X: x, Y: y, Valid: ok}
}

// Restore moves w to p. The native window may not exist until the first
// frame, so a failed first attempt is retried in the background. The return
// value reports only the first attempt.
func Restore(w fyne.Window, p Placement) bool {
	if !p.Valid {
		return false
	}
	try := func() bool { return apply(w, p.X, p.Y) }
	if try() {
		return true
	}
	go retry(restoreAttempts, restoreDelay, try)
	return false
}

// retry calls try up to attempts times, sleeping delay before each call,
// and reports whether any call succeeded.
func retry(attempts int, delay time.Duration, try func() bool) bool {
	for i := 0; i < attempts; i++ {
		time.Sleep(delay)
		if try() {
			return true
		}
	}
	return false
}
