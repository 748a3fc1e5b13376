//go:build windows

package windowpos

import (
	"syscall"
	"unsafe"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver"
)

var (
	user32        = syscall.NewLazyDLL("user32.dll")
	getWindowRect = user32.NewProc("GetWindowRect")
	setWindowPos  = user32.NewProc("SetWindowPos")
)

// SetWindowPos flags: keep size, keep Z-order, do not steal focus.
const moveOnly = 0x0001 | 0x0004 | 0x0010

type rect struct{ left, top, right, bottom int32 }

func capture(w fyne.Window) (x, y int, ok bool) {
	ok = onHWND(w, func(hwnd uintptr) bool {
		var r rect
		if ret, _, err := getWindowRect.Call(hwnd, uintptr(unsafe.Pointer(&r))); ret == 0 {
			logCallError("GetWindowRect", err)
			return false
		}
		x, y = int(r.left), int(r.top)
		return true
	})
	return x, y, ok
}

func apply(w fyne.Window, x, y int) bool {
	return onHWND(w, func(hwnd uintptr) bool {
		ret, _, err := setWindowPos.Call(hwnd, 0, uintptr(int32(x)), uintptr(int32(y)), 0, 0, moveOnly)
		if ret == 0 {
			logCallError("SetWindowPos", err)
			return false
		}
		return true
	})
}

func logCallError(name string, err error) {
	if err != nil && err != syscall.Errno(0) {
		fyne.LogError(name+" failed", err)
	}
}

// onHWND runs fn with the window's HWND on the GUI thread and waits for
// its result.
func onHWND(w fyne.Window, fn func(hwnd uintptr) bool) bool {
	nw, ok := w.(driver.NativeWindow)
	if !ok {
		return false
	}
	done := make(chan bool, 1)
	nw.RunNative(func(ctx any) {
		wc, ok := ctx.(driver.WindowsWindowContext)
		if !ok || wc.HWND == 0 {
			done <- false
			return
		}
		done <- fn(wc.HWND)
	})
	return <-done
}
