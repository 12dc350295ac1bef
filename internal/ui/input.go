package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// zoomModifierPressed reports whether ctrl (or cmd on macOS) is held.
// Mobile drivers have no modifier state.
func zoomModifierPressed() bool {
	a := fyne.CurrentApp()
	if a == nil {
		return false
	}
	d, ok := a.Driver().(desktop.Driver)
	if !ok {
		return false
	}
	return d.CurrentKeyModifiers()&(fyne.KeyModifierControl|fyne.KeyModifierSuper) != 0
}

// wheelDelta picks the axis a horizontal-only view scrolls by.
// Vertical wheels are the common case, so DY is used when DX is idle.
func wheelDelta(ev *fyne.ScrollEvent) float32 {
	if ev.Scrolled.DX != 0 {
		return ev.Scrolled.DX
	}
	return ev.Scrolled.DY
}

// pixelScale converts the logical width of an object to the device pixel width of its raster
func pixelScale(devicePx int, logical float32) float64 {
	if logical <= 0 || devicePx <= 0 {
		return 0
	}
	return float64(devicePx) / float64(logical)
}
