package ui

import (
	"fyne.io/fyne/v2"
)

// MobileUI provides mobile-specific UI adjustments
type MobileUI struct {
	app fyne.App
}

// NewMobileUI creates a new mobile UI helper
func NewMobileUI(app fyne.App) *MobileUI {
	return &MobileUI{app: app}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return fyne.CurrentDevice().IsMobile()
}

// GetDeviceOrientation returns the current device orientation
func (m *MobileUI) GetDeviceOrientation() fyne.DeviceOrientation {
	return fyne.CurrentDevice().Orientation()
}

// IsLandscape returns true if device is in landscape orientation
func (m *MobileUI) IsLandscape() bool {
	orientation := m.GetDeviceOrientation()
	return orientation == fyne.OrientationHorizontalLeft || orientation == fyne.OrientationHorizontalRight
}

// StripHeights returns the month and day strip heights for the current device.
// Touch devices get taller strips so a day is a reasonable tap target.
func (m *MobileUI) StripHeights() (month, day float32) {
	if !m.IsMobileDevice() {
		return MonthStripHeight, DayStripHeight
	}
	if m.IsLandscape() {
		// Landscape phones are short; keep the header compact
		return MonthStripHeight, MinTouchTargetSize
	}
	return MobileMonthStripHeight, MobileDayStripHeight
}

// ConfigureTimeline applies touch sizing and swipe paging on mobile devices
func (m *MobileUI) ConfigureTimeline(tv *TimelineView) {
	month, day := m.StripHeights()
	tv.SetStripHeights(month, day)
	tv.SetPaging(m.IsMobileDevice())
}
