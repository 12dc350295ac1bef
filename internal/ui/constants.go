package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconToday    = "◎"
	IconZoomIn   = "+"
	IconZoomOut  = "−"
	IconFolder   = "📁"
	IconFile     = "📄"
	IconClose    = "×"
	IconError    = "❌"
	IconLanguage = "🌐"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DateLabelLayout    = "02 Jan 2006"
)

// Layout sizing (timeline header / chart)
const (
	MonthStripHeight float32 = 28
	DayStripHeight   float32 = 36

	TimelineMinWidth float32 = 200
	ChartMinWidth    float32 = 300
	ChartMinHeight   float32 = 160

	// Mobile-specific sizing
	MobileMonthStripHeight float32 = 36
	MobileDayStripHeight   float32 = 48

	// Touch target minimum sizes (iOS/Android guidelines)
	MinTouchTargetSize float32 = 44
)

// Timeline scale steps used by the header buttons and ctrl+wheel
const (
	ScaleStepFactor = 1.25
)

// Toast notification sizing and behavior
const (
	ToastWidth    float32 = 300
	ToastHeight   float32 = 120
	ToastMargin   float32 = 20
	ToastAutoHide         = 5 * time.Second
)

// Window defaults
const (
	WindowWidth  float32 = 1100
	WindowHeight float32 = 700
)
