package gantt

import (
	"math"
)

// ZoomConfig bounds the chart zoom. It is separate from the timeline header scale.
type ZoomConfig struct {
	Min     float64
	Max     float64
	Step    float64
	Default float64
}

// DefaultZoomConfig returns the stock chart zoom range
func DefaultZoomConfig() ZoomConfig {
	return ZoomConfig{Min: 0.1, Max: 5.0, Step: 0.1, Default: 1.0}
}

// ZoomAction is a discrete zoom command from the wheel or keyboard
type ZoomAction int

const (
	ZoomIn ZoomAction = iota
	ZoomOut
	ZoomReset
)

func (a ZoomAction) String() string {
	switch a {
	case ZoomIn:
		return "in"
	case ZoomOut:
		return "out"
	case ZoomReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Zoom is the chart zoom level
type Zoom struct {
	cfg   ZoomConfig
	level float64
}

// NewZoom creates a zoom at the configured default
func NewZoom(cfg ZoomConfig) *Zoom {
	z := &Zoom{cfg: cfg}
	z.level = z.clamp(cfg.Default)
	return z
}

// Level returns the current zoom factor
func (z *Zoom) Level() float64 {
	return z.level
}

// Config returns the zoom bounds
func (z *Zoom) Config() ZoomConfig {
	return z.cfg
}

// Set changes the level, clamped to the configured range, and reports whether it changed
func (z *Zoom) Set(level float64) bool {
	level = z.clamp(level)
	if level == z.level {
		return false
	}
	z.level = level
	return true
}

// Apply performs a zoom action and reports whether the level changed
func (z *Zoom) Apply(action ZoomAction) bool {
	switch action {
	case ZoomIn:
		return z.Set(z.level + z.cfg.Step)
	case ZoomOut:
		return z.Set(z.level - z.cfg.Step)
	case ZoomReset:
		return z.Set(z.cfg.Default)
	}
	return false
}

// DayWidth returns the day width at the current level
func (z *Zoom) DayWidth(base float64) float64 {
	return base * z.level
}

// clamp bounds level and rounds off float noise from repeated stepping
func (z *Zoom) clamp(level float64) float64 {
	if math.IsNaN(level) {
		level = z.cfg.Default
	}
	level = math.Round(level*1e6) / 1e6
	return math.Max(z.cfg.Min, math.Min(z.cfg.Max, level))
}

// ZoomToCursor returns the scroll position that keeps the content under cursorX
// fixed when the total content width changes from totalBefore to totalAfter.
// The result is clamped to the scrollable range of a view viewWidth wide.
func ZoomToCursor(scrollLeft, cursorX, totalBefore, totalAfter, viewWidth float64) float64 {
	if totalBefore <= 0 {
		return 0
	}
	// the content point under the cursor keeps its relative position
	next := (scrollLeft+cursorX)*totalAfter/totalBefore - cursorX
	return clampScroll(next, totalAfter, viewWidth)
}

func clampScroll(scroll, total, view float64) float64 {
	maxScroll := math.Max(0, total-view)
	return math.Max(0, math.Min(maxScroll, scroll))
}
