package config

import (
	"math"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage      = "app_language"
	KeyProjectFile   = "project_file"
	KeyTimelineScale = "timeline_scale"
	KeyGanttZoom     = "gantt_zoom"
	KeySnapEnabled   = "snap_enabled"
	KeyTransitionMs  = "transition_ms"
	KeyHolidayRegion = "holiday_region"
)

// Default values
const (
	DefaultLanguage      = "system"
	DefaultTimelineScale = 1.0
	DefaultGanttZoom     = 1.0
	DefaultSnapEnabled   = true
	DefaultTransitionMs  = 300
)

// Bounds for user settings
const (
	MinTimelineScale = 0.25
	MaxTimelineScale = 4.0
	MinGanttZoom     = 0.1
	MaxGanttZoom     = 5.0
	MaxTransitionMs  = 2000
)

// Settings manages user preferences. Values from the tuning file act as the
// defaults until the user changes them.
type Settings struct {
	app      fyne.App
	defaults File
}

// NewSettings creates a new settings manager with stock defaults
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app, defaults: DefaultFile()}
}

// NewSettingsWithDefaults creates a settings manager whose defaults come from a tuning file
func NewSettingsWithDefaults(app fyne.App, defaults File) *Settings {
	return &Settings{app: app, defaults: defaults}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// GetProjectFile returns the project file path, falling back to the tuning file
func (s *Settings) GetProjectFile() string {
	return s.app.Preferences().StringWithFallback(KeyProjectFile, s.defaults.Data.Project)
}

// SetProjectFile sets the project file path. Empty means the built-in sample.
func (s *Settings) SetProjectFile(path string) {
	s.app.Preferences().SetString(KeyProjectFile, path)
}

// GetHolidayRegion returns the built-in holiday region code
func (s *Settings) GetHolidayRegion() string {
	return s.app.Preferences().StringWithFallback(KeyHolidayRegion, s.defaults.Data.HolidayRegion)
}

// SetHolidayRegion sets the built-in holiday region code. Empty disables it.
func (s *Settings) SetHolidayRegion(region string) {
	s.app.Preferences().SetString(KeyHolidayRegion, region)
}

// GetTimelineScale returns the initial timeline scale
func (s *Settings) GetTimelineScale() float64 {
	return clampFloat(s.app.Preferences().FloatWithFallback(KeyTimelineScale, DefaultTimelineScale), MinTimelineScale, MaxTimelineScale)
}

// SetTimelineScale sets the initial timeline scale
func (s *Settings) SetTimelineScale(scale float64) {
	s.app.Preferences().SetFloat(KeyTimelineScale, clampFloat(scale, MinTimelineScale, MaxTimelineScale))
}

// GetGanttZoom returns the initial chart zoom
func (s *Settings) GetGanttZoom() float64 {
	fallback := s.defaults.Gantt.ZoomDefault
	if fallback <= 0 {
		fallback = DefaultGanttZoom
	}
	return clampFloat(s.app.Preferences().FloatWithFallback(KeyGanttZoom, fallback), MinGanttZoom, MaxGanttZoom)
}

// SetGanttZoom sets the initial chart zoom
func (s *Settings) SetGanttZoom(zoom float64) {
	s.app.Preferences().SetFloat(KeyGanttZoom, clampFloat(zoom, MinGanttZoom, MaxGanttZoom))
}

// GetSnapEnabled returns whether the timeline snaps to month boundaries
func (s *Settings) GetSnapEnabled() bool {
	return s.app.Preferences().BoolWithFallback(KeySnapEnabled, s.defaults.Timeline.SnapEnabled)
}

// SetSnapEnabled sets whether the timeline snaps to month boundaries
func (s *Settings) SetSnapEnabled(enabled bool) {
	s.app.Preferences().SetBool(KeySnapEnabled, enabled)
}

// GetTransitionMs returns the scroll animation duration in milliseconds
func (s *Settings) GetTransitionMs() int {
	value := s.app.Preferences().IntWithFallback(KeyTransitionMs, s.defaults.Timeline.TransitionMs)
	if value < 0 {
		s.SetTransitionMs(DefaultTransitionMs)
		return DefaultTransitionMs
	}
	if value > MaxTransitionMs {
		return MaxTransitionMs
	}
	return value
}

// SetTransitionMs sets the scroll animation duration in milliseconds
func (s *Settings) SetTransitionMs(ms int) {
	if ms < 0 {
		ms = 0
	}
	if ms > MaxTransitionMs {
		ms = MaxTransitionMs
	}
	s.app.Preferences().SetInt(KeyTransitionMs, ms)
}

func clampFloat(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
