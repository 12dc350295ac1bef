package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/ytget/gantt-planner/internal/gantt"
	"github.com/ytget/gantt-planner/internal/model"
	"github.com/ytget/gantt-planner/internal/platform"
	"github.com/ytget/gantt-planner/internal/timeline"
)

var (
	ErrOutOfRange   = errors.New("value out of range")
	ErrInvalidDate  = errors.New("invalid date, want YYYY-MM-DD")
	ErrInvalidOrder = errors.New("minimum exceeds maximum")
)

// File is the TOML tuning file
type File struct {
	Timeline TimelineSection `toml:"timeline"`
	Gantt    GanttSection    `toml:"gantt"`
	Data     DataSection     `toml:"data"`
	Log      LogSection      `toml:"log"`

	// Unknown lists keys present in the file that nothing reads
	Unknown []string `toml:"-"`
}

// TimelineSection tunes the timeline header
type TimelineSection struct {
	BaseDayWidth        float64 `toml:"base_day_width"`
	MinScale            float64 `toml:"min_scale"`
	MaxScale            float64 `toml:"max_scale"`
	InitialBufferDays   int     `toml:"initial_buffer_days"`
	ExtendThresholdDays int     `toml:"extend_threshold_days"`
	ExtendIncrementDays int     `toml:"extend_increment_days"`
	SnapEnabled         bool    `toml:"snap_enabled"`
	SnapDebounceMs      int     `toml:"snap_debounce_ms"`
	SnapThreshold       float64 `toml:"snap_threshold"`
	TransitionMs        int     `toml:"transition_ms"`
	RangeStart          string  `toml:"range_start"`
	RangeEnd            string  `toml:"range_end"`
}

// GanttSection tunes the chart
type GanttSection struct {
	RowHeight   float64 `toml:"row_height"`
	ZoomMin     float64 `toml:"zoom_min"`
	ZoomMax     float64 `toml:"zoom_max"`
	ZoomStep    float64 `toml:"zoom_step"`
	ZoomDefault float64 `toml:"zoom_default"`
}

// DataSection names the inputs
type DataSection struct {
	Project       string `toml:"project"`        // empty loads the built-in sample
	HolidayRegion string `toml:"holiday_region"` // empty disables built-in holidays
}

// LogSection configures the console logger
type LogSection struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// ConfigError reports an invalid value in the tuning file
type ConfigError struct {
	Section string
	Field   string
	Err     error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: [%s] %s: %v", e.Section, e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// DefaultFile returns the values used for anything the file leaves out
func DefaultFile() File {
	t := timeline.DefaultTuning()
	z := gantt.DefaultZoomConfig()
	return File{
		Timeline: TimelineSection{
			BaseDayWidth:        t.BaseDayWidth,
			MinScale:            t.MinScale,
			MaxScale:            t.MaxScale,
			InitialBufferDays:   t.InitialBufferDays,
			ExtendThresholdDays: t.ExtendThresholdDays,
			ExtendIncrementDays: t.ExtendIncrementDays,
			SnapEnabled:         t.SnapEnabled,
			SnapDebounceMs:      int(t.SnapDebounce / time.Millisecond),
			SnapThreshold:       t.SnapThreshold,
			TransitionMs:        int(t.TransitionDuration / time.Millisecond),
			RangeStart:          t.RangeStart.Format(model.DateKeyLayout),
			RangeEnd:            t.RangeEnd.Format(model.DateKeyLayout),
		},
		Gantt: GanttSection{
			RowHeight:   32,
			ZoomMin:     z.Min,
			ZoomMax:     z.Max,
			ZoomStep:    z.Step,
			ZoomDefault: z.Default,
		},
		Log: LogSection{Level: "info", Format: "text"},
	}
}

// LoadFile reads the tuning file at path, or at the default location when
// path is empty. A missing file yields the defaults. It returns the path used.
func LoadFile(path string) (File, string, error) {
	cfg := DefaultFile()
	if path == "" {
		p, err := platform.ConfigPath()
		if err != nil {
			return cfg, "", err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, path, nil
		}
		return cfg, path, fmt.Errorf("error reading config file: %w", err)
	}

	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return DefaultFile(), path, fmt.Errorf("error parsing config file %s: %w", path, err)
	}
	for _, key := range meta.Undecoded() {
		cfg.Unknown = append(cfg.Unknown, key.String())
	}
	sort.Strings(cfg.Unknown)

	if err := cfg.Validate(); err != nil {
		return DefaultFile(), path, err
	}
	return cfg, path, nil
}

// Validate checks ranges and cross-field constraints
func (f File) Validate() error {
	tl := f.Timeline
	switch {
	case tl.BaseDayWidth <= 0:
		return &ConfigError{"timeline", "base_day_width", ErrOutOfRange}
	case tl.MinScale <= 0:
		return &ConfigError{"timeline", "min_scale", ErrOutOfRange}
	case tl.MaxScale < tl.MinScale:
		return &ConfigError{"timeline", "max_scale", ErrInvalidOrder}
	case tl.InitialBufferDays <= 0:
		return &ConfigError{"timeline", "initial_buffer_days", ErrOutOfRange}
	case tl.ExtendThresholdDays < 0 || tl.ExtendThresholdDays >= tl.InitialBufferDays:
		return &ConfigError{"timeline", "extend_threshold_days", ErrOutOfRange}
	case tl.ExtendIncrementDays <= 0:
		return &ConfigError{"timeline", "extend_increment_days", ErrOutOfRange}
	case tl.SnapDebounceMs < 0:
		return &ConfigError{"timeline", "snap_debounce_ms", ErrOutOfRange}
	case tl.SnapThreshold < 0:
		return &ConfigError{"timeline", "snap_threshold", ErrOutOfRange}
	case tl.TransitionMs < 0:
		return &ConfigError{"timeline", "transition_ms", ErrOutOfRange}
	}

	start, err := parseDay(tl.RangeStart)
	if err != nil {
		return &ConfigError{"timeline", "range_start", err}
	}
	end, err := parseDay(tl.RangeEnd)
	if err != nil {
		return &ConfigError{"timeline", "range_end", err}
	}
	if !end.After(start) {
		return &ConfigError{"timeline", "range_end", ErrInvalidOrder}
	}

	g := f.Gantt
	switch {
	case g.RowHeight <= 0:
		return &ConfigError{"gantt", "row_height", ErrOutOfRange}
	case g.ZoomMin <= 0:
		return &ConfigError{"gantt", "zoom_min", ErrOutOfRange}
	case g.ZoomMax < g.ZoomMin:
		return &ConfigError{"gantt", "zoom_max", ErrInvalidOrder}
	case g.ZoomStep <= 0:
		return &ConfigError{"gantt", "zoom_step", ErrOutOfRange}
	case g.ZoomDefault < g.ZoomMin || g.ZoomDefault > g.ZoomMax:
		return &ConfigError{"gantt", "zoom_default", ErrOutOfRange}
	}
	return nil
}

// Tuning converts the timeline section. The file must have passed Validate.
func (f File) Tuning() timeline.Tuning {
	t := timeline.DefaultTuning()
	tl := f.Timeline
	t.BaseDayWidth = tl.BaseDayWidth
	t.MinScale = tl.MinScale
	t.MaxScale = tl.MaxScale
	t.InitialBufferDays = tl.InitialBufferDays
	t.ExtendThresholdDays = tl.ExtendThresholdDays
	t.ExtendIncrementDays = tl.ExtendIncrementDays
	t.SnapEnabled = tl.SnapEnabled
	t.SnapDebounce = time.Duration(tl.SnapDebounceMs) * time.Millisecond
	t.SnapThreshold = tl.SnapThreshold
	t.TransitionDuration = time.Duration(tl.TransitionMs) * time.Millisecond
	if d, err := parseDay(tl.RangeStart); err == nil {
		t.RangeStart = d
	}
	if d, err := parseDay(tl.RangeEnd); err == nil {
		t.RangeEnd = d
	}
	return t
}

// Zoom converts the gantt section
func (f File) Zoom() gantt.ZoomConfig {
	return gantt.ZoomConfig{
		Min:     f.Gantt.ZoomMin,
		Max:     f.Gantt.ZoomMax,
		Step:    f.Gantt.ZoomStep,
		Default: f.Gantt.ZoomDefault,
	}
}

func parseDay(value string) (time.Time, error) {
	d, err := time.Parse(model.DateKeyLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}
	return d, nil
}
