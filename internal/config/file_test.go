package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestLoadFileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.toml")
	cfg, used, err := LoadFile(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if used != path {
		t.Errorf("Expected path %s, got %s", path, used)
	}
	if cfg.Timeline.BaseDayWidth != 30 || cfg.Gantt.RowHeight != 32 {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

func TestLoadFileDefaultLocation(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	_, used, err := LoadFile("")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if used != filepath.Join(dir, "gantt-planner", "config.toml") {
		t.Errorf("Unexpected path %s", used)
	}
}

func TestLoadFileOverrides(t *testing.T) {
	path := writeConfig(t, `
[timeline]
base_day_width = 24.0
snap_enabled = false
transition_ms = 200
range_start = "2022-01-01"

[gantt]
zoom_default = 2.0

[data]
project = "~/plans/q3.yaml"
holiday_region = "de-nw"

[log]
level = "debug"

[extra]
colour = "teal"
`)
	cfg, _, err := LoadFile(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.Timeline.BaseDayWidth != 24 || cfg.Timeline.SnapEnabled {
		t.Errorf("Expected timeline overrides, got %+v", cfg.Timeline)
	}
	if cfg.Timeline.MaxScale != 4 {
		t.Errorf("Expected untouched keys to keep defaults, got max_scale %v", cfg.Timeline.MaxScale)
	}
	if cfg.Data.Project != "~/plans/q3.yaml" || cfg.Data.HolidayRegion != "de-nw" {
		t.Errorf("Expected data section, got %+v", cfg.Data)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "text" {
		t.Errorf("Expected log level debug with default format, got %+v", cfg.Log)
	}
	found := false
	for _, key := range cfg.Unknown {
		found = found || key == "extra.colour"
	}
	if !found {
		t.Errorf("Expected unknown key extra.colour, got %v", cfg.Unknown)
	}

	tuning := cfg.Tuning()
	if tuning.TransitionDuration != 200*time.Millisecond {
		t.Errorf("Expected 200ms transition, got %v", tuning.TransitionDuration)
	}
	if tuning.SnapDebounce != 150*time.Millisecond {
		t.Errorf("Expected default snap debounce, got %v", tuning.SnapDebounce)
	}
	if !tuning.RangeStart.Equal(time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Expected range start 2022-01-01, got %v", tuning.RangeStart)
	}
	if zoom := cfg.Zoom(); zoom.Default != 2 || zoom.Step != 0.1 {
		t.Errorf("Expected zoom default 2 with stock step, got %+v", zoom)
	}
}

func TestLoadFileInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		field   string
		err     error
	}{
		{"negative day width", "[timeline]\nbase_day_width = -1.0\n", "base_day_width", ErrOutOfRange},
		{"scale order", "[timeline]\nmin_scale = 2.0\nmax_scale = 1.0\n", "max_scale", ErrInvalidOrder},
		{"threshold beyond buffer", "[timeline]\nextend_threshold_days = 400\n", "extend_threshold_days", ErrOutOfRange},
		{"bad range date", "[timeline]\nrange_end = \"someday\"\n", "range_end", ErrInvalidDate},
		{"inverted range", "[timeline]\nrange_start = \"2030-01-01\"\nrange_end = \"2025-01-01\"\n", "range_end", ErrInvalidOrder},
		{"zero row height", "[gantt]\nrow_height = 0.0\n", "row_height", ErrOutOfRange},
		{"default outside zoom", "[gantt]\nzoom_default = 8.0\n", "zoom_default", ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, _, err := LoadFile(writeConfig(t, tt.content))
			if !errors.Is(err, tt.err) {
				t.Fatalf("Expected %v, got %v", tt.err, err)
			}
			var ce *ConfigError
			if !errors.As(err, &ce) || ce.Field != tt.field {
				t.Errorf("Expected ConfigError on %s, got %v", tt.field, err)
			}
			if cfg.Timeline.BaseDayWidth != 30 {
				t.Error("Expected defaults on error")
			}
		})
	}
}

func TestLoadFileSyntaxError(t *testing.T) {
	_, _, err := LoadFile(writeConfig(t, "[timeline\n"))
	if err == nil {
		t.Fatal("Expected a parse error")
	}
	var ce *ConfigError
	if errors.As(err, &ce) {
		t.Errorf("Expected a decode error, got %v", ce)
	}
}

func TestDefaultFileValidates(t *testing.T) {
	if err := DefaultFile().Validate(); err != nil {
		t.Errorf("Expected defaults to validate, got %v", err)
	}
}
