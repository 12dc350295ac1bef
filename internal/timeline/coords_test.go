package timeline

import (
	"math"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		a, b     time.Time
		expected int
	}{
		{date(2024, 6, 20), date(2024, 6, 15), 5},
		{date(2024, 6, 10), date(2024, 6, 15), -5},
		{date(2024, 3, 1), date(2024, 2, 28), 2},
		{date(2025, 1, 1), date(2024, 1, 1), 366},
		{time.Date(2024, 6, 15, 23, 59, 0, 0, time.UTC), date(2024, 6, 15), 0},
		{time.Date(2024, 6, 16, 0, 30, 0, 0, time.FixedZone("CEST", 2*3600)), date(2024, 6, 15), 1},
	}

	for _, test := range tests {
		if got := DaysBetween(test.a, test.b); got != test.expected {
			t.Errorf("DaysBetween(%v, %v) = %d, expected %d", test.a, test.b, got, test.expected)
		}
	}
}

func TestPixelFromDate_ScenarioA(t *testing.T) {
	center := date(2024, 6, 15)
	dw := DefaultTuning().DayWidth(1.0)

	tests := []struct {
		date     time.Time
		expected float64
	}{
		{date(2024, 6, 15), 0},
		{date(2024, 6, 20), 150},
		{date(2024, 6, 10), -150},
	}

	for _, test := range tests {
		if got := PixelFromDate(test.date, center, dw); got != test.expected {
			t.Errorf("PixelFromDate(%s) = %f, expected %f", test.date.Format("2006-01-02"), got, test.expected)
		}
	}
}

func TestDateFromPixel(t *testing.T) {
	center := date(2024, 6, 15)

	tests := []struct {
		x        float64
		expected time.Time
	}{
		{0, date(2024, 6, 15)},
		{29.9, date(2024, 6, 15)},
		{30, date(2024, 6, 16)},
		{-0.1, date(2024, 6, 14)},
		{-30, date(2024, 6, 14)},
		{-30.1, date(2024, 6, 13)},
	}

	for _, test := range tests {
		if got := DateFromPixel(test.x, center, 30); !got.Equal(test.expected) {
			t.Errorf("DateFromPixel(%f) = %v, expected %v", test.x, got, test.expected)
		}
	}
}

func TestCoordinateRoundTrip(t *testing.T) {
	tuning := DefaultTuning()
	center := date(2031, 3, 7)
	scales := []float64{0.25, 0.33, 1, 1.7, 4}

	for _, scale := range scales {
		dw := tuning.DayWidth(scale)
		for d := tuning.RangeStart; !d.After(tuning.RangeEnd); d = d.AddDate(0, 0, 17) {
			x := PixelFromDate(d, center, dw)
			back := DateFromPixel(x, center, dw)
			if !back.Equal(d) {
				t.Fatalf("Round trip at scale %f: %v -> %f -> %v", scale, d, x, back)
			}
			if diff := PixelFromDate(back, center, dw) - x; math.Abs(diff) >= dw {
				t.Fatalf("Round trip drifted by %f px at %v", diff, d)
			}
		}
	}
}

func TestDayWidthClamped(t *testing.T) {
	tuning := DefaultTuning()
	lo := tuning.BaseDayWidth * tuning.MinScale
	hi := tuning.BaseDayWidth * tuning.MaxScale

	for _, s := range []float64{-10, 0, 0.1, 0.25, 1, 3.99, 4, 100, math.Inf(1), math.Inf(-1), math.NaN()} {
		dw := tuning.DayWidth(s)
		if dw < lo || dw > hi || dw <= 0 {
			t.Errorf("DayWidth(%f) = %f, expected within [%f, %f]", s, dw, lo, hi)
		}
	}
}

func TestClampDate(t *testing.T) {
	tuning := DefaultTuning()

	if got := tuning.ClampDate(date(2019, 5, 1)); !got.Equal(tuning.RangeStart) {
		t.Errorf("Expected clamp to range start, got %v", got)
	}
	if got := tuning.ClampDate(date(2041, 5, 1)); !got.Equal(tuning.RangeEnd) {
		t.Errorf("Expected clamp to range end, got %v", got)
	}
	if got := tuning.ClampDate(date(2030, 5, 1)); !got.Equal(date(2030, 5, 1)) {
		t.Errorf("Expected date inside the envelope to pass, got %v", got)
	}
}

func TestSnapDuration(t *testing.T) {
	if got := DefaultTuning().SnapDuration(); got != 240*time.Millisecond {
		t.Errorf("Expected 240ms snap duration, got %v", got)
	}
}
