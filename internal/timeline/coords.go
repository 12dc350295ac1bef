package timeline

import (
	"math"
	"time"
)

const day = 24 * time.Hour

// Absorbs float error so n*dayWidth maps back to day n
const pixelEpsilon = 1e-9

// DateOf returns the calendar day of t as UTC midnight.
// The wall-clock date in t's own location is kept, so 23:30 local stays on the same day.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the signed number of whole calendar days from b to a.
func DaysBetween(a, b time.Time) int {
	return int(DateOf(a).Sub(DateOf(b)) / day)
}

// AddDays returns the calendar day n days after t.
func AddDays(t time.Time, n int) time.Time {
	return DateOf(t).AddDate(0, 0, n)
}

// PixelFromDate maps a date to its left edge relative to center (x = 0).
func PixelFromDate(date, center time.Time, dayWidth float64) float64 {
	return float64(DaysBetween(date, center)) * dayWidth
}

// DateFromPixel returns the date whose cell covers x.
func DateFromPixel(x float64, center time.Time, dayWidth float64) time.Time {
	if dayWidth <= 0 {
		return DateOf(center)
	}
	return AddDays(center, int(math.Floor(x/dayWidth+pixelEpsilon)))
}

// Tuning holds the sizing and timing constants of a timeline instance.
type Tuning struct {
	BaseDayWidth float64
	MinScale     float64
	MaxScale     float64

	InitialBufferDays   int
	ExtendThresholdDays int
	ExtendIncrementDays int
	ExpandResetDelay    time.Duration

	SnapEnabled       bool
	SnapDebounce      time.Duration
	SnapThreshold     float64 // px
	SnapDurationRatio float64 // fraction of TransitionDuration

	TransitionDuration time.Duration

	MinDayTextWidth    float64
	MinMonthLabelWidth float64

	// Absolute supported envelope; the buffer never grows past it.
	RangeStart time.Time
	RangeEnd   time.Time
}

// DefaultTuning returns the stock timeline constants.
func DefaultTuning() Tuning {
	return Tuning{
		BaseDayWidth: 30,
		MinScale:     0.25,
		MaxScale:     4.0,

		InitialBufferDays:   365,
		ExtendThresholdDays: 30,
		ExtendIncrementDays: 90,
		ExpandResetDelay:    100 * time.Millisecond,

		SnapEnabled:       true,
		SnapDebounce:      150 * time.Millisecond,
		SnapThreshold:     5,
		SnapDurationRatio: 0.8,

		TransitionDuration: 300 * time.Millisecond,

		MinDayTextWidth:    25,
		MinMonthLabelWidth: 60,

		RangeStart: time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC),
		RangeEnd:   time.Date(2040, time.December, 31, 0, 0, 0, 0, time.UTC),
	}
}

// ClampScale bounds scale to [MinScale, MaxScale]. NaN maps to 1 before clamping.
func (t Tuning) ClampScale(scale float64) float64 {
	if math.IsNaN(scale) {
		scale = 1
	}
	return math.Max(t.MinScale, math.Min(t.MaxScale, scale))
}

// DayWidth returns the pixel width of one day at the given scale.
func (t Tuning) DayWidth(scale float64) float64 {
	return t.BaseDayWidth * t.ClampScale(scale)
}

// SnapDuration is the duration of snap animations.
func (t Tuning) SnapDuration() time.Duration {
	return time.Duration(float64(t.TransitionDuration) * t.SnapDurationRatio)
}

// ClampDate bounds a date to the supported envelope.
func (t Tuning) ClampDate(d time.Time) time.Time {
	d = DateOf(d)
	if d.Before(t.RangeStart) {
		return DateOf(t.RangeStart)
	}
	if d.After(t.RangeEnd) {
		return DateOf(t.RangeEnd)
	}
	return d
}
