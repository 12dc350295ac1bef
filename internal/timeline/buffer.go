package timeline

import (
	"math"
	"time"
)

// ViewportState is the geometry the engine renders from.
// CenterDate maps to x = 0; scrolling moves ScrollOffset, never the center.
type ViewportState struct {
	CenterDate     time.Time
	Scale          float64
	ScrollOffset   float64 // px from the origin to the left edge of the view
	ContainerWidth float64 // px
}

// VisibleCenter returns the origin-relative x of the middle of the view
func (v ViewportState) VisibleCenter() float64 {
	return v.ScrollOffset + v.ContainerWidth/2
}

// RangeBuffer is the window of dates for which cells are generated.
// It only grows, and never past the tuning envelope.
type RangeBuffer struct {
	Start time.Time
	End   time.Time

	tuning    Tuning
	expanding bool
	reset     *Debouncer
}

// NewRangeBuffer creates a buffer of InitialBufferDays on each side of center
func NewRangeBuffer(center time.Time, tuning Tuning, clock Clock) *RangeBuffer {
	b := &RangeBuffer{
		Start:  tuning.ClampDate(AddDays(center, -tuning.InitialBufferDays)),
		End:    tuning.ClampDate(AddDays(center, tuning.InitialBufferDays)),
		tuning: tuning,
	}
	b.reset = NewDebouncer(clock, tuning.ExpandResetDelay, func() {
		b.expanding = false
	})
	return b
}

// Days returns the number of days in the buffer, inclusive of both ends
func (b *RangeBuffer) Days() int {
	return DaysBetween(b.End, b.Start) + 1
}

// Expanding reports whether an expansion is still settling
func (b *RangeBuffer) Expanding() bool {
	return b.expanding
}

// Contains reports whether the date lies inside the buffer
func (b *RangeBuffer) Contains(date time.Time) bool {
	d := DateOf(date)
	return !d.Before(b.Start) && !d.After(b.End)
}

// CheckAndExpand grows the buffer on the side the viewport is approaching.
// It is a no-op while a previous expansion is settling and reports whether a bound moved.
func (b *RangeBuffer) CheckAndExpand(vp ViewportState, dayWidth float64) bool {
	if b.expanding || dayWidth <= 0 {
		return false
	}

	base := DaysBetween(vp.CenterDate, b.Start)
	startDays := int(math.Floor(vp.ScrollOffset/dayWidth)) + base
	endDays := int(math.Floor((vp.ScrollOffset+vp.ContainerWidth)/dayWidth)) + base
	total := DaysBetween(b.End, b.Start)

	start, end := b.Start, b.End
	if startDays < b.tuning.ExtendThresholdDays {
		start = b.tuning.ClampDate(AddDays(b.Start, -b.tuning.ExtendIncrementDays))
	}
	if endDays > total-b.tuning.ExtendThresholdDays {
		end = b.tuning.ClampDate(AddDays(b.End, b.tuning.ExtendIncrementDays))
	}
	if start.Equal(b.Start) && end.Equal(b.End) {
		return false
	}

	b.Start, b.End = start, end
	b.expanding = true
	b.reset.Trigger()
	return true
}

// Recenter makes sure the buffer covers center, growing it if needed
func (b *RangeBuffer) Recenter(center time.Time) {
	c := b.tuning.ClampDate(center)
	if c.Before(b.Start) {
		b.Start = b.tuning.ClampDate(AddDays(c, -b.tuning.InitialBufferDays))
	}
	if c.After(b.End) {
		b.End = b.tuning.ClampDate(AddDays(c, b.tuning.InitialBufferDays))
	}
}

// Stop cancels the pending expansion reset
func (b *RangeBuffer) Stop() {
	b.reset.Cancel()
	b.expanding = false
}
