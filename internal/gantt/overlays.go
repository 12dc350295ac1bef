package gantt

import (
	"time"

	"github.com/ytget/gantt-planner/internal/timeline"
)

// Strip is a full-height highlight over one or more days
type Strip struct {
	Date  time.Time
	X     float64
	Width float64
}

// Gridline is a full-height line at the start of a week
type Gridline struct {
	Date time.Time
	X    float64
}

// Overlays are the absolutely positioned decorations behind the bars
type Overlays struct {
	Weekends  []Strip
	Today     *Strip // nil when today is outside the chart
	WeekLines []Gridline
}

// ComputeOverlays walks every day of [start, end]. The range is bounded by the
// chart, so nothing is culled here.
func ComputeOverlays(start, end, today time.Time, dayWidth float64) Overlays {
	var o Overlays
	first := timeline.DateOf(start)
	n := timeline.DaysBetween(end, first) + 1
	todayDate := timeline.DateOf(today)

	for i := 0; i < n; i++ {
		d := first.AddDate(0, 0, i)
		x := float64(i) * dayWidth

		switch d.Weekday() {
		case time.Saturday:
			// merge the weekend into one strip when Sunday is in range
			w := dayWidth
			if i+1 < n {
				w = 2 * dayWidth
			}
			o.Weekends = append(o.Weekends, Strip{Date: d, X: x, Width: w})
		case time.Sunday:
			if i == 0 {
				o.Weekends = append(o.Weekends, Strip{Date: d, X: x, Width: dayWidth})
			}
		case time.Monday:
			if i > 0 {
				o.WeekLines = append(o.WeekLines, Gridline{Date: d, X: x})
			}
		}

		if !today.IsZero() && d.Equal(todayDate) {
			o.Today = &Strip{Date: d, X: x, Width: dayWidth}
		}
	}
	return o
}
