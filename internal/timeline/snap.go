package timeline

import "math"

// NearestSnapOffset returns the scroll offset that brings the month boundary or
// month center closest to the visible center into the middle of the view.
// ok is false when there are no cells.
func NearestSnapOffset(cells []MonthCell, scrollOffset, containerWidth float64) (target float64, ok bool) {
	center := scrollOffset + containerWidth/2
	best := math.Inf(1)
	var bestX float64

	for _, c := range cells {
		for _, x := range [2]float64{c.StartX, c.CenterX} {
			if d := math.Abs(x - center); d < best {
				best = d
				bestX = x
				ok = true
			}
		}
	}
	if !ok {
		return scrollOffset, false
	}
	return bestX - containerWidth/2, true
}

// ShouldSnap reports whether target is far enough from current to be worth animating
func ShouldSnap(current, target, threshold float64) bool {
	return math.Abs(target-current) >= threshold
}
