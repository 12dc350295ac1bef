package timeline

import "math"

// Easing names a progress curve
type Easing string

const (
	EaseOutCubic Easing = "ease-out-cubic"
	Bounce       Easing = "bounce"
	Linear       Easing = "linear"
)

// Apply maps linear progress p in [0, 1] through the curve.
// Unknown names behave as EaseOutCubic.
func (e Easing) Apply(p float64) float64 {
	p = math.Max(0, math.Min(1, p))
	switch e {
	case Linear:
		return p
	case Bounce:
		if p < 0.5 {
			return 4 * p * p * p
		}
		return 1 - math.Pow(-2*p+2, 3)/2
	default:
		return 1 - math.Pow(1-p, 3)
	}
}

// Known reports whether the curve is one of the named set
func (e Easing) Known() bool {
	switch e {
	case EaseOutCubic, Bounce, Linear:
		return true
	}
	return false
}

func lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}
