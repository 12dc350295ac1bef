package timeline

import (
	"math"
	"testing"
)

func TestEasingEndpoints(t *testing.T) {
	for _, e := range []Easing{EaseOutCubic, Bounce, Linear, "spring"} {
		if got := e.Apply(0); got != 0 {
			t.Errorf("%s.Apply(0) = %f, expected 0", e, got)
		}
		if got := e.Apply(1); got != 1 {
			t.Errorf("%s.Apply(1) = %f, expected 1", e, got)
		}
	}
}

func TestEasingCurves(t *testing.T) {
	tests := []struct {
		easing   Easing
		p        float64
		expected float64
	}{
		{Linear, 0.3, 0.3},
		{EaseOutCubic, 0.5, 0.875},
		{Bounce, 0.25, 0.0625},
		{Bounce, 0.5, 0.5},
		{Bounce, 0.75, 0.9375},
		{"unknown", 0.5, 0.875},
		{Linear, 1.5, 1},
		{Linear, -1, 0},
	}

	for _, test := range tests {
		if got := test.easing.Apply(test.p); math.Abs(got-test.expected) > 1e-12 {
			t.Errorf("%s.Apply(%f) = %f, expected %f", test.easing, test.p, got, test.expected)
		}
	}
}

func TestEasingKnown(t *testing.T) {
	if !Bounce.Known() || Easing("ease-in").Known() {
		t.Error("Expected only the named curves to be known")
	}
}

func TestEasingMonotonic(t *testing.T) {
	for _, e := range []Easing{EaseOutCubic, Bounce, Linear} {
		prev := 0.0
		for i := 1; i <= 100; i++ {
			v := e.Apply(float64(i) / 100)
			if v < prev {
				t.Fatalf("%s decreased at step %d", e, i)
			}
			prev = v
		}
	}
}
