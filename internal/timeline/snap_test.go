package timeline

import "testing"

func TestNearestSnapOffset(t *testing.T) {
	// June 2024 around a June 15 center at 30px/day: startX -420, centerX 30
	cells := GenerateMonthCells(date(2024, 5, 1), date(2024, 7, 31), testContext(30))

	tests := []struct {
		name     string
		offset   float64
		expected float64
	}{
		{"near june center", -400, 30 - 450},
		{"near june start", -850, -420 - 450},
		{"near july start", 0, 480 - 450},
		{"near july center", 500, 945 - 450},
	}

	for _, test := range tests {
		target, ok := NearestSnapOffset(cells, test.offset, 900)
		if !ok {
			t.Fatalf("%s: expected a snap target", test.name)
		}
		if target != test.expected {
			t.Errorf("%s: expected target %f, got %f", test.name, test.expected, target)
		}
	}
}

func TestNearestSnapOffset_NoCells(t *testing.T) {
	target, ok := NearestSnapOffset(nil, 123, 900)
	if ok || target != 123 {
		t.Errorf("Expected no target, got %f, %v", target, ok)
	}
}

func TestShouldSnap(t *testing.T) {
	tests := []struct {
		current, target float64
		expected        bool
	}{
		{100, 100, false},
		{100, 104.9, false},
		{100, 95.1, false},
		{100, 105, true},
		{100, 20, true},
	}

	for _, test := range tests {
		if got := ShouldSnap(test.current, test.target, 5); got != test.expected {
			t.Errorf("ShouldSnap(%f, %f) = %v, expected %v", test.current, test.target, got, test.expected)
		}
	}
}
