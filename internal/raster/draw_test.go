package raster

import (
	"image"
	"image/color"
	"testing"
)

var (
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	red   = color.RGBA{R: 255, A: 255}
)

func TestNewCanvas(t *testing.T) {
	img := NewCanvas(0, -3, white)
	if img.Bounds().Dx() != 1 || img.Bounds().Dy() != 1 {
		t.Errorf("Expected 1x1 canvas for non-positive size, got %v", img.Bounds())
	}

	img = NewCanvas(4, 2, white)
	if got := img.RGBAAt(3, 1); got != white {
		t.Errorf("Expected background %v, got %v", white, got)
	}
}

func TestFillRectClipsToBounds(t *testing.T) {
	img := NewCanvas(10, 10, white)
	FillRect(img, image.Rect(-5, -5, 3, 3), red)

	if got := img.RGBAAt(0, 0); got != red {
		t.Errorf("Expected red at origin, got %v", got)
	}
	if got := img.RGBAAt(3, 3); got != white {
		t.Errorf("Expected white outside rect, got %v", got)
	}

	// fully outside: must not panic
	FillRect(img, image.Rect(20, 20, 30, 30), red)
}

func TestFillRectBlendsTranslucent(t *testing.T) {
	img := NewCanvas(2, 2, white)
	FillRect(img, img.Bounds(), Fade(red, 0.5))

	got := img.RGBAAt(0, 0)
	if got.R != 255 || got.G < 120 || got.G > 135 {
		t.Errorf("Expected half-blended pink, got %v", got)
	}
}

func TestFade(t *testing.T) {
	tests := []struct {
		opacity float64
		alpha   uint8
	}{
		{1, 255},
		{0, 0},
		{-1, 0},
		{2, 255},
	}

	for _, test := range tests {
		if got := Fade(red, test.opacity); got.A != test.alpha {
			t.Errorf("Fade(%f).A = %d, expected %d", test.opacity, got.A, test.alpha)
		}
	}
}

func TestRectF(t *testing.T) {
	r := RectF(1.4, 2.6, 10.2, 3.3)
	expected := image.Rect(1, 3, 12, 6)
	if r != expected {
		t.Errorf("Expected %v, got %v", expected, r)
	}
}

func TestFaceCachedPerSize(t *testing.T) {
	a := Face(12)
	b := Face(12)
	if a != b {
		t.Error("Expected the same face instance for the same size")
	}
	if MeasureText(Face(24), "Mo") <= MeasureText(Face(12), "Mo") {
		t.Error("Expected larger face to measure wider")
	}
}

func TestDrawTextClipped(t *testing.T) {
	img := NewCanvas(40, 20, white)
	face := Face(DefaultTextSize)

	DrawTextClipped(img, face, "A very long task title", 0, 14, 30, red)

	inked := false
	for x := 33; x < 40; x++ {
		for y := 0; y < 20; y++ {
			if img.RGBAAt(x, y) != white {
				inked = true
			}
		}
	}
	if inked {
		t.Error("Expected text to stay within maxWidth")
	}
}
