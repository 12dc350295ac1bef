package raster

import (
	"image"
	"image/color"
	"math"
	"sync"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// DefaultTextSize is the label size in logical pixels
const DefaultTextSize = 11.0

var (
	fontOnce sync.Once
	fontData *opentype.Font

	facesMu sync.Mutex
	faces   = map[int]font.Face{}
)

// Face returns a Go Regular face for the given pixel size, cached per size.
// It falls back to the fixed 7x13 face if the embedded font cannot be parsed.
func Face(size float64) font.Face {
	fontOnce.Do(func() {
		f, err := opentype.Parse(goregular.TTF)
		if err == nil {
			fontData = f
		}
	})
	if fontData == nil || size <= 0 {
		return basicfont.Face7x13
	}

	key := int(math.Round(size * 4))
	facesMu.Lock()
	defer facesMu.Unlock()
	if face, ok := faces[key]; ok {
		return face
	}
	face, err := opentype.NewFace(fontData, &opentype.FaceOptions{
		Size:    float64(key) / 4,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return basicfont.Face7x13
	}
	faces[key] = face
	return face
}

// NewCanvas allocates a w x h image filled with bg. Non-positive sizes yield a 1x1 image.
func NewCanvas(w, h int, bg color.RGBA) *image.RGBA {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	return img
}

// FillRect fills r (clipped to img) with c, blending when c is translucent
func FillRect(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	r = r.Intersect(img.Bounds())
	if r.Empty() || c.A == 0 {
		return
	}
	op := draw.Over
	if c.A == 0xff {
		op = draw.Src
	}
	draw.Draw(img, r, image.NewUniform(c), image.Point{}, op)
}

// FillRectF fills a rectangle given in float device coordinates
func FillRectF(img *image.RGBA, x, y, w, h float64, c color.RGBA) {
	FillRect(img, RectF(x, y, w, h), c)
}

// RectF rounds a float rectangle to pixel edges
func RectF(x, y, w, h float64) image.Rectangle {
	return image.Rect(
		int(math.Round(x)), int(math.Round(y)),
		int(math.Round(x+w)), int(math.Round(y+h)),
	)
}

// VLine draws a one-pixel vertical line at x from y0 to y1
func VLine(img *image.RGBA, x, y0, y1 int, c color.RGBA) {
	FillRect(img, image.Rect(x, y0, x+1, y1), c)
}

// HLine draws a one-pixel horizontal line at y from x0 to x1
func HLine(img *image.RGBA, y, x0, x1 int, c color.RGBA) {
	FillRect(img, image.Rect(x0, y, x1, y+1), c)
}

// Fade scales the alpha of c by opacity in [0, 1]. The result is premultiplied.
func Fade(c color.RGBA, opacity float64) color.RGBA {
	opacity = math.Max(0, math.Min(1, opacity))
	return color.RGBA{
		R: uint8(float64(c.R) * opacity),
		G: uint8(float64(c.G) * opacity),
		B: uint8(float64(c.B) * opacity),
		A: uint8(float64(c.A) * opacity),
	}
}

// MeasureText returns the advance width of s in pixels
func MeasureText(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}

// DrawText draws s with its baseline at (x, y)
func DrawText(img *image.RGBA, face font.Face, s string, x, y int, c color.RGBA) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// DrawTextCentered draws s centered on (cx, cy)
func DrawTextCentered(img *image.RGBA, face font.Face, s string, cx, cy int, c color.RGBA) {
	m := face.Metrics()
	width := MeasureText(face, s)
	baseline := cy + (m.Ascent.Ceil()-m.Descent.Ceil())/2
	DrawText(img, face, s, cx-width/2, baseline, c)
}

// DrawTextClipped draws s at (x, y) truncated with an ellipsis to fit maxWidth.
// Nothing is drawn when not even the ellipsis fits.
func DrawTextClipped(img *image.RGBA, face font.Face, s string, x, y, maxWidth int, c color.RGBA) {
	if MeasureText(face, s) <= maxWidth {
		DrawText(img, face, s, x, y, c)
		return
	}
	const ellipsis = "…"
	runes := []rune(s)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		candidate := string(runes) + ellipsis
		if MeasureText(face, candidate) <= maxWidth {
			DrawText(img, face, candidate, x, y, c)
			return
		}
	}
}
