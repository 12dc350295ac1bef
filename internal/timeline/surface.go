package timeline

import (
	"image"
	"math"

	"github.com/ytget/gantt-planner/internal/raster"
)

// LiveView is the instantaneous geometry used for drawing, which may be mid-animation
type LiveView struct {
	Offset   float64
	Scale    float64
	DayWidth float64
}

// Surface draws the month and day strips into RGBA images.
// Sizes passed in are device pixels; PixelScale converts logical px to device px.
type Surface struct {
	Palette  Palette
	Tuning   Tuning
	TextSize float64 // logical px
}

// NewSurface creates a surface with the default text size
func NewSurface(palette Palette, tuning Tuning) *Surface {
	return &Surface{Palette: palette, Tuning: tuning, TextSize: raster.DefaultTextSize}
}

// DrawMonths renders the month strip and returns the image and the number of cells drawn
func (s *Surface) DrawMonths(cells []MonthCell, live LiveView, w, h int, pixelScale float64) (*image.RGBA, int) {
	img := raster.NewCanvas(w, h, s.Palette.Background)
	if pixelScale <= 0 || live.DayWidth <= 0 {
		return img, 0
	}

	canvasWidth := float64(w) / pixelScale
	half := canvasWidth / 2
	face := raster.Face(s.TextSize * pixelScale)
	drawn := 0

	for _, c := range cells {
		x := float64(c.StartDay)*live.DayWidth - live.Offset
		width := float64(c.Days) * live.DayWidth
		if x+width < -width || x > canvasWidth+width {
			continue
		}
		drawn++

		band := s.Palette.MonthBand
		if (c.Year*12+int(c.Month))%2 == 0 {
			band = s.Palette.MonthBandAlt
		}
		raster.FillRectF(img, x*pixelScale, 0, width*pixelScale, float64(h), band)
		raster.VLine(img, int(math.Round(x*pixelScale)), 0, h, s.Palette.Separator)

		// Label threshold uses the live width of the whole month
		if width < s.Tuning.MinMonthLabelWidth {
			continue
		}
		opacity := MonthOpacity(x+width/2, half, half)
		if opacity <= 0 {
			continue
		}
		cx := int(math.Round((x + width/2) * pixelScale))
		raster.DrawTextCentered(img, face, c.DisplayText, cx, h/2, raster.Fade(s.Palette.MonthText, opacity))
	}
	return img, drawn
}

// DrawDays renders the day strip and returns the image and the number of cells drawn
func (s *Surface) DrawDays(cells []DayCell, live LiveView, w, h int, pixelScale float64) (*image.RGBA, int) {
	img := raster.NewCanvas(w, h, s.Palette.Background)
	if pixelScale <= 0 || live.DayWidth <= 0 {
		return img, 0
	}

	canvasWidth := float64(w) / pixelScale
	dw := live.DayWidth
	face := raster.Face(s.TextSize * pixelScale)
	// Evaluated against the live width every frame, independent of DayCell.ShowText
	showText := dw >= s.Tuning.MinDayTextWidth
	drawn := 0

	for _, c := range cells {
		x := float64(c.DayIndex)*dw - live.Offset
		if x+dw < -dw || x > canvasWidth+dw {
			continue
		}
		drawn++

		px := x * pixelScale
		raster.FillRectF(img, px, 0, dw*pixelScale, float64(h), c.Background)
		raster.VLine(img, int(math.Round(px)), 0, h, s.Palette.Separator)

		if c.IsHoliday || c.IsEvent {
			marker := s.Palette.Holiday
			if !c.IsHoliday {
				marker = s.Palette.Event
			}
			if c.IsToday || marker == c.Background {
				marker = c.TextColor
			}
			size := math.Max(2, 3*pixelScale)
			raster.FillRectF(img, px+dw*pixelScale/2-size/2, float64(h)-2*size, size, size, marker)
		}

		if showText {
			cx := int(math.Round(px + dw*pixelScale/2))
			raster.DrawTextCentered(img, face, c.Number(), cx, h/2, c.TextColor)
		}
	}
	return img, drawn
}
