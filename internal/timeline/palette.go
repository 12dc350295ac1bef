package timeline

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette holds the colors used by the cell generators and the surface
type Palette struct {
	Background   color.RGBA
	MonthBand    color.RGBA
	MonthBandAlt color.RGBA
	MonthText    color.RGBA
	Day          color.RGBA
	DayText      color.RGBA
	Weekend      color.RGBA
	WeekendText  color.RGBA
	Today        color.RGBA
	TodayText    color.RGBA
	Holiday      color.RGBA
	Event        color.RGBA
	Separator    color.RGBA
	LightText    color.RGBA
	DarkText     color.RGBA
}

// DefaultPalette is the light planner palette
func DefaultPalette() Palette {
	return Palette{
		Background:   color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		MonthBand:    color.RGBA{R: 0xf1, G: 0xf3, B: 0xf6, A: 0xff},
		MonthBandAlt: color.RGBA{R: 0xe6, G: 0xea, B: 0xf0, A: 0xff},
		MonthText:    color.RGBA{R: 0x27, G: 0x2f, B: 0x3a, A: 0xff},
		Day:          color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		DayText:      color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff},
		Weekend:      color.RGBA{R: 0xf3, G: 0xf4, B: 0xf6, A: 0xff},
		WeekendText:  color.RGBA{R: 0x9c, G: 0xa3, B: 0xaf, A: 0xff},
		Today:        color.RGBA{R: 0x25, G: 0x63, B: 0xeb, A: 0xff},
		TodayText:    color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Holiday:      color.RGBA{R: 0xfe, G: 0xe2, B: 0xe2, A: 0xff},
		Event:        color.RGBA{R: 0xfe, G: 0xf3, B: 0xc7, A: 0xff},
		Separator:    color.RGBA{R: 0xe5, G: 0xe7, B: 0xeb, A: 0xff},
		LightText:    color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		DarkText:     color.RGBA{R: 0x1f, G: 0x29, B: 0x37, A: 0xff},
	}
}

// ParseColor parses a "#rrggbb" string, returning fallback for empty or invalid input
func ParseColor(hex string, fallback color.RGBA) color.RGBA {
	if hex == "" {
		return fallback
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return fallback
	}
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// ContrastText picks light or dark text for the given background
func (p Palette) ContrastText(bg color.RGBA) color.RGBA {
	c, ok := colorful.MakeColor(bg)
	if !ok {
		return p.DarkText
	}
	l, _, _ := c.Lab()
	if l < 0.6 {
		return p.LightText
	}
	return p.DarkText
}
