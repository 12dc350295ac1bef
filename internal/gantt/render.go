package gantt

import (
	"image"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font"

	"github.com/ytget/gantt-planner/internal/raster"
	"github.com/ytget/gantt-planner/internal/timeline"
)

// Style holds the chart colors
type Style struct {
	Background color.RGBA
	RowAlt     color.RGBA
	RowLine    color.RGBA
	Weekend    color.RGBA
	Today      color.RGBA
	WeekLine   color.RGBA
	Bar        color.RGBA
	Group      color.RGBA
	Text       color.RGBA
}

// DefaultStyle is the light chart style
func DefaultStyle() Style {
	return Style{
		Background: color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		RowAlt:     color.RGBA{R: 0xf9, G: 0xfa, B: 0xfb, A: 0xff},
		RowLine:    color.RGBA{R: 0xf0, G: 0xf1, B: 0xf3, A: 0xff},
		Weekend:    color.RGBA{R: 0x0b, G: 0x0c, B: 0x0e, A: 0x12},
		Today:      color.RGBA{R: 0x08, G: 0x16, B: 0x34, A: 0x38}, // premultiplied
		WeekLine:   color.RGBA{R: 0xe5, G: 0xe7, B: 0xeb, A: 0xff},
		Bar:        color.RGBA{R: 0x3b, G: 0x82, B: 0xf6, A: 0xff},
		Group:      color.RGBA{R: 0x37, G: 0x41, B: 0x51, A: 0xff},
		Text:       color.RGBA{R: 0x1f, G: 0x29, B: 0x37, A: 0xff},
	}
}

// Renderer draws a laid-out chart into an RGBA image
type Renderer struct {
	Style    Style
	Palette  timeline.Palette // contrast text on bars
	TextSize float64
}

// NewRenderer creates a renderer with the default style
func NewRenderer() *Renderer {
	return &Renderer{
		Style:    DefaultStyle(),
		Palette:  timeline.DefaultPalette(),
		TextSize: raster.DefaultTextSize,
	}
}

// Draw renders the part of the chart under the viewport at (scrollX, scrollY).
// w and h are device pixels. Only rows intersecting the viewport are drawn;
// it returns the image and the number of rows drawn.
func (r *Renderer) Draw(chart Chart, ov Overlays, scrollX, scrollY float64, w, h int, pixelScale float64) (*image.RGBA, int) {
	img := raster.NewCanvas(w, h, r.Style.Background)
	if pixelScale <= 0 || chart.RowHeight <= 0 {
		return img, 0
	}
	ps := pixelScale
	viewH := float64(h) / ps
	first, last := chart.VisibleRows(scrollY, viewH)

	for i := first; i < last; i++ {
		y := (chart.Rows[i].Y - scrollY) * ps
		if i%2 == 1 {
			raster.FillRectF(img, 0, y, float64(w), chart.RowHeight*ps, r.Style.RowAlt)
		}
		raster.HLine(img, int(math.Round(y+chart.RowHeight*ps))-1, 0, w, r.Style.RowLine)
	}

	for _, s := range ov.Weekends {
		raster.FillRectF(img, (s.X-scrollX)*ps, 0, s.Width*ps, float64(h), r.Style.Weekend)
	}
	for _, g := range ov.WeekLines {
		raster.VLine(img, int(math.Round((g.X-scrollX)*ps)), 0, h, r.Style.WeekLine)
	}
	if ov.Today != nil {
		raster.FillRectF(img, (ov.Today.X-scrollX)*ps, 0, ov.Today.Width*ps, float64(h), r.Style.Today)
	}

	face := raster.Face(r.TextSize * ps)
	for i := first; i < last; i++ {
		b := chart.Bars[i]
		if b.Task == nil {
			continue
		}
		r.drawBar(img, face, b, scrollX, scrollY, ps)
	}
	return img, last - first
}

func (r *Renderer) drawBar(img *image.RGBA, face font.Face, b Bar, scrollX, scrollY, ps float64) {
	x := (b.X - scrollX) * ps
	y := (b.Y - scrollY) * ps
	w := b.Width * ps
	h := b.Height * ps

	fill := r.Style.Bar
	if b.IsGroup {
		fill = r.Style.Group
	}
	fill = timeline.ParseColor(b.Task.Color, fill)
	raster.FillRectF(img, x, y, w, h, fill)

	if b.IsGroup {
		// end caps below the composite bar
		size := math.Max(2, 4*ps)
		raster.FillRectF(img, x, y+h, size, size, fill)
		raster.FillRectF(img, x+w-size, y+h, size, size, fill)
	} else if p := math.Max(0, math.Min(1, b.Task.Progress)); p > 0 {
		raster.FillRectF(img, x, y, w*p, h, darken(fill, 0.3))
	}

	title := b.Task.GetDisplayTitle()
	pad := int(math.Round(4 * ps))
	baseline := int(math.Round(y+h/2)) + (face.Metrics().Ascent.Ceil()-face.Metrics().Descent.Ceil())/2
	if tw := raster.MeasureText(face, title); !b.IsGroup && float64(tw+2*pad) <= w {
		raster.DrawText(img, face, title, int(math.Round(x))+pad, baseline, r.Palette.ContrastText(fill))
		return
	}
	raster.DrawText(img, face, title, int(math.Round(x+w))+pad, baseline, r.Style.Text)
}

// darken blends c towards black in Lab space
func darken(c color.RGBA, amount float64) color.RGBA {
	cc, ok := colorful.MakeColor(c)
	if !ok {
		return c
	}
	rr, gg, bb := cc.BlendLab(colorful.Color{}, amount).Clamped().RGB255()
	return color.RGBA{R: rr, G: gg, B: bb, A: c.A}
}
