package ui

import (
	"bytes"
	"image/color"
	"image/png"

	"fyne.io/fyne/v2"

	"github.com/ytget/gantt-planner/internal/gantt"
	"github.com/ytget/gantt-planner/internal/raster"
)

const (
	AppIconName = "gantt-planner.png"
	AppIconSize = 64
)

// LoadLogoResource draws the application icon: three staggered bars in the chart colors
func LoadLogoResource() (fyne.Resource, error) {
	style := gantt.DefaultStyle()
	img := raster.NewCanvas(AppIconSize, AppIconSize, color.RGBA{})

	unit := float64(AppIconSize) / 8
	raster.FillRectF(img, unit, unit*1.5, unit*4, unit, style.Group)
	raster.FillRectF(img, unit*2, unit*3.5, unit*3, unit, style.Bar)
	raster.FillRectF(img, unit*4, unit*5.5, unit*3, unit, style.Bar)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return fyne.NewStaticResource(AppIconName, buf.Bytes()), nil
}
