package timeline

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"time"

	"github.com/ytget/gantt-planner/internal/model"
)

// MonthLabeler produces the header text of a month
type MonthLabeler interface {
	MonthLabel(year int, month time.Month) string
}

// MonthLabelFunc adapts a function to MonthLabeler
type MonthLabelFunc func(year int, month time.Month) string

func (f MonthLabelFunc) MonthLabel(year int, month time.Month) string {
	return f(year, month)
}

// EnglishMonths labels months as "June 2024"
var EnglishMonths = MonthLabelFunc(func(year int, month time.Month) string {
	return fmt.Sprintf("%s %d", month.String(), year)
})

// MonthCell is one calendar month of the header strip
type MonthCell struct {
	Year      int
	Month     time.Month
	StartDate time.Time
	EndDate   time.Time

	// Whole-day geometry relative to the center date, used to re-project at a live day width
	StartDay int
	Days     int

	StartX  float64
	Width   float64
	CenterX float64

	DisplayText string
	Opacity     float64
}

// DayCell is one day of the day strip
type DayCell struct {
	Date     time.Time
	DayIndex int // days from the center date
	X        float64
	Width    float64

	IsWeekend bool
	IsToday   bool
	IsHoliday bool
	IsEvent   bool
	Label     string // holiday or event name

	Background color.RGBA
	TextColor  color.RGBA
	ShowText   bool
}

// Number returns the day-of-month text drawn in the cell
func (c DayCell) Number() string {
	return strconv.Itoa(c.Date.Day())
}

// Annotations indexes holidays and events by calendar day
type Annotations struct {
	holidays map[string]model.Holiday
	events   []model.Event
}

// NewAnnotations builds a lookup over the given holidays and events.
// When two holidays share a day the first one wins.
func NewAnnotations(holidays []model.Holiday, events []model.Event) *Annotations {
	a := &Annotations{
		holidays: make(map[string]model.Holiday, len(holidays)),
		events:   events,
	}
	for _, h := range holidays {
		key := DateOf(h.Date).Format(model.DateKeyLayout)
		if _, ok := a.holidays[key]; !ok {
			a.holidays[key] = h
		}
	}
	return a
}

// HolidayOn returns the holiday on the given day
func (a *Annotations) HolidayOn(date time.Time) (model.Holiday, bool) {
	if a == nil {
		return model.Holiday{}, false
	}
	h, ok := a.holidays[DateOf(date).Format(model.DateKeyLayout)]
	return h, ok
}

// EventOn returns the first event covering the given day
func (a *Annotations) EventOn(date time.Time) (model.Event, bool) {
	if a == nil {
		return model.Event{}, false
	}
	for _, e := range a.events {
		if e.Covers(date) {
			return e, true
		}
	}
	return model.Event{}, false
}

// CellContext carries the inputs shared by both generators
type CellContext struct {
	Center          time.Time
	Today           time.Time
	DayWidth        float64
	Annotations     *Annotations
	Palette         Palette
	Labeler         MonthLabeler
	MinDayTextWidth float64
}

// GenerateMonthCells emits one cell per calendar month touched by [start, end].
// Geometry covers the full calendar month even when the buffer clips it.
func GenerateMonthCells(start, end time.Time, ctx CellContext) []MonthCell {
	labeler := ctx.Labeler
	if labeler == nil {
		labeler = EnglishMonths
	}

	last := DateOf(end)
	y, m, _ := DateOf(start).Date()
	cursor := time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)

	var cells []MonthCell
	for !cursor.After(last) {
		next := cursor.AddDate(0, 1, 0)
		startDay := DaysBetween(cursor, ctx.Center)
		days := DaysBetween(next, cursor)
		startX := float64(startDay) * ctx.DayWidth
		width := float64(days) * ctx.DayWidth

		cells = append(cells, MonthCell{
			Year:        cursor.Year(),
			Month:       cursor.Month(),
			StartDate:   cursor,
			EndDate:     next.AddDate(0, 0, -1),
			StartDay:    startDay,
			Days:        days,
			StartX:      startX,
			Width:       width,
			CenterX:     startX + width/2,
			DisplayText: labeler.MonthLabel(cursor.Year(), cursor.Month()),
			Opacity:     1,
		})
		cursor = next
	}
	return cells
}

// ApplyMonthOpacity fades cells linearly with distance from the visible center,
// reaching 0 at half the container width.
func ApplyMonthOpacity(cells []MonthCell, scrollOffset, containerWidth float64) {
	half := containerWidth / 2
	center := scrollOffset + half
	for i := range cells {
		cells[i].Opacity = MonthOpacity(cells[i].CenterX, center, half)
	}
}

// MonthOpacity returns the fade factor for a cell centered at cellCenter
func MonthOpacity(cellCenter, viewCenter, half float64) float64 {
	if half <= 0 {
		return 1
	}
	return math.Max(0, 1-math.Abs(cellCenter-viewCenter)/half)
}

// GenerateDayCells emits one cell per day in [start, end] with resolved colors.
// ShowText here uses the day width the cells were generated at; drawing checks the live width again.
func GenerateDayCells(start, end time.Time, ctx CellContext) []DayCell {
	first := DateOf(start)
	n := DaysBetween(end, first) + 1
	if n <= 0 {
		return nil
	}

	today := DateOf(ctx.Today)
	cells := make([]DayCell, 0, n)
	for i := 0; i < n; i++ {
		date := first.AddDate(0, 0, i)
		index := DaysBetween(date, ctx.Center)
		cell := DayCell{
			Date:      date,
			DayIndex:  index,
			X:         float64(index) * ctx.DayWidth,
			Width:     ctx.DayWidth,
			IsWeekend: date.Weekday() == time.Saturday || date.Weekday() == time.Sunday,
			IsToday:   !ctx.Today.IsZero() && date.Equal(today),
			ShowText:  ctx.DayWidth >= ctx.MinDayTextWidth,
		}

		var holidayColor, eventColor string
		if h, ok := ctx.Annotations.HolidayOn(date); ok {
			cell.IsHoliday = true
			cell.Label = h.Name
			holidayColor = h.Color
		}
		if e, ok := ctx.Annotations.EventOn(date); ok {
			cell.IsEvent = true
			if cell.Label == "" {
				cell.Label = e.Name
			}
			eventColor = e.Color
		}

		resolveDayColors(&cell, holidayColor, eventColor, ctx.Palette)
		cells = append(cells, cell)
	}
	return cells
}

// resolveDayColors applies today > holiday > event > weekend > default
func resolveDayColors(cell *DayCell, holidayColor, eventColor string, p Palette) {
	switch {
	case cell.IsToday:
		cell.Background = p.Today
		cell.TextColor = p.TodayText
	case cell.IsHoliday:
		cell.Background = ParseColor(holidayColor, p.Holiday)
		cell.TextColor = p.ContrastText(cell.Background)
	case cell.IsEvent:
		cell.Background = ParseColor(eventColor, p.Event)
		cell.TextColor = p.ContrastText(cell.Background)
	case cell.IsWeekend:
		cell.Background = p.Weekend
		cell.TextColor = p.WeekendText
	default:
		cell.Background = p.Day
		cell.TextColor = p.DayText
	}
}
