package timeline

import (
	"testing"
	"time"

	"github.com/ytget/gantt-planner/internal/model"
)

func testContext(dayWidth float64) CellContext {
	return CellContext{
		Center:          date(2024, 6, 15),
		Today:           date(2024, 6, 15),
		DayWidth:        dayWidth,
		Palette:         DefaultPalette(),
		MinDayTextWidth: DefaultTuning().MinDayTextWidth,
	}
}

func TestGenerateMonthCells(t *testing.T) {
	ctx := testContext(30)
	cells := GenerateMonthCells(date(2024, 5, 20), date(2024, 7, 3), ctx)

	if len(cells) != 3 {
		t.Fatalf("Expected 3 months (May, June, July), got %d", len(cells))
	}

	june := cells[1]
	if june.Month != time.June || june.Year != 2024 {
		t.Fatalf("Expected June 2024, got %s %d", june.Month, june.Year)
	}
	if june.StartDay != -14 || june.Days != 30 {
		t.Errorf("Expected StartDay -14 and 30 days, got %d and %d", june.StartDay, june.Days)
	}
	if june.StartX != -420 || june.Width != 900 || june.CenterX != 30 {
		t.Errorf("Unexpected June geometry: startX=%f width=%f centerX=%f", june.StartX, june.Width, june.CenterX)
	}
	if !june.EndDate.Equal(date(2024, 6, 30)) {
		t.Errorf("Expected June to end on the 30th, got %v", june.EndDate)
	}
	if june.DisplayText != "June 2024" {
		t.Errorf("Expected default label 'June 2024', got '%s'", june.DisplayText)
	}

	// partial months keep full calendar geometry
	if cells[0].Days != 31 || !cells[0].StartDate.Equal(date(2024, 5, 1)) {
		t.Errorf("Expected full May geometry, got start %v and %d days", cells[0].StartDate, cells[0].Days)
	}
}

func TestGenerateMonthCells_Labeler(t *testing.T) {
	ctx := testContext(30)
	ctx.Labeler = MonthLabelFunc(func(year int, month time.Month) string {
		return "M" + month.String()[:3]
	})

	cells := GenerateMonthCells(date(2024, 6, 1), date(2024, 6, 30), ctx)
	if len(cells) != 1 || cells[0].DisplayText != "MJun" {
		t.Errorf("Expected custom label, got %+v", cells)
	}
}

func TestApplyMonthOpacity(t *testing.T) {
	cells := []MonthCell{{CenterX: 450}, {CenterX: 675}, {CenterX: 900}, {CenterX: -2000}}
	ApplyMonthOpacity(cells, 0, 900)

	expected := []float64{1, 0.5, 0, 0}
	for i, c := range cells {
		if c.Opacity != expected[i] {
			t.Errorf("Cell %d: expected opacity %f, got %f", i, expected[i], c.Opacity)
		}
	}

	ApplyMonthOpacity(cells, 0, 0)
	for i, c := range cells {
		if c.Opacity != 1 {
			t.Errorf("Cell %d: expected opacity 1 with zero width, got %f", i, c.Opacity)
		}
	}
}

func TestGenerateDayCells_Geometry(t *testing.T) {
	ctx := testContext(30)
	cells := GenerateDayCells(date(2024, 6, 1), date(2024, 6, 30), ctx)

	if len(cells) != 30 {
		t.Fatalf("Expected 30 cells, got %d", len(cells))
	}

	byDate := map[string]DayCell{}
	for _, c := range cells {
		byDate[c.Date.Format("2006-01-02")] = c
	}

	tests := []struct {
		day string
		x   float64
	}{
		{"2024-06-15", 0},
		{"2024-06-20", 150},
		{"2024-06-10", -150},
	}
	for _, test := range tests {
		c, ok := byDate[test.day]
		if !ok {
			t.Fatalf("Missing cell for %s", test.day)
		}
		if c.X != test.x || c.Width != 30 {
			t.Errorf("%s: expected x=%f width=30, got x=%f width=%f", test.day, test.x, c.X, c.Width)
		}
	}

	if !byDate["2024-06-15"].IsWeekend || byDate["2024-06-17"].IsWeekend {
		t.Error("Expected Saturday 15th to be a weekend and Monday 17th not")
	}
}

func TestGenerateDayCells_ShowText(t *testing.T) {
	tests := []struct {
		dayWidth float64
		expected bool
	}{
		{24.9, false},
		{25, true},
		{30, true},
		{7.5, false},
	}

	for _, test := range tests {
		cells := GenerateDayCells(date(2024, 6, 1), date(2024, 6, 1), testContext(test.dayWidth))
		if cells[0].ShowText != test.expected {
			t.Errorf("ShowText at %f = %v, expected %v", test.dayWidth, cells[0].ShowText, test.expected)
		}
	}
}

func TestGenerateDayCells_ColorPrecedence(t *testing.T) {
	p := DefaultPalette()
	end := date(2024, 6, 16)
	ctx := testContext(30)
	ctx.Annotations = NewAnnotations(
		[]model.Holiday{
			{Date: date(2024, 6, 15), Name: "Founders Day", Color: "#ff0000"},
			{Date: date(2024, 6, 16), Name: "Sunday Fest", Color: "#00ff00"},
		},
		[]model.Event{
			{StartDate: date(2024, 6, 14), EndDate: &end, Name: "Offsite", Color: "#0000ff"},
			{StartDate: date(2024, 6, 22), Name: "Retro"},
		},
	)

	cells := GenerateDayCells(date(2024, 6, 13), date(2024, 6, 22), ctx)
	byDay := map[int]DayCell{}
	for _, c := range cells {
		byDay[c.Date.Day()] = c
	}

	// today + holiday + weekend + event: today wins
	if c := byDay[15]; c.Background != p.Today || !c.IsHoliday || !c.IsWeekend || !c.IsEvent {
		t.Errorf("Expected today color on the 15th with all flags set, got %+v", c)
	}
	// holiday beats event and weekend
	if c := byDay[16]; c.Background != ParseColor("#00ff00", p.Holiday) {
		t.Errorf("Expected holiday color on the 16th, got %v", c.Background)
	}
	// event beats default
	if c := byDay[14]; c.Background != ParseColor("#0000ff", p.Event) || c.Label != "Offsite" {
		t.Errorf("Expected event color and label on the 14th, got %+v", c)
	}
	// event without color beats weekend and uses the palette event color
	if c := byDay[22]; c.Background != p.Event {
		t.Errorf("Expected palette event color on Saturday 22nd, got %v", c.Background)
	}
	// plain weekday
	if c := byDay[13]; c.Background != p.Day {
		t.Errorf("Expected default color on Thursday 13th, got %v", c.Background)
	}
	if c := byDay[16]; c.Label != "Sunday Fest" {
		t.Errorf("Expected holiday name to win the label, got '%s'", c.Label)
	}

	weekend := GenerateDayCells(date(2024, 6, 23), date(2024, 6, 23), ctx)[0]
	if weekend.Background != p.Weekend || weekend.TextColor != p.WeekendText {
		t.Errorf("Expected weekend colors on Sunday 23rd, got %+v", weekend)
	}
}

func TestParseColor(t *testing.T) {
	fallback := DefaultPalette().Holiday

	if got := ParseColor("", fallback); got != fallback {
		t.Errorf("Expected fallback for empty string, got %v", got)
	}
	if got := ParseColor("not-a-color", fallback); got != fallback {
		t.Errorf("Expected fallback for invalid string, got %v", got)
	}
	if got := ParseColor("#336699", fallback); got.R != 0x33 || got.G != 0x66 || got.B != 0x99 || got.A != 0xff {
		t.Errorf("Expected #336699, got %v", got)
	}
}

func TestContrastText(t *testing.T) {
	p := DefaultPalette()
	if got := p.ContrastText(ParseColor("#1e3a8a", p.Day)); got != p.LightText {
		t.Errorf("Expected light text on dark blue, got %v", got)
	}
	if got := p.ContrastText(ParseColor("#fef3c7", p.Day)); got != p.DarkText {
		t.Errorf("Expected dark text on pale yellow, got %v", got)
	}
}
