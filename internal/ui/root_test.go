package ui

import (
	"strings"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"

	"github.com/ytget/gantt-planner/internal/config"
	"github.com/ytget/gantt-planner/internal/logging"
	"github.com/ytget/gantt-planner/internal/model"
	"github.com/ytget/gantt-planner/internal/platform"
	"github.com/ytget/gantt-planner/internal/project"
)

func newTestRootUI(t *testing.T) (*RootUI, *project.Store, fyne.Window) {
	t.Helper()
	app := test.NewApp()
	w := test.NewWindow(nil)
	t.Cleanup(w.Close)

	sample, err := platform.SampleProject()
	if err != nil {
		t.Fatalf("Expected the sample project to parse, got %v", err)
	}
	store := project.NewStore(sample, logging.Discard())
	ui := NewRootUI(w, app, store, config.NewSettings(app), config.DefaultFile(), logging.Discard())
	w.Resize(fyne.NewSize(1000, 600))
	return ui, store, w
}

func TestRootUIShowsProject(t *testing.T) {
	ui, store, w := newTestRootUI(t)

	if w.Title() != "Gantt Planner" {
		t.Errorf("Expected title Gantt Planner, got %q", w.Title())
	}
	if got := len(ui.Chart().Controller().Chart().Rows); got != len(store.Project().Tasks) {
		t.Errorf("Expected %d rows, got %d", len(store.Project().Tasks), got)
	}
	if !strings.HasPrefix(ui.projectLabel.Text, store.Project().Name) {
		t.Errorf("Expected the project name in %q", ui.projectLabel.Text)
	}
	if ui.zoomLabel.Text != "Zoom 100%" {
		t.Errorf("Expected Zoom 100%%, got %q", ui.zoomLabel.Text)
	}
}

func TestRootUIFollowsStore(t *testing.T) {
	ui, store, _ := newTestRootUI(t)

	p := model.NewProject("Small", day(2025, 1, 1), day(2025, 3, 31))
	p.AddTask(&model.Task{ID: "only", Title: "Only", StartDate: day(2025, 2, 1), EndDate: day(2025, 2, 3)})
	p.AddHoliday(model.Holiday{Date: day(2025, 1, 1), Name: "New Year"})
	store.Replace(p)

	chart := ui.Chart().Controller().Chart()
	if len(chart.Rows) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(chart.Rows))
	}
	if !chart.Start.Equal(day(2025, 1, 1)) || !chart.End.Equal(day(2025, 3, 31)) {
		t.Errorf("Expected the new range, got %v..%v", chart.Start, chart.End)
	}
	if ui.projectLabel.Text != "Small · 1 tasks" {
		t.Errorf("Expected %q, got %q", "Small · 1 tasks", ui.projectLabel.Text)
	}
}

func TestRootUILanguageChange(t *testing.T) {
	ui, _, w := newTestRootUI(t)

	ui.onLanguageChange("ru")

	if w.Title() != "Планировщик Ганта" {
		t.Errorf("Expected the Russian title, got %q", w.Title())
	}
	now := time.Now()
	want := ui.localization.MonthLabel(now.Year(), now.Month())
	found := false
	for _, c := range ui.Timeline().Engine().MonthCells() {
		if c.Year == now.Year() && c.Month == now.Month() {
			found = c.DisplayText == want
		}
	}
	if !found {
		t.Errorf("Expected the current month labelled %q", want)
	}
	if ui.settings.GetLanguage() != "ru" {
		t.Errorf("Expected the language saved, got %q", ui.settings.GetLanguage())
	}
}

func TestRootUIDateClickScrollsChart(t *testing.T) {
	ui, store, _ := newTestRootUI(t)
	p := store.Project()

	target := p.Start.AddDate(0, 1, 0)
	ui.onDateClick(target)

	c := ui.Chart().Controller()
	x, _ := c.Scroll()
	if x <= 0 {
		t.Errorf("Expected the chart scrolled towards %v, got x=%v", target, x)
	}
}
