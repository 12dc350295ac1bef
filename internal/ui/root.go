package ui

import (
	"context"
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/charmbracelet/log"

	"github.com/ytget/gantt-planner/internal/config"
	"github.com/ytget/gantt-planner/internal/gantt"
	"github.com/ytget/gantt-planner/internal/model"
	"github.com/ytget/gantt-planner/internal/platform"
	"github.com/ytget/gantt-planner/internal/project"
	"github.com/ytget/gantt-planner/internal/timeline"
)

// Project loading constants
const (
	RootLoadTimeout = 10 * time.Second
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	store        project.Repository
	settings     *config.Settings
	tuning       config.File
	localization *Localization
	logger       *log.Logger
	mobile       *MobileUI

	timeline *TimelineView
	chart    *GanttView

	todayBtn     *widget.Button
	zoomLabel    *widget.Label
	projectLabel *widget.Label

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationSpinner   *widget.ProgressBarInfinite
}

// NewRootUI creates and initializes the main UI for the project held by store
func NewRootUI(window fyne.Window, app fyne.App, store project.Repository, settings *config.Settings, tuning config.File, logger *log.Logger) *RootUI {
	if logger == nil {
		logger = log.Default()
	}

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		store:        store,
		settings:     settings,
		tuning:       tuning,
		localization: localization,
		logger:       logger,
		mobile:       NewMobileUI(app),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	ui.applyProject(store.Project())

	// Set up callback for project updates
	store.SetUpdateCallback(ui.onProjectUpdate)

	window.SetOnClosed(func() {
		ui.timeline.Engine().Destroy()
	})

	logger.Info("UI ready", "mobile", ui.mobile.IsMobileDevice(), "language", localization.GetCurrentLanguage())
	return ui
}

// Timeline returns the timeline header view
func (ui *RootUI) Timeline() *TimelineView {
	return ui.timeline
}

// Chart returns the gantt chart view
func (ui *RootUI) Chart() *GanttView {
	return ui.chart
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.zoomLabel = widget.NewLabel("")
	ui.projectLabel = widget.NewLabel("")
	ui.projectLabel.Truncation = fyne.TextTruncateEllipsis

	ui.createViews()

	ui.todayBtn = widget.NewButton(IconToday+" "+ui.localization.GetText(KeyToday), ui.onToday)

	scaleDownBtn := widget.NewButton(IconZoomOut, func() { ui.timeline.ScaleBy(1 / ScaleStepFactor) })
	scaleUpBtn := widget.NewButton(IconZoomIn, func() { ui.timeline.ScaleBy(ScaleStepFactor) })
	scaleDownBtn.Importance = widget.LowImportance
	scaleUpBtn.Importance = widget.LowImportance

	zoomOutBtn := widget.NewButton(IconZoomOut, func() { ui.chart.Zoom(gantt.ZoomOut) })
	zoomInBtn := widget.NewButton(IconZoomIn, func() { ui.chart.Zoom(gantt.ZoomIn) })

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	toolbar := container.NewBorder(nil, nil,
		container.NewHBox(settingsBtn, ui.todayBtn, scaleDownBtn, scaleUpBtn),
		container.NewHBox(zoomOutBtn, ui.zoomLabel, zoomInBtn),
		ui.projectLabel,
	)

	// Notification panel under the toolbar (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Alignment = fyne.TextAlignLeading
	ui.notificationSpinner = widget.NewProgressBarInfinite()
	ui.notificationSpinner.Hide()
	ui.notificationContainer = container.NewHBox(ui.notificationSpinner, container.NewPadded(ui.notificationLabel))
	ui.notificationContainer.Hide()

	top := container.NewVBox(toolbar, ui.notificationContainer, ui.timeline, widget.NewSeparator())
	content := container.NewBorder(top, nil, nil, nil, ui.chart)

	ui.window.SetContent(content)
	ui.chart.RegisterShortcuts(ui.window.Canvas())
	ui.onZoomChange(ui.chart.Controller().ZoomLevel())
}

// createViews builds the timeline header and the chart from settings and the tuning file
func (ui *RootUI) createViews() {
	tuning := ui.tuning.Tuning()
	tuning.SnapEnabled = ui.settings.GetSnapEnabled()
	tuning.TransitionDuration = time.Duration(ui.settings.GetTransitionMs()) * time.Millisecond

	now := time.Now()
	p := ui.store.Project()

	ui.timeline = NewTimelineView(timeline.Options{
		CenterDate:    now,
		Today:         now,
		Scale:         ui.settings.GetTimelineScale(),
		Holidays:      p.Holidays,
		Events:        p.Events,
		Labeler:       ui.localization,
		Tuning:        &tuning,
		Logger:        ui.logger.WithPrefix("timeline"),
		OnDateClick:   ui.onDateClick,
		OnScaleChange: ui.onScaleChange,
	})
	ui.mobile.ConfigureTimeline(ui.timeline)

	ui.chart = NewGanttView(gantt.Options{
		Start:        p.Start,
		End:          p.End,
		Today:        now,
		BaseDayWidth: tuning.BaseDayWidth,
		RowHeight:    ui.tuning.Gantt.RowHeight,
		Zoom:         ui.tuning.Zoom(),
		Logger:       ui.logger.WithPrefix("gantt"),
		OnTaskClick:  ui.onTaskClick,
		OnZoomChange: ui.onZoomChange,
	})
	ui.chart.Controller().SetZoom(ui.settings.GetGanttZoom())
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	t := ui.localization.GetText

	fileMenu := fyne.NewMenu(t(KeyFile),
		fyne.NewMenuItem(t(KeyOpenProject), ui.onOpenProject),
		fyne.NewMenuItem(t(KeyReloadProject), ui.loadProject),
		fyne.NewMenuItem(t(KeyUseSample), ui.onUseSample),
		fyne.NewMenuItem(t(KeyEditProjectFile), ui.onEditProjectFile),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(t(KeySettings), ui.onShowSettings),
	)

	viewMenu := fyne.NewMenu(t(KeyView),
		fyne.NewMenuItem(t(KeyToday), ui.onToday),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(t(KeyZoomIn), func() { ui.chart.Zoom(gantt.ZoomIn) }),
		fyne.NewMenuItem(t(KeyZoomOut), func() { ui.chart.Zoom(gantt.ZoomOut) }),
		fyne.NewMenuItem(t(KeyZoomReset), func() { ui.chart.Zoom(gantt.ZoomReset) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(t(KeyScaleUp), func() { ui.timeline.ScaleBy(ScaleStepFactor) }),
		fyne.NewMenuItem(t(KeyScaleDown), func() { ui.timeline.ScaleBy(1 / ScaleStepFactor) }),
	)

	// Language submenu
	languageMenu := fyne.NewMenu(t(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(fileMenu, viewMenu, languageMenu))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.todayBtn.SetText(IconToday + " " + ui.localization.GetText(KeyToday))
	ui.onZoomChange(ui.chart.Controller().ZoomLevel())
	ui.updateProjectLabel(ui.store.Project())

	// Month headers carry localized names
	ui.timeline.Engine().SetLabeler(ui.localization)
}

// onProjectUpdate is the store callback; it may run on any goroutine
func (ui *RootUI) onProjectUpdate(p *model.Project) {
	fyne.Do(func() {
		ui.applyProject(p)
	})
}

// applyProject pushes a project into both views
func (ui *RootUI) applyProject(p *model.Project) {
	if p == nil {
		return
	}
	c := ui.chart.Controller()
	c.SetRange(p.Start, p.End)
	c.SetTasks(p.Tasks)
	ui.chart.Refresh()

	ui.timeline.Engine().SetAnnotations(p.Holidays, p.Events)
	ui.updateProjectLabel(p)
	ui.logger.Debug("project applied", "name", p.Name, "tasks", len(p.Tasks))
}

func (ui *RootUI) updateProjectLabel(p *model.Project) {
	if p == nil {
		return
	}
	text := ui.localization.Format(KeyTaskCount, len(p.Tasks))
	if p.Name != "" {
		text = p.Name + MiddleDotSeparator + text
	}
	ui.projectLabel.SetText(text)
}

// loadProject reloads the configured project file in the background
func (ui *RootUI) loadProject() {
	path := ui.settings.GetProjectFile()
	src := project.HolidaySource{
		Source: platform.FileSource{Path: path},
		Region: ui.settings.GetHolidayRegion(),
	}

	ui.showNotification(ui.localization.GetText(KeyReloadProject), true)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), RootLoadTimeout)
		defer cancel()

		if err := ui.store.Load(ctx, src); err != nil {
			ui.logger.Error("failed to load project", "path", path, "err", err)
			ui.showNotification(ui.localization.GetText(KeyErrorLoadingFile)+": "+err.Error(), false)
			return
		}
		p := ui.store.Project()
		ui.showNotification(ui.localization.Format(KeyProjectLoaded, p.Name, len(p.Tasks)), false)
	}()
}

// onOpenProject picks a project file and loads it
func (ui *RootUI) onOpenProject() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, ui.window)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		ui.settings.SetProjectFile(reader.URI().Path())
		ui.loadProject()
	}, ui.window)
}

// onUseSample switches back to the embedded sample project
func (ui *RootUI) onUseSample() {
	ui.settings.SetProjectFile("")
	ui.loadProject()
}

// onEditProjectFile opens the project file in the system editor
func (ui *RootUI) onEditProjectFile() {
	path := ui.settings.GetProjectFile()
	if path == "" {
		ui.showNotification(ui.localization.GetText(KeyUsingSample), false)
		return
	}
	expanded, err := platform.ExpandPath(path)
	if err == nil {
		err = platform.OpenFileWithDefaultApp(expanded)
	}
	if err != nil {
		ui.logger.Error("failed to open project file", "path", path, "err", err)
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorOpeningFile), err), ui.window)
	}
}

// onToday brings today into view on both the header and the chart
func (ui *RootUI) onToday() {
	now := time.Now()
	ui.timeline.ScrollToToday()
	ui.chart.Controller().ScrollToDate(now)
	ui.chart.Refresh()
}

// onDateClick follows a click on the header day strip in the chart
func (ui *RootUI) onDateClick(date time.Time) {
	ui.logger.Debug("date clicked", "date", date.Format(model.DateKeyLayout))
	ui.chart.Controller().ScrollToDate(date)
	ui.chart.Refresh()
}

// onScaleChange remembers the settled header scale for the next start
func (ui *RootUI) onScaleChange(scale float64) {
	ui.settings.SetTimelineScale(scale)
}

// onZoomChange remembers the chart zoom and updates the label
func (ui *RootUI) onZoomChange(level float64) {
	ui.settings.SetGanttZoom(level)
	if ui.zoomLabel != nil {
		ui.zoomLabel.SetText(ui.localization.Format(KeyZoomLabel, level*100))
	}
}

// onTaskClick shows the clicked task in a toast
func (ui *RootUI) onTaskClick(task *model.Task) {
	ui.logger.Debug("task clicked", "id", task.ID, "title", task.Title)
	ui.showTaskToast(task)
}

// showTaskToast shows an in-app toast with the task's dates and progress
func (ui *RootUI) showTaskToast(task *model.Task) {
	lines := []fyne.CanvasObject{widget.NewLabelWithStyle(task.Title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})}
	if !task.StartDate.IsZero() {
		dates := ui.localization.Format(KeyTaskDates,
			task.StartDate.Format(DateLabelLayout), task.EndDate.Format(DateLabelLayout))
		lines = append(lines, widget.NewLabel(dates))
	}
	lines = append(lines, widget.NewLabel(ui.localization.Format(KeyTaskProgress, int(task.Progress*100+0.5))))

	var toastPopup *widget.PopUp
	closeBtn := widget.NewButton(IconClose, func() {
		if toastPopup != nil {
			toastPopup.Hide()
		}
	})
	closeBtn.Importance = widget.LowImportance

	content := container.NewBorder(nil, nil, nil, container.NewVBox(closeBtn), container.NewVBox(lines...))
	toastPopup = widget.NewPopUp(content, ui.window.Canvas())

	canvasSize := ui.window.Canvas().Size()
	toastSize := fyne.NewSize(ToastWidth, ToastHeight)
	toastPos := fyne.NewPos(canvasSize.Width-toastSize.Width-ToastMargin, ToastMargin)

	toastPopup.Resize(toastSize)
	toastPopup.Move(toastPos)
	toastPopup.Show()

	time.AfterFunc(ToastAutoHide, func() {
		fyne.Do(toastPopup.Hide)
	})
}

// showNotification displays a message in the notification panel under the toolbar.
// When spinning is true, a spinner is shown to indicate background activity.
func (ui *RootUI) showNotification(message string, spinning bool) {
	if ui.notificationLabel == nil || ui.notificationContainer == nil || ui.notificationSpinner == nil {
		return
	}
	fyne.Do(func() {
		ui.notificationLabel.SetText(message)
		if spinning {
			ui.notificationSpinner.Show()
		} else {
			ui.notificationSpinner.Hide()
		}
		ui.notificationContainer.Show()
		ui.notificationContainer.Refresh()
	})
}

// hideNotification hides the notification panel.
func (ui *RootUI) hideNotification() {
	if ui.notificationContainer == nil || ui.notificationSpinner == nil {
		return
	}
	fyne.Do(func() {
		ui.notificationSpinner.Hide()
		ui.notificationContainer.Hide()
	})
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		ui.hideNotification()
		if lang := ui.settings.GetLanguage(); lang != ui.localization.GetCurrentLanguage() {
			ui.onLanguageChange(lang)
		}
		ui.loadProject()
		ui.showNotification(ui.localization.GetText(KeyRestartForSettings), false)
	})
}
