package ui

import (
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/gantt-planner/internal/calendar"
	"github.com/ytget/gantt-planner/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	projectEntry    *widget.Entry
	regionSelect    *widget.Select
	scaleEntry      *widget.Entry
	zoomEntry       *widget.Entry
	transitionEntry *widget.Entry
	snapCheck       *widget.Check
	languageSelect  *widget.Select
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// ShowSettingsDialog creates and shows the settings dialog
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) *SettingsDialog {
	sd := NewSettingsDialog(settings, localization, window, onSaved)
	sd.Show()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// regionOptions lists the built-in holiday regions, with the "none" label first
func (sd *SettingsDialog) regionOptions() []string {
	return append([]string{sd.localization.GetText(KeyNone)}, calendar.Regions()...)
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	t := sd.localization.GetText

	sd.projectEntry = widget.NewEntry()
	sd.projectEntry.SetPlaceHolder(t(KeyUsingSample))
	browseBtn := widget.NewButton(t(KeyBrowse), sd.onBrowseProject)
	projectRow := container.NewBorder(nil, nil, nil, browseBtn, sd.projectEntry)

	sd.regionSelect = widget.NewSelect(sd.regionOptions(), nil)

	sd.scaleEntry = widget.NewEntry()
	sd.scaleEntry.SetPlaceHolder("0.25-4")

	sd.zoomEntry = widget.NewEntry()
	sd.zoomEntry.SetPlaceHolder("0.1-5")

	sd.transitionEntry = widget.NewEntry()
	sd.transitionEntry.SetPlaceHolder("0-2000")

	sd.snapCheck = widget.NewCheck(t(KeySnapToMonths), nil)

	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(t(KeyProjectFile)+":"),
		projectRow,

		widget.NewLabel(t(KeyHolidayRegion)+":"),
		sd.regionSelect,

		widget.NewSeparator(),

		widget.NewLabel(t(KeyTimelineScale)+":"),
		sd.scaleEntry,

		widget.NewLabel(t(KeyGanttZoom)+":"),
		sd.zoomEntry,

		widget.NewLabel(t(KeyTransitionMs)+":"),
		sd.transitionEntry,

		sd.snapCheck,

		widget.NewSeparator(),

		widget.NewLabel(t(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		t(KeySettings),
		t(KeySave),
		t(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(500, 520))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.projectEntry.SetText(sd.settings.GetProjectFile())
	if region := sd.settings.GetHolidayRegion(); region != "" {
		sd.regionSelect.SetSelected(region)
	} else {
		sd.regionSelect.SetSelectedIndex(0)
	}
	sd.scaleEntry.SetText(formatFloat(sd.settings.GetTimelineScale()))
	sd.zoomEntry.SetText(formatFloat(sd.settings.GetGanttZoom()))
	sd.transitionEntry.SetText(strconv.Itoa(sd.settings.GetTransitionMs()))
	sd.snapCheck.SetChecked(sd.settings.GetSnapEnabled())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onBrowseProject picks a project file
func (sd *SettingsDialog) onBrowseProject() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		sd.projectEntry.SetText(reader.URI().Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.apply()

	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
	if sd.onSaved != nil {
		sd.onSaved()
	}
}

// apply writes the form into the settings. Unparsable numbers keep the stored value.
func (sd *SettingsDialog) apply() {
	sd.settings.SetProjectFile(strings.TrimSpace(sd.projectEntry.Text))

	if sd.regionSelect.SelectedIndex() <= 0 {
		sd.settings.SetHolidayRegion(calendar.RegionNone)
	} else {
		sd.settings.SetHolidayRegion(sd.regionSelect.Selected)
	}

	if scale, err := strconv.ParseFloat(strings.TrimSpace(sd.scaleEntry.Text), 64); err == nil {
		sd.settings.SetTimelineScale(scale)
	}
	if zoom, err := strconv.ParseFloat(strings.TrimSpace(sd.zoomEntry.Text), 64); err == nil {
		sd.settings.SetGanttZoom(zoom)
	}
	if ms, err := strconv.Atoi(strings.TrimSpace(sd.transitionEntry.Text)); err == nil {
		sd.settings.SetTransitionMs(ms)
	}
	sd.settings.SetSnapEnabled(sd.snapCheck.Checked)

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
