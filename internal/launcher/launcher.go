package launcher

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/charmbracelet/log"

	"github.com/ytget/gantt-planner/internal/config"
	"github.com/ytget/gantt-planner/internal/logging"
	"github.com/ytget/gantt-planner/internal/platform"
	"github.com/ytget/gantt-planner/internal/project"
	"github.com/ytget/gantt-planner/internal/ui"
)

const (
	AppID   = "com.ytget.gantt-planner"
	AppName = "Gantt Planner"
)

// Run starts the desktop app and blocks until its window closes.
// args are the command-line arguments without the program name.
func Run(args []string, getenv func(string) string, version string) error {
	overrides, err := config.LoadOverrides(args, getenv)
	if errors.Is(err, flag.ErrHelp) {
		config.Usage(os.Stderr)
		return nil
	}
	if err != nil {
		return err
	}

	cfg, cfgPath, cfgErr := config.LoadFile(overrides.ConfigPath)
	overrides.Apply(&cfg)

	logger := logging.New(os.Stderr, logging.FromStrings(cfg.Log.Level, cfg.Log.Format))
	logger.Info("starting", "app", AppName, "version", version)
	if cfgErr != nil {
		logger.Error("invalid config file, using defaults", "path", cfgPath, "err", cfgErr)
	} else if len(cfg.Unknown) > 0 {
		logger.Warn("unknown config keys", "path", cfgPath, "keys", cfg.Unknown)
	}

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())
	if icon, err := ui.LoadLogoResource(); err == nil {
		myApp.SetIcon(icon)
	}

	settings := config.NewSettingsWithDefaults(myApp, cfg)
	if overrides.Project != "" {
		settings.SetProjectFile(overrides.Project)
	}
	if overrides.HolidayRegion != "" {
		settings.SetHolidayRegion(overrides.HolidayRegion)
	}

	store := project.NewStore(nil, logger.WithPrefix("project"))
	LoadInitialProject(context.Background(), store, settings.GetProjectFile(), settings.GetHolidayRegion(), logger)

	window := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	window.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	ui.NewRootUI(window, myApp, store, settings, cfg, logger)

	window.ShowAndRun()
	return nil
}

// LoadInitialProject loads the configured project into store. On failure it
// logs the error and falls back to the embedded sample without holidays.
func LoadInitialProject(ctx context.Context, store project.Repository, path, region string, logger *log.Logger) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	ctx, cancel := context.WithTimeout(ctx, ui.RootLoadTimeout)
	defer cancel()

	src := project.HolidaySource{Source: platform.FileSource{Path: path}, Region: region}
	err := store.Load(ctx, src)
	if err == nil {
		return
	}
	logger.Error("failed to load project, using the sample", "path", path, "region", region, "err", err)

	if err := store.Load(ctx, platform.FileSource{}); err != nil {
		logger.Error("failed to load the sample project", "err", err)
	}
}
