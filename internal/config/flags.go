package config

import (
	"flag"
	"fmt"
	"io"
)

// Environment variables read by LoadOverrides
const (
	EnvConfig        = "GANTT_PLANNER_CONFIG"
	EnvProject       = "GANTT_PLANNER_PROJECT"
	EnvHolidayRegion = "GANTT_PLANNER_HOLIDAY_REGION"
	EnvLogLevel      = "GANTT_PLANNER_LOG_LEVEL"
	EnvLogFormat     = "GANTT_PLANNER_LOG_FORMAT"
)

// Overrides are values from the environment and the command line.
// They win over the tuning file; flags win over the environment.
type Overrides struct {
	ConfigPath    string
	Project       string
	HolidayRegion string
	LogLevel      string
	LogFormat     string
}

// LoadOverrides reads the environment through getenv, then parses args
func LoadOverrides(args []string, getenv func(string) string) (Overrides, error) {
	o := Overrides{
		ConfigPath:    getenv(EnvConfig),
		Project:       getenv(EnvProject),
		HolidayRegion: getenv(EnvHolidayRegion),
		LogLevel:      getenv(EnvLogLevel),
		LogFormat:     getenv(EnvLogFormat),
	}
	return o, o.parseFlags(args, nil)
}

// parseFlags binds the flags with the current values as defaults.
// A nil output discards usage text.
func (o *Overrides) parseFlags(args []string, output io.Writer) error {
	return o.flagSet(output).Parse(args)
}

// Usage writes the flag list to w
func Usage(w io.Writer) {
	fmt.Fprintln(w, "Usage of gantt-planner:")
	var o Overrides
	fs := o.flagSet(w)
	fs.PrintDefaults()
}

func (o *Overrides) flagSet(output io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("gantt-planner", flag.ContinueOnError)
	if output == nil {
		output = io.Discard
	}
	fs.SetOutput(output)

	fs.StringVar(&o.ConfigPath, "config", o.ConfigPath, "Path to the TOML tuning file")
	fs.StringVar(&o.Project, "project", o.Project, "Path to a YAML project file")
	fs.StringVar(&o.HolidayRegion, "holidays", o.HolidayRegion, "Built-in holiday region (de, de-nw)")
	fs.StringVar(&o.LogLevel, "log-level", o.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&o.LogFormat, "log-format", o.LogFormat, "Log format (text, json, logfmt)")
	return fs
}

// Apply copies every non-empty override into f
func (o Overrides) Apply(f *File) {
	if o.Project != "" {
		f.Data.Project = o.Project
	}
	if o.HolidayRegion != "" {
		f.Data.HolidayRegion = o.HolidayRegion
	}
	if o.LogLevel != "" {
		f.Log.Level = o.LogLevel
	}
	if o.LogFormat != "" {
		f.Log.Format = o.LogFormat
	}
}
