package ui

// Package ui contains the Fyne-based desktop user interface for the planner.
// It hosts the timeline header and the gantt chart on rasters, forwards
// wheel, drag, tap and touch input to them, and wires menus, settings and
// notifications to the project store. All UI strings are localized via Localization.
