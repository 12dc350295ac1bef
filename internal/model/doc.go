package model

// Package model defines the planning data consumed by the timeline and Gantt
// views: tasks with their hierarchy, public holidays, calendar events and the
// project that groups them. Structures are plain values read by the views;
// nothing in this package renders or persists.
