package project

// Package project holds the loaded project behind the views. It guards the
// task list with a mutex, applies edits, and notifies the UI through a single
// update callback.
