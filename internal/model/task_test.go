package model

import (
	"strings"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestTask_DurationDays(t *testing.T) {
	tests := []struct {
		start    time.Time
		end      time.Time
		expected int
	}{
		{date(2024, 6, 1), date(2024, 6, 1), 1},
		{date(2024, 6, 1), date(2024, 6, 10), 10},
		{date(2024, 2, 28), date(2024, 3, 1), 3},
		{date(2024, 6, 10), date(2024, 6, 1), 1},
		{time.Date(2024, 6, 1, 23, 0, 0, 0, time.UTC), date(2024, 6, 2), 2},
	}

	for _, test := range tests {
		task := &Task{StartDate: test.start, EndDate: test.end}
		result := task.DurationDays()
		if result != test.expected {
			t.Errorf("DurationDays() with %v..%v = %d, expected %d", test.start, test.end, result, test.expected)
		}
	}
}

func TestTask_GetDisplayTitle(t *testing.T) {
	tests := []struct {
		title    string
		id       TaskID
		expected string
	}{
		{"Design review", "t1", "Design review"},
		{"", "t2", "t2"},
		{"   ", "t3", "t3"},
		{"  Release   prep ", "t4", "Release prep"},
	}

	for _, test := range tests {
		task := &Task{ID: test.id, Title: test.title}
		result := task.GetDisplayTitle()
		if result != test.expected {
			t.Errorf("GetDisplayTitle() with title='%s' = '%s', expected '%s'", test.title, result, test.expected)
		}
	}
}

func TestTask_GetProgressString(t *testing.T) {
	tests := []struct {
		progress float64
		expected string
	}{
		{0, "0%"},
		{0.5, "50%"},
		{0.333, "33%"},
		{1, "100%"},
		{1.7, "100%"},
		{-0.2, "0%"},
	}

	for _, test := range tests {
		task := &Task{Progress: test.progress}
		if result := task.GetProgressString(); result != test.expected {
			t.Errorf("GetProgressString() with %f = %s, expected %s", test.progress, result, test.expected)
		}
	}
}

func TestNewTaskID(t *testing.T) {
	a := NewTaskID()
	b := NewTaskID()

	if a == b {
		t.Errorf("Expected unique IDs, got %s twice", a)
	}
	if !strings.HasPrefix(string(a), TaskIDPrefix) {
		t.Errorf("Expected ID to start with %q, got %q", TaskIDPrefix, a)
	}
}

func TestEvent_Covers(t *testing.T) {
	end := date(2024, 6, 12)
	multi := Event{StartDate: date(2024, 6, 10), EndDate: &end, Name: "Offsite"}
	single := Event{StartDate: date(2024, 6, 10), Name: "Demo"}

	tests := []struct {
		event    Event
		day      time.Time
		expected bool
	}{
		{multi, date(2024, 6, 9), false},
		{multi, date(2024, 6, 10), true},
		{multi, time.Date(2024, 6, 11, 15, 30, 0, 0, time.UTC), true},
		{multi, date(2024, 6, 12), true},
		{multi, date(2024, 6, 13), false},
		{single, date(2024, 6, 10), true},
		{single, date(2024, 6, 11), false},
	}

	for _, test := range tests {
		if result := test.event.Covers(test.day); result != test.expected {
			t.Errorf("%s.Covers(%s) = %v, expected %v", test.event.Name, test.day.Format(DateKeyLayout), result, test.expected)
		}
	}
}

func TestHoliday_Key(t *testing.T) {
	h := Holiday{Date: time.Date(2024, 12, 25, 18, 0, 0, 0, time.UTC), Name: "Christmas"}
	if h.Key() != "2024-12-25" {
		t.Errorf("Expected key '2024-12-25', got '%s'", h.Key())
	}
}
