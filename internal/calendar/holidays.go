// Package calendar provides built-in public holiday calendars that are merged
// with the holidays of a project.
package calendar

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/ytget/gantt-planner/internal/model"
)

// ErrUnknownRegion is returned for a region without a built-in calendar
var ErrUnknownRegion = errors.New("unknown holiday region")

// RegionNone disables built-in holidays
const RegionNone = ""

// holidayColor marks built-in holidays; project holidays may override it
const holidayColor = "#fde68a"

type rule func(year int, easter time.Time) (time.Time, string)

func fixed(month time.Month, day int, name string) rule {
	return func(year int, _ time.Time) (time.Time, string) {
		return time.Date(year, month, day, 0, 0, 0, 0, time.UTC), name
	}
}

func easterOffset(days int, name string) rule {
	return func(_ int, easter time.Time) (time.Time, string) {
		return easter.AddDate(0, 0, days), name
	}
}

var regions = map[string][]rule{
	// North Rhine-Westphalia
	"de-nw": {
		fixed(time.January, 1, "Neujahr"),
		easterOffset(-2, "Karfreitag"),
		easterOffset(1, "Ostermontag"),
		fixed(time.May, 1, "Tag der Arbeit"),
		easterOffset(39, "Christi Himmelfahrt"),
		easterOffset(50, "Pfingstmontag"),
		easterOffset(60, "Fronleichnam"),
		fixed(time.October, 3, "Tag der Deutschen Einheit"),
		fixed(time.November, 1, "Allerheiligen"),
		fixed(time.December, 25, "1. Weihnachtstag"),
		fixed(time.December, 26, "2. Weihnachtstag"),
	},
	"de": {
		fixed(time.January, 1, "Neujahr"),
		easterOffset(-2, "Karfreitag"),
		easterOffset(1, "Ostermontag"),
		fixed(time.May, 1, "Tag der Arbeit"),
		easterOffset(39, "Christi Himmelfahrt"),
		easterOffset(50, "Pfingstmontag"),
		fixed(time.October, 3, "Tag der Deutschen Einheit"),
		fixed(time.December, 25, "1. Weihnachtstag"),
		fixed(time.December, 26, "2. Weihnachtstag"),
	},
}

// Regions lists the built-in region codes
func Regions() []string {
	out := make([]string, 0, len(regions))
	for code := range regions {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

// Holidays returns the public holidays of region in year, sorted by date
func Holidays(region string, year int) ([]model.Holiday, error) {
	rules, ok := regions[strings.ToLower(strings.TrimSpace(region))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRegion, region)
	}
	easter := Easter(year)
	out := make([]model.Holiday, 0, len(rules))
	for _, r := range rules {
		d, name := r(year, easter)
		out = append(out, model.Holiday{Date: d, Name: name, Color: holidayColor})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

// Range returns the holidays of region for every year touched by [start, end].
// An empty region yields no holidays.
func Range(region string, start, end time.Time) ([]model.Holiday, error) {
	if region == RegionNone {
		return nil, nil
	}
	var out []model.Holiday
	for y := start.Year(); y <= end.Year(); y++ {
		hs, err := Holidays(region, y)
		if err != nil {
			return nil, err
		}
		for _, h := range hs {
			if h.Date.Before(dateOnly(start)) || h.Date.After(dateOnly(end)) {
				continue
			}
			out = append(out, h)
		}
	}
	return out, nil
}

// Merge adds built-in holidays to p. Holidays already in the project win.
func Merge(p *model.Project, holidays []model.Holiday) int {
	added := 0
	for _, h := range holidays {
		if p.AddHoliday(h) {
			added++
		}
	}
	return added
}

// Easter returns Easter Sunday of year (Meeus/Jones/Butcher, Gregorian)
func Easter(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := ((h + l - 7*m + 114) % 31) + 1
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
