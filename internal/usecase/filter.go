package usecase

import (
	"sort"
	"time"

	"trackport/internal/domain"
)

// Window is an inclusive calendar-date range. Bounds compare against the
// date of an entry's start instant projected into the display timezone, so
// one run filters consistently across mixed-zone exports. A nil bound
// leaves that side unbounded.
type Window struct {
	From *time.Time
	To   *time.Time
}

// Contains reports whether the date of instant, seen in loc, falls inside
// the window.
func (w Window) Contains(instant time.Time, loc *time.Location) bool {
	d := civilDate(instant.In(loc))
	if w.From != nil && d.Before(civilDate(*w.From)) {
		return false
	}
	if w.To != nil && d.After(civilDate(*w.To)) {
		return false
	}
	return true
}

// Bounded reports whether either side of the window is set.
func (w Window) Bounded() bool { return w.From != nil || w.To != nil }

// civilDate truncates a wall time to its calendar date. The fixed UTC
// placement only serves Before/After comparisons.
func civilDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// filterEntries keeps ACTIVE entries whose start date falls inside the
// window, preserving input order.
func filterEntries(entries []domain.TimeEntry, loc *time.Location, w Window) []domain.TimeEntry {
	kept := make([]domain.TimeEntry, 0, len(entries))
	for _, e := range entries {
		if e.Status != domain.StatusActive {
			continue
		}
		if !w.Contains(e.Start, loc) {
			continue
		}
		kept = append(kept, e)
	}
	return kept
}

// sortByStart orders entries chronologically in place. The sort is stable
// so simultaneous entries keep their source order.
func sortByStart(entries []domain.TimeEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Start.Before(entries[j].Start)
	})
}

// resolveEntries fills in the emission-time fields: an entry's own client
// wins, then the project map, then empty; a non-empty email overrides
// whatever the source carried.
func resolveEntries(entries []domain.TimeEntry, projects domain.ProjectMap, email string) []domain.TimeEntry {
	resolved := make([]domain.TimeEntry, len(entries))
	for i, e := range entries {
		if e.Client == "" {
			e.Client = projects.Client(e.Project)
		}
		if email != "" {
			e.Email = email
		}
		resolved[i] = e
	}
	return resolved
}
