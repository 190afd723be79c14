package usecase

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"time"

	"trackport/internal/domain"
	"trackport/internal/ports"
)

// Report is the print-only summary of one export.
type Report struct {
	TotalEntries   int
	ActiveEntries  int
	DeletedEntries int
	Filtered       int
	OpenEntries    int
	WithNotes      int
	UniqueProjects int
	Billable       int
	TotalTracked   time.Duration
	FirstDate      time.Time // zero when the export is empty
	LastDate       time.Time
	Mappings       []Mapping          // first mappings, alphabetical, capped
	Examples       []domain.TimeEntry // last N filtered entries
}

// Mapping is one project-to-client row of the report.
type Mapping struct {
	Project string
	Client  string
}

// maxMappings caps how many project->client rows a report shows.
const maxMappings = 10

// InspectUseCase runs the pipeline without a sink and summarizes what a
// conversion with the same flags would emit.
type InspectUseCase struct {
	Log      *slog.Logger
	Source   ports.Source
	Loc      *time.Location
	Window   Window
	Projects domain.ProjectMap
	Examples int
}

func (uc *InspectUseCase) Run(ctx context.Context) (Report, error) {
	if uc.Source == nil {
		return Report{}, errors.New("usecase not initialized: missing dependencies")
	}
	export, err := uc.Source.Load(ctx)
	if err != nil {
		return Report{}, err
	}
	uc.Log.Debug("loaded entries", slog.Int("count", len(export.Entries)))

	projects := mergeProjects(export.Projects, uc.Projects)
	filtered := filterEntries(export.Entries, uc.Loc, uc.Window)
	sortByStart(filtered)
	filtered = resolveEntries(filtered, projects, "")

	return BuildReport(export, filtered, projects, uc.Examples), nil
}

// BuildReport computes the report from an export and its filtered entries.
// Pure; rendering lives with the CLI.
func BuildReport(export *domain.Export, filtered []domain.TimeEntry, projects domain.ProjectMap, examples int) Report {
	r := Report{
		TotalEntries: len(export.Entries),
		Filtered:     len(filtered),
	}

	for _, e := range export.Entries {
		switch e.Status {
		case domain.StatusActive:
			r.ActiveEntries++
		case domain.StatusDeleted:
			r.DeletedEntries++
		}
		if r.FirstDate.IsZero() || e.Start.Before(r.FirstDate) {
			r.FirstDate = e.Start
		}
		if e.Start.After(r.LastDate) {
			r.LastDate = e.Start
		}
	}

	seen := make(map[string]bool)
	for _, e := range filtered {
		if e.Open() {
			r.OpenEntries++
		}
		if e.Description != "" {
			r.WithNotes++
		}
		if e.Billable {
			r.Billable++
		}
		if e.Project != "" && !seen[e.Project] {
			seen[e.Project] = true
			r.UniqueProjects++
		}
		r.TotalTracked += e.Duration()
	}

	names := make([]string, 0, len(projects))
	for name := range projects {
		names = append(names, name)
	}
	sort.Strings(names)
	if len(names) > maxMappings {
		names = names[:maxMappings]
	}
	for _, name := range names {
		r.Mappings = append(r.Mappings, Mapping{Project: name, Client: projects[name]})
	}

	if examples > 0 && len(filtered) > examples {
		r.Examples = filtered[len(filtered)-examples:]
	} else {
		r.Examples = filtered
	}
	return r
}
