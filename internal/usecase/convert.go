// Package usecase holds the conversion pipeline shared by every source and
// sink: filter by status and date window, sort, resolve clients, emit.
package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"trackport/internal/domain"
	"trackport/internal/ports"
)

// ConvertUseCase runs Load -> Filter -> Sort -> Map -> Emit for one file.
type ConvertUseCase struct {
	Log      *slog.Logger
	Source   ports.Source
	Sink     ports.Sink
	Loc      *time.Location
	Window   Window
	Email    string
	Projects domain.ProjectMap // flag-supplied map, merged over the source's own
}

// Summary reports what one conversion did.
type Summary struct {
	Loaded      int
	Filtered    int
	OpenDropped int
	Written     int
}

func (uc *ConvertUseCase) Run(ctx context.Context) (Summary, error) {
	if uc.Source == nil || uc.Sink == nil {
		return Summary{}, errors.New("usecase not initialized: missing dependencies")
	}

	export, err := uc.Source.Load(ctx)
	if err != nil {
		return Summary{}, err
	}
	uc.Log.Info("loaded entries", slog.Int("count", len(export.Entries)))

	entries := uc.prepare(export)

	// Neither CSV schema can express a row without a duration, so open
	// entries stop here. The archive path keeps them.
	kept := make([]domain.TimeEntry, 0, len(entries))
	dropped := 0
	for _, e := range entries {
		if e.Open() {
			uc.Log.Warn("skipping open entry",
				slog.String("id", e.ID),
				slog.String("description", e.Description),
				slog.Time("start", e.Start),
			)
			dropped++
			continue
		}
		kept = append(kept, e)
	}

	if err := uc.Sink.WriteEntries(ctx, kept); err != nil {
		return Summary{}, err
	}
	uc.Log.Info("conversion completed", slog.Int("written", len(kept)))
	return Summary{
		Loaded:      len(export.Entries),
		Filtered:    len(entries),
		OpenDropped: dropped,
		Written:     len(kept),
	}, nil
}

// prepare applies the shared pipeline steps up to emission.
func (uc *ConvertUseCase) prepare(export *domain.Export) []domain.TimeEntry {
	entries := filterEntries(export.Entries, uc.Loc, uc.Window)
	sortByStart(entries)
	return resolveEntries(entries, mergeProjects(export.Projects, uc.Projects), uc.Email)
}

// mergeProjects overlays the flag-supplied project map on the one the
// source carried; explicit wins.
func mergeProjects(source, explicit domain.ProjectMap) domain.ProjectMap {
	if len(explicit) == 0 {
		return source
	}
	if len(source) == 0 {
		return explicit
	}
	merged := make(domain.ProjectMap, len(source)+len(explicit))
	for k, v := range source {
		merged[k] = v
	}
	for k, v := range explicit {
		merged[k] = v
	}
	return merged
}
