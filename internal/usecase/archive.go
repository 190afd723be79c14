package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"trackport/internal/domain"
	"trackport/internal/ports"
)

// ArchiveUseCase mirrors the filtered entries into the archive sink. Unlike
// CSV emission it keeps open entries; the sink stores them with a NULL stop.
type ArchiveUseCase struct {
	Log      *slog.Logger
	Source   ports.Source
	Sink     ports.Sink
	Loc      *time.Location
	Window   Window
	Projects domain.ProjectMap
}

func (uc *ArchiveUseCase) Run(ctx context.Context) (int, error) {
	if uc.Source == nil || uc.Sink == nil {
		return 0, errors.New("usecase not initialized: missing dependencies")
	}

	export, err := uc.Source.Load(ctx)
	if err != nil {
		return 0, err
	}
	uc.Log.Info("loaded entries", slog.Int("count", len(export.Entries)))

	entries := filterEntries(export.Entries, uc.Loc, uc.Window)
	sortByStart(entries)
	entries = resolveEntries(entries, mergeProjects(export.Projects, uc.Projects), "")

	if len(entries) == 0 {
		uc.Log.Info("no entries to archive")
		return 0, nil
	}
	if err := uc.Sink.WriteEntries(ctx, entries); err != nil {
		return 0, err
	}
	uc.Log.Info("archive completed", slog.Int("count", len(entries)))
	return len(entries), nil
}
