// Package jiffy reads the JSON export of the Jiffy time tracker.
package jiffy

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"trackport/internal/domain"
	"trackport/internal/tzone"
)

// Reader implements ports.Source for Jiffy JSON exports.
//
// Jiffy models projects as "time owners": an owner is the entry's project,
// and an owner's parent (when present) is the client. Timestamps are epoch
// milliseconds; the per-entry timezone names only describe how the app
// displayed them and do not shift the instant.
type Reader struct {
	path string
	log  *slog.Logger
}

func NewReader(path string, log *slog.Logger) *Reader {
	return &Reader{path: path, log: log}
}

// Load parses the export file. Entries with a missing start or a stop before
// their start are skipped with a warning; entries whose stop is absent are
// kept as open entries. Order is preserved.
func (r *Reader) Load(ctx context.Context) (*domain.Export, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("jiffy: %w", err)
	}
	defer f.Close()
	return r.decode(f)
}

func (r *Reader) decode(src io.Reader) (*domain.Export, error) {
	var raw rawExport
	if err := json.NewDecoder(src).Decode(&raw); err != nil {
		return nil, fmt.Errorf("jiffy: decoding export: %w", err)
	}

	owners := make(map[string]rawOwner, len(raw.TimeOwners))
	projects := make(domain.ProjectMap)
	for _, o := range raw.TimeOwners {
		owners[o.ID] = o
	}
	for _, o := range raw.TimeOwners {
		if o.ParentID == "" {
			continue
		}
		if parent, ok := owners[o.ParentID]; ok {
			projects[o.Name] = parent.Name
		}
	}

	entries := make([]domain.TimeEntry, 0, len(raw.TimeEntries))
	for _, e := range raw.TimeEntries {
		if e.StartTime <= 0 {
			r.log.Warn("jiffy: skipping entry without start time", slog.String("id", e.ID))
			continue
		}
		if e.StopTime > 0 && e.StopTime < e.StartTime {
			r.log.Warn("jiffy: skipping entry with stop before start",
				slog.String("id", e.ID),
				slog.Int64("start_ms", e.StartTime),
				slog.Int64("stop_ms", e.StopTime),
			)
			continue
		}

		start := tzone.FromUnixMillis(e.StartTime)
		var stop *time.Time
		if e.StopTime > 0 {
			t := tzone.FromUnixMillis(e.StopTime)
			stop = &t
		}

		project := "Unknown"
		client := ""
		if o, ok := owners[e.OwnerID]; ok {
			project = o.Name
			if parent, ok := owners[o.ParentID]; ok {
				client = parent.Name
			}
		}

		id := e.ID
		if id == "" {
			id = domain.SyntheticID(start, e.Note, project)
		}

		entries = append(entries, domain.TimeEntry{
			ID:          id,
			Description: e.Note,
			Project:     project,
			Client:      client,
			Start:       start,
			Stop:        stop,
			Status:      domain.Status(e.Status),
		})
	}

	r.log.Debug("jiffy: loaded export",
		slog.Int("entries", len(entries)),
		slog.Int("owners", len(raw.TimeOwners)),
	)
	return &domain.Export{Entries: entries, Projects: projects}, nil
}

// rawExport mirrors the Jiffy JSON document.
type rawExport struct {
	TimeEntries []rawTimeEntry `json:"time_entries"`
	TimeOwners  []rawOwner     `json:"time_owners"`
}

type rawTimeEntry struct {
	ID            string `json:"id"`
	OwnerID       string `json:"owner_id"`
	Note          string `json:"note"`
	Status        string `json:"status"`
	StartTime     int64  `json:"start_time"`
	StopTime      int64  `json:"stop_time"`
	StartTimeZone string `json:"start_time_zone"`
	StopTimeZone  string `json:"stop_time_zone"`
}

type rawOwner struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Status   string `json:"status"`
	ParentID string `json:"parent_id"`
}
