// Package toggl reads and writes Toggl Track CSV exports and the Toggl
// projects JSON file used for client mapping.
package toggl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"trackport/internal/adapter/csvfile"
	"trackport/internal/domain"
)

// CSVReader implements ports.Source for Toggl Track CSV exports. Toggl CSV
// carries wall-clock times with no zone of its own, so start times are read
// in loc (the output timezone) and survive re-emission unshifted.
type CSVReader struct {
	path string
	loc  *time.Location
	log  *slog.Logger
}

func NewCSVReader(path string, loc *time.Location, log *slog.Logger) *CSVReader {
	return &CSVReader{path: path, loc: loc, log: log}
}

// Load parses the export. The header must name Start date, Start time, and
// either Duration or End date/End time; malformed rows are skipped with a
// warning and the rest keep their file order.
func (r *CSVReader) Load(ctx context.Context) (*domain.Export, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("toggl: %w", err)
	}
	defer f.Close()
	return r.decode(f)
}

func (r *CSVReader) decode(src io.Reader) (*domain.Export, error) {
	cr := csvfile.NewReader(src)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("toggl: reading header: %w", err)
	}
	idx := csvfile.HeaderIndex(header)
	if _, ok := idx["Start date"]; !ok {
		return nil, fmt.Errorf("toggl: header is missing Start date")
	}
	if _, ok := idx["Start time"]; !ok {
		return nil, fmt.Errorf("toggl: header is missing Start time")
	}
	_, hasDur := idx["Duration"]
	_, hasEnd := idx["End date"]
	if !hasDur && !hasEnd {
		return nil, fmt.Errorf("toggl: header has neither Duration nor End date")
	}

	var entries []domain.TimeEntry
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("toggl: reading row: %w", err)
		}
		line++

		field := func(name string) string {
			i, ok := idx[name]
			if !ok || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}

		start, err := time.ParseInLocation(wallLayout,
			field("Start date")+" "+field("Start time"), r.loc)
		if err != nil {
			r.log.Warn("toggl: skipping row with bad start", slog.Int("line", line),
				slog.String("error", err.Error()))
			continue
		}
		start = start.UTC()

		stop, err := r.stopTime(start, field)
		if err != nil {
			r.log.Warn("toggl: skipping row", slog.Int("line", line),
				slog.String("error", err.Error()))
			continue
		}

		var tags []string
		if v := field("Tags"); v != "" {
			tags = strings.Split(v, ", ")
		}

		description := field("Description")
		project := field("Project")
		entries = append(entries, domain.TimeEntry{
			ID:          domain.SyntheticID(start, description, project),
			Description: description,
			Project:     project,
			Client:      field("Client"),
			Email:       field("Email"),
			Tags:        tags,
			Billable:    strings.EqualFold(field("Billable"), "Yes"),
			Start:       start,
			Stop:        stop,
			Status:      domain.StatusActive,
		})
	}

	r.log.Debug("toggl: loaded export", slog.Int("entries", len(entries)))
	return &domain.Export{Entries: entries}, nil
}

// stopTime derives the stop instant from the Duration column when present,
// falling back to End date/End time. A row with neither stays open.
func (r *CSVReader) stopTime(start time.Time, field func(string) string) (*time.Time, error) {
	if v := field("Duration"); v != "" {
		d, err := domain.ParseHMS(v)
		if err != nil {
			return nil, err
		}
		t := start.Add(d)
		return &t, nil
	}
	date, clock := field("End date"), field("End time")
	if date == "" || clock == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(wallLayout, date+" "+clock, r.loc)
	if err != nil {
		return nil, err
	}
	t = t.UTC()
	if t.Before(start) {
		return nil, fmt.Errorf("end %s before start", clock)
	}
	return &t, nil
}

const wallLayout = "2006-01-02 15:04:05"
