// Package clockify emits the Clockify detailed-import CSV.
package clockify

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

// Header is the Clockify import column set, in order.
var Header = []string{"Project", "Client", "Description", "Task", "Email", "Tags", "Billable", "Start Date", "Start Time", "Duration (h)"}

// CSVWriter implements ports.Sink by emitting the Clockify import CSV.
// Clockify wants US-style dates and a 12-hour clock without a leading zero;
// the Duration (h) column accepts the same H:MM:SS form Toggl uses. Task is
// a Clockify-only concept with no counterpart in any source, so it stays
// empty.
type CSVWriter struct {
	path string
	loc  *time.Location
	log  *slog.Logger
}

func NewCSVWriter(path string, loc *time.Location, log *slog.Logger) *CSVWriter {
	return &CSVWriter{path: path, loc: loc, log: log}
}

func (w *CSVWriter) WriteEntries(ctx context.Context, entries []domain.TimeEntry) error {
	f, err := os.Create(w.path)
	if err != nil {
		return fmt.Errorf("clockify: %w", err)
	}
	if err := w.encode(f, entries); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("clockify: %w", err)
	}
	w.log.Info("wrote clockify csv", slog.String("file", w.path), slog.Int("entries", len(entries)))
	return nil
}

func (w *CSVWriter) encode(out io.Writer, entries []domain.TimeEntry) error {
	cw := csvfile.NewWriter(out)
	cw.Write(Header)
	for _, e := range entries {
		start := e.Start.In(w.loc)
		cw.Write([]string{
			e.Project,
			e.Client,
			e.Description,
			"",
			e.Email,
			strings.Join(e.Tags, ", "),
			billable(e.Billable),
			start.Format("01/02/2006"),
			start.Format("3:04 PM"),
			domain.FormatHMS(e.Duration()),
		})
	}
	if err := cw.Flush(); err != nil {
		return fmt.Errorf("clockify: %w", err)
	}
	return nil
}

func billable(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
