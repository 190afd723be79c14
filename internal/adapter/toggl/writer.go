package toggl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"trackport/internal/adapter/csvfile"
	"trackport/internal/domain"
)

// Header is the Toggl Track import column set, in order.
var Header = []string{"Description", "Billable", "Duration", "Email", "Project", "Start date", "Start time"}

// CSVWriter implements ports.Sink by emitting the Toggl import CSV. Every
// field is quoted and rows end in CRLF, matching real Toggl exports.
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
		return fmt.Errorf("toggl: %w", err)
	}
	if err := w.encode(f, entries); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("toggl: %w", err)
	}
	w.log.Info("wrote toggl csv", slog.String("file", w.path), slog.Int("entries", len(entries)))
	return nil
}

func (w *CSVWriter) encode(out io.Writer, entries []domain.TimeEntry) error {
	cw := csvfile.NewWriter(out)
	cw.Write(Header)
	for _, e := range entries {
		start := e.Start.In(w.loc)
		cw.Write([]string{
			e.Description,
			billable(e.Billable),
			domain.FormatHMS(e.Duration()),
			e.Email,
			e.Project,
			start.Format("2006-01-02"),
			start.Format("15:04:05"),
		})
	}
	if err := cw.Flush(); err != nil {
		return fmt.Errorf("toggl: %w", err)
	}
	return nil
}

func billable(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
