// Package app wires sources and sinks for one invocation.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"trackport/internal/adapter/clockify"
	"trackport/internal/adapter/jiffy"
	msql "trackport/internal/adapter/mysql"
	tg "trackport/internal/adapter/toggl"
	"trackport/internal/config"
	"trackport/internal/migrate"
	"trackport/internal/ports"
)

// Conversion modes.
const (
	ModeToggl     = "toggl"
	ModeClockify  = "clockify"
	ModePrintOnly = "print-only"
)

// App wires adapters and use cases.
type App struct {
	Log *slog.Logger
	Cfg config.Config
}

func New(log *slog.Logger, cfg config.Config) *App {
	return &App{Log: log, Cfg: cfg}
}

// Source picks the reader by file extension and returns it together with
// the format tag the archive records (jiffy or toggl).
func (a *App) Source(path string, loc *time.Location) (ports.Source, string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return jiffy.NewReader(path, a.Log), "jiffy", nil
	case ".csv":
		return tg.NewCSVReader(path, loc, a.Log), "toggl", nil
	default:
		return nil, "", fmt.Errorf("unsupported input file %q: expected .json (Jiffy) or .csv (Toggl)", path)
	}
}

// CSVSink builds the writer for a convert mode, falling back to the mode's
// default output path when none was given.
func (a *App) CSVSink(mode, output string, loc *time.Location) (ports.Sink, string, error) {
	switch mode {
	case ModeToggl:
		if output == "" {
			output = "toggl_output.csv"
		}
		return tg.NewCSVWriter(output, loc, a.Log), output, nil
	case ModeClockify:
		if output == "" {
			output = "clockify_output.csv"
		}
		return clockify.NewCSVWriter(output, loc, a.Log), output, nil
	default:
		return nil, "", fmt.Errorf("unknown mode %q", mode)
	}
}

// ArchiveSink runs migrations and opens the MySQL sink.
func (a *App) ArchiveSink(ctx context.Context, dsn, source string) (*msql.Client, error) {
	if err := migrate.Run(ctx, dsn, a.Log); err != nil {
		return nil, err
	}
	return msql.NewClient(ctx, dsn, source, a.Log)
}
