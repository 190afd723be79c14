package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/pflag"

	tg "trackport/internal/adapter/toggl"
	"trackport/internal/config"
	"trackport/internal/domain"
	"trackport/internal/tzone"
	"trackport/internal/usecase"
)

// rangeFlags are the filtering flags shared by convert and archive.
type rangeFlags struct {
	fromDate string
	toDate   string
	outputTZ string
	projects string
}

func (f *rangeFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.fromDate, "from-date", "f", "", "Filter entries from this date (YYYY-MM-DD, inclusive)")
	fs.StringVarP(&f.toDate, "to-date", "t", "", "Filter entries to this date (YYYY-MM-DD, inclusive)")
	fs.StringVar(&f.outputTZ, "output-timezone", "", "Timezone for output timestamps, IANA name or GMT offset (default from config, else Asia/Bangkok)")
	fs.StringVarP(&f.projects, "projects", "p", "", "Toggl projects JSON file for client mapping")
}

// window parses the date bounds.
func (f *rangeFlags) window() (usecase.Window, error) {
	var w usecase.Window
	if f.fromDate != "" {
		t, err := time.Parse("2006-01-02", f.fromDate)
		if err != nil {
			return w, fmt.Errorf("invalid --from-date %q, expected YYYY-MM-DD", f.fromDate)
		}
		w.From = &t
	}
	if f.toDate != "" {
		t, err := time.Parse("2006-01-02", f.toDate)
		if err != nil {
			return w, fmt.Errorf("invalid --to-date %q, expected YYYY-MM-DD", f.toDate)
		}
		w.To = &t
	}
	if w.From != nil && w.To != nil && w.To.Before(*w.From) {
		return w, fmt.Errorf("--to-date %s is before --from-date %s", f.toDate, f.fromDate)
	}
	return w, nil
}

// location resolves the output timezone, flag over config.
func (f *rangeFlags) location(cfg config.Config) (*time.Location, error) {
	name := f.outputTZ
	if name == "" {
		name = cfg.OutputTimezone
	}
	loc, err := tzone.Resolve(name)
	if err != nil {
		return nil, fmt.Errorf("invalid output timezone: %w", err)
	}
	return loc, nil
}

// projectMap loads the projects file, flag over config. A file named
// explicitly on the command line must exist; one that only comes from
// config degrades to blank clients with a warning, matching how a shared
// config travels between machines that do not all carry the file.
func (f *rangeFlags) projectMap(cfg config.Config, explicit bool, log *slog.Logger) (domain.ProjectMap, error) {
	path := f.projects
	if path == "" {
		path = cfg.ProjectsFile
	}
	if path == "" {
		return nil, nil
	}
	m, err := tg.LoadProjects(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			log.Warn("projects file not found, client names will be blank", slog.String("file", path))
			return nil, nil
		}
		return nil, err
	}
	log.Debug("loaded project mappings", slog.Int("count", len(m)), slog.String("file", path))
	return m, nil
}
