package ports

import (
	"context"

	"trackport/internal/domain"
)

// Source loads time entries from a tracker export file.
type Source interface {
	Load(ctx context.Context) (*domain.Export, error)
}

// Sink receives normalized entries and writes them to a target.
// CSV writers and the MySQL archive both satisfy it; the interface is
// intentionally small so the conversion use case stays format-agnostic.
type Sink interface {
	WriteEntries(ctx context.Context, entries []domain.TimeEntry) error
}
