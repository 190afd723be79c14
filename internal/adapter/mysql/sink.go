package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"trackport/internal/domain"
)

// Client implements ports.Sink by upserting entries into a MySQL table.
// Open entries are stored with a NULL stop; re-archiving the same export is
// idempotent because rows are keyed by entry id.
type Client struct {
	db     *sql.DB
	source string
	log    *slog.Logger
}

// NewClient opens a MySQL connection using the provided DSN. source tags
// every row with the format it came from (jiffy or toggl).
// Example DSN: user:pass@tcp(host:3306)/dbname?parseTime=true&multiStatements=true
func NewClient(ctx context.Context, dsn, source string, log *slog.Logger) (*Client, error) {
	if dsn == "" {
		return nil, errors.New("mysql: DSN is required")
	}
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}
	// Conservative pool defaults; a batch tool never needs more.
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	c, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(c); err != nil {
		db.Close()
		return nil, err
	}
	return &Client{db: db, source: source, log: log}, nil
}

// WriteEntries upserts entries into the time_entries table.
func (c *Client) WriteEntries(ctx context.Context, entries []domain.TimeEntry) error {
	if len(entries) == 0 {
		return nil
	}
	tx, err := c.db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return err
	}
	// Use ON DUPLICATE KEY UPDATE to perform upserts.
	const q = `
INSERT INTO time_entries
  (id, source, description, project, client, email, tags, billable, start, stop, duration_sec, status)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  source=VALUES(source),
  description=VALUES(description),
  project=VALUES(project),
  client=VALUES(client),
  email=VALUES(email),
  tags=VALUES(tags),
  billable=VALUES(billable),
  start=VALUES(start),
  stop=VALUES(stop),
  duration_sec=VALUES(duration_sec),
  status=VALUES(status);
`
	stmt, err := tx.PrepareContext(ctx, q)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, e := range entries {
		// Marshal tags as JSON for readability; stored as TEXT.
		tagsJSON, _ := json.Marshal(e.Tags)
		var stop interface{}
		if e.Stop != nil {
			stop = e.Stop.UTC()
		} else {
			stop = nil
		}
		if _, err := stmt.ExecContext(
			ctx,
			e.ID,
			c.source,
			e.Description,
			e.Project,
			e.Client,
			e.Email,
			string(tagsJSON),
			e.Billable,
			e.Start.UTC(),
			stop,
			int64(e.Duration().Seconds()),
			string(e.Status),
		); err != nil {
			tx.Rollback()
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	c.log.Info("mysql sink upserted entries", slog.Int("count", len(entries)))
	return nil
}

// Close closes the underlying DB. Not wired via interface to keep ports minimal.
func (c *Client) Close() error { return c.db.Close() }
