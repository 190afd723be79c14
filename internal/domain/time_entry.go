package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Status marks whether an entry is live or soft-deleted in its source export.
type Status string

const (
	StatusActive  Status = "ACTIVE"
	StatusDeleted Status = "DELETED"
)

// TimeEntry is the canonical time entry shared by all sources and sinks.
// Start is always a UTC instant; projection into the output timezone happens
// at emission. Entries are built once by a source and never mutated after
// client resolution.
type TimeEntry struct {
	ID          string
	Description string
	Project     string
	Client      string
	Email       string
	Tags        []string
	Billable    bool
	Start       time.Time
	Stop        *time.Time // nil while the entry is still running
	Status      Status
}

// Open reports whether the entry is still running (no stop time recorded).
func (e TimeEntry) Open() bool { return e.Stop == nil }

// Duration returns Stop - Start, or zero for an open entry.
func (e TimeEntry) Duration() time.Duration {
	if e.Stop == nil {
		return 0
	}
	return e.Stop.Sub(e.Start)
}

// FormatHMS renders a duration as H:MM:SS with unpadded hours, the form both
// the Toggl and Clockify importers accept. Sub-second precision truncates.
func FormatHMS(d time.Duration) string {
	s := int64(d.Seconds())
	return fmt.Sprintf("%d:%02d:%02d", s/3600, s%3600/60, s%60)
}

// ParseHMS parses an H:MM:SS duration string as written by tracker exports.
func ParseHMS(s string) (time.Duration, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("bad duration %q", s)
	}
	var total time.Duration
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 {
			return 0, fmt.Errorf("bad duration %q", s)
		}
		total = total*60 + time.Duration(n)*time.Second
	}
	return total, nil
}

// SyntheticID derives a stable id for entries whose source format carries
// none (Toggl CSV rows). The same start/description/project triple always
// yields the same id so re-archiving an export stays idempotent.
func SyntheticID(start time.Time, description, project string) string {
	h := sha256.New()
	h.Write([]byte(start.UTC().Format(time.RFC3339Nano)))
	h.Write([]byte{0})
	h.Write([]byte(description))
	h.Write([]byte{0})
	h.Write([]byte(project))
	return hex.EncodeToString(h.Sum(nil)[:16])
}
