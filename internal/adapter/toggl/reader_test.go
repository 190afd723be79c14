package toggl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var bangkok = time.FixedZone("GMT+07:00", 7*3600)

func TestDecode(t *testing.T) {
	in := "\xef\xbb\xbf" +
		`"Description","Billable","Duration","Email","Project","Start date","Start time"` + "\r\n" +
		`"fix login bug","No","1:30:00","me@example.com","Backend","2025-08-01","09:00:00"` + "\r\n" +
		`"standup","Yes","0:15:00","me@example.com","Meetings","2025-08-02","10:00:00"` + "\r\n" +
		`"broken row","No","not a duration","me@example.com","Backend","2025-08-02","11:00:00"` + "\r\n" +
		`"bad start","No","1:00:00","me@example.com","Backend","2025-13-99","11:00:00"` + "\r\n"

	r := NewCSVReader("unused", bangkok, testLogger())
	export, err := r.decode(strings.NewReader(in))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if len(export.Entries) != 2 {
		t.Fatalf("got %d entries, want 2 (malformed rows skipped)", len(export.Entries))
	}

	e := export.Entries[0]
	// 09:00 wall time in GMT+7 is 02:00 UTC.
	if want := time.Date(2025, 8, 1, 2, 0, 0, 0, time.UTC); !e.Start.Equal(want) {
		t.Errorf("start = %v, want %v", e.Start, want)
	}
	if e.Duration() != 90*time.Minute {
		t.Errorf("duration = %v, want 90m", e.Duration())
	}
	if e.Email != "me@example.com" || e.Project != "Backend" {
		t.Errorf("unexpected entry: %+v", e)
	}
	if e.Billable {
		t.Error("Billable No should parse as false")
	}
	if e.ID == "" || e.ID == export.Entries[1].ID {
		t.Error("rows must get distinct synthetic ids")
	}

	if !export.Entries[1].Billable {
		t.Error("Billable Yes should parse as true")
	}
}

func TestDecodeDetailedReportColumns(t *testing.T) {
	in := `Description,Client,Tags,Billable,Email,Project,Start date,Start time,End date,End time` + "\n" +
		`deep work,Acme,"focus, billing",Yes,me@example.com,Backend,2025-08-01,22:00:00,2025-08-02,01:30:00` + "\n" +
		`running,,,No,me@example.com,Backend,2025-08-02,08:00:00,,` + "\n"

	r := NewCSVReader("unused", bangkok, testLogger())
	export, err := r.decode(strings.NewReader(in))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(export.Entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(export.Entries))
	}

	e := export.Entries[0]
	if e.Client != "Acme" {
		t.Errorf("client = %q, want Acme", e.Client)
	}
	if len(e.Tags) != 2 || e.Tags[0] != "focus" || e.Tags[1] != "billing" {
		t.Errorf("tags = %v", e.Tags)
	}
	// End crosses midnight: 22:00 -> 01:30 next day is 3h30m.
	if e.Duration() != 3*time.Hour+30*time.Minute {
		t.Errorf("duration = %v, want 3h30m", e.Duration())
	}

	if !export.Entries[1].Open() {
		t.Error("row without Duration or End columns should load as open")
	}
}

func TestDecodeRequiresColumns(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"no start date", "Description,Start time,Duration\n"},
		{"no start time", "Description,Start date,Duration\n"},
		{"no duration or end", "Description,Start date,Start time\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewCSVReader("unused", time.UTC, testLogger())
			if _, err := r.decode(strings.NewReader(tt.header)); err == nil {
				t.Error("expected header validation error")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	r := NewCSVReader("does/not/exist.csv", time.UTC, testLogger())
	if _, err := r.Load(context.Background()); err == nil {
		t.Error("expected error for missing file")
	}
}
