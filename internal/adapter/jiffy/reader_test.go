package jiffy

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"trackport/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

const sampleExport = `{
  "time_entries": [
    {"id": "e1", "owner_id": "o1", "note": "fix login bug", "status": "ACTIVE",
     "start_time": 1722502800000, "stop_time": 1722506400000,
     "start_time_zone": "Asia/Bangkok", "stop_time_zone": "Asia/Bangkok"},
    {"id": "e2", "owner_id": "o2", "note": "standup", "status": "DELETED",
     "start_time": 1722510000000, "stop_time": 1722511800000,
     "start_time_zone": "GMT+07:00", "stop_time_zone": "GMT+07:00"},
    {"id": "e3", "owner_id": "o1", "note": "", "status": "ACTIVE",
     "start_time": 1722513600000, "stop_time": 0,
     "start_time_zone": "Asia/Bangkok", "stop_time_zone": ""},
    {"id": "e4", "owner_id": "missing", "note": "orphan", "status": "ACTIVE",
     "start_time": 1722517200000, "stop_time": 1722520800000,
     "start_time_zone": "Asia/Bangkok", "stop_time_zone": "Asia/Bangkok"},
    {"id": "bad1", "owner_id": "o1", "note": "no start", "status": "ACTIVE",
     "start_time": 0, "stop_time": 1722520800000},
    {"id": "bad2", "owner_id": "o1", "note": "backwards", "status": "ACTIVE",
     "start_time": 1722520800000, "stop_time": 1722517200000}
  ],
  "time_owners": [
    {"id": "c1", "name": "Acme", "status": "ACTIVE", "parent_id": ""},
    {"id": "o1", "name": "Backend", "status": "ACTIVE", "parent_id": "c1"},
    {"id": "o2", "name": "Meetings", "status": "ACTIVE", "parent_id": ""}
  ]
}`

func TestDecode(t *testing.T) {
	r := NewReader("unused", testLogger())
	export, err := r.decode(strings.NewReader(sampleExport))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	// bad1 and bad2 are skipped; everything else survives in order.
	if len(export.Entries) != 4 {
		t.Fatalf("got %d entries, want 4", len(export.Entries))
	}

	e1 := export.Entries[0]
	if e1.ID != "e1" || e1.Description != "fix login bug" {
		t.Errorf("unexpected first entry: %+v", e1)
	}
	if e1.Project != "Backend" || e1.Client != "Acme" {
		t.Errorf("owner hierarchy not resolved: project=%q client=%q", e1.Project, e1.Client)
	}
	if want := time.Date(2024, 8, 1, 9, 0, 0, 0, time.UTC); !e1.Start.Equal(want) {
		t.Errorf("start = %v, want %v", e1.Start, want)
	}
	if e1.Open() || e1.Duration() != time.Hour {
		t.Errorf("duration = %v (open=%v), want 1h closed", e1.Duration(), e1.Open())
	}

	if export.Entries[1].Status != domain.StatusDeleted {
		t.Errorf("deleted entries must survive loading with their status")
	}
	if export.Entries[1].Project != "Meetings" || export.Entries[1].Client != "" {
		t.Errorf("top-level owner should have no client: %+v", export.Entries[1])
	}

	if !export.Entries[2].Open() {
		t.Error("entry without stop_time should load as open")
	}

	if export.Entries[3].Project != "Unknown" {
		t.Errorf("missing owner should map to Unknown, got %q", export.Entries[3].Project)
	}
}

func TestDecodeProjectMap(t *testing.T) {
	r := NewReader("unused", testLogger())
	export, err := r.decode(strings.NewReader(sampleExport))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if got := export.Projects.Client("Backend"); got != "Acme" {
		t.Errorf("Projects[Backend] = %q, want Acme", got)
	}
	if got := export.Projects.Client("Meetings"); got != "" {
		t.Errorf("top-level owner should be unmapped, got %q", got)
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	r := NewReader("unused", testLogger())
	if _, err := r.decode(strings.NewReader("not json")); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestLoadMissingFile(t *testing.T) {
	r := NewReader("does/not/exist.json", testLogger())
	if _, err := r.Load(context.Background()); err == nil {
		t.Error("expected error for missing file")
	}
}
