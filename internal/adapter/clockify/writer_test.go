package clockify

import (
	"bytes"
	"io"
	"log/slog"
	"testing"
	"time"

	"trackport/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestEncode(t *testing.T) {
	bangkok := time.FixedZone("GMT+07:00", 7*3600)
	// 02:00 UTC is 09:00 in GMT+7; 09:30 UTC is 16:30.
	morning := time.Date(2025, 8, 1, 2, 0, 0, 0, time.UTC)
	morningStop := morning.Add(time.Hour)
	afternoon := time.Date(2025, 8, 1, 9, 30, 0, 0, time.UTC)
	afternoonStop := afternoon.Add(2*time.Hour + 45*time.Minute)

	entries := []domain.TimeEntry{
		{
			Description: "fix login bug",
			Project:     "Backend",
			Client:      "Acme",
			Email:       "me@example.com",
			Tags:        []string{"focus", "billing"},
			Start:       morning,
			Stop:        &morningStop,
			Status:      domain.StatusActive,
		},
		{
			Description: "design review",
			Project:     "Website",
			Email:       "me@example.com",
			Billable:    true,
			Start:       afternoon,
			Stop:        &afternoonStop,
			Status:      domain.StatusActive,
		},
	}

	var buf bytes.Buffer
	w := NewCSVWriter("unused", bangkok, testLogger())
	if err := w.encode(&buf, entries); err != nil {
		t.Fatalf("encode: %v", err)
	}

	want := `"Project","Client","Description","Task","Email","Tags","Billable","Start Date","Start Time","Duration (h)"` + "\r\n" +
		`"Backend","Acme","fix login bug","","me@example.com","focus, billing","No","08/01/2025","9:00 AM","1:00:00"` + "\r\n" +
		`"Website","","design review","","me@example.com","","Yes","08/01/2025","4:30 PM","2:45:00"` + "\r\n"
	if got := buf.String(); got != want {
		t.Errorf("output mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestEncodeTwelveHourClock(t *testing.T) {
	tests := []struct {
		hour, min int
		want      string
	}{
		{0, 5, "12:05 AM"},
		{9, 0, "9:00 AM"},
		{12, 0, "12:00 PM"},
		{13, 30, "1:30 PM"},
		{23, 59, "11:59 PM"},
	}

	for _, tt := range tests {
		start := time.Date(2025, 8, 1, tt.hour, tt.min, 0, 0, time.UTC)
		stop := start.Add(time.Minute)
		var buf bytes.Buffer
		w := NewCSVWriter("unused", time.UTC, testLogger())
		err := w.encode(&buf, []domain.TimeEntry{{Start: start, Stop: &stop, Status: domain.StatusActive}})
		if err != nil {
			t.Fatalf("encode: %v", err)
		}
		if !bytes.Contains(buf.Bytes(), []byte(`"`+tt.want+`"`)) {
			t.Errorf("%02d:%02d should render as %q, output:\n%s", tt.hour, tt.min, tt.want, buf.String())
		}
	}
}
