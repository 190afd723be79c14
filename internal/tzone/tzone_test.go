package tzone

import (
	"testing"
	"time"
)

func TestResolveFixedOffsets(t *testing.T) {
	tests := []struct {
		name       string
		wantOffset int // seconds east of UTC
	}{
		{"GMT+07:00", 7 * 3600},
		{"GMT-05:00", -5 * 3600},
		{"GMT+7", 7 * 3600},
		{"GMT-5", -5 * 3600},
		{"GMT+0630", 6*3600 + 30*60},
		{"GMT+00:30", 30 * 60},
		{"GMT-00:30", -30 * 60},
		{"GMT+14:00", 14 * 3600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := Resolve(tt.name)
			if err != nil {
				t.Fatalf("Resolve(%q): %v", tt.name, err)
			}
			_, offset := time.Date(2025, 6, 1, 12, 0, 0, 0, loc).Zone()
			if offset != tt.wantOffset {
				t.Errorf("offset = %d, want %d", offset, tt.wantOffset)
			}
		})
	}
}

func TestResolveRejectsBadOffsets(t *testing.T) {
	bad := []string{"GMT+", "GMT-", "GMT+xx", "GMT+99", "GMT+07:99", "GMT+:30", "GMT+7:-1"}
	for _, name := range bad {
		if _, err := Resolve(name); err == nil {
			t.Errorf("Resolve(%q) should fail", name)
		}
	}
}

func TestResolveIANAAndAliases(t *testing.T) {
	loc, err := Resolve("Asia/Bangkok")
	if err != nil {
		t.Fatalf("Resolve(Asia/Bangkok): %v", err)
	}
	_, offset := time.Date(2025, 6, 1, 12, 0, 0, 0, loc).Zone()
	if offset != 7*3600 {
		t.Errorf("Bangkok offset = %d, want %d", offset, 7*3600)
	}

	for _, name := range []string{"", "UTC", "GMT", "  UTC  "} {
		loc, err := Resolve(name)
		if err != nil {
			t.Fatalf("Resolve(%q): %v", name, err)
		}
		if loc != time.UTC {
			t.Errorf("Resolve(%q) = %v, want UTC", name, loc)
		}
	}

	if _, err := Resolve("Atlantis/Lost_City"); err == nil {
		t.Error("unknown IANA name should fail")
	}
}

// Normalizing a known epoch-millis timestamp and formatting it in a target
// zone must reproduce the wall time the tracker displayed.
func TestFromUnixMillisRoundTrip(t *testing.T) {
	tests := []struct {
		ms   int64
		zone string
		want string
	}{
		{1735689600000, "GMT+07:00", "2025-01-01 07:00:00"},
		{1735689600000, "UTC", "2025-01-01 00:00:00"},
		{1735689600000, "Asia/Bangkok", "2025-01-01 07:00:00"},
		{1722502800500, "GMT-05:00", "2024-08-01 04:00:00"}, // millis truncate
	}

	for _, tt := range tests {
		loc, err := Resolve(tt.zone)
		if err != nil {
			t.Fatalf("Resolve(%q): %v", tt.zone, err)
		}
		got := FromUnixMillis(tt.ms).In(loc).Format("2006-01-02 15:04:05")
		if got != tt.want {
			t.Errorf("FromUnixMillis(%d) in %s = %q, want %q", tt.ms, tt.zone, got, tt.want)
		}
	}
}
