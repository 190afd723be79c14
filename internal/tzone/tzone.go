// Package tzone resolves the timezone names found in tracker exports and
// normalizes epoch timestamps to canonical UTC instants.
package tzone

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Resolve turns a timezone name into a *time.Location. Jiffy writes either
// IANA names ("Asia/Bangkok") or fixed offsets in the "GMT+07:00" family,
// sometimes both within one file; the output-timezone flag accepts the same
// forms.
func Resolve(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" || name == "GMT" || name == "UTC" {
		return time.UTC, nil
	}
	if strings.HasPrefix(name, "GMT+") || strings.HasPrefix(name, "GMT-") {
		return fixedOffset(name)
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("tzone: unknown timezone %q: %w", name, err)
	}
	return loc, nil
}

// fixedOffset parses the "GMT+07:00" / "GMT-5" / "GMT+0630" offset forms.
func fixedOffset(name string) (*time.Location, error) {
	spec := name[len("GMT"):]
	sign := 1
	if spec[0] == '-' {
		sign = -1
	}
	spec = spec[1:]
	if spec == "" {
		return nil, fmt.Errorf("tzone: empty offset in %q", name)
	}

	var hoursStr, minutesStr string
	switch {
	case strings.Contains(spec, ":"):
		parts := strings.SplitN(spec, ":", 2)
		hoursStr, minutesStr = parts[0], parts[1]
	case len(spec) > 2:
		hoursStr, minutesStr = spec[:len(spec)-2], spec[len(spec)-2:]
	default:
		hoursStr = spec
	}

	hours, err := strconv.Atoi(hoursStr)
	if err != nil || hours < 0 {
		return nil, fmt.Errorf("tzone: bad offset hours in %q", name)
	}
	minutes := 0
	if minutesStr != "" {
		minutes, err = strconv.Atoi(minutesStr)
		if err != nil || minutes < 0 {
			return nil, fmt.Errorf("tzone: bad offset minutes in %q", name)
		}
	}
	if hours > 14 || minutes > 59 {
		return nil, fmt.Errorf("tzone: offset out of range in %q", name)
	}
	return time.FixedZone(name, sign*(hours*3600+minutes*60)), nil
}

// FromUnixMillis converts an epoch-milliseconds timestamp to its canonical
// UTC instant.
func FromUnixMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
