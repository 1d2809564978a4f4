package timeclock

import (
	"strings"
	"time"
)

// Manila is the civil timezone of the whole work calendar. The Philippines
// has not observed DST since 1978, so a fixed offset keeps normalization
// deterministic even on hosts without tzdata.
var Manila = time.FixedZone("Asia/Manila", 8*60*60)

// MinutesInDay is the exclusive upper bound of MinutesOfDay results.
const MinutesInDay = 24 * 60

// layouts accepted for raw timestamps that carry no zone marker. The store
// persists timestamps as UTC without a suffix, so a trailing Z is assumed
// before parsing.
var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02 15:04:05Z07:00",
}

// MinutesOfDay converts a raw timestamp string into wall-clock minutes after
// midnight in Manila. The second return value is false when the input is
// empty or unparseable; callers treat that as "no information".
func MinutesOfDay(raw string) (int, bool) {
	t, ok := parse(raw)
	if !ok {
		return 0, false
	}
	local := t.In(Manila)
	return local.Hour()*60 + local.Minute(), true
}

// CivilDate returns the Manila civil date of the given instant, normalized to
// a UTC-midnight date value so it compares equal to DATE column scans.
func CivilDate(now time.Time) time.Time {
	local := now.In(Manila)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

// MinutesSinceMidnight returns Manila wall-clock minutes for an instant.
func MinutesSinceMidnight(now time.Time) int {
	local := now.In(Manila)
	return local.Hour()*60 + local.Minute()
}

// DateKey formats a civil date for use as a map key.
func DateKey(date time.Time) string {
	return date.Format("2006-01-02")
}

func parse(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}

	// Bare civil date: treated as UTC midnight.
	if len(raw) == len("2006-01-02") {
		if t, err := time.ParseInLocation("2006-01-02", raw, time.UTC); err == nil {
			return t, true
		}
		return time.Time{}, false
	}

	if hasZoneMarker(raw) {
		for _, layout := range naiveLayouts {
			if t, err := time.Parse(layout, raw); err == nil {
				return t, true
			}
		}
		return time.Time{}, false
	}

	// No zone marker: the store convention is UTC.
	for _, layout := range naiveLayouts {
		if t, err := time.Parse(layout, raw+"Z"); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// hasZoneMarker reports whether the timestamp part of raw ends with an
// explicit zone (Z or +hh:mm / -hh:mm).
func hasZoneMarker(raw string) bool {
	if strings.HasSuffix(raw, "Z") || strings.HasSuffix(raw, "z") {
		return true
	}
	// Look for a +/- after the date portion; the date's own dashes sit
	// before index 10.
	for i := 10; i < len(raw); i++ {
		if raw[i] == '+' || raw[i] == '-' {
			return true
		}
	}
	return false
}
