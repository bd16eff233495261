package parse

import (
	"strconv"
	"strings"
	"time"
)

// MetersPerMile is the conversion factor for meter-denominated exports.
const MetersPerMile = 1609.34

// meterSports lists the activity labels Garmin exports with meter-denominated
// distance. Everything else is already in miles. This is a static lookup, not
// inferred from a units column.
var meterSports = map[string]bool{
	"track running":       true,
	"pool swim":           true,
	"swimming":            true,
	"open water swimming": true,
}

// Number parses a loosely formatted numeric string. All characters except
// digits, '.' and '-' are stripped first, so "1,234 kcal" parses as 1234.
// Anything that still fails to parse comes back as 0.
func Number(s string) float64 {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	n, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return n
}

// ClockDuration parses a colon-separated duration ("H:M:S" or "M:S") into
// seconds. A non-numeric segment contributes 0. Fractional seconds are
// truncated.
func ClockDuration(s string) int {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0
	}

	segs := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			v = 0
		}
		segs[i] = int(v)
	}

	if len(segs) == 3 {
		return segs[0]*3600 + segs[1]*60 + segs[2]
	}
	return segs[0]*60 + segs[1]
}

// HourMin parses the "Xh Ymin" duration format used by periodic sleep
// exports into minutes. Both parts are optional and matching is
// case-insensitive, so "7h 33min" is 453, "45min" is 45 and "8H" is 480.
// A string with neither part is 0.
func HourMin(s string) int {
	total := 0
	for _, field := range strings.Fields(strings.ToLower(s)) {
		switch {
		case strings.HasSuffix(field, "min"):
			total += int(Number(strings.TrimSuffix(field, "min")))
		case strings.HasSuffix(field, "h"):
			total += int(Number(strings.TrimSuffix(field, "h"))) * 60
		}
	}
	return total
}

// dateLayouts are probed in order by Date. Garmin exports vary layout by
// export surface and locale, so both dash and slash forms appear, with and
// without a time portion.
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"01/02/2006 15:04",
	"01/02/2006",
	"1/2/2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	time.RFC3339,
}

// Date parses a loosely formatted date or timestamp string. Whitespace,
// including the non-breaking spaces some exports carry, is normalized before
// probing the known layouts. The second return reports whether a date was
// resolved; records without one cannot be bucketed by day or week.
func Date(s string) (time.Time, bool) {
	s = normalizeSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Distance resolves a raw distance value to miles given the activity label.
// Meter-denominated sports are converted; all others are taken as miles.
func Distance(raw float64, sportLabel string) float64 {
	if meterSports[strings.ToLower(strings.TrimSpace(sportLabel))] {
		return raw / MetersPerMile
	}
	return raw
}

// normalizeSpace collapses runs of whitespace (including NBSP) into single
// spaces and trims the ends.
func normalizeSpace(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = strings.ReplaceAll(s, "\u202f", " ")
	return strings.Join(strings.Fields(s), " ")
}
