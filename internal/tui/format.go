package tui

import (
	"fmt"
	"strconv"
)

// formatDuration formats seconds as "Hh Mm" or "Mm"
func formatDuration(seconds int) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}

// formatMinutes formats minutes as "Xh Ym"
func formatMinutes(minutes int) string {
	return formatDuration(minutes * 60)
}

// formatMiles formats a distance with its unit label
func formatMiles(miles float64) string {
	return fmt.Sprintf("%.1f mi", miles)
}

// formatCount renders an integer with thousands separators
func formatCount(n int) string {
	s := strconv.Itoa(n)
	if n < 0 {
		return "-" + formatCount(-n)
	}
	var out []byte
	for i, d := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, d)
	}
	return string(out)
}

// orDash renders a possibly-absent string, substituting a placeholder
func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// truncate shortens a string to max runes with an ellipsis
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
