package tui

import "testing"

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"short string untouched", "Running", 18, "Running"},
		{"exact length untouched", "Running", 7, "Running"},
		{"long string gets ellipsis", "Open Water Swimming", 10, "Open Wa..."},
		{"multi-byte labels cut on rune boundaries", "Löpning på längden", 10, "Löpning..."},
		{"tiny max skips the ellipsis", "Running", 2, "Ru"},
		{"zero max", "Running", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncate(tt.in, tt.max); got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "0m"},
		{1800, "30m"},
		{3600, "1h 0m"},
		{27180, "7h 33m"},
	}

	for _, tt := range tests {
		if got := formatDuration(tt.seconds); got != tt.want {
			t.Errorf("formatDuration(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestFormatCount(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{24000, "24,000"},
		{1234567, "1,234,567"},
		{-24000, "-24,000"},
	}

	for _, tt := range tests {
		if got := formatCount(tt.n); got != tt.want {
			t.Errorf("formatCount(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
