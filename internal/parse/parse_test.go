package parse

import (
	"math"
	"testing"
	"time"
)

func TestNumber(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"3.1", 3.1},
		{"1,234", 1234},
		{"1,234.5 kcal", 1234.5},
		{"-12", -12},
		{"  42  ", 42},
		{"", 0},
		{"--", 0},
		{"n/a", 0},
		{"abc", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Number(tt.input)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Number(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestClockDuration(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"0:28:00", 1680},
		{"1:02:03", 3723},
		{"28:00", 1680},
		{"0:45", 45},
		{"x:30:00", 1800}, // non-numeric segment contributes 0
		{"1:xx:30", 3630},
		{"", 0},
		{"42", 0},
		{"1:2:3:4", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ClockDuration(tt.input)
			if got != tt.want {
				t.Errorf("ClockDuration(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestHourMin(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"7h 33min", 453},
		{"45min", 45},
		{"8h", 480},
		{"8H 5MIN", 485},
		{"", 0},
		{"nonsense", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := HourMin(tt.input)
			if got != tt.want {
				t.Errorf("HourMin(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string // ISO date, "" when unresolvable
	}{
		{"iso", "2025-01-01", "2025-01-01"},
		{"iso with time", "2025-03-14 06:30:00", "2025-03-14"},
		{"us slashes", "03/14/2025", "2025-03-14"},
		{"long form", "Jan 2, 2025", "2025-01-02"},
		{"non-breaking space", "Jan\u00a02,\u00a02025", "2025-01-02"},
		{"extra whitespace", "  2025-01-01  ", "2025-01-01"},
		{"garbage", "not a date", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Date(tt.input)
			if tt.want == "" {
				if ok {
					t.Errorf("Date(%q) resolved to %v, want no date", tt.input, got)
				}
				return
			}
			if !ok {
				t.Fatalf("Date(%q) did not resolve", tt.input)
			}
			if iso := got.Format("2006-01-02"); iso != tt.want {
				t.Errorf("Date(%q) = %s, want %s", tt.input, iso, tt.want)
			}
		})
	}
}

func TestDistance(t *testing.T) {
	tests := []struct {
		name  string
		raw   float64
		sport string
		want  float64
	}{
		{"open water swim converts from meters", 1609.34, "Open Water Swimming", 1.0},
		{"pool swim converts", 3218.68, "Pool Swim", 2.0},
		{"track running converts", 1609.34, "Track Running", 1.0},
		{"cycling stays in miles", 1609.34, "Cycling", 1609.34},
		{"plain running stays in miles", 3.1, "Running", 3.1},
		{"case-insensitive lookup", 1609.34, "SWIMMING", 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Distance(tt.raw, tt.sport)
			if math.Abs(got-tt.want) > 0.001 {
				t.Errorf("Distance(%v, %q) = %v, want %v", tt.raw, tt.sport, got, tt.want)
			}
		})
	}
}

func TestDateIdempotent(t *testing.T) {
	// Same input twice yields the same result; there is no hidden state.
	a, okA := Date("2025-06-01")
	b, okB := Date("2025-06-01")
	if okA != okB || !a.Equal(b) {
		t.Errorf("Date not idempotent: %v/%v vs %v/%v", a, okA, b, okB)
	}
	if !a.Equal(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Date = %v, want 2025-06-01 UTC", a)
	}
}
