package duration

import (
	"errors"
	"testing"
	"time"
)

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    time.Duration
		minutes float64
	}{
		{name: "bare number is minutes", in: "30", want: 30 * time.Minute, minutes: 30},
		{name: "seconds", in: "45s", want: 45 * time.Second, minutes: 0.75},
		{name: "minutes", in: "30m", want: 30 * time.Minute, minutes: 30},
		{name: "hours", in: "2h", want: 2 * time.Hour, minutes: 120},
		{name: "days", in: "1d", want: 24 * time.Hour, minutes: 1440},
		{name: "upper-case unit", in: "10S", want: 10 * time.Second, minutes: 1.0 / 6},
		{name: "surrounding whitespace", in: " 5m ", want: 5 * time.Minute, minutes: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
			}
			if got.Minutes() != tt.minutes {
				t.Errorf("Parse(%q).Minutes() = %v, want %v", tt.in, got.Minutes(), tt.minutes)
			}
		})
	}
}

func TestParse_SameDurationDifferentUnits(t *testing.T) {
	pairs := [][2]string{
		{"60s", "1m"},
		{"120m", "2h"},
		{"24h", "1d"},
	}
	for _, p := range pairs {
		a, err := Parse(p[0])
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", p[0], err)
		}
		b, err := Parse(p[1])
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", p[1], err)
		}
		if a != b {
			t.Errorf("Parse(%q) = %v, Parse(%q) = %v, want equal", p[0], a, p[1], b)
		}
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []string{
		"",
		"abc",
		"-5m",
		"1.5h",
		"10x",
		"m",
		"5 m",
		"5mm",
	}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			if _, err := Parse(in); !errors.Is(err, ErrInvalidFormat) {
				t.Fatalf("Parse(%q) error = %v, want ErrInvalidFormat", in, err)
			}
		})
	}
}
