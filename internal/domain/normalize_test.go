package domain

import (
	"reflect"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/pravsels/deepwork/internal/logger"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  []string
		want []string
	}{
		{
			name: "bare domain gains www variant",
			raw:  []string{"example.com"},
			want: []string{"example.com", "www.example.com"},
		},
		{
			name: "www domain kept as-is",
			raw:  []string{"www.example.com"},
			want: []string{"www.example.com"},
		},
		{
			name: "invalid entries dropped",
			raw:  []string{"not a domain", "valid.com"},
			want: []string{"valid.com", "www.valid.com"},
		},
		{
			name: "duplicates collapse",
			raw:  []string{"a.com", "a.com", "www.a.com"},
			want: []string{"a.com", "www.a.com"},
		},
		{
			name: "mixed case lowered",
			raw:  []string{"Example.COM"},
			want: []string{"example.com", "www.example.com"},
		},
		{
			name: "subdomains accepted",
			raw:  []string{"news.ycombinator.com"},
			want: []string{"news.ycombinator.com", "www.news.ycombinator.com"},
		},
		{
			name: "all invalid yields empty",
			raw:  []string{"", "-bad.com", "bad-.com", "single", "a.b"},
			want: nil,
		},
	}

	n := NewNormalizer(logger.Nop())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := n.Normalize(tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Normalize(%v) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	n := NewNormalizer(logger.Nop())
	raw := []string{"reddit.com", "news.ycombinator.com", "www.twitter.com"}

	once := n.Normalize(raw)
	twice := n.Normalize(once)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("Normalize not idempotent: %v != %v", once, twice)
	}
}

func TestNormalize_WarnsOnInvalid(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	n := NewNormalizer(logger.FromZap(zap.New(core)))

	got := n.Normalize([]string{"not a domain", "valid.com"})
	want := []string{"valid.com", "www.valid.com"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Normalize = %v, want %v", got, want)
	}

	if logs.Len() != 1 {
		t.Fatalf("got %d warnings, want 1", logs.Len())
	}
	entry := logs.All()[0]
	if entry.Level != zapcore.WarnLevel {
		t.Errorf("warning level = %v, want warn", entry.Level)
	}
}

func TestValid(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"example.com", true},
		{"www.example.com", true},
		{"a-b.example.co.uk", true},
		{"example", false},
		{"-bad.com", false},
		{"bad-.com", false},
		{"example.c", false},
		{"example.123", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := Valid(tt.in); got != tt.want {
			t.Errorf("Valid(%q) = %t, want %t", tt.in, got, tt.want)
		}
	}
}
