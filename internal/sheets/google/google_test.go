package google

import (
	"testing"
	"time"
)

func TestParseMonth(t *testing.T) {
	cases := []struct {
		in   string
		want time.Month
		ok   bool
	}{
		{"8", time.August, true},
		{"12", time.December, true},
		{"August", time.August, true},
		{"aug", time.August, true},
		{"0", 0, false},
		{"13", 0, false},
		{"", 0, false},
		{"Agosto", 0, false},
	}
	for _, tc := range cases {
		got, err := parseMonth(tc.in)
		if tc.ok && (err != nil || got != tc.want) {
			t.Fatalf("parseMonth(%q) = %v, %v; want %v", tc.in, got, err, tc.want)
		}
		if !tc.ok && err == nil {
			t.Fatalf("parseMonth(%q) expected error", tc.in)
		}
	}
}

func TestParseDateOr(t *testing.T) {
	fallback := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	if got := parseDateOr("2025-08-15", fallback); got.Day() != 15 {
		t.Fatalf("iso date not parsed: %v", got)
	}
	if got := parseDateOr("8/15/2025", fallback); got.Day() != 15 {
		t.Fatalf("us date not parsed: %v", got)
	}
	if got := parseDateOr("not a date", fallback); !got.Equal(fallback) {
		t.Fatalf("expected fallback, got %v", got)
	}
}
