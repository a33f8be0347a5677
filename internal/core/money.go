// Package core holds the budget ledger domain model and the deviation
// analyzer. Everything here is pure: no I/O, no clocks, no globals.
package core

import (
	"math"
	"strconv"
	"strings"
)

// Money is a signed amount in cents. Negative amounts are legal in the
// ledger (refunds, credits), so unlike a payment amount there is no
// positivity invariant here.
type Money struct {
	Cents int64
}

// Dollars returns the amount as a float64 for display purposes only.
// Calculations stay in cents.
func (m Money) Dollars() float64 {
	return float64(m.Cents) / 100.0
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.Cents == 0
}

// Sub returns m - o.
func (m Money) Sub(o Money) Money {
	return Money{Cents: m.Cents - o.Cents}
}

// parseCents converts a decimal string to cents. It accepts dot or comma
// decimal separators, an optional leading sign, and a leading currency
// symbol. Returns false for anything non-numeric.
func parseCents(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	if s == "" {
		return 0, false
	}
	// Thousands separators and decimal commas both show up in exported
	// sheets; normalize commas to dots and reject if that yields garbage.
	s = strings.ReplaceAll(s, ",", ".")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return roundCents(f), true
}

// roundCents converts a float amount to cents, rounding half away from
// zero so that -0.005 becomes -1 cent rather than 0.
func roundCents(f float64) int64 {
	return int64(math.Round(f * 100.0))
}
