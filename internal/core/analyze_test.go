package core

import (
	"math"
	"testing"
)

func TestAnalyzeZeroBudget(t *testing.T) {
	cases := []struct {
		name    string
		planned int64
		actual  int64
		pct     float64
		status  Status
	}{
		{"both zero", 0, 0, 0, StatusOK},
		{"spend without budget", 0, 15000, 1.0, StatusOver},
		{"refund without budget", 0, -5000, -1.0, StatusUnder},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := Analyze(Money{Cents: tc.planned}, Money{Cents: tc.actual}, 0.20)
			if res.Pct != tc.pct {
				t.Fatalf("pct = %v, want %v", res.Pct, tc.pct)
			}
			if res.Status != tc.status {
				t.Fatalf("status = %v, want %v", res.Status, tc.status)
			}
			if got, want := res.Deviation.Cents, tc.actual-tc.planned; got != want {
				t.Fatalf("deviation = %d, want %d", got, want)
			}
		})
	}
}

func TestAnalyzeThresholdBoundary(t *testing.T) {
	// Exactly at the threshold is still OK; strictly beyond flips it.
	res := Analyze(Money{Cents: 10000}, Money{Cents: 12000}, 0.20)
	if res.Pct != 0.20 {
		t.Fatalf("pct = %v, want 0.20", res.Pct)
	}
	if res.Status != StatusOK {
		t.Fatalf("status = %v, want OK at the boundary", res.Status)
	}

	res = Analyze(Money{Cents: 10000}, Money{Cents: 12100}, 0.20)
	if res.Status != StatusOver {
		t.Fatalf("status = %v, want Over just past the boundary", res.Status)
	}

	res = Analyze(Money{Cents: 10000}, Money{Cents: 7900}, 0.20)
	if res.Status != StatusUnder {
		t.Fatalf("status = %v, want Under", res.Status)
	}
}

func TestAnalyzeNeverNaNOrInf(t *testing.T) {
	amounts := []int64{0, 1, -1, 100, -100, 540994, -140892, math.MaxInt32}
	for _, p := range amounts {
		for _, a := range amounts {
			res := Analyze(Money{Cents: p}, Money{Cents: a}, 0.20)
			if math.IsNaN(res.Pct) || math.IsInf(res.Pct, 0) {
				t.Fatalf("Analyze(%d, %d) produced pct=%v", p, a, res.Pct)
			}
		}
	}
}

func TestAnalyzeShelterScenario(t *testing.T) {
	// Shelter: planned 5409.94, actual 4001.02 -> -26.0%, Under.
	res := Analyze(Money{Cents: 540994}, Money{Cents: 400102}, 0.20)
	if res.Deviation.Cents != -140892 {
		t.Fatalf("deviation = %d, want -140892", res.Deviation.Cents)
	}
	if res.Status != StatusUnder {
		t.Fatalf("status = %v, want Under", res.Status)
	}
	if got := math.Round(res.Pct*1000) / 1000; got != -0.260 {
		t.Fatalf("pct = %v, want ~ -0.260", res.Pct)
	}
}

func TestReportable(t *testing.T) {
	cases := []struct {
		name    string
		planned int64
		actual  int64
		want    bool
	}{
		{"within threshold", 10000, 11000, false},
		{"over threshold", 10000, 13000, true},
		{"budget but no spend", 10000, 0, true},
		{"spend but no budget", 0, 10000, true},
		{"both zero", 0, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, a := Money{Cents: tc.planned}, Money{Cents: tc.actual}
			res := Analyze(p, a, 0.20)
			if got := Reportable(p, a, res); got != tc.want {
				t.Fatalf("Reportable = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestReportableZeroCrossingWithHugeThreshold(t *testing.T) {
	// With a threshold at or above 1.0 the zero-budget rule alone would
	// call a no-budget spend OK; the explicit zero-crossing check still
	// flags it.
	p, a := Money{}, Money{Cents: 5000}
	res := Analyze(p, a, 1.5)
	if res.Status != StatusOK {
		t.Fatalf("status = %v, want OK under a 150%% threshold", res.Status)
	}
	if !Reportable(p, a, res) {
		t.Fatal("zero-budget spend must stay reportable")
	}
}
