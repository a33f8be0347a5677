package core

import "math"

// Analyze compares an actual amount against a planned one and classifies
// the deviation against the threshold (a fraction, e.g. 0.20 for 20%).
//
// The zero-budget rule keeps the result total and finite: with nothing
// planned, any spend at all counts as a full 100% deviation in the
// direction of the sign, and no spend is a perfect 0%. Pct is therefore
// never NaN or Inf for any input pair.
func Analyze(planned, actual Money, threshold float64) DeviationResult {
	deviation := actual.Sub(planned)

	var pct float64
	switch {
	case planned.IsZero() && actual.IsZero():
		pct = 0
	case planned.IsZero() && actual.Cents > 0:
		pct = 1.0
	case planned.IsZero():
		pct = -1.0
	default:
		pct = float64(deviation.Cents) / float64(planned.Cents)
	}

	status := StatusOK
	if math.Abs(pct) > threshold {
		if pct > 0 {
			status = StatusOver
		} else {
			status = StatusUnder
		}
	}

	return DeviationResult{Deviation: deviation, Pct: pct, Status: status}
}

// Reportable decides whether a deviation is significant enough to appear
// in the report. A non-OK status always qualifies; the zero-crossing
// cases (budget with no spend, spend with no budget) are checked
// explicitly even though the zero-budget rule already pushes them past
// any threshold below 1.0. Both zero yields OK and is excluded.
func Reportable(planned, actual Money, res DeviationResult) bool {
	if res.Status != StatusOK {
		return true
	}
	if planned.IsZero() && !actual.IsZero() {
		return true
	}
	if !planned.IsZero() && actual.IsZero() {
		return true
	}
	return false
}
