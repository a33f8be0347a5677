package report

import (
	"fmt"

	"budgetreport/internal/core"
)

// Formatting lives at the presentation boundary; the analyzer stays
// numeric so tests can assert exact values.

// currency renders an amount as a currency string with two decimals.
func currency(m core.Money) string {
	return fmt.Sprintf("$%.2f", m.Dollars())
}

// signedAmount renders an amount with an explicit sign, two decimals.
func signedAmount(m core.Money) string {
	return fmt.Sprintf("%+.2f", m.Dollars())
}

// percent renders a fractional deviation as a one-decimal percentage.
func percent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct*100)
}
