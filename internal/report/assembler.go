package report

import (
	"fmt"
	"time"

	"budgetreport/internal/core"
)

// Assembler walks parsed categories, applies the deviation analyzer at
// category and item granularity, and keeps only what is reportable.
type Assembler struct {
	threshold float64
}

// NewAssembler builds an assembler with the given deviation threshold
// (a fraction; 0.20 flags anything beyond +/-20%).
func NewAssembler(threshold float64) Assembler {
	return Assembler{threshold: threshold}
}

// Build produces the report for one parsed ledger. Categories appear in
// parse order; within each reportable category, significant items follow
// as an indented breakdown, and a blank separator row/line closes the
// block.
func (a Assembler) Build(period core.Period, cats []core.Category, generatedAt time.Time) *Report {
	rep := &Report{Period: period, GeneratedAt: generatedAt}

	for _, cat := range cats {
		res := core.Analyze(cat.TotalPlanned, cat.TotalActual, a.threshold)
		if !core.Reportable(cat.TotalPlanned, cat.TotalActual, res) {
			continue
		}

		rep.TableRows = append(rep.TableRows, TableRow{
			Category:     cat.Name,
			Actual:       currency(cat.TotalActual),
			Planned:      currency(cat.TotalPlanned),
			Deviation:    signedAmount(res.Deviation),
			DeviationPct: percent(res.Pct),
			Status:       string(res.Status),
		})
		rep.NarrativeLines = append(rep.NarrativeLines, fmt.Sprintf(
			"%s: %s budget by %s (%s vs. %s)",
			cat.Name, res.Status, percent(res.Pct),
			currency(cat.TotalActual), currency(cat.TotalPlanned)))

		var itemLines []string
		for _, it := range cat.Items {
			ires := core.Analyze(it.Planned, it.Actual, a.threshold)
			if !core.Reportable(it.Planned, it.Actual, ires) {
				continue
			}
			rep.TableRows = append(rep.TableRows, TableRow{
				Item:         it.Description,
				Actual:       currency(it.Actual),
				Planned:      currency(it.Planned),
				Deviation:    signedAmount(ires.Deviation),
				DeviationPct: percent(ires.Pct),
			})
			itemLines = append(itemLines, fmt.Sprintf(
				"     %s: %s (Actual) vs %s (Planned) (Diff: %s, %s)",
				it.Description, currency(it.Actual), currency(it.Planned),
				signedAmount(ires.Deviation), percent(ires.Pct)))
		}
		if len(itemLines) > 0 {
			rep.NarrativeLines = append(rep.NarrativeLines, "   Key Items:")
			rep.NarrativeLines = append(rep.NarrativeLines, itemLines...)
		}

		// Visual separation between category blocks.
		rep.TableRows = append(rep.TableRows, TableRow{})
		rep.NarrativeLines = append(rep.NarrativeLines, "")
	}

	return rep
}
