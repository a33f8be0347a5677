// Package report assembles parsed ledger categories into the two report
// projections: a 7-column table for the spreadsheet sink and a plain
// text narrative for the email sink.
package report

import (
	"fmt"
	"strings"
	"time"

	"budgetreport/internal/core"
)

// RowKind tells presentation sinks how to style a table row.
type RowKind int

const (
	RowSeparator RowKind = iota
	RowCategory
	RowItem
)

// TableRow is one row of the tabular report. All fields are already
// formatted strings; sinks only place and style them.
type TableRow struct {
	Category     string
	Item         string
	Actual       string
	Planned      string
	Deviation    string
	DeviationPct string
	Status       string
}

// Kind classifies the row for styling: category summary rows carry a
// category name, item breakdown rows carry only a description, and the
// zero value is a blank separator.
func (r TableRow) Kind() RowKind {
	switch {
	case r.Category != "":
		return RowCategory
	case r.Item != "":
		return RowItem
	default:
		return RowSeparator
	}
}

// Cells returns the row in fixed column order for grid writes.
func (r TableRow) Cells() []any {
	return []any{r.Category, r.Item, r.Actual, r.Planned, r.Deviation, r.DeviationPct, r.Status}
}

// Header is the fixed table header, matching TableRow's column order.
func Header() []any {
	return []any{"Category", "Item", "Actual", "Planned", "Deviation", "Deviation %", "Status"}
}

// Report is one assembled budget comparison. It owns its row and line
// sequences; nothing here is persisted by the core.
type Report struct {
	Period         core.Period
	GeneratedAt    time.Time
	TableRows      []TableRow
	NarrativeLines []string
}

// SheetTitle names the spreadsheet tab the tabular sink writes to.
func (r *Report) SheetTitle() string {
	return fmt.Sprintf("%s Budget Comparison", r.Period.Month)
}

// EmailSubject names the narrative draft.
func (r *Report) EmailSubject() string {
	return fmt.Sprintf("%s %d Budget Comparison", r.Period.Month, r.Period.Year)
}

// EmailBody renders the narrative body: a fixed preamble followed by
// the narrative lines.
func (r *Report) EmailBody() string {
	var b strings.Builder
	b.WriteString("Monthly Budget Deviation Report\n")
	fmt.Fprintf(&b, "Period: %s %d (%s - %s)\n",
		r.Period.Month, r.Period.Year,
		r.Period.Start.Format("Jan 2, 2006"), r.Period.End.Format("Jan 2, 2006"))
	fmt.Fprintf(&b, "Generated: %s\n", r.GeneratedAt.Format("Jan 2, 2006"))
	b.WriteString("\n")
	b.WriteString(strings.Join(r.NarrativeLines, "\n"))
	return b.String()
}
