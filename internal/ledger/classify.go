// Package ledger turns the raw ledger row stream into category records.
// The ledger carries no schema beyond layout convention: a category name
// in the first column opens a block, indented item lines follow, and a
// "Total <name>" row closes it. Blank separator rows and malformed
// shapes (missing totals, trailing open categories) are all legal input.
package ledger

import (
	"strings"

	"budgetreport/internal/core"
)

// RowKind is the classification of a single ledger row.
type RowKind int

const (
	RowBlank RowKind = iota
	RowCategoryHeader
	RowItem
	RowTotal
)

func (k RowKind) String() string {
	switch k {
	case RowCategoryHeader:
		return "category"
	case RowItem:
		return "item"
	case RowTotal:
		return "total"
	default:
		return "blank"
	}
}

// Classify decides what a row is. Precedence matters: a total row wins
// over everything, a header requires a label free of the sentinel, and
// an item only counts while a category is open and the row carries any
// content (a description or a nonzero amount). Everything else is blank.
func Classify(row core.Row, categoryOpen bool) RowKind {
	label := row.Category.Text()

	if strings.HasPrefix(label, core.TotalSentinel) {
		return RowTotal
	}
	if label != "" && !strings.Contains(label, core.TotalSentinel) {
		return RowCategoryHeader
	}
	if categoryOpen {
		if row.Item.Text() != "" || !row.Planned.Amount().IsZero() || !row.Actual.Amount().IsZero() {
			return RowItem
		}
	}
	return RowBlank
}
