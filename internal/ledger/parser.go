package ledger

import "budgetreport/internal/core"

// parseState is the accumulator threaded through the row loop. Keeping
// it an explicit value (instead of mutable variables captured by a
// closure) makes every transition unit-testable on its own.
type parseState struct {
	open bool
	cur  core.Category
	out  []core.Category
}

// Parse consumes the ledger rows in order and emits one Category per
// block. Guarantees:
//
//   - a header seen while a category is open flushes the open category
//     first, so a missing Total row loses no data;
//   - a Total row captures the block's planned/actual totals and closes
//     it;
//   - a Total row with no open category is ignored;
//   - an open category at end of stream is still emitted, with totals
//     left at zero when no Total row was ever seen.
//
// Duplicate category names stay distinct entries in the result; callers
// that want name-keyed access decide their own collision policy.
func Parse(rows []core.Row) []core.Category {
	st := parseState{}
	for _, row := range rows {
		st = step(st, row)
	}
	if st.open {
		st = flush(st)
	}
	return st.out
}

// step applies one row to the state and returns the next state.
func step(st parseState, row core.Row) parseState {
	switch Classify(row, st.open) {
	case RowCategoryHeader:
		if st.open {
			st = flush(st)
		}
		st.open = true
		st.cur = core.Category{Name: row.Category.Text()}
	case RowItem:
		st.cur.Items = append(st.cur.Items, core.Item{
			Description: row.Item.Text(),
			Planned:     row.Planned.Amount(),
			Actual:      row.Actual.Amount(),
		})
	case RowTotal:
		if st.open {
			st.cur.TotalPlanned = row.Planned.Amount()
			st.cur.TotalActual = row.Actual.Amount()
			st = flush(st)
		}
		// An orphan total row is malformed input, not an error.
	case RowBlank:
	}
	return st
}

func flush(st parseState) parseState {
	st.out = append(st.out, st.cur)
	st.open = false
	st.cur = core.Category{}
	return st
}
