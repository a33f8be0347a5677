package core

import (
	"fmt"
	"strings"
)

// Cell wraps a single raw grid value. Grid sources hand back untyped
// values (float64, int, string, nil depending on the cell and the API),
// so the coercion rules live here instead of leaking into the parser:
// string fields are trimmed with absent values becoming "", and numeric
// fields collapse anything non-numeric to zero rather than failing.
type Cell struct {
	raw any
}

// NewCell wraps a raw grid value.
func NewCell(v any) Cell {
	return Cell{raw: v}
}

// Text returns the trimmed string form of the cell. Nil becomes "".
func (c Cell) Text() string {
	if c.raw == nil {
		return ""
	}
	if s, ok := c.raw.(string); ok {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(fmt.Sprint(c.raw))
}

// Amount coerces the cell to Money. Blank, nil and non-numeric values
// all yield zero; this method never fails.
func (c Cell) Amount() Money {
	switch v := c.raw.(type) {
	case nil:
		return Money{}
	case float64:
		return Money{Cents: roundCents(v)}
	case float32:
		return Money{Cents: roundCents(float64(v))}
	case int:
		return Money{Cents: int64(v) * 100}
	case int64:
		return Money{Cents: v * 100}
	case string:
		if cents, ok := parseCents(v); ok {
			return Money{Cents: cents}
		}
		return Money{}
	default:
		if cents, ok := parseCents(fmt.Sprint(v)); ok {
			return Money{Cents: cents}
		}
		return Money{}
	}
}

// Row is one raw ledger line: category label, item description, planned
// and actual amounts. Rows are transient; they exist only while parsing.
type Row struct {
	Category Cell
	Item     Cell
	Planned  Cell
	Actual   Cell
}

// NewRow builds a Row from raw cell values in ledger column order.
func NewRow(category, item, planned, actual any) Row {
	return Row{
		Category: NewCell(category),
		Item:     NewCell(item),
		Planned:  NewCell(planned),
		Actual:   NewCell(actual),
	}
}
