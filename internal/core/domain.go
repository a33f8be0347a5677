package core

import (
	"errors"
	"strings"
	"time"
)

// TotalSentinel marks a category-closing row in the ledger. A row whose
// category label starts with it closes the currently open category.
const TotalSentinel = "Total"

type (
	// Status classifies a deviation against the configured threshold.
	Status string

	// Item is a single budget line inside a category.
	Item struct {
		Description string
		Planned     Money
		Actual      Money
	}

	// Category is a named group of budget items together with the
	// planned/actual totals captured from its Total row. Items are owned
	// exclusively by their category.
	Category struct {
		Name         string
		Items        []Item
		TotalPlanned Money
		TotalActual  Money
	}

	// Period is the reporting window read from the ledger header cells.
	Period struct {
		Year  int
		Month time.Month
		Start time.Time
		End   time.Time
	}

	// DeviationResult is the outcome of comparing actual against planned.
	// It is derived on demand and never stored.
	DeviationResult struct {
		Deviation Money
		Pct       float64
		Status    Status
	}
)

const (
	StatusOver  Status = "Over"
	StatusUnder Status = "Under"
	StatusOK    Status = "OK"
)

var (
	// ErrLedgerNotFound reports a missing ledger sheet or snapshot.
	ErrLedgerNotFound = errors.New("ledger not found")

	ErrEmptyCategoryName = errors.New("empty category name")
)

// Validate checks the category invariants: a non-empty name that does not
// contain the total sentinel (such a name would have been classified as a
// total row and never opened a category).
func (c Category) Validate() error {
	name := strings.TrimSpace(c.Name)
	if name == "" {
		return ErrEmptyCategoryName
	}
	if strings.Contains(name, TotalSentinel) {
		return errors.New("category name contains total sentinel")
	}
	return nil
}

// Validate checks basic period sanity.
func (p Period) Validate() error {
	if p.Year < 1900 || p.Year > 9999 {
		return errors.New("invalid year")
	}
	if p.Month < time.January || p.Month > time.December {
		return errors.New("invalid month")
	}
	if !p.Start.IsZero() && !p.End.IsZero() && p.End.Before(p.Start) {
		return errors.New("period end before start")
	}
	return nil
}
