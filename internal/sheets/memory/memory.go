// Package memory provides an in-memory grid used by tests and the
// memory backend. It mirrors the ledger layout of the real spreadsheet.
package memory

import (
	"context"
	"fmt"
	"sync"

	"budgetreport/internal/core"
	"budgetreport/internal/report"
)

type Store struct {
	mu     sync.Mutex
	period core.Period
	rows   []core.Row
	seeded bool

	// LastReport records the most recent WriteReport call.
	LastReport *report.Report
	// WriteErr, when set, is returned by WriteReport. Lets service
	// tests exercise the fatal tabular-sink path.
	WriteErr error
}

// New returns an empty, unseeded store. Reads against it report a
// missing ledger, like a spreadsheet without the ledger sheet.
func New() *Store {
	return &Store{}
}

// Seed loads a period and a raw row grid into the store.
func (s *Store) Seed(period core.Period, rows []core.Row) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.period = period
	s.rows = append([]core.Row(nil), rows...)
	s.seeded = true
}

// SeedCells loads raw cell tuples in ledger column order
// (category, item, planned, actual).
func (s *Store) SeedCells(period core.Period, cells [][4]any) {
	rows := make([]core.Row, 0, len(cells))
	for _, c := range cells {
		rows = append(rows, core.NewRow(c[0], c[1], c[2], c[3]))
	}
	s.Seed(period, rows)
}

func (s *Store) ReadPeriod(_ context.Context) (core.Period, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.seeded {
		return core.Period{}, fmt.Errorf("%w: memory store not seeded", core.ErrLedgerNotFound)
	}
	return s.period, nil
}

func (s *Store) ReadRows(_ context.Context) ([]core.Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.seeded {
		return nil, fmt.Errorf("%w: memory store not seeded", core.ErrLedgerNotFound)
	}
	return append([]core.Row(nil), s.rows...), nil
}

func (s *Store) WriteReport(_ context.Context, rep *report.Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.WriteErr != nil {
		return s.WriteErr
	}
	s.LastReport = rep
	return nil
}
