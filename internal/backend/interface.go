package backend

import (
	"context"

	"budgetreport/internal/sheets"
)

// CleanupFunc releases a backend's resources.
type CleanupFunc func() error

// Result bundles the ledger source and tabular sink a backend provides.
type Result struct {
	Source  sheets.LedgerReader
	Writer  sheets.ReportWriter
	Cleanup CleanupFunc
}

// Factory creates ledger backends based on configuration.
type Factory interface {
	CreateBackend(ctx context.Context, config Config) (*Result, error)
}

// Type selects where the ledger is read from.
type Type string

const (
	SQLiteBackend Type = "sqlite"
	SheetsBackend Type = "sheets"
	MemoryBackend Type = "memory"
)

func (t Type) String() string {
	return string(t)
}

// IsValid returns true if the backend type is known.
func (t Type) IsValid() bool {
	switch t {
	case SQLiteBackend, SheetsBackend, MemoryBackend:
		return true
	default:
		return false
	}
}
