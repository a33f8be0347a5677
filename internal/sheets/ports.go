package sheets

import (
	"context"

	"budgetreport/internal/core"
	"budgetreport/internal/report"
)

// Ports for the grid adapters. The core pipeline only ever sees these.
type (
	// LedgerReader reads the ledger snapshot: the reporting period from
	// the fixed header cells and the raw data rows from the configured
	// offset down. Implementations return core.ErrLedgerNotFound
	// (wrapped) when the ledger sheet or snapshot does not exist.
	LedgerReader interface {
		ReadPeriod(ctx context.Context) (core.Period, error)
		ReadRows(ctx context.Context) ([]core.Row, error)
	}

	// ReportWriter is the tabular sink. It replaces the report sheet
	// wholesale on every run, so re-running is idempotent.
	ReportWriter interface {
		WriteReport(ctx context.Context, rep *report.Report) error
	}
)
