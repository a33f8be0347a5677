// Package backend assembles the configured ledger source and the
// tabular report sink behind it.
package backend

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"budgetreport/internal/sheets"
	gsheet "budgetreport/internal/sheets/google"
	"budgetreport/internal/sheets/memory"
	"budgetreport/internal/storage"
)

// DefaultFactory implements the Factory interface.
type DefaultFactory struct {
	logger *slog.Logger
}

// NewFactory creates a new backend factory.
func NewFactory(logger *slog.Logger) Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &DefaultFactory{logger: logger}
}

// CreateBackend implements Factory.CreateBackend.
func (f *DefaultFactory) CreateBackend(ctx context.Context, config Config) (*Result, error) {
	if !config.Type.IsValid() {
		return nil, fmt.Errorf("invalid backend type: %s", config.Type)
	}

	switch config.Type {
	case SheetsBackend:
		return f.createSheetsBackend(ctx, config)
	case SQLiteBackend:
		return f.createSQLiteBackend(ctx, config)
	case MemoryBackend:
		return f.createMemoryBackend(config)
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", config.Type)
	}
}

func (f *DefaultFactory) createSheetsBackend(ctx context.Context, config Config) (*Result, error) {
	cli, err := gsheet.New(ctx, gsheet.Config{
		SpreadsheetID: config.SpreadsheetID,
		LedgerSheet:   config.LedgerSheet,
		DataStartRow:  config.DataStartRow,
	})
	if err != nil {
		return nil, fmt.Errorf("initialize Google Sheets client: %w", err)
	}

	f.logger.Info("Initialized Google Sheets backend", "sheet", config.LedgerSheet)
	return &Result{Source: cli, Writer: cli}, nil
}

func (f *DefaultFactory) createSQLiteBackend(ctx context.Context, config Config) (*Result, error) {
	repo, err := storage.NewSQLiteRepository(config.SQLiteDBPath)
	if err != nil {
		return nil, fmt.Errorf("initialize SQLite snapshot: %w", err)
	}

	// The report still goes to the spreadsheet when one is configured;
	// without it the table lands on stdout for a dry run.
	var writer sheets.ReportWriter
	if config.SpreadsheetID != "" {
		cli, err := gsheet.New(ctx, gsheet.Config{
			SpreadsheetID: config.SpreadsheetID,
			LedgerSheet:   config.LedgerSheet,
			DataStartRow:  config.DataStartRow,
		})
		if err != nil {
			repo.Close()
			return nil, fmt.Errorf("initialize Google Sheets client: %w", err)
		}
		writer = cli
	} else {
		writer = NewConsoleWriter(os.Stdout)
	}

	f.logger.Info("Initialized SQLite backend",
		"db_path", config.SQLiteDBPath, "sheet_output", config.SpreadsheetID != "")
	return &Result{Source: repo, Writer: writer, Cleanup: repo.Close}, nil
}

func (f *DefaultFactory) createMemoryBackend(config Config) (*Result, error) {
	store := memory.NewFromFile(config.SeedFile)
	f.logger.Info("Initialized memory backend", "seed_file", config.SeedFile)
	return &Result{Source: store, Writer: NewConsoleWriter(os.Stdout)}, nil
}
