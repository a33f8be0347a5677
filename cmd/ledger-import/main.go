// Command ledger-import copies the current ledger from Google Sheets
// into the local SQLite snapshot, so reports can run offline against
// the sqlite backend.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"budgetreport/internal/cli"
	"budgetreport/internal/core"
	applog "budgetreport/internal/log"
	gsheet "budgetreport/internal/sheets/google"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger()

	logger.Info("Starting ledger-import")

	cfg := cli.LoadAndValidateConfig(logger)
	if cfg.GoogleSpreadsheetID == "" {
		logger.Error("GOOGLE_SPREADSHEET_ID is required to import a ledger")
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	sheetsClient, err := gsheet.New(ctx, gsheet.Config{
		SpreadsheetID: cfg.GoogleSpreadsheetID,
		LedgerSheet:   cfg.LedgerSheetName,
		DataStartRow:  cfg.DataStartRow,
	})
	if err != nil {
		logger.Error("Failed to initialize Google Sheets client", applog.FieldError, err)
		os.Exit(1)
	}

	repo := cli.InitSQLite(logger, cfg.SQLiteDBPath)
	defer repo.Close()

	// Period block and data rows live in disjoint ranges; fetch both at
	// once.
	var (
		period core.Period
		rows   []core.Row
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		period, err = sheetsClient.ReadPeriod(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		rows, err = sheetsClient.ReadRows(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		logger.Error("Failed to read ledger from Google Sheets", applog.FieldError, err, applog.FieldSheet, cfg.LedgerSheetName)
		os.Exit(1)
	}

	if err := repo.ImportSnapshot(ctx, period, rows); err != nil {
		logger.Error("Failed to store ledger snapshot", applog.FieldError, err, "db_path", cfg.SQLiteDBPath)
		os.Exit(1)
	}

	logger.Info("Ledger snapshot imported",
		applog.FieldYear, period.Year,
		applog.FieldMonth, int(period.Month),
		applog.FieldRows, len(rows),
		"db_path", cfg.SQLiteDBPath)
}
