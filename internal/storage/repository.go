// Package storage keeps local SQLite snapshots of the ledger. A
// snapshot is imported from the live spreadsheet (cmd/ledger-import)
// and later serves as an offline ledger source for report runs.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"budgetreport/internal/core"

	_ "modernc.org/sqlite"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// ImportSnapshot replaces the stored ledger snapshot wholesale with the
// given period and rows, in one transaction.
func (r *SQLiteRepository) ImportSnapshot(ctx context.Context, period core.Period, rows []core.Row) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin import: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM ledger_rows`); err != nil {
		return fmt.Errorf("clear ledger rows: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM ledger_period`); err != nil {
		return fmt.Errorf("clear ledger period: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO ledger_period (id, year, month, start_date, end_date) VALUES (1, ?, ?, ?, ?)`,
		period.Year, int(period.Month),
		period.Start.Format("2006-01-02"), period.End.Format("2006-01-02"))
	if err != nil {
		return fmt.Errorf("insert period: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO ledger_rows (position, category_label, item_label, planned_cents, actual_cents) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare row insert: %w", err)
	}
	defer stmt.Close()

	for i, row := range rows {
		_, err := stmt.ExecContext(ctx, i,
			row.Category.Text(), row.Item.Text(),
			row.Planned.Amount().Cents, row.Actual.Amount().Cents)
		if err != nil {
			return fmt.Errorf("insert row %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit import: %w", err)
	}

	slog.InfoContext(ctx, "Ledger snapshot imported",
		"rows", len(rows), "year", period.Year, "month", int(period.Month))
	return nil
}

// ReadPeriod implements sheets.LedgerReader.
func (r *SQLiteRepository) ReadPeriod(ctx context.Context) (core.Period, error) {
	var (
		year, month      int
		startStr, endStr string
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT year, month, start_date, end_date FROM ledger_period WHERE id = 1`).
		Scan(&year, &month, &startStr, &endStr)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Period{}, fmt.Errorf("%w: no snapshot imported", core.ErrLedgerNotFound)
	}
	if err != nil {
		return core.Period{}, fmt.Errorf("read period: %w", err)
	}

	p := core.Period{Year: year, Month: time.Month(month)}
	if t, err := time.Parse("2006-01-02", startStr); err == nil {
		p.Start = t
	}
	if t, err := time.Parse("2006-01-02", endStr); err == nil {
		p.End = t
	}
	if err := p.Validate(); err != nil {
		return core.Period{}, fmt.Errorf("snapshot period: %w", err)
	}
	return p, nil
}

// ReadRows implements sheets.LedgerReader, returning the snapshot rows
// in their original ledger order.
func (r *SQLiteRepository) ReadRows(ctx context.Context) ([]core.Row, error) {
	// An empty snapshot is indistinguishable from a never-imported one;
	// treat both as a missing ledger.
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM ledger_period`).Scan(&n); err != nil {
		return nil, fmt.Errorf("check snapshot: %w", err)
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: no snapshot imported", core.ErrLedgerNotFound)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT category_label, item_label, planned_cents, actual_cents FROM ledger_rows ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	defer rows.Close()

	var out []core.Row
	for rows.Next() {
		var (
			category, item string
			planned, act   int64
		)
		if err := rows.Scan(&category, &item, &planned, &act); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		out = append(out, core.NewRow(category, item,
			float64(planned)/100.0, float64(act)/100.0))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return out, nil
}
