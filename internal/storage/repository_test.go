package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"budgetreport/internal/core"
)

func newTestRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "ledger.db"))
	if err != nil {
		t.Fatalf("open repo: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestEmptySnapshotIsMissingLedger(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if _, err := repo.ReadPeriod(ctx); !errors.Is(err, core.ErrLedgerNotFound) {
		t.Fatalf("ReadPeriod err = %v, want ErrLedgerNotFound", err)
	}
	if _, err := repo.ReadRows(ctx); !errors.Is(err, core.ErrLedgerNotFound) {
		t.Fatalf("ReadRows err = %v, want ErrLedgerNotFound", err)
	}
}

func TestImportSnapshotRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	period := core.Period{
		Year:  2025,
		Month: time.August,
		Start: time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC),
	}
	rows := []core.Row{
		core.NewRow("Shelter", "", 5409.94, 4001.02),
		core.NewRow("", "Mortgage", 700.00, 0.00),
		core.NewRow("Total Shelter", "", 5409.94, 4001.02),
	}
	if err := repo.ImportSnapshot(ctx, period, rows); err != nil {
		t.Fatalf("import: %v", err)
	}

	gotPeriod, err := repo.ReadPeriod(ctx)
	if err != nil {
		t.Fatalf("read period: %v", err)
	}
	if gotPeriod.Year != 2025 || gotPeriod.Month != time.August {
		t.Fatalf("period = %+v", gotPeriod)
	}
	if gotPeriod.End.Day() != 31 {
		t.Fatalf("period end = %v", gotPeriod.End)
	}

	gotRows, err := repo.ReadRows(ctx)
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	if len(gotRows) != 3 {
		t.Fatalf("rows = %d, want 3", len(gotRows))
	}
	if gotRows[0].Category.Text() != "Shelter" {
		t.Fatalf("row 0 = %q", gotRows[0].Category.Text())
	}
	if gotRows[0].Planned.Amount().Cents != 540994 {
		t.Fatalf("row 0 planned = %d, want 540994", gotRows[0].Planned.Amount().Cents)
	}
	if gotRows[2].Category.Text() != "Total Shelter" {
		t.Fatalf("row order not preserved: %q", gotRows[2].Category.Text())
	}
}

func TestImportSnapshotReplacesWholesale(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	period := core.Period{Year: 2025, Month: time.July}
	if err := repo.ImportSnapshot(ctx, period, []core.Row{
		core.NewRow("Food", "", 100.0, 90.0),
		core.NewRow("Total Food", "", 100.0, 90.0),
	}); err != nil {
		t.Fatalf("first import: %v", err)
	}

	period.Month = time.August
	if err := repo.ImportSnapshot(ctx, period, []core.Row{
		core.NewRow("Travel", "", 0.0, 412.0),
	}); err != nil {
		t.Fatalf("second import: %v", err)
	}

	gotPeriod, err := repo.ReadPeriod(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if gotPeriod.Month != time.August {
		t.Fatalf("month = %v, want August", gotPeriod.Month)
	}
	gotRows, err := repo.ReadRows(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(gotRows) != 1 || gotRows[0].Category.Text() != "Travel" {
		t.Fatalf("old snapshot leaked through: %+v", gotRows)
	}
}
