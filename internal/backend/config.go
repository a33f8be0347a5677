package backend

import (
	"fmt"

	"budgetreport/internal/config"
)

// Config holds what a factory needs to build a ledger backend.
type Config struct {
	Type Type

	// Google Sheets
	SpreadsheetID string
	LedgerSheet   string
	DataStartRow  int

	// SQLite snapshot
	SQLiteDBPath string

	// Memory backend seed file
	SeedFile string
}

// FromAppConfig converts the application config to backend config.
func FromAppConfig(appConfig *config.Config) (Config, error) {
	if appConfig == nil {
		return Config{}, fmt.Errorf("app config is nil")
	}

	backendType := Type(appConfig.LedgerBackend)
	if !backendType.IsValid() {
		return Config{}, fmt.Errorf("invalid backend type in config: %s", appConfig.LedgerBackend)
	}

	return Config{
		Type:          backendType,
		SpreadsheetID: appConfig.GoogleSpreadsheetID,
		LedgerSheet:   appConfig.LedgerSheetName,
		DataStartRow:  appConfig.DataStartRow,
		SQLiteDBPath:  appConfig.SQLiteDBPath,
		SeedFile:      "data/ledger.csv",
	}, nil
}
