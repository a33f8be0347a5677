// Package cli consolidates initialization shared by cmd/budgetreport
// and cmd/ledger-import.
package cli

import (
	"os"

	"github.com/joho/godotenv"

	"budgetreport/internal/config"
	applog "budgetreport/internal/log"
	"budgetreport/internal/storage"
)

// SetupLogger initializes structured logging and installs it as the
// process default.
func SetupLogger() *applog.Logger {
	logger := applog.NewFromEnv(applog.ComponentApp)
	applog.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development. Errors are
// ignored; the file is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it, exiting
// the process on validation failure.
func LoadAndValidateConfig(logger *applog.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", applog.FieldError, err)
		os.Exit(1)
	}
	return cfg
}

// InitSQLite opens the snapshot repository, exiting the process on
// failure.
func InitSQLite(logger *applog.Logger, dbPath string) *storage.SQLiteRepository {
	repo, err := storage.NewSQLiteRepository(dbPath)
	if err != nil {
		logger.Error("Failed to open SQLite snapshot", applog.FieldError, err, "db_path", dbPath)
		os.Exit(1)
	}
	return repo
}
