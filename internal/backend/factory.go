// Package backend selects and constructs the configured ledger store.
package backend

import (
	"fmt"

	"rendiconto/internal/config"
	applog "rendiconto/internal/log"
	"rendiconto/internal/storage"
	"rendiconto/internal/storage/memory"
	"rendiconto/internal/storage/postgres"
	"rendiconto/internal/storage/sqlite"
)

// New builds the EntryStore named by cfg.DataBackend. The caller owns the
// returned store and must Close it on shutdown.
func New(cfg *config.Config, logger *applog.Logger) (storage.EntryStore, error) {
	log := logger.WithComponent(applog.ComponentBackend)

	switch cfg.DataBackend {
	case "postgres":
		store, err := postgres.NewStore(cfg.PostgresDSN(), postgres.Options{
			MaxOpenConns:    cfg.DBMaxOpenConns,
			MaxIdleConns:    cfg.DBMaxIdleConns,
			ConnMaxLifetime: cfg.DBConnMaxLifetime,
		})
		if err != nil {
			return nil, fmt.Errorf("initialize postgres backend: %w", err)
		}
		log.Info("Initialized postgres backend",
			"db_host", cfg.DBHost,
			"db_name", cfg.DBName,
			"max_open_conns", cfg.DBMaxOpenConns)
		return store, nil

	case "sqlite":
		store, err := sqlite.NewStore(cfg.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite backend: %w", err)
		}
		log.Info("Initialized sqlite backend", "db_path", cfg.SQLiteDBPath)
		return store, nil

	case "memory":
		log.Info("Initialized memory backend")
		return memory.NewStore(), nil

	default:
		return nil, fmt.Errorf("unsupported data backend: %s", cfg.DataBackend)
	}
}
