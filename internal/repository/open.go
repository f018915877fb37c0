package repository

import (
	"context"
	"fmt"

	"librarycatalog/internal/config"
	"librarycatalog/internal/repository/inmemory"
	"librarycatalog/internal/repository/postgres"
	"librarycatalog/internal/repository/sqlite"
)

// Open создает хранилище по cfg.Storage
func Open(ctx context.Context, cfg *config.Config) (Storage, error) {
	switch cfg.Storage {
	case config.StoragePostgres:
		s, err := postgres.NewStorage(ctx, cfg.DatabaseDSN)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.StorageSQLite:
		s, err := sqlite.NewStorage(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.StorageMemory:
		return inmemory.NewStorage(), nil
	default:
		return nil, fmt.Errorf("unknown storage %q", cfg.Storage)
	}
}

var (
	_ Storage = (*inmemory.InmemoryStorage)(nil)
	_ Storage = (*sqlite.SQLiteStorage)(nil)
	_ Storage = (*postgres.PostgresStorage)(nil)
)
