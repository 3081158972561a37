package storage

import (
	"context"
	"fmt"
	"gentle-keeper_app/internal/config"
	"gentle-keeper_app/internal/database"
	"strings"

	"go.uber.org/zap"
)

// Open builds the adapter selected by cfg.Driver.
func Open(ctx context.Context, cfg *config.Config, logger *zap.Logger) (Port, error) {
	driver := strings.ToLower(cfg.Storage.Driver)
	logger = logger.With(zap.String("driver", driver))

	switch driver {
	case "file":
		store, err := NewFileStore(cfg.Storage.Path)
		if err != nil {
			return nil, err
		}
		logger.Debug("using file storage", zap.String("path", store.Path()))
		return store, nil

	case "memory":
		return NewMemoryStore(), nil

	case "sqlite":
		db, err := database.OpenSQLite(ctx, cfg.Storage.Path, logger)
		if err != nil {
			return nil, err
		}
		store, err := NewSQLStore(ctx, database.NewRepository(db), cfg.Storage.Bucket)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to create schema: %w", err)
		}
		return store, nil

	case "postgres":
		db, err := database.ConnectWithRetry(ctx, cfg.Database, logger)
		if err != nil {
			return nil, err
		}
		store, err := NewSQLStore(ctx, database.NewRepository(db), cfg.Storage.Bucket)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to create schema: %w", err)
		}
		return store, nil

	case "redis":
		store, err := NewRedisStore(ctx, cfg.Redis, cfg.Storage.Bucket)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Redis.Addr, err)
		}
		return store, nil
	}

	return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}
