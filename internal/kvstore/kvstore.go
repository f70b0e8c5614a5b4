package kvstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"lifelist/internal/config"
	"lifelist/internal/lifelist"
)

// Store is a closable key-value backend.
type Store interface {
	lifelist.KeyValue
	io.Closer
}

var (
	// ErrUnknownBackend indicates the configured backend name is not supported.
	ErrUnknownBackend = errors.New("unknown store backend")
	// ErrSchemaMismatch indicates the database schema version doesn't match the expected version.
	ErrSchemaMismatch = errors.New("schema version mismatch")
)

// Open connects to the backend named by cfg.Store.Backend.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (Store, error) {
	switch cfg.Store.Backend {
	case config.BackendSQLite:
		if err := cfg.EnsureDirectories(); err != nil {
			return nil, fmt.Errorf("ensure directories: %w", err)
		}
		db, err := OpenSQLite(ctx, cfg.StorePath(), logger)
		if err != nil {
			return nil, err
		}
		return db, nil
	case config.BackendPostgres:
		db, err := OpenPostgres(ctx, cfg.Store.DSN, cfg.Store.MaxOpenConns, logger)
		if err != nil {
			return nil, err
		}
		return db, nil
	case config.BackendJSONFile:
		return NewJSONFile(cfg.StorePath(), logger), nil
	case config.BackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Store.Backend)
	}
}
