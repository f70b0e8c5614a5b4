package kvstore

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"lifelist/internal/logging"
)

//go:embed schema.sql
var schemaSQL string

// schemaVersion is the current schema version. Bump this when the schema changes.
const schemaVersion = 1

// dialect holds the statements that differ between SQL engines.
type dialect struct {
	name        string
	tableExists string
	get         string
	upsert      string
	remove      string
	version     string
	setVersion  string
}

// DB is a KeyValue backed by the kv table of a SQL database.
type DB struct {
	db      *sql.DB
	dialect dialect
	target  string
	logger  *slog.Logger
	retry   func(ctx context.Context, op func() error) error
}

func newDB(db *sql.DB, d dialect, target string, logger *slog.Logger, retry func(context.Context, func() error) error) *DB {
	if retry == nil {
		retry = func(_ context.Context, op func() error) error { return op() }
	}
	return &DB{
		db:      db,
		dialect: d,
		target:  target,
		logger:  logging.NewComponentLogger(logger, "kvstore-"+d.name),
		retry:   retry,
	}
}

func ensureContext(ctx context.Context) context.Context {
	if ctx != nil {
		return ctx
	}
	return context.Background()
}

// Get returns the value stored under key.
func (s *DB) Get(ctx context.Context, key string) (string, bool, error) {
	ctx = ensureContext(ctx)
	var value string
	err := s.retry(ctx, func() error {
		return s.db.QueryRowContext(ctx, s.dialect.get, key).Scan(&value)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %q: %w", key, err)
	}
	return value, true, nil
}

// Set stores value under key, replacing any previous value.
func (s *DB) Set(ctx context.Context, key, value string) error {
	ctx = ensureContext(ctx)
	updatedAt := time.Now().UTC().Format(time.RFC3339Nano)
	err := s.retry(ctx, func() error {
		_, err := s.db.ExecContext(ctx, s.dialect.upsert, key, value, updatedAt)
		return err
	})
	if err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	s.logger.Debug("stored value", logging.String("key", key), logging.Int("bytes", len(value)))
	return nil
}

// Remove deletes key. Removing a missing key succeeds.
func (s *DB) Remove(ctx context.Context, key string) error {
	ctx = ensureContext(ctx)
	err := s.retry(ctx, func() error {
		_, err := s.db.ExecContext(ctx, s.dialect.remove, key)
		return err
	})
	if err != nil {
		return fmt.Errorf("remove %q: %w", key, err)
	}
	return nil
}

// Close closes the underlying database connection.
func (s *DB) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *DB) initSchema(ctx context.Context) error {
	var exists bool
	if err := s.db.QueryRowContext(ctx, s.dialect.tableExists).Scan(&exists); err != nil {
		return fmt.Errorf("check schema_version table: %w", err)
	}
	if !exists {
		return s.createSchema(ctx)
	}

	var version int
	if err := s.db.QueryRowContext(ctx, s.dialect.version).Scan(&version); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if version != schemaVersion {
		return fmt.Errorf("%w: %s has version %d, expected %d (delete the store to rebuild it)",
			ErrSchemaMismatch, s.target, version, schemaVersion)
	}
	return nil
}

func (s *DB) createSchema(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	if _, err := tx.ExecContext(ctx, s.dialect.setVersion, schemaVersion); err != nil {
		return fmt.Errorf("record schema version: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema: %w", err)
	}
	s.logger.Info("initialized store schema", logging.String("target", s.target), logging.Int("version", schemaVersion))
	return nil
}
