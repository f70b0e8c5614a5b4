package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

const postgresPingTimeout = 3 * time.Second

var postgresDialect = dialect{
	name:        "postgres",
	tableExists: "SELECT to_regclass('schema_version') IS NOT NULL",
	get:         "SELECT value FROM kv WHERE key = $1",
	upsert: `INSERT INTO kv (key, value, updated_at) VALUES ($1, $2, $3)
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`,
	remove:     "DELETE FROM kv WHERE key = $1",
	version:    "SELECT version FROM schema_version LIMIT 1",
	setVersion: "INSERT INTO schema_version (version) VALUES ($1)",
}

// OpenPostgres connects to PostgreSQL through pgx's database/sql driver and
// prepares the kv table.
func OpenPostgres(ctx context.Context, dsn string, maxOpenConns int, logger *slog.Logger) (*DB, error) {
	ctx = ensureContext(ctx)
	if strings.TrimSpace(dsn) == "" {
		return nil, errors.New("open postgres: empty dsn")
	}
	if maxOpenConns <= 0 {
		maxOpenConns = 1
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(max(1, maxOpenConns/2))
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, postgresPingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres %s: %w", redactDSN(dsn), err)
	}

	store := newDB(db, postgresDialect, redactDSN(dsn), logger, nil)
	if err := store.initSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// redactDSN drops credentials from URL-style DSNs for messages and logs.
func redactDSN(dsn string) string {
	parsed, err := url.Parse(dsn)
	if err != nil || parsed.Scheme == "" {
		return "postgres"
	}
	parsed.User = nil
	parsed.RawQuery = ""
	return parsed.String()
}
