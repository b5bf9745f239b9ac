// Package postgres implements repository.VersionReader against a Postgres server.
//
// The connection is opened lazily: sql.Open only validates the DSN, so the
// server can start while the database is still coming up. The first query
// performs the real connect.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	// Registers the "postgres" driver with database/sql.
	_ "github.com/lib/pq"

	"github.com/AdanChavez79/Food-Profiler/internal/repository"
)

var _ repository.VersionReader = (*DB)(nil)

// DB wraps a Postgres connection pool.
type DB struct {
	conn *sql.DB
}

// New creates a pool for databaseURL (a postgres:// URL or key=value DSN).
func New(databaseURL string) (*DB, error) {
	conn, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("postgres: opening database: %w", err)
	}
	conn.SetMaxOpenConns(5)
	conn.SetConnMaxIdleTime(5 * time.Minute)
	return &DB{conn: conn}, nil
}

// Close closes the pool.
func (db *DB) Close() error {
	return db.conn.Close()
}

// Version runs SELECT version() and returns the server's version banner.
func (db *DB) Version(ctx context.Context) (string, error) {
	var version string
	if err := db.conn.QueryRowContext(ctx, `SELECT version()`).Scan(&version); err != nil {
		return "", fmt.Errorf("postgres: querying version: %w", err)
	}
	return version, nil
}
