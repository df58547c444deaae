// Package db provides PostgreSQL storage for evolved key profile candidates.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

const schemaSQL = `
CREATE TABLE IF NOT EXISTS key_profile_candidates (
	id          UUID NOT NULL,
	name        TEXT NOT NULL,
	generation  INTEGER NOT NULL CHECK (generation >= 0),
	rank        INTEGER CHECK (rank >= 0),
	major       DOUBLE PRECISION[] NOT NULL CHECK (cardinality(major) = 12),
	minor       DOUBLE PRECISION[] NOT NULL CHECK (cardinality(minor) = 12),
	score       DOUBLE PRECISION,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	PRIMARY KEY (id, generation)
);
CREATE INDEX IF NOT EXISTS key_profile_candidates_generation_rank
	ON key_profile_candidates (generation, rank);
`

// EnsureSchema creates the candidate table if it does not exist
func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}
