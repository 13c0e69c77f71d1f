// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
)

// CreateSchema creates the features and votes tables.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// The statements are valid for both PostgreSQL and SQLite.
// created_at holds Unix nanoseconds so listing order is stable on both.
const schema = `
-- Features
CREATE TABLE IF NOT EXISTS features (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    created_at BIGINT NOT NULL
);

-- Vote tallies, one per feature
CREATE TABLE IF NOT EXISTS votes (
    id TEXT PRIMARY KEY,
    feature_id TEXT NOT NULL UNIQUE REFERENCES features(id),
    yes_count BIGINT NOT NULL DEFAULT 0 CHECK (yes_count >= 0),
    no_count BIGINT NOT NULL DEFAULT 0 CHECK (no_count >= 0)
);

CREATE INDEX IF NOT EXISTS idx_features_created_at ON features(created_at);
`
