// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// Supported dialects.
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite"
)

// CreateSchema creates the series and votes tables. Safe to call multiple
// times - uses IF NOT EXISTS. The serving path never calls this; it runs only
// under the -provision flag (missing tables at request time surface as a
// schema-not-ready fault instead).
func CreateSchema(db *sql.DB, dialect string) error {
	var ddl string
	switch dialect {
	case DialectPostgres:
		ddl = schemaPostgres
	case DialectSQLite:
		ddl = schemaSQLite
	default:
		return fmt.Errorf("unknown dialect %q", dialect)
	}

	if _, err := db.Exec(ddl); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// votes.series_id carries no foreign key on purpose: the ledger accepts a raw
// slug as the key when series lookup is degraded, so the column cannot always
// reference series(id). Deletion cascades in the store's transaction instead.

const schemaPostgres = `
-- Series
CREATE TABLE IF NOT EXISTS series (
    id TEXT PRIMARY KEY,
    slug TEXT NOT NULL UNIQUE,
    title TEXT,
    owner_id TEXT,
    created_at TIMESTAMPTZ NOT NULL,
    games JSONB NOT NULL DEFAULT '[]'::jsonb,
    timeslots JSONB NOT NULL DEFAULT '[]'::jsonb
);

CREATE INDEX IF NOT EXISTS idx_series_owner_id ON series(owner_id);

-- Votes
CREATE TABLE IF NOT EXISTS votes (
    id TEXT PRIMARY KEY,
    series_id TEXT NOT NULL,
    voter_key TEXT NOT NULL,
    voter_name TEXT,
    selected_game_ids JSONB NOT NULL DEFAULT '[]'::jsonb,
    selected_timeslot_ids JSONB NOT NULL DEFAULT '[]'::jsonb,
    created_at TIMESTAMPTZ NOT NULL,
    UNIQUE (series_id, voter_key)
);

CREATE INDEX IF NOT EXISTS idx_votes_series_id ON votes(series_id);
`

const schemaSQLite = `
-- Series
CREATE TABLE IF NOT EXISTS series (
    id TEXT PRIMARY KEY,
    slug TEXT NOT NULL UNIQUE,
    title TEXT,
    owner_id TEXT,
    created_at TIMESTAMP NOT NULL,
    games TEXT NOT NULL DEFAULT '[]',
    timeslots TEXT NOT NULL DEFAULT '[]'
);

CREATE INDEX IF NOT EXISTS idx_series_owner_id ON series(owner_id);

-- Votes
CREATE TABLE IF NOT EXISTS votes (
    id TEXT PRIMARY KEY,
    series_id TEXT NOT NULL,
    voter_key TEXT NOT NULL,
    voter_name TEXT,
    selected_game_ids TEXT NOT NULL DEFAULT '[]',
    selected_timeslot_ids TEXT NOT NULL DEFAULT '[]',
    created_at TIMESTAMP NOT NULL,
    UNIQUE (series_id, voter_key)
);

CREATE INDEX IF NOT EXISTS idx_votes_series_id ON votes(series_id);
`
