// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
)

func openMemoryDB(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open sqlite: %v", err)
	}
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestCreateSchema(t *testing.T) {
	conn := openMemoryDB(t)

	if err := CreateSchema(conn, DialectSQLite); err != nil {
		t.Fatalf("CreateSchema failed: %v", err)
	}

	for _, table := range []string{"series", "votes"} {
		var name string
		err := conn.QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&name)
		if err != nil {
			t.Errorf("Expected table %s to exist: %v", table, err)
		}
	}
}

func TestCreateSchemaIdempotent(t *testing.T) {
	conn := openMemoryDB(t)

	if err := CreateSchema(conn, DialectSQLite); err != nil {
		t.Fatalf("First CreateSchema failed: %v", err)
	}
	if err := CreateSchema(conn, DialectSQLite); err != nil {
		t.Fatalf("Second CreateSchema failed: %v", err)
	}
}

func TestCreateSchemaUnknownDialect(t *testing.T) {
	conn := openMemoryDB(t)

	if err := CreateSchema(conn, "oracle"); err == nil {
		t.Error("Expected error for unknown dialect")
	}
}

func TestVoterUniquenessConstraint(t *testing.T) {
	conn := openMemoryDB(t)

	if err := CreateSchema(conn, DialectSQLite); err != nil {
		t.Fatalf("CreateSchema failed: %v", err)
	}

	insert := `INSERT INTO votes (id, series_id, voter_key, created_at) VALUES (?, ?, ?, CURRENT_TIMESTAMP)`
	if _, err := conn.Exec(insert, "v1", "s1", "voter-1"); err != nil {
		t.Fatalf("First insert failed: %v", err)
	}
	if _, err := conn.Exec(insert, "v2", "s1", "voter-1"); err == nil {
		t.Error("Expected unique constraint violation for duplicate (series_id, voter_key)")
	}
	// Same voter under a different series is fine
	if _, err := conn.Exec(insert, "v3", "s2", "voter-1"); err != nil {
		t.Errorf("Expected insert under different series to succeed: %v", err)
	}
}
