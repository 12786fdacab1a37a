// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation for the SQL store.

# Schema Creation

CreateSchema initializes the required tables for a dialect:

	if err := db.CreateSchema(conn, db.DialectPostgres); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS. It is wired to the
-provision flag; the serving path assumes the schema exists and reports a
missing one as a schema-not-ready fault.

# Tables

  - series: one row per series; unique slug; games/timeslots as JSON
  - votes: one row per (series_id, voter_key); selections as JSON

# Constraints

  - series.slug UNIQUE (slug regeneration retries on violation)
  - votes UNIQUE (series_id, voter_key) (backs the vote upsert)
  - no foreign key on votes.series_id: the column may hold a raw slug when
    series lookup was degraded at submit time, so deletion cascades inside
    the store's delete transaction instead

# Indexes

  - series.owner_id (owner listings)
  - votes.series_id (vote listings)
*/
package db
