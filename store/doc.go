// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store owns series and vote persistence behind a single contract.

# Contract

Store combines the series repository (create/get/list/delete) with the vote
ledger (add/list). Two implementations exist:

  - Memory: mutex-guarded maps, intentionally ephemeral
  - SQL: database/sql over postgres (lib/pq) or sqlite (modernc.org/sqlite)

One is selected at process start; handlers never know which they hold.

# The One-Vote Invariant

For any (seriesID, voterKey) pair at most one vote exists. Resubmission
replaces the stored vote wholesale - fresh id, fresh createdAt, never a field
merge across submissions. Memory replaces in place under the write lock; SQL
uses a single INSERT ... ON CONFLICT upsert against the unique
(series_id, voter_key) index.

# Vote Keys

The ledger accepts any non-empty SeriesID, including a raw slug. That is
deliberate: when the series lookup path is degraded the vote handler keys
votes by slug rather than failing the submission. Consequently the votes
table carries no foreign key, and DeleteSeries cascades by hand over both
possible keys.

# Error Taxonomy

	ErrNotFound          slug does not resolve
	ErrForbidden         owner identity mismatch on delete
	ErrInvalidInput      empty required field, rejected before mutation
	SchemaNotReadyError  expected tables missing (deployment fault)

Everything else (timeouts, connection failures) propagates wrapped with the
operation name; a failed listing is an error, never an empty result.
*/
package store
