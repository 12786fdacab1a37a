// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the game night API.

# Handler Types

Each handler is a struct with its dependencies injected via constructor:

  - SeriesHandler: series lifecycle (create, get, list by owner, delete)
  - VoteHandler: vote submission, listing, and the aggregated matrix view
  - CatalogHandler: BGG search proxy

# Series Flow

An organizer creates a series and shares its slug:

	POST /series              → Create (games and timeslots set once)
	GET /series?ownerId=...   → List (newest first)
	GET /series/{slug}        → Get
	DELETE /series/{slug}     → Delete (X-Owner-Id must match stored owner)

# Voting Flow

Invitees interact via the slug:

	POST /series/{slug}/votes → Submit (one live vote per voterKey; resubmit replaces)
	GET /series/{slug}/votes  → List
	GET /series/{slug}/matrix → Matrix (counts, heat, participants)

Vote routes key the ledger by the resolved series id, falling back to the raw
slug when the slug does not resolve - see resolveSeriesKey for why that
fallback is deliberate.

# Error Mapping

writeStoreError translates the store taxonomy: 404 not found, 403 owner
mismatch, 400 invalid input, 503 schema not provisioned, 502 any other
storage fault.
*/
package handlers
