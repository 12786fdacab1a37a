// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the gamenight API server.

Gamenight coordinates board game night scheduling: an organizer proposes
candidate games and timeslots, invitees mark which subsets work for them, and
the organizer reads an aggregated games × timeslots matrix to pick the
winning combination.

# Starting the Server

The default configuration runs entirely in memory:

	go run main.go

With a persistent store:

	STORE_TYPE=postgres DATABASE_URL=postgres://... go run main.go -provision

Or with flags:

	go run main.go -p 8764 -s sqlite -d gamenight.db -provision

# Configuration

Optional settings:

  - PORT (-p): server port (default: 8764)
  - STORE_TYPE (-s): memory, sqlite, or postgres (default: memory)
  - DATABASE_URL (-d): required for sqlite/postgres
  - REDIS_ADDR (-redis): enables BGG search result caching
  - NOTIFY_WEBHOOK_URL (-webhook): enables vote notifications
  - BGG_BASE_URL (-bgg-url): BGG endpoint override

A .env file at the working directory is loaded if present.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (series, votes, catalog)
  - router: route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: request/response and domain types
  - store: series repository + vote ledger (memory and SQL backings)
  - schedule: vote aggregation (matrix, participants, highlights)
  - bgg: BoardGameGeek XML API proxy with optional Redis cache
  - notify: fire-and-forget vote webhooks
  - db: schema DDL for the SQL store
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
