// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse parses configuration from CLI flags and environment.

# Precedence

CLI flags win; environment variables fill anything unset; defaults cover the
rest (port 8764, memory store).

# Settings

  - PORT (-p): server port
  - STORE_TYPE (-s): memory, sqlite, or postgres
  - DATABASE_URL (-d): required unless the store is memory
  - -provision: create the schema on startup (SQL stores)
  - REDIS_ADDR (-redis): optional BGG search cache
  - NOTIFY_WEBHOOK_URL (-webhook): optional vote notifications
  - BGG_BASE_URL (-bgg-url): optional BGG endpoint override (used by tests)
*/
package cliparse
