// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines API route mappings using Go 1.22+ method routing.

# Route Structure

	GET /health                   - health check
	POST /series                  - create a series
	GET /series?ownerId=...       - list own series
	GET /series/{slug}            - fetch a series
	DELETE /series/{slug}         - delete (owner only, via X-Owner-Id)
	POST /series/{slug}/votes     - submit or replace a vote
	GET /series/{slug}/votes      - list votes
	GET /series/{slug}/matrix     - aggregated organizer view
	GET /bgg/search?q=...         - game catalog search proxy

All routes are wrapped with request logging.
*/
package router
