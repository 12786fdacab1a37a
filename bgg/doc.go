// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package bgg proxies board game lookups to the BoardGameGeek XML API2.

# Search Flow

Two upstream calls per query:

 1. /search?query=...&type=boardgame - ids and names, capped at 10
 2. /thing?id=...&type=boardgame - thumbnails for those ids

A failed thing call degrades to names without thumbnails; only a failed
search call is an error.

# Caching

When Redis is configured, CachedSearcher stores marshaled results under
"bgg:search:<lowercased query>" with a TTL, and collapses concurrent
identical queries through singleflight. Cache failures fall through to the
upstream; they never fail a search.
*/
package bgg
