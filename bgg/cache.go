// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package bgg

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"github.com/danielhkuo/gamenight/models"
)

// CachedSearcher wraps a Searcher with a Redis result cache. BGG rate-limits
// aggressively and search results barely change, so a short TTL takes nearly
// all the load off the upstream. Cache failures degrade to a direct lookup.
type CachedSearcher struct {
	inner Searcher
	rdb   *redis.Client
	ttl   time.Duration
	sf    singleflight.Group
}

func NewCachedSearcher(inner Searcher, rdb *redis.Client, ttl time.Duration) *CachedSearcher {
	return &CachedSearcher{inner: inner, rdb: rdb, ttl: ttl}
}

func cacheKey(query string) string {
	return "bgg:search:" + strings.ToLower(strings.TrimSpace(query))
}

func (c *CachedSearcher) Search(ctx context.Context, query string) ([]models.Game, error) {
	key := cacheKey(query)

	if games, ok := c.get(ctx, key); ok {
		return games, nil
	}

	// Concurrent identical queries hit BGG once.
	v, err, _ := c.sf.Do(key, func() (any, error) {
		if games, ok := c.get(ctx, key); ok {
			return games, nil
		}
		games, err := c.inner.Search(ctx, query)
		if err != nil {
			return nil, err
		}
		c.set(ctx, key, games)
		return games, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]models.Game), nil
}

func (c *CachedSearcher) get(ctx context.Context, key string) ([]models.Game, bool) {
	raw, err := c.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		slog.Warn("catalog cache read failed", "key", key, "error", err)
		return nil, false
	}

	var games []models.Game
	if err := json.Unmarshal([]byte(raw), &games); err != nil {
		slog.Warn("catalog cache entry corrupt", "key", key, "error", err)
		return nil, false
	}
	return games, true
}

func (c *CachedSearcher) set(ctx context.Context, key string, games []models.Game) {
	raw, err := json.Marshal(games)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		slog.Warn("catalog cache write failed", "key", key, "error", err)
	}
}
