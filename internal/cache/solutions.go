// Package cache implements the optional Redis-backed solve cache. The oracle
// is slow and billed per call, so identical preference sets within the TTL
// reuse the previously validated solution instead of going back out.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rmoreira/travel-solver/backend/internal/domain"
)

// DefaultTTL bounds how long a cached solution is considered fresh. Fares
// move daily; a day-old itinerary is already an estimate, older is noise.
const DefaultTTL = 24 * time.Hour

// Solutions caches validated itinerary solutions keyed by a digest of the
// preferences that produced them. All failures degrade to cache misses:
// a broken Redis never breaks a solve.
type Solutions struct {
	rdb *redis.Client
	ttl time.Duration
	log *slog.Logger
}

// NewSolutions constructs a Solutions cache. A non-positive ttl falls back to
// DefaultTTL.
func NewSolutions(rdb *redis.Client, ttl time.Duration, log *slog.Logger) *Solutions {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if log == nil {
		log = slog.Default()
	}
	return &Solutions{rdb: rdb, ttl: ttl, log: log}
}

// Get returns the cached solution for prefs, if one is fresh.
func (c *Solutions) Get(ctx context.Context, prefs domain.TripPreferences) (domain.ItinerarySolution, bool) {
	k, err := key(prefs)
	if err != nil {
		return domain.ItinerarySolution{}, false
	}

	data, err := c.rdb.Get(ctx, k).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.WarnContext(ctx, "solve cache read failed", "error", err)
		}
		return domain.ItinerarySolution{}, false
	}

	var sol domain.ItinerarySolution
	if err := json.Unmarshal(data, &sol); err != nil {
		c.log.WarnContext(ctx, "solve cache entry corrupt, dropping", "key", k, "error", err)
		c.rdb.Del(ctx, k)
		return domain.ItinerarySolution{}, false
	}
	return sol, true
}

// Set stores a validated solution under the preference digest.
func (c *Solutions) Set(ctx context.Context, prefs domain.TripPreferences, sol domain.ItinerarySolution) {
	k, err := key(prefs)
	if err != nil {
		return
	}
	data, err := json.Marshal(sol)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, k, data, c.ttl).Err(); err != nil {
		c.log.WarnContext(ctx, "solve cache write failed", "error", err)
	}
}

// key derives the cache key from the canonical JSON encoding of prefs.
// encoding/json emits struct fields in declaration order, so equal preference
// values always produce equal digests.
func key(prefs domain.TripPreferences) (string, error) {
	data, err := json.Marshal(prefs)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return "solve:" + hex.EncodeToString(sum[:]), nil
}
