package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmoreira/travel-solver/backend/internal/cache"
	"github.com/rmoreira/travel-solver/backend/internal/domain"
)

func newTestCache(t *testing.T, ttl time.Duration) (*cache.Solutions, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return cache.NewSolutions(rdb, ttl, nil), mr
}

func cachePrefs() domain.TripPreferences {
	return domain.TripPreferences{
		TripType:        domain.TripRoundTrip,
		OriginCity:      "São Paulo",
		MainDestination: domain.Stopover{City: "Lisboa", DurationDays: 5},
		Passengers:      2,
	}
}

func cacheSolution() domain.ItinerarySolution {
	return domain.ItinerarySolution{
		TripType:   domain.TripRoundTrip,
		OriginUsed: "São Paulo (GRU)",
		Segments: []domain.RouteSegment{{
			From: "São Paulo", To: "Lisboa", Date: "19/07/26",
			Mode: domain.ModeFlight, TotalCost: 7400,
		}},
		TotalCostEstimate: 12000,
	}
}

func TestSolutions_roundTrip(t *testing.T) {
	c, _ := newTestCache(t, time.Hour)
	ctx := context.Background()

	_, ok := c.Get(ctx, cachePrefs())
	assert.False(t, ok, "empty cache must miss")

	c.Set(ctx, cachePrefs(), cacheSolution())

	got, ok := c.Get(ctx, cachePrefs())
	require.True(t, ok)
	assert.Equal(t, "São Paulo (GRU)", got.OriginUsed)
	assert.InDelta(t, 12000, got.TotalCostEstimate, 0.001)
	require.Len(t, got.Segments, 1)
}

func TestSolutions_keyedByPreferences(t *testing.T) {
	c, _ := newTestCache(t, time.Hour)
	ctx := context.Background()

	c.Set(ctx, cachePrefs(), cacheSolution())

	other := cachePrefs()
	other.Passengers = 3

	_, ok := c.Get(ctx, other)
	assert.False(t, ok, "different preferences must not share an entry")
}

func TestSolutions_expiry(t *testing.T) {
	c, mr := newTestCache(t, time.Minute)
	ctx := context.Background()

	c.Set(ctx, cachePrefs(), cacheSolution())
	mr.FastForward(2 * time.Minute)

	_, ok := c.Get(ctx, cachePrefs())
	assert.False(t, ok, "expired entry must miss")
}

func TestSolutions_corruptEntryDropped(t *testing.T) {
	c, mr := newTestCache(t, time.Hour)
	ctx := context.Background()

	c.Set(ctx, cachePrefs(), cacheSolution())

	// Overwrite the only stored value with garbage.
	keys := mr.Keys()
	require.Len(t, keys, 1)
	require.NoError(t, mr.Set(keys[0], "{not json"))

	_, ok := c.Get(ctx, cachePrefs())
	assert.False(t, ok)
	assert.False(t, mr.Exists(keys[0]), "corrupt entry must be deleted on read")
}

func TestSolutions_redisDownDegradesToMiss(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	c := cache.NewSolutions(rdb, time.Hour, nil)

	mr.Close()

	c.Set(context.Background(), cachePrefs(), cacheSolution())
	_, ok := c.Get(context.Background(), cachePrefs())
	assert.False(t, ok)
}
