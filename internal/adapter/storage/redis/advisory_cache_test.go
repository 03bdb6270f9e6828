package redis

import (
	"context"
	"testing"
	"time"

	"cash-wallet-tracker/internal/core/ports"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvisoryCache_SetAndGet(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	cache := NewAdvisoryCache(client)
	ctx := context.Background()

	classification := &ports.AdvisoryClassification{Category: "Groceries", Confidence: 0.92}

	// Get before set => nil
	result, err := cache.GetClassification(ctx, "carrefour checkout")
	assert.NoError(t, err)
	assert.Nil(t, result)

	err = cache.SetClassification(ctx, "carrefour checkout", classification, 24*time.Hour)
	require.NoError(t, err)

	result, err = cache.GetClassification(ctx, "carrefour checkout")
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "Groceries", result.Category)
	assert.InDelta(t, 0.92, result.Confidence, 0.001)
}

func TestAdvisoryCache_NormalizesDescription(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	cache := NewAdvisoryCache(client)
	ctx := context.Background()

	classification := &ports.AdvisoryClassification{Category: "Bills", Confidence: 0.8}
	require.NoError(t, cache.SetClassification(ctx, "Electricity Bill", classification, time.Hour))

	// Case and surrounding whitespace hit the same entry.
	result, err := cache.GetClassification(ctx, "  electricity bill ")
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "Bills", result.Category)
}

func TestAdvisoryCache_TTLExpiry(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	cache := NewAdvisoryCache(client)
	ctx := context.Background()

	classification := &ports.AdvisoryClassification{Category: "Transport", Confidence: 0.6}
	require.NoError(t, cache.SetClassification(ctx, "uber trip", classification, time.Minute))

	s.FastForward(2 * time.Minute)

	result, err := cache.GetClassification(ctx, "uber trip")
	require.NoError(t, err)
	assert.Nil(t, result)
}
