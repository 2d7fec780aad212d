package repository

import (
	"context"
	"testing"
	"time"

	"lightbnb/internal/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisRateLimiter(t *testing.T) {
	s, err := miniredis.Run()
	require.NoError(t, err)
	defer s.Close()

	client := NewRedisClient(config.RedisConfig{Address: s.Addr()})
	defer client.Close()

	limiter := NewRedisRateLimiter(client)
	ctx := context.Background()

	t.Run("FixedWindow", func(t *testing.T) {
		key := "203.0.113.7"
		limit := 2
		window := time.Second

		allowed, err := limiter.Allow(ctx, key, limit, window)
		require.NoError(t, err)
		assert.True(t, allowed)

		allowed, err = limiter.Allow(ctx, key, limit, window)
		require.NoError(t, err)
		assert.True(t, allowed)

		allowed, err = limiter.Allow(ctx, key, limit, window)
		require.NoError(t, err)
		assert.False(t, allowed)

		assert.Equal(t, window, s.TTL("lightbnb:rate_limit:"+key))

		s.FastForward(window + time.Millisecond)

		allowed, err = limiter.Allow(ctx, key, limit, window)
		require.NoError(t, err)
		assert.True(t, allowed)
	})

	t.Run("KeysAreIndependent", func(t *testing.T) {
		allowed, err := limiter.Allow(ctx, "a", 1, time.Minute)
		require.NoError(t, err)
		assert.True(t, allowed)

		allowed, err = limiter.Allow(ctx, "b", 1, time.Minute)
		require.NoError(t, err)
		assert.True(t, allowed)

		allowed, err = limiter.Allow(ctx, "a", 1, time.Minute)
		require.NoError(t, err)
		assert.False(t, allowed)
	})

	t.Run("NoLimit", func(t *testing.T) {
		allowed, err := limiter.Allow(ctx, "free", 0, time.Minute)
		require.NoError(t, err)
		assert.True(t, allowed)
	})

	t.Run("NilClient", func(t *testing.T) {
		_, err := NewRedisRateLimiter(nil).Allow(ctx, "k", 1, time.Second)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "redis client is nil")
	})

	t.Run("Ping", func(t *testing.T) {
		assert.NoError(t, Ping(ctx, client))
	})
}

func TestRedisRateLimiterServerDown(t *testing.T) {
	s, err := miniredis.Run()
	require.NoError(t, err)

	client := NewRedisClient(config.RedisConfig{Address: s.Addr()})
	defer Close(client)
	s.Close()

	_, err = NewRedisRateLimiter(client).Allow(context.Background(), "k", 1, time.Second)
	assert.Error(t, err)
	assert.Error(t, Ping(context.Background(), client))
}

func TestClose(t *testing.T) {
	assert.NoError(t, Close(nil))
}
