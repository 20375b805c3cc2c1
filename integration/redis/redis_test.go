package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/streamkit/integration/redis"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := redis.DefaultConfig()
	assert.Equal(t, "redis://localhost:6379/0", cfg.ConnectionURL)
	assert.Equal(t, 3, cfg.RetryAttempts)
	assert.Equal(t, 5*time.Second, cfg.RetryInterval)
	assert.Equal(t, 30*time.Second, cfg.ConnectTimeout)
}

func TestConnect_Validation(t *testing.T) {
	t.Parallel()

	t.Run("empty connection URL", func(t *testing.T) {
		t.Parallel()

		client, err := redis.Connect(context.Background(), redis.Config{})
		require.ErrorIs(t, err, redis.ErrEmptyConnectionURL)
		assert.Nil(t, client)
	})

	t.Run("malformed connection URL", func(t *testing.T) {
		t.Parallel()

		cfg := redis.DefaultConfig()
		cfg.ConnectionURL = "http://localhost:6379"

		client, err := redis.Connect(context.Background(), cfg)
		require.ErrorIs(t, err, redis.ErrFailedToParseConnString)
		assert.Nil(t, client)
	})

	t.Run("unreachable server reports not ready", func(t *testing.T) {
		t.Parallel()

		cfg := redis.Config{
			// TEST-NET-1 address, guaranteed unroutable
			ConnectionURL:  "redis://192.0.2.1:1/0",
			RetryAttempts:  1,
			ConnectTimeout: 100 * time.Millisecond,
		}

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		client, err := redis.Connect(ctx, cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, redis.ErrRedisNotReady)
		assert.Nil(t, client)
	})
}
