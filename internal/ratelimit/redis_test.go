package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/rezeptblog/backend/internal/testhelpers"
)

func TestRedisLimiter(t *testing.T) {
	client := testhelpers.SetupTestRedis(t)
	ctx := context.Background()
	l := NewRedisLimiter(client, 2*time.Second, "test_views")

	ok, err := l.Allow(ctx, Key("lasagne", "1.2.3.4"))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = l.Allow(ctx, Key("lasagne", "1.2.3.4"))
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = l.Allow(ctx, Key("lasagne", "5.6.7.8"))
	require.NoError(t, err)
	assert.True(t, ok)

	ttl, err := client.TTL(ctx, "test_views:lasagne:1.2.3.4").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, 2*time.Second, "expiry is the window, enforced by redis")

	require.Eventually(t, func() bool {
		ok, err := l.Allow(ctx, Key("lasagne", "1.2.3.4"))
		return err == nil && ok
	}, 5*time.Second, 250*time.Millisecond)
}
