package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/rezeptblog/backend/internal/testhelpers"
)

func TestRateLimiterIsAllowed(t *testing.T) {
	client := testhelpers.SetupTestRedis(t)
	rl := NewRateLimiter(client, RateLimitConfig{Window: time.Minute, Limit: 2, KeyPrefix: "test"})
	now := time.Date(2024, 1, 1, 12, 0, 10, 0, time.UTC)
	rl.now = func() time.Time { return now }
	ctx := context.Background()

	allowed, remaining, reset, err := rl.IsAllowed(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.True(t, allowed)
	assert.Equal(t, 1, remaining)
	assert.Equal(t, time.Date(2024, 1, 1, 12, 1, 0, 0, time.UTC), reset)

	allowed, remaining, _, _ = rl.IsAllowed(ctx, "1.2.3.4")
	assert.True(t, allowed)
	assert.Equal(t, 0, remaining)

	allowed, _, _, _ = rl.IsAllowed(ctx, "1.2.3.4")
	assert.False(t, allowed)

	allowed, _, _, _ = rl.IsAllowed(ctx, "5.6.7.8")
	assert.True(t, allowed, "limits are per client")

	now = now.Add(time.Minute)
	allowed, _, _, _ = rl.IsAllowed(ctx, "1.2.3.4")
	assert.True(t, allowed, "next window")
}

func TestRateLimitMiddleware(t *testing.T) {
	client := testhelpers.SetupTestRedis(t)
	rl := NewRateLimiter(client, RateLimitConfig{Window: time.Hour, Limit: 1, KeyPrefix: "test_mw"})

	r := newTestRouter(rl.RateLimitMiddleware())
	r.POST("/", func(c *gin.Context) { c.Status(http.StatusCreated) })

	request := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("X-Forwarded-For", "203.0.113.7")
		return serve(r, req)
	}

	w := request()
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "1", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))

	w = request()
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "rate limit exceeded")
}

func TestRateLimitMiddlewareFailsOpen(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1, DialTimeout: 100 * time.Millisecond})
	t.Cleanup(func() { client.Close() })
	rl := NewWriteRateLimiter(client)

	r := newTestRouter(rl.RateLimitMiddleware())
	r.POST("/", func(c *gin.Context) { c.Status(http.StatusCreated) })

	w := serve(r, httptest.NewRequest(http.MethodPost, "/", nil))
	assert.Equal(t, http.StatusCreated, w.Code)
}
