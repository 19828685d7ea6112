// Package ratelimit de-duplicates events per key within a time window.
package ratelimit

import (
	"context"
	"time"
)

// Limiter admits the first event for a key and rejects repeats until the window has passed.
type Limiter interface {
	// Allow records an event for key and reports whether it is the first one in the window.
	Allow(ctx context.Context, key string) (bool, error)
}

// Clock returns the current time.
type Clock func() time.Time

// Key builds the limiter key for a recipe and a client.
func Key(slug, client string) string {
	return slug + ":" + client
}
