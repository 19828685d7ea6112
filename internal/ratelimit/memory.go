package ratelimit

import (
	"context"
	"sync"
	"time"
)

// DefaultMaxEntries is the map size above which expired entries are swept.
const DefaultMaxEntries = 10000

// MemoryLimiter keeps the last admitted event per key in process memory.
// State is lost on restart.
type MemoryLimiter struct {
	mu         sync.Mutex
	window     time.Duration
	maxEntries int
	now        Clock
	seen       map[string]time.Time
}

// NewMemoryLimiter creates a limiter with the given window. A nil clock uses time.Now.
func NewMemoryLimiter(window time.Duration, maxEntries int, now Clock) *MemoryLimiter {
	if now == nil {
		now = time.Now
	}
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &MemoryLimiter{
		window:     window,
		maxEntries: maxEntries,
		now:        now,
		seen:       make(map[string]time.Time),
	}
}

// Allow implements Limiter.
func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if last, ok := l.seen[key]; ok && now.Sub(last) < l.window {
		return false, nil
	}
	l.seen[key] = now

	if len(l.seen) > l.maxEntries {
		l.evictExpired(now)
	}
	return true, nil
}

// Len returns the number of tracked keys.
func (l *MemoryLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.seen)
}

func (l *MemoryLimiter) evictExpired(now time.Time) {
	for key, t := range l.seen {
		if now.Sub(t) > l.window {
			delete(l.seen, key)
		}
	}
}
