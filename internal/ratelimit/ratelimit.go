package ratelimit

import (
	"sync"
	"time"
)

// bucket tracks one identity's request count within the current window
type bucket struct {
	count   int
	resetAt time.Time
}

// Limiter is a fixed-window rate limiter keyed by client identity. State is
// local to one process, so under horizontal scaling the effective limit is
// limit times the instance count: a best-effort first layer, not an exact
// guarantee.
type Limiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	limit   int
	window  time.Duration
	now     func() time.Time
}

// NewLimiter creates a new limiter allowing limit requests per identity in
// each fixed window
func NewLimiter(limit int, window time.Duration) *Limiter {
	return &Limiter{
		buckets: make(map[string]*bucket),
		limit:   limit,
		window:  window,
		now:     time.Now,
	}
}

// Allow reports whether a request from identity may proceed. The first
// request of a window starts it at count=1; requests at or beyond the limit
// are denied without incrementing.
func (l *Limiter) Allow(identity string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)

	b, ok := l.buckets[identity]
	if !ok || now.After(b.resetAt) {
		l.buckets[identity] = &bucket{count: 1, resetAt: now.Add(l.window)}
		return true
	}
	if b.count >= l.limit {
		return false
	}
	b.count++
	return true
}

// sweep drops buckets whose window has elapsed. Runs under the lock on every
// access so the map stays bounded by the set of recently active identities.
func (l *Limiter) sweep(now time.Time) {
	for id, b := range l.buckets {
		if now.After(b.resetAt) {
			delete(l.buckets, id)
		}
	}
}
