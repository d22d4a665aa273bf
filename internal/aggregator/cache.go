package aggregator

import (
	"sync"
	"time"

	"github.com/shaun/portfolio-api/internal/domain"
)

// repoCache is a single-slot TTL cache for the enriched result set. One slot
// is enough: the underlying data is one account's repositories, not keyed
// per caller.
type repoCache struct {
	mu      sync.Mutex
	at      time.Time
	results []domain.RepoResult
	ttl     time.Duration
	now     func() time.Time
}

func newRepoCache(ttl time.Duration) *repoCache {
	return &repoCache{
		ttl: ttl,
		now: time.Now,
	}
}

// get returns the cached results if present and not older than the TTL
func (c *repoCache) get() ([]domain.RepoResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.results == nil || c.now().Sub(c.at) >= c.ttl {
		return nil, false
	}
	return c.results, true
}

// put overwrites the slot wholesale with a fresh population timestamp
func (c *repoCache) put(results []domain.RepoResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.at = c.now()
	c.results = results
}
