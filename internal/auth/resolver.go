package auth

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Resolver loads the permission-relevant profile snapshot for a
// collaborator id. Implementations return ErrProfileNotFound when no
// profile row exists.
type Resolver interface {
	Resolve(ctx context.Context, id uuid.UUID) (*Profile, error)
}

type cacheEntry struct {
	profile Profile
	expires time.Time
}

// CachedResolver wraps a Resolver with a TTL cache so that permission
// checks do not hit the database on every request. Personnel updates
// call Invalidate to evict stale entries before the TTL elapses.
type CachedResolver struct {
	inner Resolver
	ttl   time.Duration
	now   func() time.Time

	mu      sync.Mutex
	entries map[uuid.UUID]cacheEntry
}

// NewCachedResolver creates a CachedResolver with the given TTL.
func NewCachedResolver(inner Resolver, ttl time.Duration) *CachedResolver {
	return &CachedResolver{
		inner:   inner,
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[uuid.UUID]cacheEntry),
	}
}

// Resolve returns the cached profile when fresh, falling back to the
// inner resolver and caching the result. Errors are never cached.
func (c *CachedResolver) Resolve(ctx context.Context, id uuid.UUID) (*Profile, error) {
	c.mu.Lock()
	if entry, ok := c.entries[id]; ok && c.now().Before(entry.expires) {
		profile := entry.profile
		c.mu.Unlock()
		return &profile, nil
	}
	c.mu.Unlock()

	profile, err := c.inner.Resolve(ctx, id)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[id] = cacheEntry{
		profile: *profile,
		expires: c.now().Add(c.ttl),
	}
	c.mu.Unlock()

	return profile, nil
}

// Invalidate evicts the cache entry for the given collaborator.
func (c *CachedResolver) Invalidate(id uuid.UUID) {
	c.mu.Lock()
	delete(c.entries, id)
	c.mu.Unlock()
}
