package middleware

import (
	"context"
	"time"

	"github.com/johnquangdev/meeting-analyzer/internal/domain/entities"
	"github.com/johnquangdev/meeting-analyzer/internal/infrastructure/cache"
)

// CachedResolver remembers successful token lookups for a short time so
// authenticated routes do not hit the users table on every request.
// Failed lookups are never cached.
type CachedResolver struct {
	next  TokenResolver
	store *cache.MemoryStore[entities.User]
	ttl   time.Duration
}

// NewCachedResolver wraps next with a cache of the given TTL
func NewCachedResolver(next TokenResolver, ttl time.Duration) *CachedResolver {
	return &CachedResolver{
		next:  next,
		store: cache.NewMemoryStore[entities.User](time.Minute),
		ttl:   ttl,
	}
}

// Resolve implements TokenResolver
func (r *CachedResolver) Resolve(ctx context.Context, token string) (*entities.User, error) {
	if user, ok := r.store.Get(token); ok {
		return &user, nil
	}

	user, err := r.next.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}

	r.store.Set(token, *user, r.ttl)
	return user, nil
}

// Close releases the cache's background sweeper
func (r *CachedResolver) Close() {
	r.store.Close()
}
