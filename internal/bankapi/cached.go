package bankapi

import (
	"context"
	"log/slog"
	"time"
)

// Resolver turns a bank code into a bank name
type Resolver interface {
	ResolveName(ctx context.Context, code int) (string, error)
}

// NameCache stores resolved names by bank code
type NameCache interface {
	Get(ctx context.Context, code int) (string, bool, error)
	Set(ctx context.Context, code int, name string, ttl time.Duration) error
}

// CachedResolver serves names from a cache and falls back to next on a miss.
// Failures are never cached, and a broken cache only costs a registry call.
type CachedResolver struct {
	next   Resolver
	cache  NameCache
	logger *slog.Logger
	ttl    time.Duration
}

// NewCachedResolver wraps next with cache
func NewCachedResolver(next Resolver, cache NameCache, ttl time.Duration, logger *slog.Logger) *CachedResolver {
	return &CachedResolver{
		next:   next,
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}
}

// ResolveName implements Resolver
func (r *CachedResolver) ResolveName(ctx context.Context, code int) (string, error) {
	name, found, err := r.cache.Get(ctx, code)
	if err != nil {
		r.logger.Warn("bank name cache read failed", "bank_code", code, "error", err)
	}
	if found {
		return name, nil
	}

	name, err = r.next.ResolveName(ctx, code)
	if err != nil {
		return "", err
	}

	if err := r.cache.Set(ctx, code, name, r.ttl); err != nil {
		r.logger.Warn("bank name cache write failed", "bank_code", code, "error", err)
	}

	return name, nil
}
