package out

import "context"

// RateLimiter guards the resolution endpoints against round storms.
// Keys are "global" or "ip:<address>"; each key has its own bucket.
type RateLimiter interface {
	Allow(ctx context.Context, key string) bool
	// AllowN consumes n tokens at once.
	AllowN(ctx context.Context, key string, n int) bool
}
