// Package ratelimit provides the in-memory limiter guarding resolution endpoints.
package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/zerowrap"
	"golang.org/x/time/rate"

	"github.com/bnema/edgeselect/internal/boundaries/out"
)

// Ensure MemoryStore implements out.RateLimiter.
var _ out.RateLimiter = (*MemoryStore)(nil)

type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// MemoryStore keeps an independent token bucket per key.
type MemoryStore struct {
	entries map[string]*entry
	mu      sync.RWMutex
	rps     float64
	burst   int
	nowFn   func() time.Time
	log     zerowrap.Logger
}

// NewMemoryStore creates a new in-memory rate limiter store.
func NewMemoryStore(rps float64, burst int, log zerowrap.Logger) *MemoryStore {
	if burst < 1 {
		burst = 1
	}
	return &MemoryStore{
		entries: make(map[string]*entry),
		rps:     rps,
		burst:   burst,
		nowFn:   time.Now,
		log:     log,
	}
}

// Allow checks if a request identified by key is allowed.
func (s *MemoryStore) Allow(ctx context.Context, key string) bool {
	return s.AllowN(ctx, key, 1)
}

// AllowN checks if n requests identified by key are allowed.
func (s *MemoryStore) AllowN(_ context.Context, key string, n int) bool {
	now := s.nowFn()
	ok := s.getLimiter(key, now).AllowN(now, n)
	if !ok {
		s.log.Debug().
			Str(zerowrap.FieldLayer, "adapter").
			Str(zerowrap.FieldAdapter, "ratelimit").
			Str("key", key).
			Msg("request rate limited")
	}
	return ok
}

// Prune drops limiters that have been idle longer than idle and returns how
// many were removed.
func (s *MemoryStore) Prune(idle time.Duration) int {
	cutoff := s.nowFn().Add(-idle)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for key, e := range s.entries {
		if e.lastSeen.Before(cutoff) {
			delete(s.entries, key)
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked keys.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func (s *MemoryStore) getLimiter(key string, now time.Time) *rate.Limiter {
	s.mu.RLock()
	e, exists := s.entries[key]
	s.mu.RUnlock()

	if exists {
		s.mu.Lock()
		e.lastSeen = now
		s.mu.Unlock()
		return e.limiter
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Double-check after acquiring write lock
	if e, exists = s.entries[key]; exists {
		e.lastSeen = now
		return e.limiter
	}

	e = &entry{
		limiter:  rate.NewLimiter(rate.Limit(s.rps), s.burst),
		lastSeen: now,
	}
	s.entries[key] = e
	return e.limiter
}
