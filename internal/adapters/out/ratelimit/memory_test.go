package ratelimit

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/bnema/zerowrap"
	"github.com/stretchr/testify/assert"
)

func testLogger() zerowrap.Logger {
	return zerowrap.Default()
}

func TestMemoryStore_Allow_WithinBurst(t *testing.T) {
	store := NewMemoryStore(10, 3, testLogger())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		assert.True(t, store.Allow(ctx, "ip:10.0.0.1"), "request %d should be allowed", i+1)
	}
	assert.False(t, store.Allow(ctx, "ip:10.0.0.1"))
}

func TestMemoryStore_IndependentKeys(t *testing.T) {
	store := NewMemoryStore(1, 1, testLogger())
	ctx := context.Background()

	assert.True(t, store.Allow(ctx, "ip:a"))
	assert.False(t, store.Allow(ctx, "ip:a"))
	assert.True(t, store.Allow(ctx, "ip:b"))
}

func TestMemoryStore_Refill(t *testing.T) {
	now := time.Unix(1000, 0)
	store := NewMemoryStore(1, 1, testLogger())
	store.nowFn = func() time.Time { return now }
	ctx := context.Background()

	assert.True(t, store.Allow(ctx, "k"))
	assert.False(t, store.Allow(ctx, "k"))

	now = now.Add(time.Second)
	assert.True(t, store.Allow(ctx, "k"))
}

func TestMemoryStore_AllowN(t *testing.T) {
	store := NewMemoryStore(1, 5, testLogger())
	ctx := context.Background()

	assert.True(t, store.AllowN(ctx, "k", 5))
	assert.False(t, store.AllowN(ctx, "k", 1))
}

func TestMemoryStore_Prune(t *testing.T) {
	now := time.Unix(1000, 0)
	store := NewMemoryStore(5, 5, testLogger())
	store.nowFn = func() time.Time { return now }
	ctx := context.Background()

	store.Allow(ctx, "old")
	now = now.Add(10 * time.Minute)
	store.Allow(ctx, "fresh")

	assert.Equal(t, 1, store.Prune(5*time.Minute))
	assert.Equal(t, 1, store.Len())
}

func TestMemoryStore_Concurrent(t *testing.T) {
	store := NewMemoryStore(1000, 1000, testLogger())
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Allow(ctx, "shared")
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, store.Len())
}
