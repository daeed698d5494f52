package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/bnema/edgeselect/internal/domain"
)

func TestRevalidator_TicksWhileBound(t *testing.T) {
	f := newFixture(t)
	bound := cand("bound.example", 1)
	f.bind(t, bound)

	called := make(chan struct{}, 1)
	f.resolver.EXPECT().Resolve(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, domain.Strategy) (*domain.Candidate, error) {
			called <- struct{}{}
			return &bound, nil
		}).Once()

	r := NewRevalidator(f.svc, time.Minute, f.clock)
	r.Start(testCtx())
	t.Cleanup(r.Stop)

	f.clock.Add(59 * time.Second)
	select {
	case <-called:
		t.Fatal("revalidated before the interval elapsed")
	default:
	}

	f.clock.Add(time.Second)
	select {
	case <-called:
	case <-time.After(time.Second):
		t.Fatal("revalidation did not run")
	}
}

func TestRevalidator_SkipsUnboundSession(t *testing.T) {
	f := newFixture(t)

	r := NewRevalidator(f.svc, time.Minute, f.clock)
	r.Start(testCtx())

	f.clock.Add(time.Minute)
	r.Stop()

	assert.Equal(t, domain.BindingIdle, f.svc.State())
}

func TestRevalidator_StopIsIdempotent(t *testing.T) {
	f := newFixture(t)
	r := NewRevalidator(f.svc, 0, f.clock)
	assert.Equal(t, DefaultRevalidateInterval, r.interval)

	r.Start(testCtx())
	r.Stop()
	r.Stop()
}
