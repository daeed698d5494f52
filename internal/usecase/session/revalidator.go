package session

import (
	"context"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/bnema/zerowrap"

	"github.com/bnema/edgeselect/internal/domain"
)

// DefaultRevalidateInterval is how often a bound session is re-checked.
const DefaultRevalidateInterval = 5 * time.Minute

// Revalidator periodically re-validates a bound session.
type Revalidator struct {
	session  *Service
	clock    clock.Clock
	interval time.Duration

	stopOnce sync.Once
	stopCh   chan struct{}
	stopped  chan struct{}
}

// NewRevalidator creates a revalidator ticking every interval on clk.
func NewRevalidator(session *Service, interval time.Duration, clk clock.Clock) *Revalidator {
	if interval <= 0 {
		interval = DefaultRevalidateInterval
	}
	if clk == nil {
		clk = clock.New()
	}
	return &Revalidator{
		session:  session,
		clock:    clk,
		interval: interval,
		stopCh:   make(chan struct{}),
		stopped:  make(chan struct{}),
	}
}

// Start begins the background loop.
func (r *Revalidator) Start(ctx context.Context) {
	log := zerowrap.FromCtx(ctx)
	log.Info().Dur("interval", r.interval).Msg("session revalidator started")

	ticker := r.clock.Ticker(r.interval)
	go r.run(ctx, ticker)
}

// Stop signals the loop to stop and waits for it to finish. Stop must only be
// called after Start.
func (r *Revalidator) Stop() {
	r.stopOnce.Do(func() { close(r.stopCh) })
	<-r.stopped
}

func (r *Revalidator) run(ctx context.Context, ticker *clock.Ticker) {
	defer close(r.stopped)
	defer ticker.Stop()

	for {
		select {
		case <-r.stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.tick(ctx)
		}
	}
}

func (r *Revalidator) tick(ctx context.Context) {
	if r.session.State() != domain.BindingBound {
		return
	}

	log := zerowrap.FromCtx(ctx)
	if err := r.session.Revalidate(ctx); err != nil {
		log.Debug().Err(err).Msg("periodic revalidation failed")
	}
}
