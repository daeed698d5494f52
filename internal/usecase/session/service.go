// Package session holds the selection bound for the life of the process.
package session

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/benbjohnson/clock"
	"github.com/bnema/zerowrap"

	"github.com/bnema/edgeselect/internal/boundaries/in"
	"github.com/bnema/edgeselect/internal/boundaries/out"
	"github.com/bnema/edgeselect/internal/domain"
)

var _ in.SessionBinding = (*Service)(nil)

// pending is the handle shared by every caller waiting on the initial round.
type pending struct {
	done chan struct{}
	err  error
}

// change is a selection mutation to announce once the lock is released.
type change struct {
	previous *domain.Candidate
	current  *domain.Candidate
	reason   domain.ChangeReason
}

// Option configures a Service.
type Option func(*Service)

// WithEventPublisher publishes selection.bound and selection.cleared events.
func WithEventPublisher(p out.EventPublisher) Option {
	return func(s *Service) { s.events = p }
}

// WithMetrics sets the metrics sink.
func WithMetrics(m out.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithClock sets the clock used for bind timestamps.
func WithClock(c clock.Clock) Option {
	return func(s *Service) { s.clock = c }
}

// WithStrategy sets the strategy used by initial and revalidation rounds.
func WithStrategy(strategy domain.Strategy) Option {
	return func(s *Service) { s.strategy = strategy }
}

// Service implements in.SessionBinding.
type Service struct {
	resolver in.Resolver
	source   in.CandidateSource
	ledger   out.ResponseLedger
	events   out.EventPublisher
	metrics  out.Metrics
	clock    clock.Clock
	strategy domain.Strategy

	mu        sync.Mutex
	state     domain.BindingState
	selection domain.Selection
	inflight  *pending
	lastErr   error
}

// NewService creates an idle session binding.
func NewService(resolver in.Resolver, source in.CandidateSource, ledger out.ResponseLedger, opts ...Option) *Service {
	s := &Service{
		resolver: resolver,
		source:   source,
		ledger:   ledger,
		metrics:  out.NopMetrics{},
		clock:    clock.New(),
		strategy: domain.DefaultStrategy,
		state:    domain.BindingIdle,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Current returns the bound selection.
func (s *Service) Current() (domain.Selection, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != domain.BindingBound {
		return domain.Selection{}, false
	}
	return s.selection, true
}

// State returns the binding lifecycle state.
func (s *Service) State() domain.BindingState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Snapshot returns the state and selection atomically.
func (s *Service) Snapshot() domain.SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := domain.SessionSnapshot{State: s.state}
	if s.state == domain.BindingBound {
		sel := s.selection
		snap.Selection = &sel
	}
	if s.lastErr != nil {
		snap.LastError = s.lastErr.Error()
	}
	return snap
}

// EnsureInitialized returns once a resolution round has run. Callers arriving
// while a round is pending wait on it instead of starting another. The round
// itself is not bound to ctx, so one caller giving up does not fail the rest.
func (s *Service) EnsureInitialized(ctx context.Context) error {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "EnsureInitialized",
	})

	s.mu.Lock()
	switch s.state {
	case domain.BindingBound:
		s.mu.Unlock()
		return nil
	case domain.BindingIdle:
		s.inflight = &pending{done: make(chan struct{})}
		s.state = domain.BindingResolving
		go s.initialize(context.WithoutCancel(ctx), s.inflight)
	}
	p := s.inflight
	s.mu.Unlock()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-p.done:
		return p.err
	}
}

func (s *Service) initialize(ctx context.Context, p *pending) {
	log := zerowrap.FromCtx(ctx)

	c, err := s.resolver.Resolve(ctx, s.strategy)

	s.mu.Lock()
	var ch *change
	switch {
	case s.inflight != p:
		// Superseded by a newer round, which owns the state now.
		err = nil
	case s.state != domain.BindingResolving:
		// Bound meanwhile by Rebind or Override.
		s.inflight = nil
		err = nil
	case err != nil:
		s.inflight = nil
		s.state = domain.BindingIdle
		s.lastErr = err
	default:
		s.inflight = nil
		ch = s.bindLocked(*c, domain.ChangeInitial)
	}
	p.err = err
	close(p.done)
	s.mu.Unlock()

	if err != nil {
		log.Warn().Err(err).Msg("initial resolution found no delivery host")
	}
	s.announce(ctx, ch)
}

// Rebind replaces the selection unconditionally.
func (s *Service) Rebind(ctx context.Context, candidate domain.Candidate) {
	s.mu.Lock()
	ch := s.bindLocked(candidate, domain.ChangeRefresh)
	s.mu.Unlock()

	s.announce(ctx, ch)
}

// Offer rebinds to candidate when it has a strictly better priority than the
// bound host, or when the bound host's latest probe failed.
func (s *Service) Offer(ctx context.Context, candidate domain.Candidate) {
	log := zerowrap.FromCtx(ctx)

	s.mu.Lock()
	if s.state != domain.BindingBound {
		s.mu.Unlock()
		return
	}
	current := s.selection.Candidate
	if strings.EqualFold(current.Hostname, candidate.Hostname) {
		s.mu.Unlock()
		return
	}

	better := candidate.Priority < current.Priority
	failed := false
	if r, ok := s.ledger.Get(current.Hostname); ok && !r.Success {
		failed = true
	}
	if !better && !failed {
		s.mu.Unlock()
		log.Debug().
			Str(zerowrap.FieldHost, candidate.Hostname).
			Str("bound", current.Hostname).
			Msg("offered candidate not better than bound host")
		return
	}

	ch := s.bindLocked(candidate, domain.ChangeRefresh)
	s.mu.Unlock()

	s.announce(ctx, ch)
}

// Revalidate re-probes the bound host through the resolver. A failed host is
// replaced by the outcome of a fresh round, or cleared when nothing answers.
// An unbound session is initialized instead.
func (s *Service) Revalidate(ctx context.Context) error {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "Revalidate",
	})
	log := zerowrap.FromCtx(ctx)

	if _, ok := s.Current(); !ok {
		return s.EnsureInitialized(ctx)
	}

	c, err := s.resolver.Resolve(ctx, s.strategy)
	if err != nil {
		if ctx.Err() != nil {
			return err
		}

		s.mu.Lock()
		ch := s.clearLocked(err)
		s.mu.Unlock()

		s.announce(ctx, ch)
		return log.WrapErr(err, "revalidation found no delivery host")
	}

	s.mu.Lock()
	var ch *change
	if s.state != domain.BindingBound || !strings.EqualFold(s.selection.Candidate.Hostname, c.Hostname) {
		ch = s.bindLocked(*c, domain.ChangeRevalidate)
	}
	s.mu.Unlock()

	s.announce(ctx, ch)
	return nil
}

// Override force-binds hostname, which must be one of the last discovered
// candidates.
func (s *Service) Override(ctx context.Context, hostname string) (domain.Selection, error) {
	c, ok := domain.FindCandidate(s.source.Last(), hostname)
	if !ok {
		return domain.Selection{}, fmt.Errorf("%w: %s", domain.ErrUnknownCandidate, hostname)
	}

	s.mu.Lock()
	ch := s.bindLocked(c, domain.ChangeOverride)
	sel := s.selection
	s.mu.Unlock()

	s.announce(ctx, ch)
	return sel, nil
}

// bindLocked must be called with mu held.
func (s *Service) bindLocked(c domain.Candidate, reason domain.ChangeReason) *change {
	ch := &change{reason: reason, current: &c}
	if s.state == domain.BindingBound {
		prev := s.selection.Candidate
		ch.previous = &prev
	}

	s.selection = domain.Selection{Candidate: c, BoundAt: s.clock.Now()}
	s.state = domain.BindingBound
	s.lastErr = nil
	return ch
}

// clearLocked must be called with mu held.
func (s *Service) clearLocked(cause error) *change {
	s.lastErr = cause
	if s.state != domain.BindingBound {
		return nil
	}

	prev := s.selection.Candidate
	s.selection = domain.Selection{}
	s.state = domain.BindingIdle
	return &change{previous: &prev, reason: domain.ChangeExhausted}
}

func (s *Service) announce(ctx context.Context, ch *change) {
	if ch == nil {
		return
	}
	log := zerowrap.FromCtx(ctx)

	eventType := domain.EventSelectionBound
	if ch.current != nil {
		log.Info().
			Str(zerowrap.FieldHost, ch.current.Hostname).
			Str("previous", hostnameOf(ch.previous)).
			Str("reason", string(ch.reason)).
			Msg("selection bound")
	} else {
		eventType = domain.EventSelectionCleared
		log.Warn().
			Str("previous", hostnameOf(ch.previous)).
			Str("reason", string(ch.reason)).
			Msg("selection cleared")
	}

	s.metrics.RecordSelectionChange(ctx, ch.reason)

	if s.events == nil {
		return
	}
	payload := domain.SelectionChangedPayload{Previous: ch.previous, Current: ch.current, Reason: ch.reason}
	if err := s.events.Publish(eventType, payload); err != nil {
		log.Warn().Err(err).Str(zerowrap.FieldEvent, string(eventType)).Msg("failed to publish selection event")
	}
}

func hostnameOf(c *domain.Candidate) string {
	if c == nil {
		return ""
	}
	return c.Hostname
}
