// Package resolver implements delivery host resolution.
package resolver

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/bnema/zerowrap"
	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/bnema/edgeselect/internal/boundaries/in"
	"github.com/bnema/edgeselect/internal/boundaries/out"
	"github.com/bnema/edgeselect/internal/domain"
)

const (
	// DefaultRoundTimeout bounds a full round, including probes still
	// running after the strategy returned.
	DefaultRoundTimeout = 15 * time.Second
	// DefaultSmartWaitMargin is how far from the best present priority
	// smart-wait may settle.
	DefaultSmartWaitMargin = 1
	// maxConcurrentProbes limits the number of concurrent probes in a round.
	maxConcurrentProbes = 16

	roundKey = "round"
)

// Round outcomes reported to metrics.
const (
	outcomeSelected        = "selected"
	outcomeExhausted       = "exhausted"
	outcomeDiscoveryFailed = "discovery_failed"
)

var _ in.Resolver = (*Service)(nil)

// Config holds resolver settings.
type Config struct {
	RoundTimeout    time.Duration
	SmartWaitMargin int
}

// Service implements in.Resolver.
type Service struct {
	source  in.CandidateSource
	prober  in.Prober
	metrics out.Metrics
	cfg     Config
	group   singleflight.Group

	mu     sync.RWMutex
	target in.SelectionTarget

	refreshes sync.WaitGroup
}

// NewService creates a new resolver.
func NewService(source in.CandidateSource, prober in.Prober, cfg Config) *Service {
	if cfg.RoundTimeout <= 0 {
		cfg.RoundTimeout = DefaultRoundTimeout
	}
	if cfg.SmartWaitMargin < 0 {
		cfg.SmartWaitMargin = DefaultSmartWaitMargin
	}

	return &Service{
		source:  source,
		prober:  prober,
		metrics: out.NopMetrics{},
		cfg:     cfg,
	}
}

// SetMetrics sets the metrics sink. Must be called before the first Resolve.
func (s *Service) SetMetrics(m out.Metrics) {
	s.metrics = m
}

// SetSelectionTarget enables optimistic reuse against target.
func (s *Service) SetSelectionTarget(target in.SelectionTarget) {
	s.mu.Lock()
	s.target = target
	s.mu.Unlock()
}

// Wait blocks until background refreshes have finished.
func (s *Service) Wait() {
	s.refreshes.Wait()
}

// Resolve returns a reachable candidate using strategy. A bound selection is
// re-probed alone first; the full round only runs when it fails.
func (s *Service) Resolve(ctx context.Context, strategy domain.Strategy) (*domain.Candidate, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "Resolve",
		"strategy":            string(strategy),
	})
	log := zerowrap.FromCtx(ctx)

	s.mu.RLock()
	target := s.target
	s.mu.RUnlock()

	if target != nil {
		if sel, ok := target.Current(); ok {
			result := s.prober.Probe(ctx, sel.Candidate)
			if result.Success {
				log.Debug().Str(zerowrap.FieldHost, sel.Candidate.Hostname).Msg("bound host still reachable")
				s.refresh(ctx, target)
				c := sel.Candidate
				return &c, nil
			}

			log.Info().
				Str(zerowrap.FieldHost, sel.Candidate.Hostname).
				Str("reason", string(result.Reason)).
				Msg("bound host failed, running full round")
			strategy = domain.StrategyFirstAvailable
		}
	}

	return s.round(ctx, strategy)
}

// round joins the in-flight round or starts one. Probes run detached from the
// caller, who may stop waiting on its own cancellation.
func (s *Service) round(ctx context.Context, strategy domain.Strategy) (*domain.Candidate, error) {
	log := zerowrap.FromCtx(ctx)

	ch := s.group.DoChan(roundKey, func() (any, error) {
		return s.runRound(context.WithoutCancel(ctx), strategy)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Shared {
			log.Debug().Msg("joined in-flight round")
		}
		if res.Err != nil {
			return nil, res.Err
		}
		c := *res.Val.(*domain.Candidate)
		return &c, nil
	}
}

func (s *Service) runRound(ctx context.Context, strategy domain.Strategy) (*domain.Candidate, error) {
	ctx = zerowrap.CtxWithField(ctx, "round_id", uuid.NewString())
	log := zerowrap.FromCtx(ctx)
	start := time.Now()

	rctx, cancel := context.WithTimeout(ctx, s.cfg.RoundTimeout)

	candidates, err := s.source.Discover(rctx)
	if err == nil && len(candidates) == 0 {
		err = domain.ErrDiscoveryFailure
	}
	if err != nil {
		cancel()
		s.metrics.RecordRound(ctx, strategy, outcomeDiscoveryFailed, time.Since(start))
		if !errors.Is(err, domain.ErrDiscoveryFailure) {
			err = errors.Join(domain.ErrDiscoveryFailure, err)
		}
		return nil, log.WrapErr(err, "resolution round failed")
	}

	domain.SortByPriority(candidates)
	successes := s.fanOut(rctx, cancel, candidates)
	p := newPicker(strategy, domain.MinPriority(candidates), s.cfg.SmartWaitMargin)

	for r := range successes {
		if p.offer(r) {
			break
		}
	}

	best := p.best()
	if best == nil {
		s.metrics.RecordRound(ctx, strategy, outcomeExhausted, time.Since(start))
		log.Warn().Int(zerowrap.FieldCount, len(candidates)).Msg("every candidate failed its probe")
		return nil, domain.ErrResolutionExhausted
	}

	s.metrics.RecordRound(ctx, strategy, outcomeSelected, time.Since(start))
	log.Info().
		Str(zerowrap.FieldHost, best.candidate.Hostname).
		Int("priority", best.candidate.Priority).
		Int(zerowrap.FieldCount, len(candidates)).
		Dur(zerowrap.FieldDuration, time.Since(start)).
		Msg("candidate selected")

	c := best.candidate
	return &c, nil
}

// fanOut probes every candidate concurrently and streams successes in
// completion order. The stream closes, and cancel runs, once every probe has
// settled. The buffer holds every candidate so producers never block after the
// consumer stopped reading.
func (s *Service) fanOut(ctx context.Context, cancel context.CancelFunc, candidates []domain.Candidate) <-chan ranked {
	log := zerowrap.FromCtx(ctx)
	successes := make(chan ranked, len(candidates))
	sem := make(chan struct{}, maxConcurrentProbes)

	var wg sync.WaitGroup
	for i, c := range candidates {
		wg.Add(1)
		go func(order int, c domain.Candidate) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			result := s.prober.Probe(ctx, c)
			if !result.Success {
				log.Debug().
					Str(zerowrap.FieldHost, c.Hostname).
					Str("reason", string(result.Reason)).
					Msg("candidate failed")
				return
			}
			successes <- ranked{candidate: c, order: order}
		}(i, c)
	}

	go func() {
		wg.Wait()
		close(successes)
		cancel()
	}()

	return successes
}

// refresh runs a background priority-optimal round and offers the outcome to
// target.
func (s *Service) refresh(ctx context.Context, target in.SelectionTarget) {
	bg := context.WithoutCancel(ctx)
	log := zerowrap.FromCtx(bg)

	s.refreshes.Add(1)
	go func() {
		defer s.refreshes.Done()

		c, err := s.round(bg, domain.StrategyPriorityOptimal)
		if err != nil {
			log.Debug().Err(err).Msg("background refresh found no candidate")
			return
		}
		target.Offer(bg, *c)
	}()
}
