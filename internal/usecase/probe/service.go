// Package probe implements the two-stage reachability challenge.
package probe

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/benbjohnson/clock"
	"github.com/bnema/zerowrap"

	"github.com/bnema/edgeselect/internal/boundaries/in"
	"github.com/bnema/edgeselect/internal/boundaries/out"
	"github.com/bnema/edgeselect/internal/domain"
)

// maxDetail caps the response body echoed into a content mismatch detail.
const maxDetail = 512

var _ in.Prober = (*Service)(nil)

// Service implements in.Prober.
type Service struct {
	fetcher       out.HTTPFetcher
	ledger        out.ResponseLedger
	embedder      out.Embedder
	events        out.EventPublisher
	metrics       out.Metrics
	clock         clock.Clock
	embedDeadline time.Duration
	reuseWindow   time.Duration
}

// Option configures the Service.
type Option func(*Service)

// WithEmbedder enables the second stage whenever the embedder is available.
func WithEmbedder(e out.Embedder) Option {
	return func(s *Service) {
		s.embedder = e
	}
}

// WithClock replaces the wall clock.
func WithClock(c clock.Clock) Option {
	return func(s *Service) {
		s.clock = c
	}
}

// WithMetrics records every probe outcome.
func WithMetrics(m out.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithEventPublisher publishes health transitions.
func WithEventPublisher(p out.EventPublisher) Option {
	return func(s *Service) {
		s.events = p
	}
}

// WithEmbedDeadline overrides the embed handshake deadline, measured from probe start.
func WithEmbedDeadline(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.embedDeadline = d
		}
	}
}

// WithReuseWindow returns ledger entries younger than d instead of re-probing.
// Zero disables reuse.
func WithReuseWindow(d time.Duration) Option {
	return func(s *Service) {
		s.reuseWindow = d
	}
}

// NewService creates a new prober writing into ledger.
func NewService(fetcher out.HTTPFetcher, ledger out.ResponseLedger, opts ...Option) *Service {
	s := &Service{
		fetcher:       fetcher,
		ledger:        ledger,
		metrics:       out.NopMetrics{},
		clock:         clock.New(),
		embedDeadline: domain.EmbedDeadline,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Probe challenges one candidate. The result is in the ledger before Probe returns.
func (s *Service) Probe(ctx context.Context, candidate domain.Candidate) domain.ProbeResult {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "Probe",
		zerowrap.FieldHost:    candidate.Hostname,
	})
	log := zerowrap.FromCtx(ctx)

	start := s.clock.Now()
	prev, hadPrev := s.ledger.Get(candidate.Hostname)

	if s.reuseWindow > 0 && hadPrev && s.clock.Since(prev.CheckedAt) < s.reuseWindow {
		log.Debug().Str("reason", string(prev.Reason)).Msg("reusing recent probe result")
		return prev
	}

	result := s.challenge(ctx, candidate, start)
	result.Hostname = candidate.Hostname
	result.Elapsed = s.clock.Since(start)
	result.CheckedAt = s.clock.Now()

	s.ledger.Record(result)
	s.metrics.RecordProbe(ctx, result)

	log.Debug().
		Bool("success", result.Success).
		Str("reason", string(result.Reason)).
		Str("detail", result.Detail).
		Int("stage", int(result.Stage)).
		Dur(zerowrap.FieldDuration, result.Elapsed).
		Msg("probe complete")

	if hadPrev && prev.Success != result.Success {
		s.transition(ctx, result)
	}

	return result
}

func (s *Service) challenge(ctx context.Context, c domain.Candidate, start time.Time) domain.ProbeResult {
	res, fail := s.fetchStage(ctx, c)
	if fail != nil {
		return *fail
	}

	if s.embedder == nil || !s.embedder.Available() {
		return domain.ProbeResult{Success: true, Stage: domain.StageFetch, Reason: domain.ReasonSuccess, Latency: res.Elapsed}
	}

	result := s.embedStage(ctx, c, start.Add(s.embedDeadline))
	result.Latency = res.Elapsed
	return result
}

// fetchStage runs the plain-text challenge. A non-nil result means failure.
func (s *Service) fetchStage(ctx context.Context, c domain.Candidate) (*out.FetchResult, *domain.ProbeResult) {
	failed := func(reason domain.ProbeReason, detail string) *domain.ProbeResult {
		return &domain.ProbeResult{Stage: domain.StageFetch, Reason: reason, Detail: detail}
	}

	res, err := s.fetcher.Fetch(ctx, c.URL(domain.ChallengePath))
	if err != nil {
		switch {
		case errors.Is(ctx.Err(), context.Canceled):
			return nil, failed(domain.ReasonCanceled, err.Error())
		case errors.Is(err, domain.ErrFetchTimeout), errors.Is(err, context.DeadlineExceeded):
			return nil, failed(domain.ReasonTimeout, err.Error())
		default:
			return nil, failed(domain.ReasonNetworkError, err.Error())
		}
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, failed(domain.ReasonBadStatus, fmt.Sprintf("status %d", res.StatusCode))
	}

	body := string(res.Body)
	if !strings.Contains(body, domain.MarkerNotBlocked) || !strings.Contains(body, domain.MarkerSecondary) {
		f := failed(domain.ReasonContentMismatch, truncate(body, maxDetail))
		f.Latency = res.Elapsed
		return nil, f
	}

	return res, nil
}

// embedStage runs the cross-document handshake. The frame is removed exactly
// once on every path.
func (s *Service) embedStage(ctx context.Context, c domain.Candidate, deadline time.Time) domain.ProbeResult {
	log := zerowrap.FromCtx(ctx)

	failed := func(reason domain.ProbeReason, detail string) domain.ProbeResult {
		return domain.ProbeResult{Stage: domain.StageEmbed, Reason: reason, Detail: detail}
	}

	origin := c.Origin()
	allowed := map[string]struct{}{origin: {}}

	timer := s.clock.Timer(deadline.Sub(s.clock.Now()))
	defer timer.Stop()

	frame, err := s.embedder.Embed(ctx, c.URL(domain.EmbedPath))
	if err != nil {
		return failed(domain.ReasonEmbedUnavailable, err.Error())
	}
	defer func() {
		if err := frame.Remove(); err != nil {
			log.Debug().Err(err).Msg("failed to remove embed frame")
		}
	}()

	msgs := frame.Messages()
	for {
		select {
		case <-ctx.Done():
			return failed(domain.ReasonCanceled, ctx.Err().Error())

		case <-timer.C:
			return failed(domain.ReasonEmbedTimeout, "")

		case msg, ok := <-msgs:
			if !ok {
				return failed(domain.ReasonEmbedUnavailable, "embed frame closed")
			}
			if _, ok := allowed[msg.Origin]; !ok {
				log.Trace().Str("origin", msg.Origin).Msg("ignoring message from foreign origin")
				continue
			}

			switch msg.Data {
			case domain.MessageInitialized:
				if err := frame.Post(ctx, domain.MessageCheckAvailability, origin); err != nil {
					return failed(domain.ReasonEmbedUnavailable, err.Error())
				}
			case domain.MarkerNotBlocked:
				return domain.ProbeResult{Success: true, Stage: domain.StageEmbed, Reason: domain.ReasonSuccess}
			default:
				return failed(domain.ReasonEmbedMismatch, msg.Data)
			}
		}
	}
}

func (s *Service) transition(ctx context.Context, result domain.ProbeResult) {
	log := zerowrap.FromCtx(ctx)
	if result.Success {
		log.Info().Msg("candidate recovered")
	} else {
		log.Warn().Str("reason", string(result.Reason)).Msg("candidate degraded")
	}

	if s.events == nil {
		return
	}
	err := s.events.Publish(domain.EventProbeTransition, domain.ProbeTransitionPayload{
		Hostname: result.Hostname,
		Healthy:  result.Success,
		Reason:   result.Reason,
	})
	if err != nil {
		log.Debug().Err(err).Msg("failed to publish probe transition")
	}
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
