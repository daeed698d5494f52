// Package discovery implements the candidate source use case.
package discovery

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/zerowrap"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/edgeselect/internal/boundaries/in"
	"github.com/bnema/edgeselect/internal/boundaries/out"
	"github.com/bnema/edgeselect/internal/domain"
)

var _ in.CandidateSource = (*Service)(nil)

// Config holds candidate source settings.
type Config struct {
	// ManifestURL is the same-origin manifest. Empty disables it.
	ManifestURL string
	// ProxyManifestURL is fetched in addition when set.
	ProxyManifestURL string
	// Protocol applies to same-origin records.
	Protocol domain.Protocol
	// Static replaces the compiled-in fallback list when non-empty.
	Static []domain.Candidate
}

// Service implements in.CandidateSource.
type Service struct {
	fetcher out.HTTPFetcher
	cfg     Config
	static  []domain.Candidate

	mu   sync.RWMutex
	last []domain.Candidate
}

// NewService creates a new candidate source.
func NewService(fetcher out.HTTPFetcher, cfg Config) *Service {
	if !cfg.Protocol.Valid() {
		cfg.Protocol = domain.ProtocolHTTPS
	}

	static := domain.StaticCandidates()
	if len(cfg.Static) > 0 {
		static = make([]domain.Candidate, 0, len(cfg.Static))
		for _, c := range cfg.Static {
			if c.Protocol == "" {
				c.Protocol = domain.ProtocolHTTPS
			}
			c.PathPrefix = normalizePrefix(c.PathPrefix)
			c.Source = domain.SourceStatic
			if c.Validate() == nil {
				static = append(static, c)
			}
		}
	}

	return &Service{
		fetcher: fetcher,
		cfg:     cfg,
		static:  static,
	}
}

// Discover fetches both manifests concurrently and falls back to the static
// list when neither yields a record.
func (s *Service) Discover(ctx context.Context) ([]domain.Candidate, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "Discover",
	})
	log := zerowrap.FromCtx(ctx)

	var (
		mu         sync.Mutex
		errs       error
		sameOrigin []domain.Candidate
		proxy      []domain.Candidate
		g          errgroup.Group
	)

	if s.cfg.ManifestURL != "" {
		g.Go(func() error {
			c, err := s.fetchManifest(ctx, s.cfg.ManifestURL, func(b []byte) []domain.Candidate {
				return ParseManifest(b, s.cfg.Protocol)
			})
			mu.Lock()
			defer mu.Unlock()
			sameOrigin = c
			errs = multierr.Append(errs, err)
			return nil
		})
	}

	if s.cfg.ProxyManifestURL != "" {
		g.Go(func() error {
			c, err := s.fetchManifest(ctx, s.cfg.ProxyManifestURL, ParseProxyManifest)
			mu.Lock()
			defer mu.Unlock()
			proxy = c
			errs = multierr.Append(errs, err)
			return nil
		})
	}

	_ = g.Wait()

	candidates := merge(sameOrigin, proxy)
	if len(candidates) == 0 {
		log.Debug().
			Err(errs).
			Int("manifest_errors", len(multierr.Errors(errs))).
			Msg("no manifest records, using static candidates")
		candidates = merge(s.static)
	}

	if len(candidates) == 0 {
		return nil, log.WrapErr(domain.ErrDiscoveryFailure, "candidate discovery failed")
	}

	s.mu.Lock()
	s.last = candidates
	s.mu.Unlock()

	log.Debug().
		Int(zerowrap.FieldCount, len(candidates)).
		Int("same_origin", len(sameOrigin)).
		Int("proxy", len(proxy)).
		Msg("candidates discovered")

	return cloneCandidates(candidates), nil
}

// Last returns the candidates of the latest discovery, or the static list
// when discovery never ran.
func (s *Service) Last() []domain.Candidate {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.last) == 0 {
		return cloneCandidates(s.static)
	}
	return cloneCandidates(s.last)
}

func (s *Service) fetchManifest(ctx context.Context, url string, parse func([]byte) []domain.Candidate) ([]domain.Candidate, error) {
	res, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("manifest %s: %w", url, err)
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Errorf("manifest %s: status %d", url, res.StatusCode)
	}

	candidates := parse(res.Body)
	if len(candidates) == 0 {
		return nil, fmt.Errorf("manifest %s: no records", url)
	}
	return candidates, nil
}

func cloneCandidates(c []domain.Candidate) []domain.Candidate {
	return append([]domain.Candidate(nil), c...)
}
