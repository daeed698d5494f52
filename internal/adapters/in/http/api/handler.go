// Package api implements the HTTP adapter for the selection API.
package api

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"

	"github.com/bnema/zerowrap"
	"github.com/labstack/echo/v4"

	"github.com/bnema/edgeselect/internal/adapters/dto"
	"github.com/bnema/edgeselect/internal/boundaries/in"
	"github.com/bnema/edgeselect/internal/boundaries/out"
	"github.com/bnema/edgeselect/internal/domain"
)

// overrideParam selects a host for the session when present on any request.
const overrideParam = "server"

// EventLog exposes recently published events.
type EventLog interface {
	Entries() []domain.Event
}

// Option configures a Handler.
type Option func(*Handler)

// WithRateLimit limits resolution rounds by a global and a per-IP budget.
func WithRateLimit(global, perIP out.RateLimiter) Option {
	return func(h *Handler) {
		h.globalLimiter = global
		h.ipLimiter = perIP
	}
}

// WithEventLog serves recent events at /api/events.
func WithEventLog(l EventLog) Option {
	return func(h *Handler) { h.events = l }
}

// Handler implements the HTTP handlers for the selection API.
type Handler struct {
	session       in.SessionBinding
	resolver      in.Resolver
	source        in.CandidateSource
	ledger        out.ResponseLedger
	globalLimiter out.RateLimiter
	ipLimiter     out.RateLimiter
	events        EventLog
	log           zerowrap.Logger

	background sync.WaitGroup
}

// NewHandler creates a new API handler.
func NewHandler(
	session in.SessionBinding,
	resolver in.Resolver,
	source in.CandidateSource,
	ledger out.ResponseLedger,
	log zerowrap.Logger,
	opts ...Option,
) *Handler {
	h := &Handler{
		session:  session,
		resolver: resolver,
		source:   source,
		ledger:   ledger,
		log:      log,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// RegisterRoutes registers the API routes on e.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.Use(h.ServerOverride)

	e.GET("/healthz", h.healthz)
	e.GET("/assets/*", h.asset)

	g := e.Group("/api")
	g.GET("/selection", h.selection)
	g.POST("/resolve", h.resolve, RateLimit(h.globalLimiter, h.ipLimiter))
	g.POST("/revalidate", h.revalidate)
	g.GET("/probes", h.probes)
	g.GET("/candidates", h.candidates)
	if h.events != nil {
		g.GET("/events", h.eventLog)
	}
}

// Wait blocks until background work started by handlers has finished.
func (h *Handler) Wait() {
	h.background.Wait()
}

func (h *Handler) healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) selection(c echo.Context) error {
	snap := h.session.Snapshot()
	if snap.Selection == nil {
		return c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: domain.ErrNoSelection.Error()})
	}
	return c.JSON(http.StatusOK, dto.FromSnapshot(snap))
}

func (h *Handler) resolve(c echo.Context) error {
	ctx := c.Request().Context()
	log := zerowrap.FromCtx(ctx)

	strategy, err := domain.ParseStrategy(c.QueryParam("strategy"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	}

	cand, err := h.resolver.Resolve(ctx, strategy)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrResolutionExhausted), errors.Is(err, domain.ErrDiscoveryFailure):
			return c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: domain.ErrNoSelection.Error()})
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: "resolution did not complete"})
		default:
			log.Error().Err(err).Msg("resolution round failed")
			return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal error"})
		}
	}

	if _, bound := h.session.Current(); bound {
		h.session.Offer(ctx, *cand)
	} else {
		h.session.Rebind(ctx, *cand)
	}

	resp := dto.FromCandidate(*cand)
	return c.JSON(http.StatusOK, dto.ResolveResponse{Strategy: string(strategy), Candidate: &resp})
}

func (h *Handler) revalidate(c echo.Context) error {
	ctx := context.WithoutCancel(c.Request().Context())
	log := zerowrap.FromCtx(ctx)

	h.background.Add(1)
	go func() {
		defer h.background.Done()
		if err := h.session.Revalidate(ctx); err != nil {
			log.Debug().Err(err).Msg("on-demand revalidation failed")
		}
	}()

	return c.JSON(http.StatusAccepted, map[string]string{"status": "revalidating"})
}

func (h *Handler) probes(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.ProbesResponse{Probes: dto.FromProbeResults(h.ledger.All())})
}

func (h *Handler) candidates(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.CandidatesResponse{Candidates: dto.FromCandidates(h.source.Last())})
}

func (h *Handler) eventLog(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.EventsResponse{Events: dto.FromEvents(h.events.Entries())})
}

// asset redirects to the asset on the bound delivery host. The first request
// waits for the initial round.
func (h *Handler) asset(c echo.Context) error {
	ctx := c.Request().Context()
	log := zerowrap.FromCtx(ctx)

	if err := h.session.EnsureInitialized(ctx); err != nil {
		log.Debug().Err(err).Msg("session not initialized")
	}

	sel, ok := h.session.Current()
	if !ok {
		return c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: domain.ErrNoSelection.Error()})
	}

	assetPath := c.Param("*")
	if assetPath == "" || strings.Contains(assetPath, "..") {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid asset path"})
	}

	return c.Redirect(http.StatusFound, sel.Candidate.AssetURL(assetPath))
}

// ServerOverride force-binds the host named by ?server= and redirects to the
// same URL without the parameter.
func (h *Handler) ServerOverride(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		hostname := strings.TrimSpace(c.QueryParam(overrideParam))
		if hostname == "" {
			return next(c)
		}

		req := c.Request()
		log := zerowrap.FromCtx(req.Context())

		if _, err := h.session.Override(req.Context(), hostname); err != nil {
			if errors.Is(err, domain.ErrUnknownCandidate) {
				return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			}
			log.Error().Err(err).Str(zerowrap.FieldHost, hostname).Msg("server override failed")
			return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal error"})
		}

		u := *req.URL
		q := u.Query()
		q.Del(overrideParam)
		u.RawQuery = q.Encode()
		return c.Redirect(http.StatusFound, u.RequestURI())
	}
}
