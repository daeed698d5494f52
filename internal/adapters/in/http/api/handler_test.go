package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bnema/zerowrap"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/edgeselect/internal/adapters/dto"
	"github.com/bnema/edgeselect/internal/adapters/out/ledger"
	inmocks "github.com/bnema/edgeselect/internal/boundaries/in/mocks"
	outmocks "github.com/bnema/edgeselect/internal/boundaries/out/mocks"
	"github.com/bnema/edgeselect/internal/domain"
)

type fixture struct {
	e        *echo.Echo
	handler  *Handler
	session  *inmocks.MockSessionBinding
	resolver *inmocks.MockResolver
	source   *inmocks.MockCandidateSource
	ledger   *ledger.Memory
}

func newFixture(t *testing.T, opts ...Option) *fixture {
	f := &fixture{
		session:  inmocks.NewMockSessionBinding(t),
		resolver: inmocks.NewMockResolver(t),
		source:   inmocks.NewMockCandidateSource(t),
		ledger:   ledger.NewMemory(),
	}

	log := zerowrap.Default()
	f.handler = NewHandler(f.session, f.resolver, f.source, f.ledger, log, opts...)
	f.e = New(log)
	f.handler.RegisterRoutes(f.e)
	return f
}

func (f *fixture) do(method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)
	return rec
}

var charlie = domain.Candidate{
	Name:       "Charlie",
	Hostname:   "charlie.example",
	PathPrefix: "cdn/",
	Priority:   1,
	Protocol:   domain.ProtocolHTTPS,
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error
}

func TestHandler_Healthz(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/healthz")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_Selection(t *testing.T) {
	t.Run("unset", func(t *testing.T) {
		f := newFixture(t)
		f.session.EXPECT().Snapshot().Return(domain.SessionSnapshot{State: domain.BindingIdle})

		rec := f.do(http.MethodGet, "/api/selection")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "no delivery host available", decodeError(t, rec))
	})

	t.Run("bound", func(t *testing.T) {
		f := newFixture(t)
		boundAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
		f.session.EXPECT().Snapshot().Return(domain.SessionSnapshot{
			State:     domain.BindingBound,
			Selection: &domain.Selection{Candidate: charlie, BoundAt: boundAt},
		})

		rec := f.do(http.MethodGet, "/api/selection")

		require.Equal(t, http.StatusOK, rec.Code)
		var body dto.SelectionResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "bound", body.State)
		require.NotNil(t, body.Candidate)
		assert.Equal(t, "charlie.example", body.Candidate.Hostname)
		assert.Equal(t, "https://charlie.example/cdn/", body.AssetBase)
		assert.True(t, boundAt.Equal(*body.BoundAt))
	})
}

func TestHandler_Resolve(t *testing.T) {
	t.Run("invalid strategy", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPost, "/api/resolve?strategy=random")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("binds unbound session", func(t *testing.T) {
		f := newFixture(t)
		f.resolver.EXPECT().Resolve(mock.Anything, domain.StrategySmartWait).Return(&charlie, nil)
		f.session.EXPECT().Current().Return(domain.Selection{}, false)
		f.session.EXPECT().Rebind(mock.Anything, charlie).Return().Once()

		rec := f.do(http.MethodPost, "/api/resolve?strategy=smart-wait")

		require.Equal(t, http.StatusOK, rec.Code)
		var body dto.ResolveResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "smart-wait", body.Strategy)
		assert.Equal(t, "charlie.example", body.Candidate.Hostname)
	})

	t.Run("offers to bound session", func(t *testing.T) {
		f := newFixture(t)
		f.resolver.EXPECT().Resolve(mock.Anything, domain.DefaultStrategy).Return(&charlie, nil)
		f.session.EXPECT().Current().Return(domain.Selection{Candidate: charlie}, true)
		f.session.EXPECT().Offer(mock.Anything, charlie).Return().Once()

		rec := f.do(http.MethodPost, "/api/resolve")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("exhausted", func(t *testing.T) {
		f := newFixture(t)
		f.resolver.EXPECT().Resolve(mock.Anything, mock.Anything).Return(nil, domain.ErrResolutionExhausted)

		rec := f.do(http.MethodPost, "/api/resolve")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "no delivery host available", decodeError(t, rec))
	})

	t.Run("unexpected error", func(t *testing.T) {
		f := newFixture(t)
		f.resolver.EXPECT().Resolve(mock.Anything, mock.Anything).Return(nil, errors.New("boom"))

		rec := f.do(http.MethodPost, "/api/resolve")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestHandler_Resolve_RateLimited(t *testing.T) {
	global := outmocks.NewMockRateLimiter(t)
	perIP := outmocks.NewMockRateLimiter(t)
	f := newFixture(t, WithRateLimit(global, perIP))
	global.EXPECT().Allow(mock.Anything, "global").Return(true)
	perIP.EXPECT().Allow(mock.Anything, "ip:192.0.2.1").Return(false)

	rec := f.do(http.MethodPost, "/api/resolve")

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
}

func TestHandler_Revalidate(t *testing.T) {
	f := newFixture(t)
	f.session.EXPECT().Revalidate(mock.Anything).Return(domain.ErrResolutionExhausted).Once()

	rec := f.do(http.MethodPost, "/api/revalidate")
	f.handler.Wait()

	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestHandler_Probes(t *testing.T) {
	f := newFixture(t)
	f.ledger.Record(domain.ProbeResult{Hostname: "b.example", Reason: domain.ReasonBadStatus, Stage: domain.StageFetch})
	f.ledger.Record(domain.ProbeResult{Hostname: "a.example", Success: true, Reason: domain.ReasonSuccess, Latency: 42 * time.Millisecond})

	rec := f.do(http.MethodGet, "/api/probes")

	require.Equal(t, http.StatusOK, rec.Code)
	var body dto.ProbesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Probes, 2)
	assert.Equal(t, "a.example", body.Probes[0].Hostname)
	assert.Equal(t, int64(42), body.Probes[0].LatencyMs)
	assert.Equal(t, "bad status", body.Probes[1].Reason)
}

func TestHandler_Candidates(t *testing.T) {
	f := newFixture(t)
	f.source.EXPECT().Last().Return([]domain.Candidate{charlie})

	rec := f.do(http.MethodGet, "/api/candidates")

	require.Equal(t, http.StatusOK, rec.Code)
	var body dto.CandidatesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Candidates, 1)
	assert.Equal(t, "cdn/", body.Candidates[0].PathPrefix)
}

func TestHandler_Asset(t *testing.T) {
	t.Run("redirects to bound host", func(t *testing.T) {
		f := newFixture(t)
		f.session.EXPECT().EnsureInitialized(mock.Anything).Return(nil)
		f.session.EXPECT().Current().Return(domain.Selection{Candidate: charlie}, true)

		rec := f.do(http.MethodGet, "/assets/games/tetris/index.html")

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "https://charlie.example/cdn/games/tetris/index.html", rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("no host available", func(t *testing.T) {
		f := newFixture(t)
		f.session.EXPECT().EnsureInitialized(mock.Anything).Return(domain.ErrResolutionExhausted)
		f.session.EXPECT().Current().Return(domain.Selection{}, false)

		rec := f.do(http.MethodGet, "/assets/games/tetris/index.html")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Empty(t, rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("rejects traversal", func(t *testing.T) {
		f := newFixture(t)
		f.session.EXPECT().EnsureInitialized(mock.Anything).Return(nil)
		f.session.EXPECT().Current().Return(domain.Selection{Candidate: charlie}, true)

		rec := f.do(http.MethodGet, "/assets/a/..%2f..%2fetc")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_ServerOverride(t *testing.T) {
	t.Run("binds and strips parameter", func(t *testing.T) {
		f := newFixture(t)
		f.session.EXPECT().Override(mock.Anything, "charlie.example").
			Return(domain.Selection{Candidate: charlie}, nil).Once()

		rec := f.do(http.MethodGet, "/play/tetris?server=charlie.example&lang=en")

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/play/tetris?lang=en", rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("unknown host", func(t *testing.T) {
		f := newFixture(t)
		f.session.EXPECT().Override(mock.Anything, "evil.example").
			Return(domain.Selection{}, domain.ErrUnknownCandidate).Once()

		rec := f.do(http.MethodGet, "/api/selection?server=evil.example")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

type staticEventLog []domain.Event

func (l staticEventLog) Entries() []domain.Event { return l }

func TestHandler_Events(t *testing.T) {
	t.Run("not registered without a log", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodGet, "/api/events")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("lists events", func(t *testing.T) {
		log := staticEventLog{{
			ID:       "evt-1",
			Type:     domain.EventSelectionBound,
			Hostname: "charlie.example",
			Data:     domain.SelectionChangedPayload{Current: &charlie, Reason: domain.ChangeInitial},
		}}
		f := newFixture(t, WithEventLog(log))

		rec := f.do(http.MethodGet, "/api/events")

		require.Equal(t, http.StatusOK, rec.Code)
		var body dto.EventsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Len(t, body.Events, 1)
		assert.Equal(t, "selection.bound", body.Events[0].Type)
		assert.Equal(t, "initial", body.Events[0].Reason)
	})
}
