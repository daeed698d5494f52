package discovery

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/zerowrap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/edgeselect/internal/boundaries/out"
	"github.com/bnema/edgeselect/internal/boundaries/out/mocks"
	"github.com/bnema/edgeselect/internal/domain"
)

const (
	manifestURL = "https://origin.example/servers.txt"
	proxyURL    = "http://proxy.example/servers.txt"
)

func testCtx() context.Context {
	return zerowrap.WithCtx(context.Background(), zerowrap.Default())
}

func TestService_Discover_SameOrigin(t *testing.T) {
	fetcher := mocks.NewMockHTTPFetcher(t)
	fetcher.EXPECT().Fetch(mock.Anything, manifestURL).
		Return(&out.FetchResult{StatusCode: 200, Body: []byte("a.example,Alpha,games/\nb.example,Bravo,\n")}, nil)

	svc := NewService(fetcher, Config{ManifestURL: manifestURL})

	got, err := svc.Discover(testCtx())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].Priority)
	assert.Equal(t, 2, got[1].Priority)
	assert.Equal(t, got, svc.Last())
}

func TestService_Discover_MergesProxy(t *testing.T) {
	fetcher := mocks.NewMockHTTPFetcher(t)
	fetcher.EXPECT().Fetch(mock.Anything, manifestURL).
		Return(&out.FetchResult{StatusCode: 200, Body: []byte("a.example,Alpha,games/\nshared.example,Shared,games/\n")}, nil)
	fetcher.EXPECT().Fetch(mock.Anything, proxyURL).
		Return(&out.FetchResult{StatusCode: 200, Body: []byte("SERVER shared.example Dupe games/\nSERVER p.example Proxy games/ 5\n")}, nil)

	svc := NewService(fetcher, Config{ManifestURL: manifestURL, ProxyManifestURL: proxyURL})

	got, err := svc.Discover(testCtx())
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Shared", got[1].Name)
	assert.Equal(t, domain.SourceManifest, got[1].Source)
	assert.Equal(t, "p.example", got[2].Hostname)
	assert.Equal(t, 5, got[2].Priority)
	assert.Equal(t, domain.ProtocolHTTP, got[2].Protocol)
}

func TestService_Discover_ProxyOnlyWhenSameOriginFails(t *testing.T) {
	fetcher := mocks.NewMockHTTPFetcher(t)
	fetcher.EXPECT().Fetch(mock.Anything, manifestURL).Return(nil, errors.New("connection refused"))
	fetcher.EXPECT().Fetch(mock.Anything, proxyURL).
		Return(&out.FetchResult{StatusCode: 200, Body: []byte("SERVER p.example Proxy games/\n")}, nil)

	svc := NewService(fetcher, Config{ManifestURL: manifestURL, ProxyManifestURL: proxyURL})

	got, err := svc.Discover(testCtx())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "p.example", got[0].Hostname)
}

func TestService_Discover_FallbackToStatic(t *testing.T) {
	tests := []struct {
		name string
		res  *out.FetchResult
		err  error
	}{
		{name: "network error", err: errors.New("dial tcp: refused")},
		{name: "bad status", res: &out.FetchResult{StatusCode: 404}},
		{name: "empty body", res: &out.FetchResult{StatusCode: 200, Body: []byte("# nothing\n")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fetcher := mocks.NewMockHTTPFetcher(t)
			fetcher.EXPECT().Fetch(mock.Anything, manifestURL).Return(tt.res, tt.err)

			svc := NewService(fetcher, Config{ManifestURL: manifestURL})

			got, err := svc.Discover(testCtx())
			require.NoError(t, err)
			assert.Equal(t, domain.StaticCandidates(), got)
		})
	}
}

func TestService_Discover_ConfiguredStatic(t *testing.T) {
	fetcher := mocks.NewMockHTTPFetcher(t)

	svc := NewService(fetcher, Config{Static: []domain.Candidate{
		{Name: "Only", Hostname: "only.example", PathPrefix: "g", Priority: 2},
		{Name: "Broken", Hostname: ""},
	}})

	got, err := svc.Discover(testCtx())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "only.example", got[0].Hostname)
	assert.Equal(t, "g/", got[0].PathPrefix)
	assert.Equal(t, domain.ProtocolHTTPS, got[0].Protocol)
	assert.Equal(t, domain.SourceStatic, got[0].Source)
}

func TestService_Discover_NothingAvailable(t *testing.T) {
	fetcher := mocks.NewMockHTTPFetcher(t)
	fetcher.EXPECT().Fetch(mock.Anything, manifestURL).Return(&out.FetchResult{StatusCode: 500}, nil)

	svc := NewService(fetcher, Config{ManifestURL: manifestURL})
	svc.static = nil

	_, err := svc.Discover(testCtx())
	assert.ErrorIs(t, err, domain.ErrDiscoveryFailure)
}

func TestService_Last_BeforeDiscovery(t *testing.T) {
	svc := NewService(mocks.NewMockHTTPFetcher(t), Config{})

	assert.Equal(t, domain.StaticCandidates(), svc.Last())
}
