package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/zerowrap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/edgeselect/internal/domain"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "edgeselect.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestInitConfig_Defaults(t *testing.T) {
	_, cfg, err := initConfig(writeConfig(t, ""))
	require.NoError(t, err)

	assert.Equal(t, 8787, cfg.Server.Port)
	assert.Equal(t, "https://ccported.click/servers.txt", cfg.ManifestURL())
	assert.Equal(t, 5*time.Second, cfg.Probe.Timeout)
	assert.Equal(t, 3*time.Second, cfg.Probe.EmbedTimeout)
	assert.Equal(t, 15*time.Second, cfg.Resolver.RoundTimeout)
	assert.Equal(t, 5*time.Minute, cfg.Session.RevalidateInterval)
	assert.Equal(t, 1, cfg.Resolver.SmartWaitMargin)
	assert.True(t, cfg.Embed.Enabled)

	strategy, err := cfg.Strategy()
	require.NoError(t, err)
	assert.Equal(t, domain.StrategyPriorityOptimal, strategy)
}

func TestInitConfig_FileValues(t *testing.T) {
	path := writeConfig(t, `
[server]
port = 9000
origin = "https://games.example/"

[resolver]
strategy = "smart-wait"
round_timeout = "30s"

[session]
revalidate_interval = "1d"

[[discovery.static]]
name = "Alpha"
hostname = "alpha.example"
path = "cdn"
priority = 1
protocol = "https"
`)

	_, cfg, err := initConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "https://games.example/servers.txt", cfg.ManifestURL())
	assert.Equal(t, 30*time.Second, cfg.Resolver.RoundTimeout)
	assert.Equal(t, 24*time.Hour, cfg.Session.RevalidateInterval)

	require.Len(t, cfg.Discovery.Static, 1)
	assert.Equal(t, "alpha.example", cfg.Discovery.Static[0].Hostname)
	assert.Equal(t, "cdn", cfg.Discovery.Static[0].PathPrefix)
	assert.Equal(t, domain.SourceStatic, cfg.Discovery.Static[0].Source)

	strategy, err := cfg.Strategy()
	require.NoError(t, err)
	assert.Equal(t, domain.StrategySmartWait, strategy)
}

func TestInitConfig_EnvOverride(t *testing.T) {
	t.Setenv("EDGESELECT_PROBE_TIMEOUT", "2s")
	t.Setenv("EDGESELECT_RESOLVER_STRATEGY", "first-available")

	_, cfg, err := initConfig(writeConfig(t, ""))
	require.NoError(t, err)

	assert.Equal(t, 2*time.Second, cfg.Probe.Timeout)
	assert.Equal(t, "first-available", cfg.Resolver.Strategy)
}

func TestInitConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "unknown strategy", body: "[resolver]\nstrategy = \"random\"\n"},
		{name: "bad duration", body: "[probe]\ntimeout = \"soon\"\n"},
		{name: "bad port", body: "[server]\nport = 0\n"},
		{name: "bad static candidate", body: "[[discovery.static]]\nhostname = \"a b\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := initConfig(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestNewKernel(t *testing.T) {
	kernel, err := NewKernel(writeConfig(t, "[embed]\nenabled = false\n"))
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, kernel.Close()) })

	assert.Equal(t, domain.StrategyPriorityOptimal, kernel.Strategy())
}

func TestFindOrAdHoc(t *testing.T) {
	known := []domain.Candidate{{Hostname: "a.example", Priority: 2, PathPrefix: "x/"}}

	c, err := findOrAdHoc(known, "A.EXAMPLE")
	require.NoError(t, err)
	assert.Equal(t, "x/", c.PathPrefix)

	c, err = findOrAdHoc(known, "b.example")
	require.NoError(t, err)
	assert.Equal(t, domain.ProtocolHTTPS, c.Protocol)
	assert.Equal(t, 1, c.Priority)

	_, err = findOrAdHoc(known, "bad host")
	assert.ErrorIs(t, err, domain.ErrInvalidCandidate)
}

func TestConfig_OriginProtocol(t *testing.T) {
	tests := []struct {
		origin string
		want   domain.Protocol
	}{
		{origin: "https://games.example", want: domain.ProtocolHTTPS},
		{origin: "http://games.example", want: domain.ProtocolHTTP},
		{origin: "HTTP://games.example", want: domain.ProtocolHTTP},
		{origin: "ftp://games.example", want: domain.ProtocolHTTPS},
		{origin: "", want: domain.ProtocolHTTPS},
	}

	for _, tt := range tests {
		t.Run(tt.origin, func(t *testing.T) {
			var cfg Config
			cfg.Server.Origin = tt.origin
			assert.Equal(t, tt.want, cfg.OriginProtocol())
		})
	}
}

func TestCreateServices_ManifestInheritsOriginScheme(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/servers.txt" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("a.example,Alpha,games/\n"))
	}))
	t.Cleanup(srv.Close)

	_, cfg, err := initConfig(writeConfig(t, "[server]\norigin = \""+srv.URL+"\"\n\n[logging]\nlevel = \"error\"\n"))
	require.NoError(t, err)

	svc, err := createServices(cfg, zerowrap.Default())
	require.NoError(t, err)

	candidates, err := svc.source.Discover(context.Background())
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "a.example", candidates[0].Hostname)
	assert.Equal(t, domain.ProtocolHTTP, candidates[0].Protocol)
	assert.Equal(t, "http://a.example/games/x.js", candidates[0].AssetURL("x.js"))
}
