package app

import (
	"fmt"

	"github.com/bnema/zerowrap"

	"github.com/bnema/edgeselect/internal/adapters/out/embedrelay"
	"github.com/bnema/edgeselect/internal/adapters/out/eventbus"
	"github.com/bnema/edgeselect/internal/adapters/out/httpfetch"
	"github.com/bnema/edgeselect/internal/adapters/out/ledger"
	"github.com/bnema/edgeselect/internal/adapters/out/telemetry"
	"github.com/bnema/edgeselect/internal/domain"
	"github.com/bnema/edgeselect/internal/usecase/discovery"
	"github.com/bnema/edgeselect/internal/usecase/probe"
	"github.com/bnema/edgeselect/internal/usecase/resolver"
	"github.com/bnema/edgeselect/internal/usecase/session"
)

// eventBufferSize is the event bus queue length.
const eventBufferSize = 256

// services holds the wired resolution engine.
type services struct {
	strategy domain.Strategy
	ledger   *ledger.Memory
	relay    *embedrelay.Relay
	bus      *eventbus.InMemory
	metrics  *telemetry.Metrics
	history  *session.History
	source   *discovery.Service
	prober   *probe.Service
	resolver *resolver.Service
	session  *session.Service
}

// createServices wires the engine. The event bus is created but not started.
func createServices(cfg Config, log zerowrap.Logger) (*services, error) {
	strategy, err := cfg.Strategy()
	if err != nil {
		return nil, log.WrapErr(err, "invalid resolver strategy")
	}

	metrics, err := telemetry.NewMetrics()
	if err != nil {
		return nil, log.WrapErr(err, "failed to create metrics")
	}

	svc := &services{
		strategy: strategy,
		ledger:   ledger.NewMemory(),
		relay:    embedrelay.New(log),
		bus:      eventbus.NewInMemory(eventBufferSize, log),
		metrics:  metrics,
		history:  session.NewHistory(cfg.Session.HistorySize),
	}
	svc.bus.SetMetrics(metrics)

	if err := svc.bus.Subscribe(svc.history); err != nil {
		return nil, log.WrapErr(err, "failed to subscribe event history")
	}

	manifestFetcher := httpfetch.New(httpfetch.WithTimeout(cfg.Discovery.Timeout))
	svc.source = discovery.NewService(manifestFetcher, discovery.Config{
		ManifestURL:      cfg.ManifestURL(),
		ProxyManifestURL: cfg.Discovery.ProxyManifestURL,
		Protocol:         cfg.OriginProtocol(),
		Static:           cfg.Discovery.Static,
	})

	probeOpts := []probe.Option{
		probe.WithMetrics(metrics),
		probe.WithEventPublisher(svc.bus),
		probe.WithEmbedDeadline(cfg.Probe.EmbedTimeout),
		probe.WithReuseWindow(cfg.Probe.ReuseWindow),
	}
	if cfg.Embed.Enabled {
		probeOpts = append(probeOpts, probe.WithEmbedder(svc.relay))
	}
	probeFetcher := httpfetch.New(httpfetch.WithTimeout(cfg.Probe.Timeout))
	svc.prober = probe.NewService(probeFetcher, svc.ledger, probeOpts...)

	svc.resolver = resolver.NewService(svc.source, svc.prober, resolver.Config{
		RoundTimeout:    cfg.Resolver.RoundTimeout,
		SmartWaitMargin: cfg.Resolver.SmartWaitMargin,
	})
	svc.resolver.SetMetrics(metrics)

	svc.session = session.NewService(svc.resolver, svc.source, svc.ledger,
		session.WithEventPublisher(svc.bus),
		session.WithMetrics(metrics),
		session.WithStrategy(strategy),
	)
	svc.resolver.SetSelectionTarget(svc.session)

	log.Debug().
		Str(zerowrap.FieldLayer, "app").
		Str("strategy", string(strategy)).
		Str("manifest_url", cfg.ManifestURL()).
		Bool("embed", cfg.Embed.Enabled).
		Msg("resolution engine wired")

	return svc, nil
}

// findOrAdHoc returns the known candidate for hostname, or a bare https
// candidate when discovery does not list it.
func findOrAdHoc(candidates []domain.Candidate, hostname string) (domain.Candidate, error) {
	if c, ok := domain.FindCandidate(candidates, hostname); ok {
		return c, nil
	}
	c := domain.Candidate{
		Name:     hostname,
		Hostname: hostname,
		Priority: domain.NormalizePriority(0),
		Protocol: domain.ProtocolHTTPS,
	}
	if err := c.Validate(); err != nil {
		return domain.Candidate{}, fmt.Errorf("%q: %w", hostname, err)
	}
	return c, nil
}
