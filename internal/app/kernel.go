package app

import (
	"context"
	"errors"

	"github.com/bnema/zerowrap"

	"github.com/bnema/edgeselect/internal/domain"
)

// Kernel provides in-process access to the engine for one-shot CLI commands.
//
// It does not start the HTTP server, the revalidator or the event bus.
type Kernel struct {
	cfg     Config
	log     zerowrap.Logger
	svc     *services
	cleanup func()
}

// NewKernel loads configuration and wires the engine.
func NewKernel(configPath string) (*Kernel, error) {
	_, cfg, err := initConfig(configPath)
	if err != nil {
		return nil, err
	}

	log, cleanup, err := initLogger(cfg)
	if err != nil {
		return nil, err
	}
	if cleanup == nil {
		cleanup = func() {}
	}

	svc, err := createServices(cfg, log)
	if err != nil {
		cleanup()
		return nil, err
	}

	return &Kernel{cfg: cfg, log: log, svc: svc, cleanup: cleanup}, nil
}

// Close releases logger resources.
func (k *Kernel) Close() error {
	if k == nil || k.cleanup == nil {
		return nil
	}
	k.cleanup()
	return nil
}

// Context returns ctx carrying the kernel logger.
func (k *Kernel) Context(ctx context.Context) context.Context {
	return zerowrap.WithCtx(ctx, k.log)
}

// Strategy returns the configured strategy.
func (k *Kernel) Strategy() domain.Strategy { return k.svc.strategy }

// Resolve runs one resolution round.
func (k *Kernel) Resolve(ctx context.Context, strategy domain.Strategy) (*domain.Candidate, error) {
	return k.svc.resolver.Resolve(k.Context(ctx), strategy)
}

// Candidates runs discovery and returns the candidate list.
func (k *Kernel) Candidates(ctx context.Context) ([]domain.Candidate, error) {
	return k.svc.source.Discover(k.Context(ctx))
}

// Probe probes each hostname. Hostnames missing from discovery are probed as
// bare https candidates.
func (k *Kernel) Probe(ctx context.Context, hostnames []string) ([]domain.ProbeResult, error) {
	ctx = k.Context(ctx)

	known, err := k.svc.source.Discover(ctx)
	if err != nil && !errors.Is(err, domain.ErrDiscoveryFailure) {
		return nil, err
	}

	results := make([]domain.ProbeResult, 0, len(hostnames))
	for _, h := range hostnames {
		c, err := findOrAdHoc(known, h)
		if err != nil {
			return nil, err
		}
		results = append(results, k.svc.prober.Probe(ctx, c))
	}
	return results, nil
}
