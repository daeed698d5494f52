// Package telemetry exports probe and resolution metrics over OTLP/HTTP.
package telemetry

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// Config selects the OTLP collector. Telemetry stays off unless Enabled and
// Endpoint are both set.
type Config struct {
	Enabled   bool          `mapstructure:"enabled"`
	Endpoint  string        `mapstructure:"endpoint"`   // e.g. "http://localhost:4318"
	AuthToken string        `mapstructure:"auth_token"` // base64 user:pass, sent as Basic auth
	Interval  time.Duration `mapstructure:"interval"`
}

// Provider owns the global meter provider installed by NewProvider.
type Provider struct {
	MeterProvider *sdkmetric.MeterProvider
}

// Shutdown flushes pending measurements. Safe on a disabled provider.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p == nil || p.MeterProvider == nil {
		return nil
	}
	return p.MeterProvider.Shutdown(ctx)
}

// NewProvider installs a periodic OTLP/HTTP meter provider as the otel
// global. Metrics created afterwards with NewMetrics export through it.
func NewProvider(ctx context.Context, cfg Config, serviceName, version string) (*Provider, error) {
	if !cfg.Enabled || cfg.Endpoint == "" {
		return &Provider{}, nil
	}

	opts, err := exporterOptions(cfg)
	if err != nil {
		return nil, err
	}

	exp, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create metric exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(version),
		),
		resource.WithHost(),
	)
	if err != nil {
		return nil, fmt.Errorf("create resource: %w", err)
	}

	var readerOpts []sdkmetric.PeriodicReaderOption
	if cfg.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(cfg.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp, readerOpts...)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(mp)

	return &Provider{MeterProvider: mp}, nil
}

// exporterOptions maps the endpoint URL onto exporter options. An http
// scheme disables TLS; a path becomes the prefix of /v1/metrics.
func exporterOptions(cfg Config) ([]otlpmetrichttp.Option, error) {
	u, err := url.Parse(cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse telemetry endpoint: %w", err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse telemetry endpoint: missing host in %q", cfg.Endpoint)
	}

	opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(u.Host)}
	if base := strings.TrimSuffix(u.Path, "/"); base != "" {
		opts = append(opts, otlpmetrichttp.WithURLPath(base+"/v1/metrics"))
	}
	if u.Scheme == "http" {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}
	if cfg.AuthToken != "" {
		opts = append(opts, otlpmetrichttp.WithHeaders(map[string]string{
			"Authorization": "Basic " + cfg.AuthToken,
		}))
	}

	return opts, nil
}
