package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/bnema/edgeselect/internal/boundaries/out"
	"github.com/bnema/edgeselect/internal/domain"
)

var _ out.Metrics = (*Metrics)(nil)

// Metrics holds edgeselect OTel metric instruments.
type Metrics struct {
	// Probes
	ProbeTotal   metric.Int64Counter
	ProbeLatency metric.Float64Histogram

	// Resolution rounds
	RoundTotal    metric.Int64Counter
	RoundDuration metric.Float64Histogram

	// Selection
	SelectionChanges metric.Int64Counter

	// Events
	EventsProcessed metric.Int64Counter
	EventsDropped   metric.Int64Counter
}

// NewMetrics creates and registers all metric instruments.
// OTel hands out noop instruments when no MeterProvider is installed, so the
// returned Metrics is always usable.
func NewMetrics() (*Metrics, error) {
	meter := otel.Meter("edgeselect")
	m := &Metrics{}
	var err error

	if m.ProbeTotal, err = meter.Int64Counter("edgeselect.probe.total",
		metric.WithDescription("Total probes by outcome reason")); err != nil {
		return nil, err
	}
	if m.ProbeLatency, err = meter.Float64Histogram("edgeselect.probe.latency_ms",
		metric.WithDescription("Probe wall-clock duration in milliseconds"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(25, 50, 100, 250, 500, 1000, 2000, 3000, 5000)); err != nil {
		return nil, err
	}
	if m.RoundTotal, err = meter.Int64Counter("edgeselect.round.total",
		metric.WithDescription("Total resolution rounds by strategy and outcome")); err != nil {
		return nil, err
	}
	if m.RoundDuration, err = meter.Float64Histogram("edgeselect.round.duration_ms",
		metric.WithDescription("Time until a resolution round returned"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(50, 100, 250, 500, 1000, 3000, 5000, 15000)); err != nil {
		return nil, err
	}
	if m.SelectionChanges, err = meter.Int64Counter("edgeselect.selection.changes",
		metric.WithDescription("Total selection changes by reason")); err != nil {
		return nil, err
	}
	if m.EventsProcessed, err = meter.Int64Counter("edgeselect.events.processed",
		metric.WithDescription("Total events processed")); err != nil {
		return nil, err
	}
	if m.EventsDropped, err = meter.Int64Counter("edgeselect.events.dropped",
		metric.WithDescription("Total events dropped")); err != nil {
		return nil, err
	}

	return m, nil
}

// RecordProbe counts a probe outcome and its duration.
func (m *Metrics) RecordProbe(ctx context.Context, result domain.ProbeResult) {
	attrs := metric.WithAttributes(
		attribute.String("hostname", result.Hostname),
		attribute.String("reason", string(result.Reason)),
		attribute.Bool("success", result.Success),
	)
	m.ProbeTotal.Add(ctx, 1, attrs)
	m.ProbeLatency.Record(ctx, millis(result.Elapsed), attrs)
}

// RecordRound counts a resolution round.
func (m *Metrics) RecordRound(ctx context.Context, strategy domain.Strategy, outcome string, elapsed time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("strategy", string(strategy)),
		attribute.String("outcome", outcome),
	)
	m.RoundTotal.Add(ctx, 1, attrs)
	m.RoundDuration.Record(ctx, millis(elapsed), attrs)
}

// RecordSelectionChange counts a selection change.
func (m *Metrics) RecordSelectionChange(ctx context.Context, reason domain.ChangeReason) {
	m.SelectionChanges.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", string(reason))))
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
