package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/bnema/edgeselect/internal/domain"
)

func TestExporterOptions(t *testing.T) {
	opts, err := exporterOptions(Config{Endpoint: "http://collector:4318/otlp/", AuthToken: "dXNlcjpwYXNz"})
	require.NoError(t, err)
	// endpoint, url path, insecure, headers
	assert.Len(t, opts, 4)

	opts, err = exporterOptions(Config{Endpoint: "https://otel.example.com"})
	require.NoError(t, err)
	assert.Len(t, opts, 1)

	_, err = exporterOptions(Config{Endpoint: "collector"})
	assert.Error(t, err)
}

func TestNewProvider_Disabled(t *testing.T) {
	p, err := NewProvider(context.Background(), Config{Endpoint: "http://collector:4318"}, "edgeselect", "test")
	require.NoError(t, err)
	assert.Nil(t, p.MeterProvider)
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestMetrics_Record(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	otel.SetMeterProvider(mp)
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	m, err := NewMetrics()
	require.NoError(t, err)

	ctx := context.Background()
	m.RecordProbe(ctx, domain.ProbeResult{Hostname: "a.example", Success: true, Reason: domain.ReasonSuccess, Elapsed: 40 * time.Millisecond})
	m.RecordProbe(ctx, domain.ProbeResult{Hostname: "b.example", Reason: domain.ReasonTimeout, Elapsed: 3 * time.Second})
	m.RecordRound(ctx, domain.StrategyPriorityOptimal, "selected", 120*time.Millisecond)
	m.RecordSelectionChange(ctx, domain.ChangeInitial)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))

	sums := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, md := range sm.Metrics {
			if s, ok := md.Data.(metricdata.Sum[int64]); ok {
				for _, dp := range s.DataPoints {
					sums[md.Name] += dp.Value
				}
			}
		}
	}

	assert.Equal(t, int64(2), sums["edgeselect.probe.total"])
	assert.Equal(t, int64(1), sums["edgeselect.round.total"])
	assert.Equal(t, int64(1), sums["edgeselect.selection.changes"])
}
