package out

import (
	"context"
	"time"

	"github.com/bnema/edgeselect/internal/domain"
)

// Metrics records resolution telemetry.
type Metrics interface {
	RecordProbe(ctx context.Context, result domain.ProbeResult)
	RecordRound(ctx context.Context, strategy domain.Strategy, outcome string, elapsed time.Duration)
	RecordSelectionChange(ctx context.Context, reason domain.ChangeReason)
}

// NopMetrics discards every measurement.
type NopMetrics struct{}

func (NopMetrics) RecordProbe(context.Context, domain.ProbeResult) {}

func (NopMetrics) RecordRound(context.Context, domain.Strategy, string, time.Duration) {}

func (NopMetrics) RecordSelectionChange(context.Context, domain.ChangeReason) {}
