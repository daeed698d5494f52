package in

import (
	"context"

	"github.com/bnema/edgeselect/internal/domain"
)

// Prober defines the contract for the two-stage reachability challenge.
type Prober interface {
	// Probe challenges a single candidate and records the outcome in the
	// response ledger before returning. Failures are data, never errors.
	Probe(ctx context.Context, candidate domain.Candidate) domain.ProbeResult
}
