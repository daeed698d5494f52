package in

import (
	"context"

	"github.com/bnema/edgeselect/internal/domain"
)

// Resolver defines the contract for choosing a delivery host.
type Resolver interface {
	// Resolve runs (or joins) a resolution round using the given strategy.
	// Returns domain.ErrDiscoveryFailure or domain.ErrResolutionExhausted
	// when no candidate can be chosen.
	Resolve(ctx context.Context, strategy domain.Strategy) (*domain.Candidate, error)
}

// SelectionTarget is the part of the session binding the resolver talks to
// for optimistic reuse and background refresh.
type SelectionTarget interface {
	Current() (domain.Selection, bool)
	Offer(ctx context.Context, candidate domain.Candidate)
}
