// Package in defines input ports (interfaces) for use cases.
// These interfaces define the contract between driving adapters (HTTP, CLI)
// and the business logic (use cases).
package in

import (
	"context"

	"github.com/bnema/edgeselect/internal/domain"
)

// CandidateSource defines the contract for discovering delivery candidates.
type CandidateSource interface {
	// Discover fetches the candidate list for a new round.
	// The returned order is discovery order, not priority order.
	Discover(ctx context.Context) ([]domain.Candidate, error)

	// Last returns the candidates of the most recent successful discovery.
	Last() []domain.Candidate
}
