package in

import (
	"context"

	"github.com/bnema/edgeselect/internal/domain"
)

// SessionBinding defines the contract for the session-wide selection.
type SessionBinding interface {
	SelectionTarget

	// State returns the binding lifecycle state.
	State() domain.BindingState

	// Snapshot returns the state and selection atomically.
	Snapshot() domain.SessionSnapshot

	// EnsureInitialized resolves once per session. Concurrent callers share
	// the in-flight round.
	EnsureInitialized(ctx context.Context) error

	// Rebind replaces the selection unconditionally.
	Rebind(ctx context.Context, candidate domain.Candidate)

	// Revalidate re-probes the bound host and replaces it if it failed.
	Revalidate(ctx context.Context) error

	// Override force-binds a known hostname.
	Override(ctx context.Context, hostname string) (domain.Selection, error)
}
