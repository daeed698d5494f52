package domain

import "errors"

// Domain errors represent resolution-level failures shared across layers.
var (
	// Discovery errors
	ErrDiscoveryFailure = errors.New("no candidates discovered")
	ErrInvalidCandidate = errors.New("invalid candidate")
	ErrUnknownCandidate = errors.New("unknown candidate")

	// Resolution errors
	ErrResolutionExhausted = errors.New("every candidate failed its probe")
	ErrInvalidStrategy     = errors.New("invalid resolution strategy")
	ErrNoSelection         = errors.New("no delivery host available")

	// Transport errors
	ErrFetchTimeout     = errors.New("fetch timed out")
	ErrEmbedUnavailable = errors.New("embed agent unavailable")
	ErrRelayClosed      = errors.New("embed relay closed")
)
