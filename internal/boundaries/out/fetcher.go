// Package out defines output ports (interfaces) for driven adapters.
package out

import (
	"context"
	"time"
)

// FetchResult is the outcome of a completed HTTP GET.
type FetchResult struct {
	StatusCode int
	Body       []byte
	Elapsed    time.Duration
}

// HTTPFetcher defines the contract for plain-text HTTP GETs.
type HTTPFetcher interface {
	// Fetch issues a GET to url. Transport failures are returned as errors;
	// timeouts wrap domain.ErrFetchTimeout. Any HTTP status is a result.
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}
