// Package httpfetch implements plain-text HTTP GETs for manifests and challenges.
package httpfetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/bnema/edgeselect/internal/boundaries/out"
	"github.com/bnema/edgeselect/internal/domain"
)

// DefaultTimeout is the default timeout for a single request.
const DefaultTimeout = 5 * time.Second

// DefaultMaxBody caps how much of a response body is read.
const DefaultMaxBody int64 = 64 << 10

var _ out.HTTPFetcher = (*Fetcher)(nil)

// Fetcher implements out.HTTPFetcher on top of net/http.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	maxBody   int64
	userAgent string
}

// Option configures the Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = timeout
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(f *Fetcher) {
		f.client = client
	}
}

// WithMaxBody caps the number of body bytes read.
func WithMaxBody(n int64) Option {
	return func(f *Fetcher) {
		f.maxBody = n
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// New creates a new fetcher.
func New(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultTimeout,
		maxBody:   DefaultMaxBody,
		userAgent: "edgeselect/1.0",
	}

	for _, opt := range opts {
		opt(f)
	}

	if f.client == nil {
		f.client = &http.Client{
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConnsPerHost: 2,
				IdleConnTimeout:     30 * time.Second,
			},
		}
	}

	return f
}

// Fetch issues a GET and reads the body. Non-2xx statuses are results, not errors.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*out.FetchResult, error) {
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/plain, */*")
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, classify(ctx, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBody))
	if err != nil {
		return nil, classify(ctx, err)
	}

	return &out.FetchResult{
		StatusCode: resp.StatusCode,
		Body:       body,
		Elapsed:    time.Since(start),
	}, nil
}

// classify maps deadline failures onto domain.ErrFetchTimeout.
func classify(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", domain.ErrFetchTimeout, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %v", domain.ErrFetchTimeout, err)
	}
	return fmt.Errorf("request failed: %w", err)
}
