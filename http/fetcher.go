// Package http provides an HTTP-based implementation of acedocs.Fetcher
// for downloading documentation archives.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/Bluscream/acedocs"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
// Archives are several megabytes, so it is generous.
const DefaultFetchTimeout = 2 * time.Minute

// DefaultMaxBodySize caps the number of bytes read from a response.
const DefaultMaxBodySize = 64 << 20

// Ensure Fetcher implements acedocs.Fetcher at compile time.
var _ acedocs.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves archives from URLs using HTTP requests.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	maxBody   int64
	userAgent string
	limiter   *hostLimiter
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithMaxBodySize caps the response size. Larger bodies fail the fetch.
func WithMaxBodySize(n int64) Option {
	return func(f *Fetcher) {
		f.maxBody = n
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithRateLimit allows at most rps requests per second to each host.
func WithRateLimit(rps float64) Option {
	return func(f *Fetcher) {
		f.limiter = newHostLimiter(rps)
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
		maxBody: DefaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the body served at url.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, acedocs.Errorf(acedocs.EINVALID, "invalid url %q: %v", url, err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}
	if f.limiter != nil {
		if err := f.limiter.Wait(ctx, req.URL.Host); err != nil {
			return nil, err
		}
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, acedocs.Errorf(acedocs.ENOTFOUND, "HTTP %d for %s", resp.StatusCode, url)
	case resp.StatusCode != http.StatusOK:
		return nil, acedocs.Errorf(acedocs.EINTERNAL, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBody+1))
	if err != nil {
		return nil, err
	}
	if int64(len(body)) > f.maxBody {
		return nil, acedocs.Errorf(acedocs.EINVALID, "response from %s exceeds %d bytes", url, f.maxBody)
	}

	return body, nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
