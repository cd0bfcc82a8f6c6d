// Package http provides the net/http implementation of medical.Fetcher used
// to download article pages.
package http

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/ghulammustafashad/medical"
	"golang.org/x/net/html/charset"
)

// DefaultUserAgent identifies requests as a desktop browser. The article
// host rejects the default Go client identification.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/58.0.3029.110 Safari/537.3"

// Ensure Fetcher implements medical.Fetcher at compile time.
var _ medical.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using plain HTTP GET requests.
// It performs no retries: a failed request is reported once.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
	limiter   medical.HostLimiter
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout bounds each request. Zero, the default, leaves the
// transport defaults in place.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides DefaultUserAgent.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithLimiter makes every request wait on a per-host rate limiter.
func WithLimiter(l medical.HostLimiter) Option {
	return func(f *Fetcher) {
		f.limiter = l
	}
}

// WithClient replaces the underlying http.Client. The timeout option is
// ignored when a client is supplied.
func WithClient(c *http.Client) Option {
	return func(f *Fetcher) {
		f.client = c
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.client == nil {
		f.client = &http.Client{
			Timeout: f.timeout,
		}
	}

	return f
}

// Fetch retrieves the page at rawURL and returns it decoded to UTF-8.
// Any transport error or non-2xx status is returned as an EFETCH error.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", medical.Errorf(medical.EINVALID, "invalid URL %q: %v", rawURL, err)
	}

	if f.limiter != nil {
		if err := f.limiter.Wait(ctx, u.Host); err != nil {
			return "", err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", medical.Errorf(medical.EINVALID, "invalid request for %s: %v", rawURL, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", medical.Errorf(medical.EFETCH, "GET %s: %v", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", medical.Errorf(medical.EFETCH, "HTTP %d for %s", resp.StatusCode, rawURL)
	}

	body, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return "", medical.Errorf(medical.EFETCH, "decode %s: %v", rawURL, err)
	}
	b, err := io.ReadAll(body)
	if err != nil {
		return "", medical.Errorf(medical.EFETCH, "read %s: %v", rawURL, err)
	}

	return string(b), nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
