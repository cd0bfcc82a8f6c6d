package medical

import "context"

// Fetcher retrieves raw article markup from URLs.
type Fetcher interface {
	// Fetch issues a single request for url and returns the page body.
	// Transport failures and non-2xx responses return an EFETCH error.
	// The context controls cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}

// HostLimiter rate-limits outbound requests per host.
type HostLimiter interface {
	// Wait blocks until a request to host is allowed or ctx is done.
	Wait(ctx context.Context, host string) error
}

// RobotsPolicy decides whether a URL may be crawled.
type RobotsPolicy interface {
	// Allowed reports whether url may be fetched by this client.
	Allowed(ctx context.Context, url string) (bool, error)
}
