package harvest

import (
	"context"
	"time"

	"github.com/ghulammustafashad/medical"
)

var _ medical.Fetcher = (*RetryFetcher)(nil)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// RetryFetcher retries failed fetches with a fixed backoff schedule. One
// retry is made per delay. Invalid URLs and context errors are returned
// immediately.
type RetryFetcher struct {
	next   medical.Fetcher
	delays []time.Duration

	// OnRetry, if set, is called before each retry with the attempt
	// number (starting at 2) and the error that triggered it.
	OnRetry func(url string, attempt int, err error)
}

// NewRetryFetcher wraps next with retries after each of delays.
func NewRetryFetcher(next medical.Fetcher, delays []time.Duration) *RetryFetcher {
	return &RetryFetcher{next: next, delays: delays}
}

// Fetch calls the wrapped fetcher until it succeeds or the delays are
// exhausted, returning the last error.
func (f *RetryFetcher) Fetch(ctx context.Context, url string) (string, error) {
	maxAttempts := len(f.delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		html, err := f.next.Fetch(ctx, url)
		if err == nil {
			return html, nil
		}
		lastErr = err

		if ctx.Err() != nil || medical.ErrorCode(err) == medical.EINVALID {
			return "", err
		}
		if attempt >= maxAttempts-1 {
			break
		}

		if f.OnRetry != nil {
			f.OnRetry(url, attempt+2, err)
		}

		timer := time.NewTimer(f.delays[attempt])
		select {
		case <-ctx.Done():
			timer.Stop()
			return "", ctx.Err()
		case <-timer.C:
		}
	}

	return "", lastErr
}

// Close closes the wrapped fetcher.
func (f *RetryFetcher) Close() error {
	return f.next.Close()
}
