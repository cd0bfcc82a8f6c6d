package mock

import (
	"context"

	"github.com/ghulammustafashad/medical"
)

var _ medical.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of medical.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}

var _ medical.HostLimiter = (*HostLimiter)(nil)

// HostLimiter is a mock implementation of medical.HostLimiter.
type HostLimiter struct {
	WaitFn func(ctx context.Context, host string) error
}

func (l *HostLimiter) Wait(ctx context.Context, host string) error {
	return l.WaitFn(ctx, host)
}

var _ medical.RobotsPolicy = (*RobotsPolicy)(nil)

// RobotsPolicy is a mock implementation of medical.RobotsPolicy.
type RobotsPolicy struct {
	AllowedFn func(ctx context.Context, url string) (bool, error)
}

func (p *RobotsPolicy) Allowed(ctx context.Context, url string) (bool, error) {
	return p.AllowedFn(ctx, url)
}
