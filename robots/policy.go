// Package robots implements medical.RobotsPolicy using robots.txt files
// parsed by github.com/temoto/robotstxt.
package robots

import (
	"context"
	"net/url"
	"sync"

	"github.com/ghulammustafashad/medical"
	"github.com/temoto/robotstxt"
)

// Ensure Policy implements medical.RobotsPolicy at compile time.
var _ medical.RobotsPolicy = (*Policy)(nil)

// Policy fetches and caches robots.txt per host. A robots.txt that cannot
// be fetched or parsed allows every path on that host.
type Policy struct {
	fetcher medical.Fetcher
	agent   string

	mu    sync.Mutex
	hosts map[string]*robotstxt.RobotsData
}

// NewPolicy creates a Policy fetching robots.txt through fetcher and
// matching rules for agent.
func NewPolicy(fetcher medical.Fetcher, agent string) *Policy {
	return &Policy{
		fetcher: fetcher,
		agent:   agent,
		hosts:   make(map[string]*robotstxt.RobotsData),
	}
}

// Allowed reports whether rawURL may be fetched.
func (p *Policy) Allowed(ctx context.Context, rawURL string) (bool, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false, medical.Errorf(medical.EINVALID, "invalid URL %q: %v", rawURL, err)
	}

	data := p.rules(ctx, u)
	if data == nil {
		return true, nil
	}

	path := u.EscapedPath()
	if path == "" {
		path = "/"
	}
	return data.TestAgent(path, p.agent), nil
}

// rules returns the cached robots data for u's host, fetching it on first
// use. A nil result means no restrictions.
func (p *Policy) rules(ctx context.Context, u *url.URL) *robotstxt.RobotsData {
	key := u.Scheme + "://" + u.Host

	p.mu.Lock()
	data, ok := p.hosts[key]
	p.mu.Unlock()
	if ok {
		return data
	}

	body, err := p.fetcher.Fetch(ctx, key+"/robots.txt")
	if err == nil {
		data, err = robotstxt.FromString(body)
	}
	if err != nil {
		data = nil
	}

	p.mu.Lock()
	p.hosts[key] = data
	p.mu.Unlock()

	return data
}
