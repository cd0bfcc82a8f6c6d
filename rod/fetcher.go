// Package rod implements medical.Fetcher with a headless Chrome browser
// driven by go-rod, for article pages that only render their content
// with JavaScript.
package rod

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ghulammustafashad/medical"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultMaxPages is the default number of pages before browser recycling.
const DefaultMaxPages = 75

// Ensure Fetcher implements medical.Fetcher at compile time.
var _ medical.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML using Chrome browser automation.
// Chrome accumulates memory over time, so the browser is relaunched after
// every maxPages pages.
type Fetcher struct {
	userAgent string
	timeout   time.Duration
	maxPages  int

	mu       sync.Mutex
	browser  *rod.Browser
	launcher *launcher.Launcher
	pages    int
	closed   bool
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithUserAgent overrides the browser's User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithFetchTimeout bounds each page load. Zero means no bound.
func WithFetchTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithMaxPages sets the number of pages before the browser is recycled.
func WithMaxPages(n int) Option {
	return func(f *Fetcher) {
		f.maxPages = n
	}
}

// NewFetcher creates a new Fetcher that launches a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{maxPages: DefaultMaxPages}
	for _, opt := range opts {
		opt(f)
	}

	if err := f.launch(); err != nil {
		return nil, err
	}
	return f, nil
}

// Fetch navigates to url and returns the rendered HTML. A main document
// response outside 2xx is reported as EFETCH.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	browser, err := f.acquire()
	if err != nil {
		return "", err
	}

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", medical.Errorf(medical.EFETCH, "open page: %v", err)
	}
	defer page.Close()

	page = page.Context(ctx)

	if f.userAgent != "" {
		if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{UserAgent: f.userAgent}); err != nil {
			return "", err
		}
	}

	var status int
	wait := page.EachEvent(func(e *proto.NetworkResponseReceived) bool {
		if e.Type != proto.NetworkResourceTypeDocument {
			return false
		}
		status = e.Response.Status
		return true
	})

	if err := page.Navigate(url); err != nil {
		return "", wrap(ctx, url, err)
	}
	wait()
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if status < 200 || status > 299 {
		return "", medical.Errorf(medical.EFETCH, "HTTP %d for %s", status, url)
	}

	if err := page.WaitLoad(); err != nil {
		return "", wrap(ctx, url, err)
	}

	html, err := page.HTML()
	if err != nil {
		return "", wrap(ctx, url, err)
	}

	return html, nil
}

// Close releases browser resources. Close is safe to call multiple times.
func (f *Fetcher) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return nil
	}
	f.closed = true
	return f.shutdown()
}

// LauncherPID returns the process ID of the browser launcher.
// This method exists for testing purposes to verify proper cleanup.
func (f *Fetcher) LauncherPID() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.launcher == nil {
		return 0
	}
	return f.launcher.PID()
}

// acquire returns the browser for the next page, recycling it when the
// page budget is spent.
func (f *Fetcher) acquire() (*rod.Browser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return nil, medical.Errorf(medical.EINVALID, "fetcher is closed")
	}

	if f.maxPages > 0 && f.pages >= f.maxPages {
		oldBrowser, oldLauncher := f.browser, f.launcher
		if err := f.launch(); err == nil {
			_ = oldBrowser.Close()
			oldLauncher.Kill()
		}
	}

	f.pages++
	return f.browser, nil
}

// launch starts a new browser instance with stability flags. On failure
// the current browser, if any, is left in place.
func (f *Fetcher) launch() error {
	l := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Set("disable-hang-monitor").
		Leakless(true).
		Headless(true)

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return fmt.Errorf("connecting to browser: %w", err)
	}

	f.browser = browser
	f.launcher = l
	f.pages = 0
	return nil
}

// shutdown closes the browser and kills the launcher. Must be called
// with mu held.
func (f *Fetcher) shutdown() error {
	var err error
	if f.browser != nil {
		err = f.browser.Close()
		f.browser = nil
	}
	if f.launcher != nil {
		f.launcher.Kill()
		f.launcher = nil
	}
	return err
}

// wrap keeps context errors intact and reports everything else as EFETCH.
func wrap(ctx context.Context, url string, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	return medical.Errorf(medical.EFETCH, "GET %s: %v", url, err)
}
