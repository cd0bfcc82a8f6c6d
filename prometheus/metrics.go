// Package prometheus exposes harvest metrics with the Prometheus client
// library and pushes them to a Pushgateway at the end of a run.
package prometheus

import (
	"context"
	"time"

	"github.com/ghulammustafashad/medical"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

// Metrics holds the collectors for one harvest run. Each Metrics owns its
// registry so that runs and tests do not share state.
type Metrics struct {
	Registry *prom.Registry

	Articles      *prom.CounterVec
	PagesFetched  prom.Counter
	BytesFetched  prom.Counter
	FetchDuration prom.Histogram
}

// NewMetrics creates and registers the harvest collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prom.NewRegistry(),
		Articles: prom.NewCounterVec(prom.CounterOpts{
			Name: "medical_articles_total",
			Help: "Articles processed, by outcome",
		}, []string{"outcome"}),
		PagesFetched: prom.NewCounter(prom.CounterOpts{
			Name: "medical_pages_fetched_total",
			Help: "Total number of pages successfully fetched",
		}),
		BytesFetched: prom.NewCounter(prom.CounterOpts{
			Name: "medical_bytes_fetched_total",
			Help: "Total bytes downloaded",
		}),
		FetchDuration: prom.NewHistogram(prom.HistogramOpts{
			Name:    "medical_fetch_duration_seconds",
			Help:    "Duration of page fetches",
			Buckets: prom.DefBuckets,
		}),
	}
	m.Registry.MustRegister(m.Articles, m.PagesFetched, m.BytesFetched, m.FetchDuration)
	return m
}

// ObserveOutcome counts one finished article.
func (m *Metrics) ObserveOutcome(o medical.Outcome) {
	m.Articles.WithLabelValues(string(o)).Inc()
}

// Push sends the registry to a Pushgateway under job.
func (m *Metrics) Push(ctx context.Context, gatewayURL, job string) error {
	return push.New(gatewayURL, job).Gatherer(m.Registry).PushContext(ctx)
}

// Ensure InstrumentedFetcher implements medical.Fetcher at compile time.
var _ medical.Fetcher = (*InstrumentedFetcher)(nil)

// InstrumentedFetcher wraps a Fetcher and records fetch metrics.
type InstrumentedFetcher struct {
	next    medical.Fetcher
	metrics *Metrics
}

// NewInstrumentedFetcher creates a new InstrumentedFetcher.
func NewInstrumentedFetcher(next medical.Fetcher, m *Metrics) *InstrumentedFetcher {
	return &InstrumentedFetcher{next: next, metrics: m}
}

// Fetch delegates to the wrapped fetcher and records duration, pages and
// bytes. Failed fetches only contribute to the duration histogram.
func (f *InstrumentedFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		f.metrics.FetchDuration.Observe(time.Since(begin).Seconds())
		if err == nil {
			f.metrics.PagesFetched.Inc()
			f.metrics.BytesFetched.Add(float64(len(html)))
		}
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *InstrumentedFetcher) Close() error {
	return f.next.Close()
}
