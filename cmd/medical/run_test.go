package main_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/ghulammustafashad/medical"
	main "github.com/ghulammustafashad/medical/cmd/medical"
	"github.com/ghulammustafashad/medical/goquery"
	"github.com/ghulammustafashad/medical/harvest"
	"github.com/ghulammustafashad/medical/mock"
	"github.com/ghulammustafashad/medical/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const articleHTML = `<html><body>
<div class="abstract-content"><p>Oxygen use varies widely. Most centres titrate.</p></div>
<div class="tsec"><h2>Methods</h2><p>We surveyed members.</p></div>
<div class="tsec"><h2>Acknowledgments</h2><p>Thanks.</p></div>
</body></html>`

func testCatalog() *medical.Catalog {
	return &medical.Catalog{
		Category: "anesthesiology",
		Articles: []*medical.Article{
			{ID: "PMC1", Title: "Oxygen practice", Authors: "A. Author"},
			{ID: "PMC2", Title: "Burnout", Authors: "B. Author"},
		},
	}
}

func testDeps(stdout, stderr *bytes.Buffer, h *harvest.Harvester) *main.Dependencies {
	return &main.Dependencies{
		Ctx:       context.Background(),
		Stdout:    stdout,
		Stderr:    stderr,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		Catalog:   testCatalog(),
		Harvester: h,
	}
}

func TestRunCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints previews and a summary", func(t *testing.T) {
		t.Parallel()

		var rendered []string
		h := &harvest.Harvester{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, _ string) (string, error) {
					return articleHTML, nil
				},
			},
			Extractor: goquery.NewExtractor(),
			Documents: &mock.DocumentRenderer{
				RenderDocumentFn: func(_ context.Context, d *medical.Digest) error {
					rendered = append(rendered, d.Article.ID)
					return nil
				},
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		cmd := &main.RunCmd{}
		err := cmd.Run(testDeps(stdout, stderr, h))

		require.NoError(t, err)
		assert.Equal(t, []string{"PMC1", "PMC2"}, rendered)
		out := stdout.String()
		assert.Contains(t, out, "Oxygen practice")
		assert.Contains(t, out, "PMCID: PMC1")
		assert.Contains(t, out, "Methods\n-------\n")
		assert.NotContains(t, out, "Acknowledgments")
		assert.Contains(t, out, "Rendered 2, skipped 0, failed 0 of 2 articles")
		assert.Empty(t, stderr.String())
	})

	t.Run("per-article failures do not fail the command", func(t *testing.T) {
		t.Parallel()

		h := &harvest.Harvester{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, url string) (string, error) {
					return "", medical.Errorf(medical.EFETCH, "HTTP 503 for %s", url)
				},
			},
			Extractor: goquery.NewExtractor(),
		}

		stdout := &bytes.Buffer{}
		cmd := &main.RunCmd{}
		err := cmd.Run(testDeps(stdout, &bytes.Buffer{}, h))

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Rendered 0, skipped 2, failed 0 of 2 articles")
	})

	t.Run("counts outcomes in metrics", func(t *testing.T) {
		t.Parallel()

		h := &harvest.Harvester{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, url string) (string, error) {
					if url == medical.ArticleURL("", "PMC2") {
						return "", errors.New("boom")
					}
					return articleHTML, nil
				},
			},
			Extractor: goquery.NewExtractor(),
		}

		deps := testDeps(&bytes.Buffer{}, &bytes.Buffer{}, h)
		deps.Metrics = prometheus.NewMetrics()
		cmd := &main.RunCmd{Pushgateway: "http://127.0.0.1:0"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.InDelta(t, 1.0, testutil.ToFloat64(deps.Metrics.Articles.WithLabelValues(string(medical.OutcomeRendered))), 0)
		assert.InDelta(t, 1.0, testutil.ToFloat64(deps.Metrics.Articles.WithLabelValues(string(medical.OutcomeFetchFailed))), 0)
	})

	t.Run("reports interruption", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		h := &harvest.Harvester{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, _ string) (string, error) {
					cancel()
					return articleHTML, nil
				},
			},
			Extractor: goquery.NewExtractor(),
		}

		stderr := &bytes.Buffer{}
		deps := testDeps(&bytes.Buffer{}, stderr, h)
		deps.Ctx = ctx
		cmd := &main.RunCmd{}
		err := cmd.Run(deps)

		require.ErrorIs(t, err, context.Canceled)
		assert.Contains(t, stderr.String(), "interrupted")
	})
}
