// Package harvest orchestrates article processing: fetching each catalog
// entry, classifying its sections, building the console preview and
// handing the full content to the renderers.
package harvest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/ghulammustafashad/medical"
)

// Default pauses between external calls.
const (
	DefaultArticleDelay = 2 * time.Second
	DefaultAudioDelay   = 2 * time.Second
)

// Harvester processes a catalog one article at a time.
//
// Fetcher and Extractor are required. Every other collaborator is
// optional: a nil renderer is not called, a nil Robots allows every URL,
// a nil Records skips the ledger, and a nil Excerpter uses the sentence
// Budgeter. Zero delays disable the corresponding pause.
type Harvester struct {
	Fetcher   medical.Fetcher
	Extractor medical.Extractor
	Excerpter medical.Excerpter
	Documents medical.DocumentRenderer
	Audio     medical.AudioRenderer
	Robots    medical.RobotsPolicy
	Records   medical.RecordService

	BaseURL      string
	ExcerptWords int
	ArticleDelay time.Duration
	AudioDelay   time.Duration

	// Sleep pauses for d or until ctx is done. Defaults to a timer.
	Sleep func(ctx context.Context, d time.Duration) error
}

// State is the processing stage of one article.
type State int

const (
	StateFetching State = iota
	StateClassified
	StateSummarized
	StateRendered
	StateAborted
)

func (s State) String() string {
	switch s {
	case StateFetching:
		return "fetching"
	case StateClassified:
		return "classified"
	case StateSummarized:
		return "summarized"
	case StateRendered:
		return "rendered"
	case StateAborted:
		return "aborted"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// ProgressEvent reports a state transition of one article.
type ProgressEvent struct {
	State    State
	Position int
	Total    int
	Article  *medical.Article
	// Preview is set on StateSummarized.
	Preview *medical.Preview
	// Outcome is set on StateRendered and StateAborted.
	Outcome medical.Outcome
	Error   error
}

// ProgressFunc is a callback for reporting harvest progress.
type ProgressFunc func(event ProgressEvent)

// Result holds the outcome of a harvest run.
type Result struct {
	Rendered int
	Skipped  int
	Failed   int
}

// ArticleResult is the outcome of processing a single article.
type ArticleResult struct {
	Article  *medical.Article
	Outcome  medical.Outcome
	Preview  *medical.Preview
	Sections int
	Error    error
}

// Harvest processes every article of the catalog in order. Per-article
// failures are counted and never end the run; only context cancellation
// does, in which case the partial result is returned with ctx.Err().
func (h *Harvester) Harvest(ctx context.Context, catalog *medical.Catalog, progress ProgressFunc) (*Result, error) {
	if err := catalog.Validate(); err != nil {
		return nil, err
	}

	result := &Result{}
	total := len(catalog.Articles)
	for i, article := range catalog.Articles {
		if i > 0 {
			if err := h.sleep(ctx, h.ArticleDelay); err != nil {
				return result, err
			}
		}

		ar := h.harvest(ctx, catalog.Category, article, i, total, progress)
		switch ar.Outcome {
		case medical.OutcomeRendered:
			result.Rendered++
		case medical.OutcomeRenderFailed:
			result.Failed++
		default:
			result.Skipped++
		}

		if err := ctx.Err(); err != nil {
			return result, err
		}
	}

	return result, nil
}

// HarvestArticle processes a single article without the inter-article
// pause. The returned error is non-nil only when ctx is done.
func (h *Harvester) HarvestArticle(ctx context.Context, category string, article *medical.Article, progress ProgressFunc) (*ArticleResult, error) {
	if err := article.Validate(); err != nil {
		return nil, err
	}
	ar := h.harvest(ctx, category, article, 0, 1, progress)
	return ar, ctx.Err()
}

func (h *Harvester) harvest(ctx context.Context, category string, article *medical.Article, position, total int, progress ProgressFunc) *ArticleResult {
	emit := func(e ProgressEvent) {
		if progress == nil {
			return
		}
		e.Position = position
		e.Total = total
		e.Article = article
		progress(e)
	}

	ar := &ArticleResult{Article: article}
	abort := func(outcome medical.Outcome, err error) *ArticleResult {
		ar.Outcome = outcome
		ar.Error = err
		emit(ProgressEvent{State: StateAborted, Outcome: outcome, Error: err})
		h.record(ctx, category, ar, "")
		return ar
	}

	emit(ProgressEvent{State: StateFetching})

	url := medical.ArticleURL(h.BaseURL, article.ID)
	if h.Robots != nil {
		// A policy error allows the fetch.
		if allowed, err := h.Robots.Allowed(ctx, url); err == nil && !allowed {
			return abort(medical.OutcomeDisallowed, medical.Errorf(medical.EFORBIDDEN, "robots.txt disallows %s", url))
		}
	}

	html, err := h.Fetcher.Fetch(ctx, url)
	if err != nil {
		return abort(medical.OutcomeFetchFailed, err)
	}

	extraction, err := h.Extractor.Extract(html)
	if err != nil {
		return abort(medical.OutcomeFetchFailed, err)
	}
	if extraction.Sections.Len() == 0 {
		return abort(medical.OutcomeNoSections, nil)
	}
	ar.Sections = extraction.Sections.Len()
	emit(ProgressEvent{State: StateClassified})

	ar.Preview = h.preview(ctx, article, extraction)
	emit(ProgressEvent{State: StateSummarized, Preview: ar.Preview})

	digest := &medical.Digest{
		Category: category,
		Article:  article,
		Abstract: extraction.Abstract,
		Sections: extraction.Sections,
	}

	ar.Outcome = medical.OutcomeRendered
	if err := h.render(ctx, digest); err != nil {
		ar.Outcome = medical.OutcomeRenderFailed
		ar.Error = err
	}
	emit(ProgressEvent{State: StateRendered, Outcome: ar.Outcome, Error: ar.Error})

	h.record(ctx, category, ar, medical.SpeechText(digest))
	return ar
}

// preview builds the bounded excerpts shown on the console.
func (h *Harvester) preview(ctx context.Context, article *medical.Article, extraction *medical.Extraction) *medical.Preview {
	p := &medical.Preview{
		Article:  article,
		Abstract: h.excerpt(ctx, extraction.Abstract),
	}
	for title, body := range extraction.Sections.All() {
		p.Sections = append(p.Sections, medical.SectionExcerpt{
			Title:   title,
			Excerpt: h.excerpt(ctx, body),
		})
	}
	return p
}

// excerpt falls back to the sentence budget when the configured
// Excerpter fails.
func (h *Harvester) excerpt(ctx context.Context, text string) string {
	words := h.ExcerptWords
	if words <= 0 {
		words = medical.DefaultExcerptWords
	}
	if h.Excerpter != nil {
		if s, err := h.Excerpter.Excerpt(ctx, text, words); err == nil {
			return s
		}
	}
	return medical.Budget(text, words)
}

// render calls both renderers. A failing renderer does not prevent the
// other from running.
func (h *Harvester) render(ctx context.Context, d *medical.Digest) error {
	var errs []error
	if h.Documents != nil {
		if err := h.Documents.RenderDocument(ctx, d); err != nil {
			errs = append(errs, fmt.Errorf("document: %w", err))
		}
	}
	if h.Audio != nil {
		if err := h.Audio.RenderAudio(ctx, d); err != nil {
			errs = append(errs, fmt.Errorf("audio: %w", err))
		}
		if err := h.sleep(ctx, h.AudioDelay); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// record stores the article outcome in the ledger. Ledger failures are
// attached to the article result without changing its outcome.
func (h *Harvester) record(ctx context.Context, category string, ar *ArticleResult, content string) {
	if h.Records == nil {
		return
	}

	r := &medical.Record{
		ArticleID:    ar.Article.ID,
		Category:     category,
		Title:        ar.Article.Title,
		Outcome:      ar.Outcome,
		SectionCount: ar.Sections,
	}
	if content != "" {
		r.ContentHash = computeHash(content)
	}
	if ar.Error != nil {
		r.Error = ar.Error.Error()
	}

	if err := h.Records.CreateRecord(context.WithoutCancel(ctx), r); err != nil {
		ar.Error = errors.Join(ar.Error, fmt.Errorf("record: %w", err))
	}
}

func (h *Harvester) sleep(ctx context.Context, d time.Duration) error {
	if h.Sleep != nil {
		return h.Sleep(ctx, d)
	}
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// computeHash computes a hash of the content using xxhash.
func computeHash(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}
