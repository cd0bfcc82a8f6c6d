// Package goquery extracts article content from HTML using goquery CSS
// selectors.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ghulammustafashad/medical"
)

// Layout names the CSS selectors that locate content on an article page.
type Layout struct {
	// Abstract selects the abstract block. Only the first match is used.
	Abstract string
	// Section selects every titled content block.
	Section string
	// Headings are tried in order; the first one present in a block
	// supplies its title.
	Headings []string
	// Paragraph selects the body text elements inside a block.
	Paragraph string
}

// DefaultLayout matches PubMed Central article pages.
var DefaultLayout = Layout{
	Abstract:  ".abstract-content",
	Section:   ".tsec",
	Headings:  []string{"h1", "h2", "h3", "h4"},
	Paragraph: "p",
}

// Ensure Extractor implements medical.Extractor at compile time.
var _ medical.Extractor = (*Extractor)(nil)

// Extractor parses article pages into an abstract and a SectionMap.
type Extractor struct {
	layout     Layout
	classifier *medical.Classifier
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithLayout overrides DefaultLayout.
func WithLayout(l Layout) Option {
	return func(e *Extractor) {
		e.layout = l
	}
}

// WithClassifier overrides the default section denylist.
func WithClassifier(c *medical.Classifier) Option {
	return func(e *Extractor) {
		e.classifier = c
	}
}

// NewExtractor creates an Extractor using DefaultLayout and the default
// denylist.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		layout:     DefaultLayout,
		classifier: medical.NewClassifier(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract parses html. A missing abstract yields an empty Abstract and a
// block without a heading is skipped; neither is an error.
func (e *Extractor) Extract(html string) (*medical.Extraction, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, medical.Errorf(medical.EINVALID, "failed to parse HTML: %v", err)
	}

	var abstract string
	if sel := doc.Find(e.layout.Abstract).First(); sel.Length() > 0 {
		abstract = strings.TrimSpace(sel.Text())
	}

	var raw []medical.RawSection
	doc.Find(e.layout.Section).Each(func(_ int, block *goquery.Selection) {
		heading := e.heading(block)
		if heading == nil {
			return
		}

		var paragraphs []string
		block.Find(e.layout.Paragraph).Each(func(_ int, p *goquery.Selection) {
			paragraphs = append(paragraphs, p.Text())
		})

		raw = append(raw, medical.RawSection{
			Title: strings.TrimSpace(heading.Text()),
			Body:  strings.Join(paragraphs, "\n"),
		})
	})

	return &medical.Extraction{
		Abstract: abstract,
		Sections: e.classifier.Classify(raw),
	}, nil
}

func (e *Extractor) heading(block *goquery.Selection) *goquery.Selection {
	for _, tag := range e.layout.Headings {
		if sel := block.Find(tag).First(); sel.Length() > 0 {
			return sel
		}
	}
	return nil
}
