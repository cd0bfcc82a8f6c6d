package fs

import (
	"context"
	"strings"

	"github.com/ghulammustafashad/medical"
	"gopkg.in/yaml.v3"
)

// Ensure MarkdownRenderer implements medical.DocumentRenderer at compile time.
var _ medical.DocumentRenderer = (*MarkdownRenderer)(nil)

// MarkdownRenderer writes each article as a markdown file with YAML
// frontmatter.
type MarkdownRenderer struct {
	layout Layout
}

// NewMarkdownRenderer creates a MarkdownRenderer writing below layout.
func NewMarkdownRenderer(layout Layout) *MarkdownRenderer {
	return &MarkdownRenderer{layout: layout}
}

// RenderDocument writes the digest to the layout's markdown path.
func (r *MarkdownRenderer) RenderDocument(ctx context.Context, d *medical.Digest) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := d.Article.Validate(); err != nil {
		return err
	}

	content, err := FormatMarkdown(d)
	if err != nil {
		return err
	}
	return WriteFile(r.layout.MarkdownPath(d.Category, d.Article.Title), []byte(content))
}

type frontmatter struct {
	Title    string `yaml:"title"`
	Authors  string `yaml:"authors,omitempty"`
	DOI      string `yaml:"doi,omitempty"`
	Year     string `yaml:"year,omitempty"`
	PMCID    string `yaml:"pmcid"`
	Category string `yaml:"category"`
}

// FormatMarkdown formats a digest as markdown with YAML frontmatter.
// The abstract appears under a "Summary" heading when present, followed
// by every section with its full body.
func FormatMarkdown(d *medical.Digest) (string, error) {
	fm, err := yaml.Marshal(frontmatter{
		Title:    d.Article.Title,
		Authors:  d.Article.Authors,
		DOI:      d.Article.DOI,
		Year:     d.Article.Year,
		PMCID:    d.Article.ID,
		Category: d.Category,
	})
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(fm)
	b.WriteString("---\n\n")
	b.WriteString("# ")
	b.WriteString(d.Article.Title)
	b.WriteString("\n")

	if d.Abstract != "" {
		b.WriteString("\n## Summary\n\n")
		b.WriteString(d.Abstract)
		b.WriteString("\n")
	}

	for title, body := range d.Sections.All() {
		b.WriteString("\n## ")
		b.WriteString(title)
		b.WriteString("\n")
		if body != "" {
			b.WriteString("\n")
			b.WriteString(body)
			b.WriteString("\n")
		}
	}

	return b.String(), nil
}
