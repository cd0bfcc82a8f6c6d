package medical

import (
	"context"
	"strings"
)

// Digest is the full, unbudgeted content of one article handed to the
// renderers.
type Digest struct {
	Category string
	Article  *Article
	Abstract string
	Sections *SectionMap
}

// DocumentRenderer produces one paginated document per article.
type DocumentRenderer interface {
	// RenderDocument writes the category line, title, authors, DOI, the
	// abstract when non-empty, and every section title with its full body.
	RenderDocument(ctx context.Context, d *Digest) error
}

// AudioRenderer produces one spoken rendition per article.
type AudioRenderer interface {
	// RenderAudio synthesizes speech for the title, abstract and every
	// section title/body pair, in order.
	RenderAudio(ctx context.Context, d *Digest) error
}

// SpeechText returns the text read aloud for a digest.
func SpeechText(d *Digest) string {
	var sb strings.Builder
	sb.WriteString("Summary: " + d.Article.Title + "\n\n")
	if d.Abstract != "" {
		sb.WriteString(d.Abstract + "\n\n")
	}
	for title, body := range d.Sections.All() {
		sb.WriteString(title + "\n" + body + "\n\n")
	}
	return sb.String()
}
