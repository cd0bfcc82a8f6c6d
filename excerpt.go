package medical

import "context"

// Excerpter shortens text for display.
type Excerpter interface {
	// Excerpt returns a shortened form of text of at most maxWords words.
	Excerpt(ctx context.Context, text string, maxWords int) (string, error)
}

// SectionExcerpt is the display excerpt of one section.
type SectionExcerpt struct {
	Title   string
	Excerpt string
}

// Preview is the console view of one article: metadata plus bounded
// excerpts of the abstract and of every section. It is derived from an
// Extraction and never written back to it.
type Preview struct {
	Article  *Article
	Abstract string
	Sections []SectionExcerpt
}
