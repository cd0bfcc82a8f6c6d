package medical

import "iter"

// RawSection is a titled content block as found on the page, before
// denylist filtering.
type RawSection struct {
	Title string
	Body  string
}

// SectionMap is an insertion-ordered mapping from section title to body.
// Setting an existing title replaces its body but keeps its position.
// The zero value is not usable; call NewSectionMap. A nil *SectionMap
// behaves as an empty map for reads.
type SectionMap struct {
	titles []string
	bodies map[string]string
}

// NewSectionMap returns an empty SectionMap.
func NewSectionMap() *SectionMap {
	return &SectionMap{bodies: make(map[string]string)}
}

// Set stores body under title.
func (m *SectionMap) Set(title, body string) {
	if _, ok := m.bodies[title]; !ok {
		m.titles = append(m.titles, title)
	}
	m.bodies[title] = body
}

// Get returns the body stored under title.
func (m *SectionMap) Get(title string) (string, bool) {
	if m == nil {
		return "", false
	}
	body, ok := m.bodies[title]
	return body, ok
}

// Len returns the number of sections.
func (m *SectionMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.titles)
}

// Titles returns the section titles in document order.
func (m *SectionMap) Titles() []string {
	if m == nil {
		return nil
	}
	out := make([]string, len(m.titles))
	copy(out, m.titles)
	return out
}

// All iterates over title/body pairs in document order.
func (m *SectionMap) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if m == nil {
			return
		}
		for _, title := range m.titles {
			if !yield(title, m.bodies[title]) {
				return
			}
		}
	}
}

// Extraction holds the content harvested from one article page.
// Abstract is empty when the page has no abstract element.
type Extraction struct {
	Abstract string
	Sections *SectionMap
}

// Extractor parses a raw article page into an Extraction.
type Extractor interface {
	// Extract processes raw HTML and returns the abstract and the filtered
	// section map. Missing structural elements degrade to empty values;
	// an error is returned only when the markup cannot be parsed at all.
	Extract(html string) (*Extraction, error)
}
