package medical

import "strings"

// DefaultDenylist returns the section titles treated as boilerplate on
// PubMed Central article pages. Matching is exact and case-sensitive, so
// "References" and "REFERENCES" are listed separately.
func DefaultDenylist() []string {
	return []string{
		"Abstract",
		"Supplementary information",
		"Associated Data",
		"Acknowledgments",
		"Abbreviations",
		"Authors’ contributions",
		"Funding",
		"Availability of data and materials",
		"Ethics approval and consent to participate",
		"Consent for publication",
		"Competing interests",
		"Footnotes",
		"Publisher’s Note",
		"References",
		"Appendix. SUPPLEMENTARY INFORMATION",
		"REFERENCES",
		"Disclosure",
		"Appendix. Authors",
		"Study Funding",
	}
}

// Classifier filters raw page sections into a SectionMap, dropping titles
// on its denylist.
type Classifier struct {
	deny map[string]struct{}
}

// NewClassifier returns a Classifier that excludes the given titles.
// With no titles it uses DefaultDenylist.
func NewClassifier(denylist ...string) *Classifier {
	if len(denylist) == 0 {
		denylist = DefaultDenylist()
	}
	deny := make(map[string]struct{}, len(denylist))
	for _, title := range denylist {
		deny[title] = struct{}{}
	}
	return &Classifier{deny: deny}
}

// Denied reports whether title is on the denylist.
func (c *Classifier) Denied(title string) bool {
	_, ok := c.deny[title]
	return ok
}

// Classify builds the SectionMap for one article. Titles are trimmed
// before matching; empty titles are not sections. When two sections share
// a title the later body wins.
func (c *Classifier) Classify(raw []RawSection) *SectionMap {
	sections := NewSectionMap()
	for _, s := range raw {
		title := strings.TrimSpace(s.Title)
		if title == "" || c.Denied(title) {
			continue
		}
		sections.Set(title, s.Body)
	}
	return sections
}
