package medical

import "strings"

// DefaultBaseURL is the PubMed Central article root. Article pages live at
// <DefaultBaseURL>/<id>/.
const DefaultBaseURL = "https://www.ncbi.nlm.nih.gov/pmc/articles"

// Article is one catalog entry. It is loaded once at startup and never
// mutated.
type Article struct {
	ID      string `yaml:"id" json:"id"`
	Title   string `yaml:"title" json:"title"`
	Authors string `yaml:"authors" json:"authors"`
	DOI     string `yaml:"doi,omitempty" json:"doi,omitempty"`
	Year    string `yaml:"year,omitempty" json:"year,omitempty"`
}

// Validate returns an error if the article contains invalid fields.
func (a *Article) Validate() error {
	if strings.TrimSpace(a.ID) == "" {
		return Errorf(EINVALID, "article ID required")
	}
	if strings.TrimSpace(a.Title) == "" {
		return Errorf(EINVALID, "article %s: title required", a.ID)
	}
	return nil
}

// Catalog is the ordered list of articles processed in one run, grouped
// under a single category.
type Catalog struct {
	Category string     `yaml:"category" json:"category"`
	Articles []*Article `yaml:"articles" json:"articles"`
}

// Validate returns an error if the catalog or any of its articles is invalid.
func (c *Catalog) Validate() error {
	if strings.TrimSpace(c.Category) == "" {
		return Errorf(EINVALID, "catalog category required")
	}
	for i, a := range c.Articles {
		if a == nil {
			return Errorf(EINVALID, "catalog entry %d is empty", i)
		}
		if err := a.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// ArticleURL returns the page URL for an article identifier.
// An empty baseURL falls back to DefaultBaseURL.
func ArticleURL(baseURL, id string) string {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return strings.TrimRight(baseURL, "/") + "/" + id + "/"
}
