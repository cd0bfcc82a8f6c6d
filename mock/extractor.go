package mock

import "github.com/ghulammustafashad/medical"

var _ medical.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of medical.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*medical.Extraction, error)
}

func (e *Extractor) Extract(html string) (*medical.Extraction, error) {
	return e.ExtractFn(html)
}
