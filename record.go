package medical

import (
	"context"
	"time"
)

// Outcome is the final state of one article in a run.
type Outcome string

// Outcome values.
const (
	OutcomeRendered     Outcome = "rendered"
	OutcomeFetchFailed  Outcome = "fetch_failed"
	OutcomeDisallowed   Outcome = "disallowed"
	OutcomeNoSections   Outcome = "no_sections"
	OutcomeRenderFailed Outcome = "render_failed"
)

// Record is the ledger entry for one processed article.
type Record struct {
	ID           string    `json:"id"`
	ArticleID    string    `json:"articleId"`
	Category     string    `json:"category"`
	Title        string    `json:"title"`
	Outcome      Outcome   `json:"outcome"`
	SectionCount int       `json:"sectionCount"`
	ContentHash  string    `json:"contentHash"`
	Error        string    `json:"error,omitempty"`
	ProcessedAt  time.Time `json:"processedAt"`
}

// Validate returns an error if the record contains invalid fields.
func (r *Record) Validate() error {
	if r.ArticleID == "" {
		return Errorf(EINVALID, "record article ID required")
	}
	if r.Outcome == "" {
		return Errorf(EINVALID, "record outcome required")
	}
	return nil
}

// RecordService persists the outcome of each processed article.
type RecordService interface {
	// CreateRecord stores a new record, assigning its ID and timestamp.
	CreateRecord(ctx context.Context, r *Record) error

	// FindRecords retrieves records matching the filter, newest first.
	FindRecords(ctx context.Context, filter RecordFilter) ([]*Record, error)
}

// RecordFilter represents a filter for FindRecords.
type RecordFilter struct {
	ArticleID *string  `json:"articleId"`
	Category  *string  `json:"category"`
	Outcome   *Outcome `json:"outcome"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
