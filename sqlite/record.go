package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/ghulammustafashad/medical"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ medical.RecordService = (*RecordService)(nil)

// RecordService implements medical.RecordService using SQLite.
type RecordService struct {
	db *DB
}

// NewRecordService creates a new RecordService.
func NewRecordService(db *DB) *RecordService {
	return &RecordService{db: db}
}

// CreateRecord stores a record, assigning a new ID and, when unset, the
// processing time.
func (s *RecordService) CreateRecord(ctx context.Context, r *medical.Record) error {
	if err := r.Validate(); err != nil {
		return err
	}

	r.ID = uuid.New().String()
	if r.ProcessedAt.IsZero() {
		r.ProcessedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO records (id, article_id, category, title, outcome, section_count, content_hash, error, processed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, r.ID, r.ArticleID, r.Category, r.Title, string(r.Outcome), r.SectionCount, r.ContentHash,
		r.Error, r.ProcessedAt.UTC().Format(timestampLayout))

	return err
}

// FindRecords retrieves records matching the filter, newest first.
func (s *RecordService) FindRecords(ctx context.Context, filter medical.RecordFilter) ([]*medical.Record, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, article_id, category, title, outcome, section_count, content_hash, error, processed_at FROM records WHERE 1=1")

	if filter.ArticleID != nil {
		query.WriteString(" AND article_id = ?")
		args = append(args, *filter.ArticleID)
	}
	if filter.Category != nil {
		query.WriteString(" AND category = ?")
		args = append(args, *filter.Category)
	}
	if filter.Outcome != nil {
		query.WriteString(" AND outcome = ?")
		args = append(args, string(*filter.Outcome))
	}

	query.WriteString(" ORDER BY processed_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*medical.Record
	for rows.Next() {
		var r medical.Record
		var outcome, processedAt string

		if err := rows.Scan(&r.ID, &r.ArticleID, &r.Category, &r.Title, &outcome,
			&r.SectionCount, &r.ContentHash, &r.Error, &processedAt); err != nil {
			return nil, err
		}
		r.Outcome = medical.Outcome(outcome)

		r.ProcessedAt, err = parseRFC3339(processedAt, "processed_at")
		if err != nil {
			return nil, err
		}

		records = append(records, &r)
	}

	return records, rows.Err()
}
