package mock

import (
	"context"

	"github.com/ghulammustafashad/medical"
)

var _ medical.RecordService = (*RecordService)(nil)

// RecordService is a mock implementation of medical.RecordService.
type RecordService struct {
	CreateRecordFn func(ctx context.Context, r *medical.Record) error
	FindRecordsFn  func(ctx context.Context, filter medical.RecordFilter) ([]*medical.Record, error)
}

func (s *RecordService) CreateRecord(ctx context.Context, r *medical.Record) error {
	return s.CreateRecordFn(ctx, r)
}

func (s *RecordService) FindRecords(ctx context.Context, filter medical.RecordFilter) ([]*medical.Record, error) {
	return s.FindRecordsFn(ctx, filter)
}
