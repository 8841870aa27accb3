package mock

import (
	"context"

	"github.com/Bluscream/acedocs"
)

var _ acedocs.RecordService = (*RecordService)(nil)

// RecordService is a mock implementation of acedocs.RecordService.
type RecordService struct {
	ReplaceRecordsFn   func(ctx context.Context, records []*acedocs.Record) error
	FindRecordByNameFn func(ctx context.Context, name string) (*acedocs.Record, error)
	FindRecordsFn      func(ctx context.Context, filter acedocs.RecordFilter) ([]*acedocs.Record, error)
}

func (s *RecordService) ReplaceRecords(ctx context.Context, records []*acedocs.Record) error {
	return s.ReplaceRecordsFn(ctx, records)
}

func (s *RecordService) FindRecordByName(ctx context.Context, name string) (*acedocs.Record, error) {
	return s.FindRecordByNameFn(ctx, name)
}

func (s *RecordService) FindRecords(ctx context.Context, filter acedocs.RecordFilter) ([]*acedocs.Record, error) {
	return s.FindRecordsFn(ctx, filter)
}
