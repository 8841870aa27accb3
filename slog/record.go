package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/Bluscream/acedocs"
)

// Ensure LoggingRecordService implements acedocs.RecordService.
var _ acedocs.RecordService = (*LoggingRecordService)(nil)

// LoggingRecordService wraps a RecordService with debug logging.
type LoggingRecordService struct {
	next   acedocs.RecordService
	logger *slog.Logger
}

// NewLoggingRecordService creates a new LoggingRecordService.
func NewLoggingRecordService(next acedocs.RecordService, logger *slog.Logger) *LoggingRecordService {
	return &LoggingRecordService{next: next, logger: logger}
}

// ReplaceRecords delegates to the wrapped service and logs the operation.
func (s *LoggingRecordService) ReplaceRecords(ctx context.Context, records []*acedocs.Record) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("replace records",
			"count", len(records),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ReplaceRecords(ctx, records)
}

// FindRecordByName delegates to the wrapped service and logs the operation.
func (s *LoggingRecordService) FindRecordByName(ctx context.Context, name string) (rec *acedocs.Record, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find record",
			"name", name,
			"found", rec != nil,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindRecordByName(ctx, name)
}

// FindRecords delegates to the wrapped service and logs the operation.
func (s *LoggingRecordService) FindRecords(ctx context.Context, filter acedocs.RecordFilter) (records []*acedocs.Record, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find records",
			"count", len(records),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindRecords(ctx, filter)
}
