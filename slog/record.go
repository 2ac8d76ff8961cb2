// Package slog provides logging decorators for wikidex services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/wikidex/wikidex"
)

// Ensure RecordService implements wikidex.RecordService.
var _ wikidex.RecordService = (*RecordService)(nil)

// RecordService wraps a RecordService with logging for the bulk
// operations that run during scrapes and imports.
type RecordService struct {
	next   wikidex.RecordService
	logger *slog.Logger
}

// NewRecordService creates a new logging RecordService.
func NewRecordService(next wikidex.RecordService, logger *slog.Logger) *RecordService {
	return &RecordService{next: next, logger: logger}
}

// CreateRecord delegates to the wrapped service.
func (s *RecordService) CreateRecord(ctx context.Context, rec *wikidex.Record) error {
	return s.next.CreateRecord(ctx, rec)
}

// CreateRecords logs the batch size and duration of a bulk insert.
func (s *RecordService) CreateRecords(ctx context.Context, recs []*wikidex.Record) error {
	begin := time.Now()
	err := s.next.CreateRecords(ctx, recs)
	s.logger.Info("create records",
		"count", len(recs),
		"duration", time.Since(begin),
		"error", err,
	)
	return err
}

// FindRecordByID delegates to the wrapped service.
func (s *RecordService) FindRecordByID(ctx context.Context, id string) (*wikidex.Record, error) {
	return s.next.FindRecordByID(ctx, id)
}

// FindRecords delegates to the wrapped service.
func (s *RecordService) FindRecords(ctx context.Context, filter wikidex.RecordFilter) ([]*wikidex.Record, error) {
	return s.next.FindRecords(ctx, filter)
}

// CountRecords delegates to the wrapped service.
func (s *RecordService) CountRecords(ctx context.Context) (int, error) {
	return s.next.CountRecords(ctx)
}

// DeleteRecord delegates to the wrapped service.
func (s *RecordService) DeleteRecord(ctx context.Context, id string) error {
	return s.next.DeleteRecord(ctx, id)
}

// ReplaceRecords logs the size and duration of a full record swap.
func (s *RecordService) ReplaceRecords(ctx context.Context, recs []*wikidex.Record) error {
	begin := time.Now()
	err := s.next.ReplaceRecords(ctx, recs)
	s.logger.Info("replace records",
		"count", len(recs),
		"duration", time.Since(begin),
		"error", err,
	)
	return err
}
