// Package mock provides mock implementations of wikidex interfaces for testing.
package mock

import (
	"context"

	"github.com/wikidex/wikidex"
)

var _ wikidex.RecordService = (*RecordService)(nil)

// RecordService is a mock implementation of wikidex.RecordService.
type RecordService struct {
	CreateRecordFn   func(ctx context.Context, rec *wikidex.Record) error
	CreateRecordsFn  func(ctx context.Context, recs []*wikidex.Record) error
	FindRecordByIDFn func(ctx context.Context, id string) (*wikidex.Record, error)
	FindRecordsFn    func(ctx context.Context, filter wikidex.RecordFilter) ([]*wikidex.Record, error)
	CountRecordsFn   func(ctx context.Context) (int, error)
	DeleteRecordFn   func(ctx context.Context, id string) error
	ReplaceRecordsFn func(ctx context.Context, recs []*wikidex.Record) error
}

func (s *RecordService) CreateRecord(ctx context.Context, rec *wikidex.Record) error {
	return s.CreateRecordFn(ctx, rec)
}

func (s *RecordService) CreateRecords(ctx context.Context, recs []*wikidex.Record) error {
	return s.CreateRecordsFn(ctx, recs)
}

func (s *RecordService) FindRecordByID(ctx context.Context, id string) (*wikidex.Record, error) {
	return s.FindRecordByIDFn(ctx, id)
}

func (s *RecordService) FindRecords(ctx context.Context, filter wikidex.RecordFilter) ([]*wikidex.Record, error) {
	return s.FindRecordsFn(ctx, filter)
}

func (s *RecordService) CountRecords(ctx context.Context) (int, error) {
	return s.CountRecordsFn(ctx)
}

func (s *RecordService) DeleteRecord(ctx context.Context, id string) error {
	return s.DeleteRecordFn(ctx, id)
}

func (s *RecordService) ReplaceRecords(ctx context.Context, recs []*wikidex.Record) error {
	return s.ReplaceRecordsFn(ctx, recs)
}
