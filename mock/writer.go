package mock

import (
	"context"

	"github.com/wikidex/wikidex"
)

var _ wikidex.RecordWriter = (*RecordWriter)(nil)

// RecordWriter is a mock implementation of wikidex.RecordWriter.
type RecordWriter struct {
	WriteRecordsFn func(ctx context.Context, recs []*wikidex.Record) error
}

func (w *RecordWriter) WriteRecords(ctx context.Context, recs []*wikidex.Record) error {
	return w.WriteRecordsFn(ctx, recs)
}
