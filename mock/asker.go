package mock

import (
	"context"

	"github.com/wikidex/wikidex"
)

var _ wikidex.Asker = (*Asker)(nil)

// Asker is a mock implementation of wikidex.Asker.
type Asker struct {
	AskFn func(ctx context.Context, question string) (string, error)
}

func (a *Asker) Ask(ctx context.Context, question string) (string, error) {
	return a.AskFn(ctx, question)
}

var _ wikidex.TokenCounter = (*TokenCounter)(nil)

// TokenCounter is a mock implementation of wikidex.TokenCounter.
type TokenCounter struct {
	CountTokensFn       func(ctx context.Context, text string) (int, error)
	CountRecordTokensFn func(ctx context.Context, recs []*wikidex.Record) (int, error)
}

func (tc *TokenCounter) CountTokens(ctx context.Context, text string) (int, error) {
	return tc.CountTokensFn(ctx, text)
}

func (tc *TokenCounter) CountRecordTokens(ctx context.Context, recs []*wikidex.Record) (int, error) {
	return tc.CountRecordTokensFn(ctx, recs)
}
