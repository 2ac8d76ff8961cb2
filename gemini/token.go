package gemini

import (
	"context"

	"github.com/wikidex/wikidex"
	"google.golang.org/genai"
	"google.golang.org/genai/tokenizer"
)

var _ wikidex.TokenCounter = (*TokenCounter)(nil)

// TokenCounter measures wiki content against a Gemini model's token
// vocabulary. Counting runs locally, so size reporting works for dump
// parsing and imports without an API key.
type TokenCounter struct {
	tok *tokenizer.LocalTokenizer
}

// NewTokenCounter builds a counter using the named model's vocabulary.
func NewTokenCounter(model string) (*TokenCounter, error) {
	tok, err := tokenizer.NewLocalTokenizer(model)
	if err != nil {
		return nil, err
	}
	return &TokenCounter{tok: tok}, nil
}

// CountTokens returns the token length of one piece of text.
func (tc *TokenCounter) CountTokens(ctx context.Context, text string) (int, error) {
	if text == "" {
		return 0, nil
	}

	contents := []*genai.Content{genai.NewContentFromText(text, "user")}
	result, err := tc.tok.CountTokens(contents, nil)
	if err != nil {
		return 0, err
	}
	return int(result.TotalTokens), nil
}

// CountRecordTokens sums the token length of every record's content,
// measuring the prompt cost of the wiki as a whole rather than of a
// single page. Titles and URLs are excluded: only content reaches the
// model's context.
func (tc *TokenCounter) CountRecordTokens(ctx context.Context, recs []*wikidex.Record) (int, error) {
	total := 0
	for _, rec := range recs {
		n, err := tc.CountTokens(ctx, rec.Content)
		if err != nil {
			return 0, err
		}
		total += n
	}
	return total, nil
}
