package wikidex

import "context"

// Asker provides natural language question answering over the stored
// wiki records.
type Asker interface {
	// Ask answers a natural language question using the wiki content as
	// context. Returns ENOTFOUND if no records are available.
	Ask(ctx context.Context, question string) (string, error)
}

// TokenCounter counts model tokens in wiki content. Used to report how
// much of the model's context window the stored records would consume.
type TokenCounter interface {
	// CountTokens returns the token length of one piece of text.
	CountTokens(ctx context.Context, text string) (int, error)

	// CountRecordTokens sums the token length of every record's content.
	CountRecordTokens(ctx context.Context, recs []*Record) (int, error)
}
