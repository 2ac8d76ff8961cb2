package gemini_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wikidex/wikidex"
	"github.com/wikidex/wikidex/gemini"
)

func TestTokenCounter_CountTokens(t *testing.T) {
	t.Parallel()

	tc, err := gemini.NewTokenCounter("gemini-2.5-flash")
	require.NoError(t, err)

	t.Run("counts tokens in text", func(t *testing.T) {
		t.Parallel()

		count, err := tc.CountTokens(context.Background(), "Welcome to the wiki!")

		require.NoError(t, err)
		assert.Positive(t, count)
	})

	t.Run("empty string returns zero", func(t *testing.T) {
		t.Parallel()

		count, err := tc.CountTokens(context.Background(), "")

		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})

	t.Run("sums tokens across record contents", func(t *testing.T) {
		t.Parallel()

		recs := []*wikidex.Record{
			{Title: "FAQ", Content: "Questions and answers live here."},
			{Title: "Guide", Content: "Welcome to the community wiki."},
		}

		total, err := tc.CountRecordTokens(context.Background(), recs)
		require.NoError(t, err)

		first, err := tc.CountTokens(context.Background(), recs[0].Content)
		require.NoError(t, err)
		second, err := tc.CountTokens(context.Background(), recs[1].Content)
		require.NoError(t, err)

		assert.Equal(t, first+second, total)
	})

	t.Run("no records count zero tokens", func(t *testing.T) {
		t.Parallel()

		total, err := tc.CountRecordTokens(context.Background(), nil)
		require.NoError(t, err)
		assert.Equal(t, 0, total)
	})

	t.Run("longer text returns more tokens", func(t *testing.T) {
		t.Parallel()

		shortCount, err := tc.CountTokens(context.Background(), "FAQ")
		require.NoError(t, err)

		longCount, err := tc.CountTokens(context.Background(), "The frequently asked questions page collects answers the community gives most often.")
		require.NoError(t, err)

		assert.Greater(t, longCount, shortCount)
	})
}
