package scrape_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wikidex/wikidex/scrape"
)

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "512 B", scrape.FormatBytes(512))
	assert.Equal(t, "1.5 KB", scrape.FormatBytes(1536))
	assert.Equal(t, "2.0 MB", scrape.FormatBytes(2*1024*1024))
}

func TestFormatTokens(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "~42 tokens", scrape.FormatTokens(42))
	assert.Equal(t, "~2k tokens", scrape.FormatTokens(1501))
}
