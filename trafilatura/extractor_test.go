package trafilatura_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wikidex/wikidex/trafilatura"
)

const articleHTML = `<!DOCTYPE html>
<html>
<head><title>Getting Started</title></head>
<body>
	<article>
		<h1>Getting Started</h1>
		<p>This wiki collects setup notes for the community server. The guide below
		walks through account creation, joining the right channels, and finding
		the most useful starting pages for new members.</p>
		<p>Once registered, head to the FAQ for answers to common questions.</p>
	</article>
</body>
</html>`

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts article text", func(t *testing.T) {
		t.Parallel()

		e := trafilatura.NewExtractor()
		result, err := e.Extract(articleHTML)
		require.NoError(t, err)

		assert.Contains(t, result.Text, "account creation")
		assert.Contains(t, result.Text, "head to the FAQ")
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		e := trafilatura.NewExtractor()
		_, err := e.Extract("")
		require.Error(t, err)
	})
}
