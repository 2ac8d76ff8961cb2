package htmltomarkdown_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wikidex/wikidex"
	"github.com/wikidex/wikidex/htmltomarkdown"
)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts headings and paragraphs", func(t *testing.T) {
		t.Parallel()

		c := htmltomarkdown.NewConverter()
		md, err := c.Convert(`<h1>Getting Started</h1><p>Welcome to the <strong>wiki</strong>.</p>`)
		require.NoError(t, err)

		assert.Contains(t, md, "# Getting Started")
		assert.Contains(t, md, "**wiki**")
	})

	t.Run("converts links", func(t *testing.T) {
		t.Parallel()

		c := htmltomarkdown.NewConverter()
		md, err := c.Convert(`<p>See the <a href="https://example.com/wiki/FAQ">FAQ</a>.</p>`)
		require.NoError(t, err)

		assert.Contains(t, md, "[FAQ](https://example.com/wiki/FAQ)")
	})

	t.Run("converts tables", func(t *testing.T) {
		t.Parallel()

		c := htmltomarkdown.NewConverter()
		md, err := c.Convert(`<table><tr><th>Name</th></tr><tr><td>Guide</td></tr></table>`)
		require.NoError(t, err)

		assert.Contains(t, md, "| Name |")
		assert.Contains(t, md, "| Guide |")
	})

	t.Run("drops section edit links and citation markers", func(t *testing.T) {
		t.Parallel()

		c := htmltomarkdown.NewConverter()
		md, err := c.Convert(`<h2>History<span class="mw-editsection">[<a href="/edit">edit</a>]</span></h2>` +
			`<p>The wiki opened in 2019.<sup class="reference">[1]</sup></p>`)
		require.NoError(t, err)

		assert.Contains(t, md, "## History")
		assert.Contains(t, md, "The wiki opened in 2019.")
		assert.NotContains(t, md, "edit")
		assert.NotContains(t, md, "[1]")
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		c := htmltomarkdown.NewConverter()
		_, err := c.Convert("   ")
		require.Error(t, err)
		assert.Equal(t, wikidex.EINVALID, wikidex.ErrorCode(err))
	})
}
