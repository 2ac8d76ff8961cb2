package goquery_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wikidex/wikidex"
	"github.com/wikidex/wikidex/goquery"
)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("returns visible text without markup", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()
		result, err := e.Extract(`<div><p>First paragraph.</p><p>Second   paragraph.</p></div>`)
		require.NoError(t, err)
		assert.Equal(t, "First paragraph.Second paragraph.", result.Text)
	})

	t.Run("removes script and style elements", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()
		result, err := e.Extract(`<div>
			<style>p { color: red }</style>
			<p>Visible.</p>
			<script>alert("hidden")</script>
		</div>`)
		require.NoError(t, err)
		assert.Equal(t, "Visible.", result.Text)
	})

	t.Run("collapses blank lines and trims whitespace", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()
		result, err := e.Extract("<div>\n\n  <p>One</p>\n\n\n  <p>Two</p>\n\n</div>")
		require.NoError(t, err)
		assert.Equal(t, "One\nTwo", result.Text)
	})

	t.Run("uses the first heading as the title", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()
		result, err := e.Extract(`<h1> Getting Started </h1><p>Intro.</p>`)
		require.NoError(t, err)
		assert.Equal(t, "Getting Started", result.Title)
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()
		_, err := e.Extract("   ")
		require.Error(t, err)
		assert.Equal(t, wikidex.EINVALID, wikidex.ErrorCode(err))
	})
}
