// Package wikitext renders raw MediaWiki markup to plain text.
package wikitext

import (
	"strings"

	"github.com/m-m-f/gowiki"
)

// Renderer converts raw wikitext from SQL dumps or XML exports into
// plain text, stripping link brackets, templates, and emphasis
// markers. Rendering failures fall back to the raw markup so a single
// odd page never aborts a dump parse.
type Renderer struct{}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render returns the plain text of the given wikitext. The page title
// is needed by the parser to resolve self-references.
func (r *Renderer) Render(title, text string) string {
	article, err := gowiki.ParseArticle(title, text, &gowiki.DummyPageGetter{})
	if err != nil {
		return text
	}

	plain := strings.TrimSpace(article.GetText())
	if plain == "" {
		return text
	}
	return plain
}
