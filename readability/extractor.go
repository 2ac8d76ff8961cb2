// Package readability extracts main content using go-readability.
package readability

import (
	"strings"

	"github.com/go-shiori/go-readability"
	"github.com/wikidex/wikidex"
)

// Ensure Extractor implements wikidex.Extractor at compile time.
var _ wikidex.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
// Useful for wikis whose skins wrap articles in heavy navigation
// chrome that the plain-text extractor would pick up.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content as text.
func (e *Extractor) Extract(rawHTML string) (*wikidex.ExtractResult, error) {
	if rawHTML == "" {
		return nil, wikidex.Errorf(wikidex.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &wikidex.ExtractResult{
		Title: article.Title,
		Text:  strings.TrimSpace(article.TextContent),
	}, nil
}
