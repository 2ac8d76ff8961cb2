// Package goquery provides plain-text extraction from wiki page HTML.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/wikidex/wikidex"
)

// Ensure Extractor implements wikidex.Extractor at compile time.
var _ wikidex.Extractor = (*Extractor)(nil)

// Extractor strips markup from rendered wiki HTML and returns the
// visible text. It is the default extractor: MediaWiki page HTML is
// already just the article body, so full readability heuristics are
// unnecessary.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the visible text of the HTML. Script and style
// elements are removed, lines are trimmed, and blank lines collapsed.
func (e *Extractor) Extract(rawHTML string) (*wikidex.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, wikidex.Errorf(wikidex.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, wikidex.Errorf(wikidex.EINVALID, "failed to parse HTML: %v", err)
	}

	doc.Find("script, style, noscript").Remove()

	title := strings.TrimSpace(doc.Find("h1").First().Text())

	var lines []string
	for _, line := range strings.Split(doc.Text(), "\n") {
		line = strings.Join(strings.Fields(line), " ")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}

	return &wikidex.ExtractResult{
		Title: title,
		Text:  strings.Join(lines, "\n"),
	}, nil
}
