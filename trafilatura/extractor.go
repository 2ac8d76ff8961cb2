// Package trafilatura extracts main content using go-trafilatura.
package trafilatura

import (
	"errors"
	"strings"

	"github.com/markusmobius/go-trafilatura"
	"github.com/wikidex/wikidex"
	"golang.org/x/net/html"
)

// Ensure Extractor implements wikidex.Extractor at compile time.
var _ wikidex.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content as text.
func (e *Extractor) Extract(rawHTML string) (*wikidex.ExtractResult, error) {
	if rawHTML == "" {
		return nil, errors.New("empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	text := strings.TrimSpace(result.ContentText)
	if text == "" && result.ContentNode != nil {
		text = strings.TrimSpace(nodeText(result.ContentNode))
	}

	return &wikidex.ExtractResult{
		Title: result.Metadata.Title,
		Text:  text,
	}, nil
}

// nodeText collects the text content of an html.Node subtree.
func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}
