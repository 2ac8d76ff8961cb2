// Package htmltomarkdown converts rendered wiki page HTML to Markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/PuerkitoBio/goquery"
	"github.com/wikidex/wikidex"
)

// chromeSelector matches MediaWiki page furniture that must not reach
// stored records: the [edit] link rendered inside every section heading
// and citation superscripts like [1].
const chromeSelector = "span.mw-editsection, sup.reference"

var _ wikidex.Converter = (*Converter)(nil)

// Converter renders wiki page HTML as Markdown, keeping headings,
// links, and tables intact while dropping MediaWiki chrome.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms wiki HTML content into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", wikidex.Errorf(wikidex.EINVALID, "empty HTML input")
	}

	cleaned, err := stripChrome(html)
	if err != nil {
		return "", err
	}

	result, err := c.conv.ConvertString(cleaned)
	if err != nil {
		return "", err
	}

	return result, nil
}

// stripChrome removes MediaWiki page furniture before conversion.
func stripChrome(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", err
	}
	doc.Find(chromeSelector).Remove()
	return doc.Html()
}
