package wikidex

// ExtractResult holds the extracted content from an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata, if any.
	Title string

	// Text is the readable content with markup and boilerplate removed.
	Text string
}

// Extractor extracts readable content from HTML pages.
type Extractor interface {
	// Extract processes raw HTML and returns the readable content.
	Extract(html string) (*ExtractResult, error)
}
