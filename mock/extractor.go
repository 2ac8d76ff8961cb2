package mock

import "github.com/wikidex/wikidex"

var _ wikidex.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of wikidex.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*wikidex.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*wikidex.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ wikidex.Converter = (*Converter)(nil)

// Converter is a mock implementation of wikidex.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
