package mock

import "github.com/fwojciec/linkdrop"

var _ linkdrop.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor is a mock implementation of linkdrop.ContentExtractor.
type ContentExtractor struct {
	ExtractFn func(html string) (*linkdrop.ExtractResult, error)
}

func (e *ContentExtractor) Extract(html string) (*linkdrop.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ linkdrop.Converter = (*Converter)(nil)

// Converter is a mock implementation of linkdrop.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

var _ linkdrop.MetaParser = (*MetaParser)(nil)

// MetaParser is a mock implementation of linkdrop.MetaParser.
type MetaParser struct {
	ParseFn func(html string) (*linkdrop.PageMeta, error)
}

func (p *MetaParser) Parse(html string) (*linkdrop.PageMeta, error) {
	return p.ParseFn(html)
}
