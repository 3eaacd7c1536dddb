// Package readability implements content extraction using the
// go-shiori/go-readability port of Mozilla's Readability.
package readability

import (
	"strings"

	"github.com/fwojciec/linkdrop"
	readability "github.com/go-shiori/go-readability"
)

// Ensure Extractor implements linkdrop.ContentExtractor at compile time.
var _ linkdrop.ContentExtractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content together with
// the article metadata readability detected (byline, excerpt, lead
// image, site name).
func (e *Extractor) Extract(rawHTML string) (*linkdrop.ExtractResult, error) {
	if rawHTML == "" {
		return nil, linkdrop.Errorf(linkdrop.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &linkdrop.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
		Excerpt:     strings.TrimSpace(article.Excerpt),
		Byline:      strings.TrimSpace(article.Byline),
		ImageURL:    article.Image,
		SiteName:    article.SiteName,
	}, nil
}
