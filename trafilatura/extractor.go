// Package trafilatura implements content extraction using
// go-trafilatura, which tends to outperform readability on news and
// documentation pages and carries richer article metadata.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/linkdrop"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements linkdrop.ContentExtractor at compile time.
var _ linkdrop.ContentExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content plus the
// article metadata trafilatura detected.
func (e *Extractor) Extract(rawHTML string) (*linkdrop.ExtractResult, error) {
	if rawHTML == "" {
		return nil, linkdrop.Errorf(linkdrop.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &linkdrop.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
		Excerpt:     strings.TrimSpace(result.Metadata.Description),
		Byline:      strings.TrimSpace(result.Metadata.Author),
		SiteName:    result.Metadata.Sitename,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
