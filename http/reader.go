package http

import (
	"context"
	"net/url"
	"path"
	"strings"

	"github.com/fwojciec/linkdrop"
)

// Ensure ReaderAdapter implements linkdrop.SourceAdapter at compile time.
var _ linkdrop.SourceAdapter = (*ReaderAdapter)(nil)

// ReaderAdapter produces reader-view content for a URL: it fetches the
// page, extracts the main content with a ContentExtractor and converts
// it to Markdown for the item's body text. Byline, excerpt and lead
// image ride along as partial fields.
type ReaderAdapter struct {
	fetcher   linkdrop.Fetcher
	extractor linkdrop.ContentExtractor
	converter linkdrop.Converter
}

// NewReaderAdapter creates a ReaderAdapter.
func NewReaderAdapter(fetcher linkdrop.Fetcher, extractor linkdrop.ContentExtractor, converter linkdrop.Converter) *ReaderAdapter {
	return &ReaderAdapter{fetcher: fetcher, extractor: extractor, converter: converter}
}

// Name identifies the adapter.
func (a *ReaderAdapter) Name() string { return "reader" }

// Available always reports true; reader extraction needs no credentials.
func (a *ReaderAdapter) Available() bool { return true }

// Fetch returns reader-view metadata, or no data for content the
// extractor cannot process (PDFs and other binary documents).
func (a *ReaderAdapter) Fetch(ctx context.Context, rawURL string) (*linkdrop.SourceResult, error) {
	if isBinaryDocument(rawURL) {
		return nil, nil
	}

	html, err := a.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	result, err := a.extractor.Extract(html)
	if err != nil {
		// Extraction failure on an otherwise fetchable page is "no data",
		// not an analysis failure.
		return nil, nil
	}
	if strings.TrimSpace(result.ContentHTML) == "" {
		return nil, nil
	}

	markdown, err := a.converter.Convert(result.ContentHTML)
	if err != nil {
		return nil, nil
	}
	markdown = strings.TrimSpace(markdown)
	if markdown == "" {
		return nil, nil
	}

	md := &linkdrop.Metadata{
		Domain:  linkdrop.ExtractDomain(rawURL),
		Content: linkdrop.Ptr(markdown),
	}
	if result.Byline != "" {
		md.Author = linkdrop.Ptr(result.Byline)
	}
	if result.Excerpt != "" {
		md.Description = linkdrop.Ptr(result.Excerpt)
	}
	if result.ImageURL != "" {
		md.ThumbnailURL = linkdrop.Ptr(result.ImageURL)
	}
	if result.SiteName != "" {
		md.ExtraData = map[string]any{"siteName": result.SiteName}
	}

	return &linkdrop.SourceResult{Metadata: md}, nil
}

// isBinaryDocument reports whether the URL points at a document the
// reader upstream rejects (it answers HTTP 422 for PDFs).
func isBinaryDocument(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	switch strings.ToLower(path.Ext(u.Path)) {
	case ".pdf", ".zip", ".exe", ".dmg", ".tar", ".gz":
		return true
	}
	return false
}
