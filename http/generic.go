package http

import (
	"context"
	"strings"

	"github.com/fwojciec/linkdrop"
)

// Ensure GenericAdapter implements linkdrop.SourceAdapter at compile time.
var _ linkdrop.SourceAdapter = (*GenericAdapter)(nil)

// GenericAdapter is the generic page scraper. It always runs first and
// seeds the base metadata record from the page's title, meta tags and
// Open Graph properties. All raw og:* pairs are copied into
// ExtraData["og"] for later stages.
type GenericAdapter struct {
	fetcher linkdrop.Fetcher
	parser  linkdrop.MetaParser
}

// NewGenericAdapter creates a GenericAdapter over the given fetcher and
// meta parser.
func NewGenericAdapter(fetcher linkdrop.Fetcher, parser linkdrop.MetaParser) *GenericAdapter {
	return &GenericAdapter{fetcher: fetcher, parser: parser}
}

// Name identifies the adapter.
func (a *GenericAdapter) Name() string { return "generic" }

// Available always reports true; generic scraping needs no credentials.
func (a *GenericAdapter) Available() bool { return true }

// Fetch retrieves the page and scrapes head metadata. XML feed bodies
// (RSS/Atom) are parsed as feeds instead of HTML.
func (a *GenericAdapter) Fetch(ctx context.Context, url string) (*linkdrop.SourceResult, error) {
	body, err := a.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	if looksLikeFeed(body) {
		md, err := parseFeed(body)
		if err != nil {
			return nil, err
		}
		md.Domain = linkdrop.ExtractDomain(url)
		return &linkdrop.SourceResult{Metadata: md}, nil
	}

	meta, err := a.parser.Parse(body)
	if err != nil {
		return nil, err
	}

	md := &linkdrop.Metadata{Domain: linkdrop.ExtractDomain(url)}
	if meta.Title != "" {
		md.Title = linkdrop.Ptr(meta.Title)
	}
	if meta.Description != "" {
		md.Description = linkdrop.Ptr(meta.Description)
	}
	if meta.ImageURL != "" {
		md.ThumbnailURL = linkdrop.Ptr(meta.ImageURL)
	}
	if meta.PublishedTime != "" {
		md.PublishedDate = linkdrop.Ptr(meta.PublishedTime)
	}
	if meta.OGVideoURL != "" {
		md.VideoURL = linkdrop.Ptr(meta.OGVideoURL)
	}
	if meta.OGVideoType != "" {
		md.VideoType = linkdrop.Ptr(meta.OGVideoType)
	}
	if meta.OGVideoWidth > 0 {
		md.VideoWidth = linkdrop.Ptr(meta.OGVideoWidth)
	}
	if meta.OGVideoHeight > 0 {
		md.VideoHeight = linkdrop.Ptr(meta.OGVideoHeight)
	}

	extra := map[string]any{}
	if len(meta.OG) > 0 {
		og := make(map[string]any, len(meta.OG))
		for k, v := range meta.OG {
			og[k] = v
		}
		extra["og"] = og
	}
	if meta.SiteName != "" {
		extra["siteName"] = meta.SiteName
	}
	if meta.Canonical != "" {
		extra["canonical"] = meta.Canonical
	}
	if meta.TwitterCreator != "" {
		extra["twitterCreator"] = meta.TwitterCreator
	}
	if len(extra) > 0 {
		md.ExtraData = extra
	}

	return &linkdrop.SourceResult{Metadata: md}, nil
}

// looksLikeFeed sniffs for an XML feed document. The check is cheap and
// deliberately narrow: a leading XML declaration or rss/feed root tag.
func looksLikeFeed(body string) bool {
	head := strings.TrimSpace(body)
	if len(head) > 512 {
		head = head[:512]
	}
	if strings.HasPrefix(head, "<?xml") {
		return strings.Contains(head, "<rss") || strings.Contains(head, "<feed")
	}
	return strings.HasPrefix(head, "<rss") || strings.HasPrefix(head, "<feed")
}
