package linkdrop

import "context"

// SourceResult is one adapter's contribution to an analysis.
type SourceResult struct {
	// Metadata holds the fields this source could see. Absent fields are
	// nil; the merge step only overwrites on presence.
	Metadata *Metadata

	// Authoritative marks results from a structured, platform-official
	// API. Authoritative fields are trusted over generic scraping and
	// suppress later generic-title cleanup for the content type.
	Authoritative bool
}

// SourceAdapter fetches partial metadata for a URL from one source.
//
// Fetch returns (nil, nil) when the source has no data for the URL (an
// unsupported content type, a missing identifier in the URL, a denied
// quota). It returns an error for transient network failures and for
// programming or configuration faults; the orchestrator logs the error
// and degrades it to "no data" — nothing an adapter returns can fail an
// analysis. Adapters must honor context cancellation on every outbound
// call.
type SourceAdapter interface {
	// Name identifies the adapter in logs and quota records.
	Name() string

	// Available reports whether the adapter is configured to run, e.g.
	// whether required credentials are present. Missing credentials are
	// reported here, never as a Fetch error.
	Available() bool

	// Fetch returns the source's partial metadata for the URL.
	Fetch(ctx context.Context, url string) (*SourceResult, error)
}

// Fetcher retrieves HTML from URLs. Implementations may use plain HTTP
// or browser automation for JavaScript-rendered pages.
type Fetcher interface {
	// Fetch returns the page HTML. The context controls timeout and
	// cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}

// ExtractResult holds reader-view content extracted from an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML, with boilerplate
	// (nav, footer, sidebar, ads) removed.
	ContentHTML string

	// Excerpt is a short summary when the extractor produced one.
	Excerpt string

	// Byline is the article author when detected.
	Byline string

	// ImageURL is the lead image when detected.
	ImageURL string

	// SiteName is the publishing site's name when detected.
	SiteName string
}

// ContentExtractor extracts main content from HTML pages, removing
// boilerplate.
type ContentExtractor interface {
	Extract(html string) (*ExtractResult, error)
}

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms clean HTML (e.g. from a ContentExtractor) into
	// Markdown.
	Convert(html string) (string, error)
}
