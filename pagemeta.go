package linkdrop

// PageMeta holds the raw metadata scraped from a page's head: the title
// tag, standard meta tags, Open Graph properties and Twitter card tags.
// It is what the generic source adapter sees before any normalization.
type PageMeta struct {
	Title         string
	Description   string
	ImageURL      string
	SiteName      string
	Canonical     string
	PublishedTime string

	// Open Graph typed fields.
	OGType        string
	OGVideoURL    string
	OGVideoType   string
	OGVideoWidth  int
	OGVideoHeight int

	// Twitter card fallbacks.
	TwitterCard    string
	TwitterCreator string

	// OG holds every og:* property as scraped, keyed without the "og:"
	// prefix. Kept verbatim so later stages can consult tags the typed
	// fields don't cover.
	OG map[string]string
}

// MetaParser extracts PageMeta from raw HTML.
type MetaParser interface {
	Parse(html string) (*PageMeta, error)
}
