package enhance

import (
	"strings"

	"github.com/fwojciec/linkdrop"
)

// meaningfulTitleMinLen is the length below which a scraped title is
// treated as a useless default ("Home", the bare domain, etc.).
const meaningfulTitleMinLen = 10

// Default is the cleanup applied to content types without a dedicated
// enhancer. A title is meaningful only if it differs from the bare
// domain and URL and exceeds a short-length threshold; a non-meaningful
// title with no reader content backing the item is cleared to the empty
// string rather than kept as a useless default.
func Default(in Input) (linkdrop.ContentType, *linkdrop.Metadata) {
	md := in.Metadata.Clone()

	title := strings.TrimSpace(linkdrop.GetString(md.Title))
	if md.Title != nil && !meaningfulTitle(title, in.URL, md.Domain) && in.ReaderContent == "" {
		md.Title = linkdrop.Ptr("")
	}

	return in.Type, md
}

func meaningfulTitle(title, url, domain string) bool {
	if title == "" {
		return false
	}
	if strings.EqualFold(title, domain) || strings.EqualFold(title, url) {
		return false
	}
	stripped := strings.TrimPrefix(strings.TrimPrefix(url, "https://"), "http://")
	if strings.EqualFold(title, stripped) {
		return false
	}
	return len(title) > meaningfulTitleMinLen
}
