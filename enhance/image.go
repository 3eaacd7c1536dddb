package enhance

import (
	"net/url"
	"path"
	"regexp"
	"strings"

	"github.com/fwojciec/linkdrop"
)

// First markdown image in reader output: ![alt](src)
var markdownImageRe = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]+)\)`)

// Image normalizes a raw image link: the URL itself is the thumbnail,
// the decoded filename (query string stripped) becomes the description,
// and the scraped title is cleared. For image-host pages (imgur) the
// reader output, when present, supplies the first image's alt text as a
// better description; the reader's raw body text is discarded either
// way — a page of image markup is not item content.
func Image(in Input) (linkdrop.ContentType, *linkdrop.Metadata) {
	md := in.Metadata.Clone()

	md.Title = linkdrop.Ptr("")
	md.Content = nil
	md.ThumbnailURL = linkdrop.Ptr(in.URL)

	desc := imageFilename(in.URL)
	if strings.Contains(linkdrop.ExtractDomain(in.URL), "imgur.com") && in.ReaderContent != "" {
		if m := markdownImageRe.FindStringSubmatch(in.ReaderContent); m != nil {
			if alt := strings.TrimSpace(m[1]); alt != "" {
				desc = alt
			}
			if src := strings.TrimSpace(m[2]); src != "" {
				md.ThumbnailURL = linkdrop.Ptr(src)
			}
		}
	}
	md.Description = linkdrop.Ptr(desc)

	return in.Type, md
}

// imageFilename returns the URL-decoded final path segment without the
// query string.
func imageFilename(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	name := path.Base(u.Path)
	if name == "/" || name == "." {
		return ""
	}
	if decoded, err := url.PathUnescape(name); err == nil {
		name = decoded
	}
	return name
}
