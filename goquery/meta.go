// Package goquery parses page-head metadata (title, meta tags, Open
// Graph, Twitter cards) out of raw HTML.
package goquery

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/linkdrop"
)

// Ensure MetaParser implements linkdrop.MetaParser at compile time.
var _ linkdrop.MetaParser = (*MetaParser)(nil)

// MetaParser extracts PageMeta from HTML using CSS selectors.
type MetaParser struct{}

// NewMetaParser creates a new MetaParser.
func NewMetaParser() *MetaParser {
	return &MetaParser{}
}

// Parse scrapes the document head. It never fails on missing tags; the
// only error case is HTML that cannot be tokenized at all.
func (p *MetaParser) Parse(html string) (*linkdrop.PageMeta, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, linkdrop.Errorf(linkdrop.EINVALID, "failed to parse HTML: %v", err)
	}

	meta := &linkdrop.PageMeta{OG: map[string]string{}}

	meta.Title = strings.TrimSpace(doc.Find("title").First().Text())
	meta.Description = metaContent(doc, "meta[name='description']")
	meta.Canonical, _ = doc.Find("link[rel='canonical']").First().Attr("href")

	// Collect every og:* property verbatim. First occurrence wins, which
	// matches how consumers of duplicated OG tags behave.
	doc.Find("meta[property]").Each(func(_ int, s *goquery.Selection) {
		prop, _ := s.Attr("property")
		content, ok := s.Attr("content")
		if !ok {
			return
		}
		key, isOG := strings.CutPrefix(prop, "og:")
		if !isOG || key == "" {
			// article:* properties ride along with OG on most pages.
			if prop == "article:published_time" && meta.PublishedTime == "" {
				meta.PublishedTime = content
			}
			return
		}
		if _, seen := meta.OG[key]; !seen {
			meta.OG[key] = content
		}
	})

	if v := meta.OG["title"]; v != "" {
		meta.Title = v
	}
	if v := meta.OG["description"]; v != "" {
		meta.Description = v
	}
	meta.ImageURL = meta.OG["image"]
	meta.SiteName = meta.OG["site_name"]
	meta.OGType = meta.OG["type"]
	meta.OGVideoURL = firstNonEmpty(meta.OG["video:url"], meta.OG["video"], meta.OG["video:secure_url"])
	meta.OGVideoType = meta.OG["video:type"]
	meta.OGVideoWidth = atoi(meta.OG["video:width"])
	meta.OGVideoHeight = atoi(meta.OG["video:height"])

	meta.TwitterCard = metaContent(doc, "meta[name='twitter:card']")
	meta.TwitterCreator = metaContent(doc, "meta[name='twitter:creator']")
	if meta.ImageURL == "" {
		meta.ImageURL = metaContent(doc, "meta[name='twitter:image']")
	}
	if meta.Description == "" {
		meta.Description = metaContent(doc, "meta[name='twitter:description']")
	}

	return meta, nil
}

func metaContent(doc *goquery.Document, selector string) string {
	content, _ := doc.Find(selector).First().Attr("content")
	return strings.TrimSpace(content)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func atoi(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
