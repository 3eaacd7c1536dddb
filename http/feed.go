package http

import (
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/linkdrop"
)

// parseFeed extracts channel-level metadata from an RSS or Atom feed
// body. Users paste feed URLs like any other link; the channel title and
// description make a far better saved item than raw XML scraped as HTML.
func parseFeed(body string) (*linkdrop.Metadata, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(body); err != nil {
		return nil, linkdrop.Errorf(linkdrop.EINVALID, "failed to parse feed XML: %v", err)
	}

	root := doc.Root()
	if root == nil {
		return nil, linkdrop.Errorf(linkdrop.EINVALID, "feed has no root element")
	}

	md := &linkdrop.Metadata{}
	extra := map[string]any{}

	switch root.Tag {
	case "rss":
		extra["format"] = "rss"
		channel := root.SelectElement("channel")
		if channel == nil {
			return nil, linkdrop.Errorf(linkdrop.EINVALID, "rss feed has no channel element")
		}
		setIfText(&md.Title, channel.SelectElement("title"))
		setIfText(&md.Description, channel.SelectElement("description"))
		if img := channel.SelectElement("image"); img != nil {
			setIfText(&md.ThumbnailURL, img.SelectElement("url"))
		}
		extra["itemCount"] = len(channel.SelectElements("item"))
	case "feed":
		extra["format"] = "atom"
		setIfText(&md.Title, root.SelectElement("title"))
		setIfText(&md.Description, root.SelectElement("subtitle"))
		setIfText(&md.ThumbnailURL, root.SelectElement("logo"))
		if author := root.SelectElement("author"); author != nil {
			setIfText(&md.Author, author.SelectElement("name"))
		}
		extra["itemCount"] = len(root.SelectElements("entry"))
	default:
		return nil, linkdrop.Errorf(linkdrop.EINVALID, "unrecognized feed root element %q", root.Tag)
	}

	md.ExtraData = map[string]any{"feed": extra}
	return md, nil
}

func setIfText(dst **string, el *etree.Element) {
	if el == nil {
		return
	}
	if text := strings.TrimSpace(el.Text()); text != "" {
		*dst = linkdrop.Ptr(text)
	}
}
