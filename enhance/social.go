package enhance

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/fwojciec/linkdrop"
)

// Page titles on X embed the post text in a few known shapes.
var (
	// `Some User on X: "hello world"` (optionally with a trailing site
	// suffix already stripped).
	socialTitleRe = regexp.MustCompile(`^(.+?) on (?:X|Twitter): [“"](.+)[”"]$`)

	// Trailing `/ X` or `/ Twitter` site suffix.
	socialSuffixRe = regexp.MustCompile(`\s*/\s*(?:X|Twitter)\s*$`)
)

// Social normalizes a post record. The post text belongs in Content, not
// in the scraped page title: when the authoritative API did not supply a
// body, the title is parsed for one. Title and description are cleared
// for this type, and the author is synthesized from display name and
// username.
func Social(in Input) (linkdrop.ContentType, *linkdrop.Metadata) {
	md := in.Metadata.Clone()

	title := socialSuffixRe.ReplaceAllString(linkdrop.GetString(md.Title), "")

	if linkdrop.GetString(md.Content) == "" && title != "" {
		if m := socialTitleRe.FindStringSubmatch(title); m != nil {
			md.Content = linkdrop.Ptr(m[2])
			if md.DisplayName == nil && m[1] != "" {
				md.DisplayName = linkdrop.Ptr(m[1])
			}
		} else {
			md.Content = linkdrop.Ptr(title)
		}
	}

	md.Title = linkdrop.Ptr("")
	md.Description = linkdrop.Ptr("")

	if md.Username == nil {
		if u := socialUsernameFromURL(in.URL); u != "" {
			md.Username = linkdrop.Ptr(u)
		}
	}

	if author := socialAuthor(md); author != "" {
		md.Author = linkdrop.Ptr(author)
	}

	return in.Type, md
}

// socialUsernameFromURL reads the handle from a post URL's first path
// segment, e.g. https://x.com/someuser/status/123.
func socialUsernameFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	segs := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(segs) == 0 || segs[0] == "" {
		return ""
	}
	switch strings.ToLower(segs[0]) {
	case "i", "home", "search", "explore", "hashtag", "intent":
		return ""
	}
	return strings.TrimPrefix(segs[0], "@")
}

// socialAuthor builds "<DisplayName> (@<username>)" when a display name
// is known, else "@<username>".
func socialAuthor(md *linkdrop.Metadata) string {
	username := strings.TrimPrefix(linkdrop.GetString(md.Username), "@")
	display := linkdrop.GetString(md.DisplayName)
	if display == "" {
		// An author set by an earlier source may already carry the
		// display name.
		if a := linkdrop.GetString(md.Author); a != "" && !strings.Contains(a, "(@") {
			display = a
		}
	}

	switch {
	case display != "" && username != "":
		return display + " (@" + username + ")"
	case username != "":
		return "@" + username
	default:
		return display
	}
}
