package linkdrop

import (
	"net/url"
	"strings"
)

// YouTubeVideoID extracts the 11-character video ID from any of the
// common YouTube URL shapes (watch, shorts, embed, live, youtu.be).
// Returns "" when the URL carries no video ID.
func YouTubeVideoID(rawURL string) string {
	u, err := url.Parse(NormalizeURL(rawURL))
	if err != nil {
		return ""
	}
	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")

	if host == "youtu.be" {
		return strings.Trim(u.Path, "/")
	}
	if !strings.HasSuffix(host, "youtube.com") {
		return ""
	}

	if v := u.Query().Get("v"); v != "" {
		return v
	}
	for _, prefix := range []string{"/shorts/", "/embed/", "/live/"} {
		if rest, ok := strings.CutPrefix(u.Path, prefix); ok {
			if i := strings.IndexByte(rest, '/'); i >= 0 {
				rest = rest[:i]
			}
			return rest
		}
	}
	return ""
}

// YouTubeThumbnailURL returns the canonical high-resolution thumbnail
// for a video ID. The scheme is guaranteed-available for every video,
// which makes it more reliable than whatever thumbnail a source supplied.
func YouTubeThumbnailURL(videoID string) string {
	return "https://img.youtube.com/vi/" + videoID + "/maxresdefault.jpg"
}
