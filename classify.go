package linkdrop

import (
	"net/url"
	"path"
	"strings"
)

// Classifier confidence levels per rule group. These reflect how specific
// the matching signal was; the final analysis confidence is computed
// separately once metadata is available.
const (
	confidenceDomainRule = 0.9
	confidenceExtension  = 0.8
	confidencePath       = 0.6
	confidenceFallback   = 0.5
)

// domainRule maps a host substring to a content type. Rules are evaluated
// in declared order; the first match wins.
type domainRule struct {
	pattern string
	ct      ContentType
}

var domainRules = []domainRule{
	{"youtube.com", TypeYouTube},
	{"youtu.be", TypeYouTube},
	{"x.com", TypeX},
	{"twitter.com", TypeX},
	{"github.com", TypeGitHub},
	{"reddit.com", TypeReddit},
	{"instagram.com", TypeInstagram},
	{"tiktok.com", TypeTikTok},
	{"amazon.", TypeAmazon},
	{"imdb.com", TypeMovie},
	{"vimeo.com", TypeVideo},
	{"twitch.tv", TypeVideo},
	{"soundcloud.com", TypeAudio},
	{"open.spotify.com", TypeAudio},
	{"imgur.com", TypeImage},
	{"goodreads.com", TypeBook},
	{"medium.com", TypeArticle},
	{"substack.com", TypeArticle},
}

var extensionRules = map[string]ContentType{
	".jpg":  TypeImage,
	".jpeg": TypeImage,
	".png":  TypeImage,
	".gif":  TypeImage,
	".webp": TypeImage,
	".svg":  TypeImage,
	".pdf":  TypePDF,
	".mp3":  TypeAudio,
	".wav":  TypeAudio,
	".ogg":  TypeAudio,
	".m4a":  TypeAudio,
	".flac": TypeAudio,
	".mp4":  TypeVideo,
	".mov":  TypeVideo,
	".webm": TypeVideo,
	".mkv":  TypeVideo,
}

// pathRule maps a path segment to a content type, as a last resort before
// the generic fallback.
type pathRule struct {
	segment string
	ct      ContentType
}

var pathRules = []pathRule{
	{"/product/", TypeProduct},
	{"/products/", TypeProduct},
	{"/dp/", TypeProduct},
	{"/docs/", TypeArticle},
	{"/blog/", TypeArticle},
	{"/article/", TypeArticle},
	{"/articles/", TypeArticle},
	{"/news/", TypeArticle},
}

// Classify maps an input string to a provisional content type. Rule
// groups are evaluated in a fixed order: known-domain rules, then
// file-extension rules, then path heuristics, then the default. The
// groups are mutually exclusive checks, so the first matching rule wins
// and ties are impossible.
//
// Classify is a pure function; the returned confidence reflects only how
// specific the matching rule group was. The result is provisional: the
// enhancer stage may override it with post-extraction signals.
func Classify(input string) (ContentType, float64) {
	if !IsURLLike(input) {
		return TypeNote, confidenceDomainRule
	}

	u, err := url.Parse(NormalizeURL(input))
	if err != nil || u.Host == "" {
		return TypeNote, confidenceDomainRule
	}

	host := strings.ToLower(u.Hostname())
	host = strings.TrimPrefix(host, "www.")

	for _, rule := range domainRules {
		if strings.Contains(host, rule.pattern) {
			return rule.ct, confidenceDomainRule
		}
	}

	if ext := strings.ToLower(path.Ext(u.Path)); ext != "" {
		if ct, ok := extensionRules[ext]; ok {
			return ct, confidenceExtension
		}
	}

	lowerPath := strings.ToLower(u.Path)
	if !strings.HasSuffix(lowerPath, "/") {
		lowerPath += "/"
	}
	for _, rule := range pathRules {
		if strings.Contains(lowerPath, rule.segment) {
			return rule.ct, confidencePath
		}
	}

	return TypeBookmark, confidenceFallback
}
