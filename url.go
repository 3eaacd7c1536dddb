package linkdrop

import (
	"net/url"
	"strings"
)

// IsURLLike reports whether the input looks like a URL: either it carries
// an http(s) scheme, or it is a single domain-shaped token ("example.com"
// or "example.com/path"). Free text that fails this check is treated as a
// note and never hits the network.
func IsURLLike(input string) bool {
	s := strings.TrimSpace(input)
	if s == "" {
		return false
	}
	if strings.ContainsAny(s, " \t\n") {
		return false
	}
	if strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") {
		u, err := url.Parse(s)
		return err == nil && u.Host != ""
	}
	// Bare domain: host must contain a dot and a plausible TLD.
	host := s
	if i := strings.IndexAny(host, "/?#"); i >= 0 {
		host = host[:i]
	}
	if !strings.Contains(host, ".") {
		return false
	}
	last := host[strings.LastIndex(host, ".")+1:]
	if len(last) < 2 {
		return false
	}
	for _, r := range last {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}

// NormalizeURL trims the input and adds an https scheme to bare
// domain-shaped strings. URL-shaped inputs come back parseable; anything
// else comes back unchanged.
func NormalizeURL(input string) string {
	s := strings.TrimSpace(input)
	if s == "" {
		return s
	}
	if strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") {
		return s
	}
	if IsURLLike(s) {
		return "https://" + s
	}
	return s
}

// ExtractDomain returns the lower-cased host of the URL with any "www."
// prefix stripped, or "" when the input is not parseable as a URL.
func ExtractDomain(rawURL string) string {
	u, err := url.Parse(NormalizeURL(rawURL))
	if err != nil || u.Host == "" {
		return ""
	}
	host := strings.ToLower(u.Hostname())
	return strings.TrimPrefix(host, "www.")
}
