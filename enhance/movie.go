package enhance

import (
	"regexp"
	"strings"

	"github.com/fwojciec/linkdrop"
)

// Movie-site titles pack year, rating and genres into one string:
//
//	PCU (1994) ⭐ 6.6 | Comedy
//	Severance (TV Series 2022– ) ⭐ 8.7 | Drama, Mystery, Sci-Fi
var movieTitleRe = regexp.MustCompile(`^(.+?)\s*\((?:TV (?:Mini[- ]?)?Series\s*)?(\d{4}(?:\s*[–—-]\s*\d{0,4})?)\s*\)\s*⭐\s*([0-9.]+)\s*\|\s*(.+)$`)

// Substrings that mark a title/description pair as television rather
// than film.
var tvIndicators = []string{
	"tv series",
	"tv mini series",
	"miniseries",
	"season",
	"episode",
}

// MovieTV parses the packed title shape into clean fields: the title is
// rebuilt as "<Title> (<years>)", and rating and genres move into the
// description below any pre-existing text. A TV indicator in the title
// or description overrides a provisional movie classification to
// tv-show.
func MovieTV(in Input) (linkdrop.ContentType, *linkdrop.Metadata) {
	md := in.Metadata.Clone()
	ct := in.Type

	title := linkdrop.GetString(md.Title)
	desc := linkdrop.GetString(md.Description)

	if ct == linkdrop.TypeMovie && hasTVIndicator(title+" "+desc) {
		ct = linkdrop.TypeTVShow
	}

	m := movieTitleRe.FindStringSubmatch(title)
	if m == nil {
		return ct, md
	}
	name, years, rating, genres := m[1], normalizeYears(m[2]), m[3], strings.TrimSpace(m[4])

	md.Title = linkdrop.Ptr(name + " (" + years + ")")

	ratingLine := "⭐ " + rating + " | " + genres
	if desc != "" {
		md.Description = linkdrop.Ptr(desc + "\n\n" + ratingLine)
	} else {
		md.Description = linkdrop.Ptr(ratingLine)
	}

	return ct, md
}

func hasTVIndicator(text string) bool {
	lower := strings.ToLower(text)
	for _, indicator := range tvIndicators {
		if strings.Contains(lower, indicator) {
			return true
		}
	}
	return false
}

// normalizeYears collapses whitespace and exotic dashes in a year range:
// "2022– " becomes "2022-", "2015–2019" becomes "2015-2019".
func normalizeYears(years string) string {
	s := strings.NewReplacer("–", "-", "—", "-", " ", "").Replace(years)
	return s
}
