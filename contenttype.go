package linkdrop

// ContentType is the closed category assigned to a captured URL.
// Exactly one value per analysis result. The classifier assigns a
// provisional value from URL patterns alone; the enhancer stage may
// refine it using signals only available after extraction.
type ContentType string

// Content type taxonomy.
const (
	TypeYouTube   ContentType = "youtube"
	TypeVideo     ContentType = "video"
	TypeAudio     ContentType = "audio"
	TypeX         ContentType = "x"
	TypeGitHub    ContentType = "github"
	TypeReddit    ContentType = "reddit"
	TypeInstagram ContentType = "instagram"
	TypeTikTok    ContentType = "tiktok"
	TypeAmazon    ContentType = "amazon"
	TypeProduct   ContentType = "product"
	TypeArticle   ContentType = "article"
	TypeMovie     ContentType = "movie"
	TypeTVShow    ContentType = "tv-show"
	TypeImage     ContentType = "image"
	TypePDF       ContentType = "pdf"
	TypeBook      ContentType = "book"
	TypeBookmark  ContentType = "bookmark"
	TypeNote      ContentType = "note"
)

// Generic reports whether the type is one of the fallback categories
// assigned when no pattern matched.
func (c ContentType) Generic() bool {
	return c == TypeBookmark || c == TypeNote
}

// ContentTypes returns all values in the taxonomy.
func ContentTypes() []ContentType {
	return []ContentType{
		TypeYouTube, TypeVideo, TypeAudio, TypeX, TypeGitHub, TypeReddit,
		TypeInstagram, TypeTikTok, TypeAmazon, TypeProduct, TypeArticle,
		TypeMovie, TypeTVShow, TypeImage, TypePDF, TypeBook,
		TypeBookmark, TypeNote,
	}
}

// Valid reports whether c is a member of the taxonomy.
func (c ContentType) Valid() bool {
	for _, t := range ContentTypes() {
		if c == t {
			return true
		}
	}
	return false
}
