package linkdrop_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fwojciec/linkdrop"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  linkdrop.ContentType
		conf  float64
	}{
		{"youtube watch", "https://www.youtube.com/watch?v=abc", linkdrop.TypeYouTube, 0.9},
		{"youtube short link", "https://youtu.be/abc", linkdrop.TypeYouTube, 0.9},
		{"x post", "https://x.com/user/status/123", linkdrop.TypeX, 0.9},
		{"twitter legacy domain", "https://twitter.com/user/status/123", linkdrop.TypeX, 0.9},
		{"github repo", "https://github.com/owner/repo", linkdrop.TypeGitHub, 0.9},
		{"reddit thread", "https://www.reddit.com/r/golang/comments/abc", linkdrop.TypeReddit, 0.9},
		{"instagram", "https://www.instagram.com/p/abc/", linkdrop.TypeInstagram, 0.9},
		{"tiktok", "https://www.tiktok.com/@user/video/123", linkdrop.TypeTikTok, 0.9},
		{"amazon com", "https://www.amazon.com/dp/B000000000", linkdrop.TypeAmazon, 0.9},
		{"amazon regional tld", "https://www.amazon.co.uk/dp/B000000000", linkdrop.TypeAmazon, 0.9},
		{"imdb", "https://www.imdb.com/title/tt0110791/", linkdrop.TypeMovie, 0.9},
		{"vimeo", "https://vimeo.com/123456", linkdrop.TypeVideo, 0.9},
		{"spotify", "https://open.spotify.com/track/abc", linkdrop.TypeAudio, 0.9},
		{"imgur", "https://imgur.com/gallery/abc", linkdrop.TypeImage, 0.9},
		{"goodreads", "https://www.goodreads.com/book/show/123", linkdrop.TypeBook, 0.9},
		{"medium", "https://medium.com/@user/post", linkdrop.TypeArticle, 0.9},
		{"substack", "https://somebody.substack.com/p/post", linkdrop.TypeArticle, 0.9},

		{"jpg extension", "https://example.com/photos/cat.jpg", linkdrop.TypeImage, 0.8},
		{"png extension", "https://example.com/diagram.PNG", linkdrop.TypeImage, 0.8},
		{"pdf extension", "https://example.com/paper.pdf", linkdrop.TypePDF, 0.8},
		{"mp3 extension", "https://example.com/episode.mp3", linkdrop.TypeAudio, 0.8},
		{"mp4 extension", "https://example.com/clip.mp4", linkdrop.TypeVideo, 0.8},

		{"product path", "https://shop.example.com/product/gadget", linkdrop.TypeProduct, 0.6},
		{"dp path", "https://shop.example.com/dp/B000", linkdrop.TypeProduct, 0.6},
		{"blog path", "https://example.com/blog/a-post", linkdrop.TypeArticle, 0.6},
		{"docs path trailing segment", "https://example.com/docs", linkdrop.TypeArticle, 0.6},

		{"plain page", "https://example.com/about", linkdrop.TypeBookmark, 0.5},
		{"bare domain", "example.com", linkdrop.TypeBookmark, 0.5},

		{"free text", "remember to water the plants", linkdrop.TypeNote, 0.9},
		{"empty", "", linkdrop.TypeNote, 0.9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ct, conf := linkdrop.Classify(tt.input)
			assert.Equal(t, tt.want, ct)
			assert.InDelta(t, tt.conf, conf, 0.001)
		})
	}
}

func TestClassify_DomainRulesWinOverExtension(t *testing.T) {
	t.Parallel()

	// A .png hosted on imgur is still an image; a .pdf on github is still
	// a github link because the domain group evaluates first.
	ct, conf := linkdrop.Classify("https://github.com/owner/repo/blob/main/paper.pdf")
	assert.Equal(t, linkdrop.TypeGitHub, ct)
	assert.InDelta(t, 0.9, conf, 0.001)
}

func TestClassify_Deterministic(t *testing.T) {
	t.Parallel()

	input := "https://www.youtube.com/watch?v=abc"
	ct1, conf1 := linkdrop.Classify(input)
	for range 10 {
		ct2, conf2 := linkdrop.Classify(input)
		assert.Equal(t, ct1, ct2)
		assert.Equal(t, conf1, conf2)
	}
}
