package enhance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/linkdrop"
	"github.com/fwojciec/linkdrop/enhance"
)

func TestYouTube_DerivesThumbnailFromVideoID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
	}{
		{"watch", "https://www.youtube.com/watch?v=dQw4w9WgXcQ"},
		{"short link", "https://youtu.be/dQw4w9WgXcQ"},
		{"shorts", "https://www.youtube.com/shorts/dQw4w9WgXcQ"},
		{"embed", "https://www.youtube.com/embed/dQw4w9WgXcQ"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, md := enhance.YouTube(enhance.Input{
				URL:      tt.url,
				Type:     linkdrop.TypeYouTube,
				Metadata: &linkdrop.Metadata{Domain: "youtube.com"},
			})

			assert.Equal(t, "https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg",
				linkdrop.GetString(md.ThumbnailURL))
		})
	}
}

func TestYouTube_ReplacesOEmbedThumbnail(t *testing.T) {
	t.Parallel()

	_, md := enhance.YouTube(enhance.Input{
		URL:  "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		Type: linkdrop.TypeYouTube,
		Metadata: &linkdrop.Metadata{
			ThumbnailURL: linkdrop.Ptr("https://i.ytimg.com/vi/dQw4w9WgXcQ/hqdefault.jpg"),
			Domain:       "youtube.com",
		},
	})

	assert.Equal(t, "https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg",
		linkdrop.GetString(md.ThumbnailURL))
}

func TestYouTube_RecordsVideoID(t *testing.T) {
	t.Parallel()

	_, md := enhance.YouTube(enhance.Input{
		URL:      "https://youtu.be/dQw4w9WgXcQ",
		Type:     linkdrop.TypeYouTube,
		Metadata: &linkdrop.Metadata{Domain: "youtu.be"},
	})

	platform, ok := md.ExtraData["platform"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "dQw4w9WgXcQ", platform["videoId"])
}

func TestYouTube_ChannelURLLeftAlone(t *testing.T) {
	t.Parallel()

	_, md := enhance.YouTube(enhance.Input{
		URL:  "https://www.youtube.com/@somechannel",
		Type: linkdrop.TypeYouTube,
		Metadata: &linkdrop.Metadata{
			ThumbnailURL: linkdrop.Ptr("https://yt3.googleusercontent.com/banner.jpg"),
			Domain:       "youtube.com",
		},
	})

	assert.Equal(t, "https://yt3.googleusercontent.com/banner.jpg",
		linkdrop.GetString(md.ThumbnailURL))
}
