package http

import (
	"context"
	"net/url"

	"github.com/fwojciec/linkdrop"
)

// DefaultOEmbedURL is YouTube's public oEmbed endpoint. It requires no
// API key and answers with title, channel and thumbnail data.
const DefaultOEmbedURL = "https://www.youtube.com/oembed"

// Ensure YouTubeAdapter implements linkdrop.SourceAdapter at compile time.
var _ linkdrop.SourceAdapter = (*YouTubeAdapter)(nil)

// YouTubeAdapter fetches video metadata from YouTube's oEmbed endpoint.
type YouTubeAdapter struct {
	client    *Client
	oembedURL string
}

// YouTubeOption configures a YouTubeAdapter.
type YouTubeOption func(*YouTubeAdapter)

// WithOEmbedURL overrides the oEmbed endpoint. Used in tests.
func WithOEmbedURL(u string) YouTubeOption {
	return func(a *YouTubeAdapter) {
		a.oembedURL = u
	}
}

// NewYouTubeAdapter creates a YouTubeAdapter over the shared client.
func NewYouTubeAdapter(client *Client, opts ...YouTubeOption) *YouTubeAdapter {
	a := &YouTubeAdapter{client: client, oembedURL: DefaultOEmbedURL}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Name identifies the adapter.
func (a *YouTubeAdapter) Name() string { return "youtube" }

// Available always reports true; oEmbed needs no credentials.
func (a *YouTubeAdapter) Available() bool { return true }

type oembedResponse struct {
	Title           string `json:"title"`
	AuthorName      string `json:"author_name"`
	AuthorURL       string `json:"author_url"`
	ThumbnailURL    string `json:"thumbnail_url"`
	ThumbnailWidth  int    `json:"thumbnail_width"`
	ThumbnailHeight int    `json:"thumbnail_height"`
	ProviderName    string `json:"provider_name"`
}

// Fetch returns oEmbed metadata for the video, or no data when the URL
// carries no recognizable video ID or the video is gone.
func (a *YouTubeAdapter) Fetch(ctx context.Context, rawURL string) (*linkdrop.SourceResult, error) {
	videoID := linkdrop.YouTubeVideoID(rawURL)
	if videoID == "" {
		return nil, nil
	}

	endpoint := a.oembedURL + "?format=json&url=" + url.QueryEscape("https://www.youtube.com/watch?v="+videoID)

	var body oembedResponse
	status, _, err := a.client.GetJSON(ctx, endpoint, nil, &body)
	if err != nil {
		return nil, err
	}
	if status != 200 {
		return nil, nil
	}

	md := &linkdrop.Metadata{Domain: linkdrop.ExtractDomain(rawURL)}
	if body.Title != "" {
		md.Title = linkdrop.Ptr(body.Title)
	}
	if body.AuthorName != "" {
		md.Author = linkdrop.Ptr(body.AuthorName)
	}
	if body.ThumbnailURL != "" {
		md.ThumbnailURL = linkdrop.Ptr(body.ThumbnailURL)
	}

	platform := map[string]any{"videoId": videoID}
	if body.AuthorName != "" {
		platform["channel"] = body.AuthorName
	}
	if body.AuthorURL != "" {
		platform["channelUrl"] = body.AuthorURL
	}
	md.ExtraData = map[string]any{"platform": platform}

	return &linkdrop.SourceResult{Metadata: md}, nil
}
