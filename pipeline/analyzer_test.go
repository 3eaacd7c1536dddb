package pipeline_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/linkdrop"
	"github.com/fwojciec/linkdrop/enhance"
	"github.com/fwojciec/linkdrop/mock"
	"github.com/fwojciec/linkdrop/pipeline"
)

func newAnalyzer() *pipeline.Analyzer {
	return &pipeline.Analyzer{
		Enhancers: enhance.NewRegistry(),
	}
}

func TestAnalyzer_FreeTextBecomesNote(t *testing.T) {
	t.Parallel()

	a := newAnalyzer()
	result := a.Analyze(context.Background(), "pick up milk on the way home")

	require.NotNil(t, result)
	assert.Equal(t, linkdrop.TypeNote, result.ContentType)
	assert.Equal(t, "pick up milk on the way home", linkdrop.GetString(result.Metadata.Title))
	assert.InDelta(t, 0.1, result.Confidence, 0.001)
}

func TestAnalyzer_AllSourcesFailStillReturnsResult(t *testing.T) {
	t.Parallel()

	failing := &mock.SourceAdapter{
		FetchFn: func(context.Context, string) (*linkdrop.SourceResult, error) {
			return nil, linkdrop.Errorf(linkdrop.EUNAVAILABLE, "connection refused")
		},
	}
	a := newAnalyzer()
	a.Generic = failing
	a.Reader = failing

	result := a.Analyze(context.Background(), "https://example.com/some-page")

	require.NotNil(t, result)
	assert.Equal(t, linkdrop.TypeBookmark, result.ContentType)
	assert.Equal(t, "example.com", result.Metadata.Domain)
}

func TestAnalyzer_PanicDegradesToBookmark(t *testing.T) {
	t.Parallel()

	a := newAnalyzer()
	a.Generic = &mock.SourceAdapter{
		FetchFn: func(context.Context, string) (*linkdrop.SourceResult, error) {
			panic("adapter bug")
		},
	}

	result := a.Analyze(context.Background(), "https://example.com/page")

	require.NotNil(t, result)
	assert.Equal(t, linkdrop.TypeBookmark, result.ContentType)
	assert.Equal(t, "https://example.com/page", linkdrop.GetString(result.Metadata.Title))
	assert.Equal(t, "example.com", result.Metadata.Domain)
	assert.InDelta(t, 0.1, result.Confidence, 0.001)
}

func TestAnalyzer_MergesGenericThenPlatform(t *testing.T) {
	t.Parallel()

	a := newAnalyzer()
	a.Generic = &mock.SourceAdapter{
		FetchFn: func(context.Context, string) (*linkdrop.SourceResult, error) {
			return &linkdrop.SourceResult{
				Metadata: &linkdrop.Metadata{
					Title:       linkdrop.Ptr("scraped title"),
					Description: linkdrop.Ptr("scraped description"),
				},
			}, nil
		},
	}
	a.Platforms = map[linkdrop.ContentType]linkdrop.SourceAdapter{
		linkdrop.TypeGitHub: &mock.SourceAdapter{
			FetchFn: func(context.Context, string) (*linkdrop.SourceResult, error) {
				return &linkdrop.SourceResult{
					Metadata: &linkdrop.Metadata{
						Title: linkdrop.Ptr("owner/repo"),
						Stars: linkdrop.Ptr(1200),
					},
					Authoritative: true,
				}, nil
			},
		},
	}

	result := a.Analyze(context.Background(), "https://github.com/owner/repo")

	require.NotNil(t, result)
	assert.Equal(t, linkdrop.TypeGitHub, result.ContentType)
	// Platform fields win on presence; generic fields survive where the
	// platform said nothing.
	assert.Equal(t, "owner/repo", linkdrop.GetString(result.Metadata.Title))
	assert.Equal(t, "scraped description", linkdrop.GetString(result.Metadata.Description))
	require.NotNil(t, result.Metadata.Stars)
	assert.Equal(t, 1200, *result.Metadata.Stars)
}

func TestAnalyzer_GateSkipsPlatformAdapter(t *testing.T) {
	t.Parallel()

	var platformCalled bool
	a := newAnalyzer()
	a.Generic = &mock.SourceAdapter{
		FetchFn: func(context.Context, string) (*linkdrop.SourceResult, error) {
			return &linkdrop.SourceResult{
				Metadata: &linkdrop.Metadata{Title: linkdrop.Ptr("Some User on X")},
			}, nil
		},
	}
	a.Platforms = map[linkdrop.ContentType]linkdrop.SourceAdapter{
		linkdrop.TypeX: &mock.SourceAdapter{
			FetchFn: func(context.Context, string) (*linkdrop.SourceResult, error) {
				platformCalled = true
				return &linkdrop.SourceResult{Metadata: &linkdrop.Metadata{}}, nil
			},
		},
	}
	a.Gate = &mock.QuotaGate{
		ShouldSkipFn: func(_ context.Context, resource string) bool {
			return resource == "x-api"
		},
	}
	a.GateKeys = map[linkdrop.ContentType]string{linkdrop.TypeX: "x-api"}

	result := a.Analyze(context.Background(), "https://x.com/someuser/status/123")

	require.NotNil(t, result)
	assert.False(t, platformCalled)
	// The generic scrape still produced a usable record.
	assert.Equal(t, linkdrop.TypeX, result.ContentType)
}

func TestAnalyzer_SocialTitleParsing(t *testing.T) {
	t.Parallel()

	a := newAnalyzer()
	a.Generic = &mock.SourceAdapter{
		FetchFn: func(context.Context, string) (*linkdrop.SourceResult, error) {
			return &linkdrop.SourceResult{
				Metadata: &linkdrop.Metadata{
					Title: linkdrop.Ptr(`Some User on X: "hello world"`),
				},
			}, nil
		},
	}

	result := a.Analyze(context.Background(), "https://x.com/someuser/status/123")

	require.NotNil(t, result)
	assert.Equal(t, linkdrop.TypeX, result.ContentType)
	assert.Equal(t, "hello world", linkdrop.GetString(result.Metadata.Content))
	assert.Equal(t, "Some User (@someuser)", linkdrop.GetString(result.Metadata.Author))
}

func TestAnalyzer_YouTubeThumbnail(t *testing.T) {
	t.Parallel()

	a := newAnalyzer()
	a.Generic = &mock.SourceAdapter{
		FetchFn: func(context.Context, string) (*linkdrop.SourceResult, error) {
			return &linkdrop.SourceResult{
				Metadata: &linkdrop.Metadata{Title: linkdrop.Ptr("A Video")},
			}, nil
		},
	}

	result := a.Analyze(context.Background(), "https://www.youtube.com/watch?v=dQw4w9WgXcQ")

	require.NotNil(t, result)
	assert.Equal(t, linkdrop.TypeYouTube, result.ContentType)
	assert.Equal(t, "https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg",
		linkdrop.GetString(result.Metadata.ThumbnailURL))
}

func TestAnalyzer_ReaderContentMergedForArticles(t *testing.T) {
	t.Parallel()

	a := newAnalyzer()
	a.Generic = &mock.SourceAdapter{
		FetchFn: func(context.Context, string) (*linkdrop.SourceResult, error) {
			return &linkdrop.SourceResult{
				Metadata: &linkdrop.Metadata{Title: linkdrop.Ptr("My Long Article Title")},
			}, nil
		},
	}
	a.Reader = &mock.SourceAdapter{
		FetchFn: func(context.Context, string) (*linkdrop.SourceResult, error) {
			return &linkdrop.SourceResult{
				Metadata: &linkdrop.Metadata{
					Content: linkdrop.Ptr("# Heading\n\nBody text."),
					Author:  linkdrop.Ptr("Jane Writer"),
				},
			}, nil
		},
	}

	result := a.Analyze(context.Background(), "https://medium.com/@someone/a-post")

	require.NotNil(t, result)
	assert.Equal(t, linkdrop.TypeArticle, result.ContentType)
	assert.Equal(t, "# Heading\n\nBody text.", linkdrop.GetString(result.Metadata.Content))
	assert.Equal(t, "Jane Writer", linkdrop.GetString(result.Metadata.Author))
}

func TestAnalyzer_ImageReaderContentNotMerged(t *testing.T) {
	t.Parallel()

	a := newAnalyzer()
	a.Reader = &mock.SourceAdapter{
		FetchFn: func(context.Context, string) (*linkdrop.SourceResult, error) {
			return &linkdrop.SourceResult{
				Metadata: &linkdrop.Metadata{
					Content: linkdrop.Ptr("![a sunset](https://i.imgur.com/abc.jpg)"),
				},
			}, nil
		},
	}

	result := a.Analyze(context.Background(), "https://example.com/photos/sunset.jpg")

	require.NotNil(t, result)
	assert.Equal(t, linkdrop.TypeImage, result.ContentType)
	// Image records carry no body; the page URL becomes the thumbnail.
	assert.Nil(t, result.Metadata.Content)
	assert.Equal(t, "https://example.com/photos/sunset.jpg",
		linkdrop.GetString(result.Metadata.ThumbnailURL))
}

func TestAnalyzer_OGTypeRefinesBookmark(t *testing.T) {
	t.Parallel()

	a := newAnalyzer()
	a.Generic = &mock.SourceAdapter{
		FetchFn: func(context.Context, string) (*linkdrop.SourceResult, error) {
			return &linkdrop.SourceResult{
				Metadata: &linkdrop.Metadata{
					Title: linkdrop.Ptr("Fancy Gadget With A Long Name"),
					ExtraData: map[string]any{
						"og": map[string]any{"type": "product"},
					},
				},
			}, nil
		},
	}

	result := a.Analyze(context.Background(), "https://shop.example.com/gadget")

	require.NotNil(t, result)
	assert.Equal(t, linkdrop.TypeProduct, result.ContentType)
}

func TestAnalyzer_UnavailableAdapterIsSkipped(t *testing.T) {
	t.Parallel()

	a := newAnalyzer()
	a.Generic = &mock.SourceAdapter{
		AvailableFn: func() bool { return false },
		FetchFn: func(context.Context, string) (*linkdrop.SourceResult, error) {
			t.Fatal("fetch must not be called on an unavailable adapter")
			return nil, nil
		},
	}

	result := a.Analyze(context.Background(), "https://example.com/page")

	require.NotNil(t, result)
	assert.Equal(t, linkdrop.TypeBookmark, result.ContentType)
}

func TestAnalyzer_BareDomainInput(t *testing.T) {
	t.Parallel()

	a := newAnalyzer()
	result := a.Analyze(context.Background(), "example.com/docs/intro")

	require.NotNil(t, result)
	assert.Equal(t, "example.com", result.Metadata.Domain)
	assert.NotEqual(t, linkdrop.TypeNote, result.ContentType)
}
