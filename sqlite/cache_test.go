package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/linkdrop"
	"github.com/fwojciec/linkdrop/sqlite"
)

func TestAnalysisCache_Miss(t *testing.T) {
	t.Parallel()

	cache := sqlite.NewAnalysisCache(mustOpenDB(t))

	_, err := cache.Get(context.Background(), "https://example.com/page")
	require.Error(t, err)
	assert.Equal(t, linkdrop.ENOTFOUND, linkdrop.ErrorCode(err))
}

func TestAnalysisCache_PutAndGet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cache := sqlite.NewAnalysisCache(mustOpenDB(t))

	in := &linkdrop.AnalysisResult{
		ContentType: linkdrop.TypeArticle,
		Metadata: &linkdrop.Metadata{
			Title:       linkdrop.Ptr("A Long Article Title"),
			Description: linkdrop.Ptr("about things"),
			Domain:      "example.com",
			Likes:       linkdrop.Ptr(42),
			ExtraData:   map[string]any{"og": map[string]any{"type": "article"}},
		},
		Confidence: 0.9,
	}
	require.NoError(t, cache.Put(ctx, "https://example.com/page", in))

	out, err := cache.Get(ctx, "https://example.com/page")
	require.NoError(t, err)
	assert.Equal(t, linkdrop.TypeArticle, out.ContentType)
	assert.Equal(t, 0.9, out.Confidence)
	assert.Equal(t, "A Long Article Title", linkdrop.GetString(out.Metadata.Title))
	assert.Equal(t, "example.com", out.Metadata.Domain)
	require.NotNil(t, out.Metadata.Likes)
	assert.Equal(t, 42, *out.Metadata.Likes)
}

func TestAnalysisCache_PutReplaces(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cache := sqlite.NewAnalysisCache(mustOpenDB(t))

	url := "https://example.com/page"
	require.NoError(t, cache.Put(ctx, url, &linkdrop.AnalysisResult{
		ContentType: linkdrop.TypeBookmark,
		Metadata:    &linkdrop.Metadata{Domain: "example.com"},
		Confidence:  0.5,
	}))
	require.NoError(t, cache.Put(ctx, url, &linkdrop.AnalysisResult{
		ContentType: linkdrop.TypeArticle,
		Metadata:    &linkdrop.Metadata{Domain: "example.com"},
		Confidence:  0.8,
	}))

	out, err := cache.Get(ctx, url)
	require.NoError(t, err)
	assert.Equal(t, linkdrop.TypeArticle, out.ContentType)
}

func TestAnalysisCache_Expiry(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	cache := sqlite.NewAnalysisCache(mustOpenDB(t),
		sqlite.WithTTL(time.Hour),
		sqlite.WithCacheNow(func() time.Time { return now }),
	)

	url := "https://example.com/page"
	require.NoError(t, cache.Put(ctx, url, &linkdrop.AnalysisResult{
		ContentType: linkdrop.TypeBookmark,
		Metadata:    &linkdrop.Metadata{Domain: "example.com"},
		Confidence:  0.5,
	}))

	now = now.Add(30 * time.Minute)
	_, err := cache.Get(ctx, url)
	require.NoError(t, err)

	now = now.Add(31 * time.Minute)
	_, err = cache.Get(ctx, url)
	require.Error(t, err)
	assert.Equal(t, linkdrop.ENOTFOUND, linkdrop.ErrorCode(err))
}

func TestAnalysisCache_Clear(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cache := sqlite.NewAnalysisCache(mustOpenDB(t))

	require.NoError(t, cache.Put(ctx, "https://example.com/a", &linkdrop.AnalysisResult{
		ContentType: linkdrop.TypeBookmark,
		Metadata:    &linkdrop.Metadata{Domain: "example.com"},
	}))
	require.NoError(t, cache.Clear(ctx))

	_, err := cache.Get(ctx, "https://example.com/a")
	require.Error(t, err)
	assert.Equal(t, linkdrop.ENOTFOUND, linkdrop.ErrorCode(err))
}

func TestAnalysisCache_NilResult(t *testing.T) {
	t.Parallel()

	cache := sqlite.NewAnalysisCache(mustOpenDB(t))

	err := cache.Put(context.Background(), "https://example.com/a", nil)
	require.Error(t, err)
	assert.Equal(t, linkdrop.EINVALID, linkdrop.ErrorCode(err))
}
