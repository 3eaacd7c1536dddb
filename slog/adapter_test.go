package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/linkdrop"
	"github.com/fwojciec/linkdrop/mock"
	linkslog "github.com/fwojciec/linkdrop/slog"
)

func TestLoggingSourceAdapter_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs successful fetch", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.SourceAdapter{
			NameFn: func() string { return "generic" },
			FetchFn: func(ctx context.Context, url string) (*linkdrop.SourceResult, error) {
				return &linkdrop.SourceResult{Metadata: &linkdrop.Metadata{}}, nil
			},
		}

		adapter := linkslog.NewLoggingSourceAdapter(inner, logger)
		result, err := adapter.Fetch(context.Background(), "https://example.com/page")

		require.NoError(t, err)
		require.NotNil(t, result)
		output := buf.String()
		assert.Contains(t, output, "source fetch")
		assert.Contains(t, output, "adapter=generic")
		assert.Contains(t, output, "url=https://example.com/page")
		assert.Contains(t, output, "found=true")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.SourceAdapter{
			NameFn: func() string { return "x" },
			FetchFn: func(ctx context.Context, url string) (*linkdrop.SourceResult, error) {
				return nil, linkdrop.Errorf(linkdrop.EUNAVAILABLE, "connection refused")
			},
		}

		adapter := linkslog.NewLoggingSourceAdapter(inner, logger)
		_, err := adapter.Fetch(context.Background(), "https://x.com/u/status/1")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "found=false")
		assert.Contains(t, output, "connection refused")
	})

	t.Run("delegates name and availability", func(t *testing.T) {
		t.Parallel()

		inner := &mock.SourceAdapter{
			NameFn:      func() string { return "github" },
			AvailableFn: func() bool { return false },
		}

		adapter := linkslog.NewLoggingSourceAdapter(inner, slog.Default())

		assert.Equal(t, "github", adapter.Name())
		assert.False(t, adapter.Available())
	})
}

func TestLoggingFetcher(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	closeCalled := false
	inner := &mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) (string, error) {
			return "<html>content</html>", nil
		},
		CloseFn: func() error {
			closeCalled = true
			return nil
		},
	}

	fetcher := linkslog.NewLoggingFetcher(inner, logger)
	html, err := fetcher.Fetch(context.Background(), "https://example.com/page")

	require.NoError(t, err)
	assert.Equal(t, "<html>content</html>", html)
	assert.Contains(t, buf.String(), "bytes=20")

	require.NoError(t, fetcher.Close())
	assert.True(t, closeCalled)
}
