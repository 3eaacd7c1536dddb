package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/linkdrop"
	"github.com/fwojciec/linkdrop/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Converter implements linkdrop.Converter at compile time.
var _ linkdrop.Converter = (*htmltomarkdown.Converter)(nil)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts basic paragraph", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert(`<p>Hello, world!</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "Hello, world!")
	})

	t.Run("converts headings and links", func(t *testing.T) {
		t.Parallel()

		html := `<h1>Title</h1><p>See <a href="https://example.com">example</a>.</p>`

		md, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "# Title")
		assert.Contains(t, md, "[example](https://example.com)")
	})

	t.Run("converts images with alt text", func(t *testing.T) {
		t.Parallel()

		html := `<img src="https://example.com/cat.jpg" alt="a cat">`

		md, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "![a cat](https://example.com/cat.jpg)")
	})

	t.Run("returns EINVALID for empty input", func(t *testing.T) {
		t.Parallel()

		_, err := htmltomarkdown.NewConverter().Convert("   ")
		require.Error(t, err)
		assert.Equal(t, linkdrop.EINVALID, linkdrop.ErrorCode(err))
	})
}
