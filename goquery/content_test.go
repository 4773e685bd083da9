package goquery_test

import (
	"testing"

	"github.com/fwojciec/docreview"
	"github.com/fwojciec/docreview/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("selects main region and drops boilerplate", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Install Guide</title><script>var x = 1;</script></head>
<body>
<header>Site header</header>
<nav><a href="/">Home</a></nav>
<main>
<h1>Install</h1>
<p>Download the binary.</p>
<ul><li>Linux</li><li>macOS</li></ul>
</main>
<aside>Related pages</aside>
<footer>Copyright</footer>
</body>
</html>`

		ext := goquery.NewContentExtractor(goquery.NewDefaultRegistry())
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Equal(t, "Install Guide", result.Title)
		assert.Contains(t, result.Text, "Download the binary.")
		assert.Contains(t, result.Text, "Linux\n")
		assert.NotContains(t, result.Text, "Site header")
		assert.NotContains(t, result.Text, "Copyright")
		assert.NotContains(t, result.Text, "Related pages")
		assert.Contains(t, result.ContentHTML, "<main>")
	})

	t.Run("prefers framework region over generic selectors", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><meta name="generator" content="mkdocs-1.5"></head><body>
<main><div class="md-sidebar">Sidebar text</div>
<div class="md-content"><article class="md-content__inner"><h1>Page</h1><p>Body text.</p></article></div>
</main></body></html>`

		ext := goquery.NewContentExtractor(goquery.NewDefaultRegistry())
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.Text, "Body text.")
		assert.NotContains(t, result.Text, "Sidebar text")
	})

	t.Run("falls back to body when no selector matches", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div class="wrapper"><p>Loose paragraph.</p></div></body></html>`

		ext := goquery.NewContentExtractor(nil)
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.Text, "Loose paragraph.")
	})

	t.Run("uses first heading when title is missing", func(t *testing.T) {
		t.Parallel()

		ext := goquery.NewContentExtractor(nil)
		result, err := ext.Extract(`<html><body><article><h1>Reference</h1><p>x</p></article></body></html>`)

		require.NoError(t, err)
		assert.Equal(t, "Reference", result.Title)
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		ext := goquery.NewContentExtractor(nil)
		_, err := ext.Extract("   ")

		assert.Equal(t, docreview.EINVALID, docreview.ErrorCode(err))
	})
}
