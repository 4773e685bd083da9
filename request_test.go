package docreview_test

import (
	"testing"

	"github.com/fwojciec/docreview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateURL(t *testing.T) {
	t.Parallel()

	t.Run("accepts http and https URLs", func(t *testing.T) {
		t.Parallel()

		for _, raw := range []string{"https://docs.example.com/page", "http://localhost:8080/docs"} {
			u, err := docreview.ValidateURL(raw)
			require.NoError(t, err, raw)
			assert.Equal(t, raw, u.String())
		}
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		t.Parallel()

		for _, raw := range []string{"not a url", "", "   ", "ftp://example.com/file", "https://", "/relative/path", "://missing"} {
			_, err := docreview.ValidateURL(raw)
			require.Error(t, err, raw)
			assert.Equal(t, docreview.EINVALID, docreview.ErrorCode(err), raw)
		}
	})
}

func TestNewAnalysisRequest(t *testing.T) {
	t.Parallel()

	t.Run("defaults to all categories", func(t *testing.T) {
		t.Parallel()

		req, err := docreview.NewAnalysisRequest("https://example.com/docs")

		require.NoError(t, err)
		assert.Equal(t, "https://example.com/docs", req.URL())
		assert.Equal(t, docreview.AllCategories(), req.Categories())
	})

	t.Run("drops duplicate categories keeping order", func(t *testing.T) {
		t.Parallel()

		req, err := docreview.NewAnalysisRequest("https://example.com/docs",
			docreview.CategoryStyle, docreview.CategoryReadability, docreview.CategoryStyle)

		require.NoError(t, err)
		assert.Equal(t, []docreview.Category{docreview.CategoryStyle, docreview.CategoryReadability}, req.Categories())
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		t.Parallel()

		_, err := docreview.NewAnalysisRequest("https://example.com/docs", docreview.Category("tone"))

		require.Error(t, err)
		assert.Equal(t, docreview.EINVALID, docreview.ErrorCode(err))
	})

	t.Run("rejects invalid URL", func(t *testing.T) {
		t.Parallel()

		_, err := docreview.NewAnalysisRequest("not a url")

		require.Error(t, err)
		assert.Equal(t, docreview.EINVALID, docreview.ErrorCode(err))
	})

	t.Run("categories cannot be mutated through the accessor", func(t *testing.T) {
		t.Parallel()

		req, err := docreview.NewAnalysisRequest("https://example.com/docs", docreview.CategoryStructure)
		require.NoError(t, err)

		cats := req.Categories()
		cats[0] = docreview.CategoryStyle

		assert.Equal(t, []docreview.Category{docreview.CategoryStructure}, req.Categories())
	})
}
