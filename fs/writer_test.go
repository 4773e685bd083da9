package fs_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/docreview"
	"github.com/fwojciec/docreview/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testResult() *docreview.AnalysisResult {
	return &docreview.AnalysisResult{
		ID:           "1b4e28ba-2fa1-11d2-883f-0016d3cca427",
		URL:          "https://example.com/docs/install",
		Timestamp:    time.Date(2026, 3, 1, 12, 30, 45, 0, time.UTC),
		OverallScore: docreview.ScoreFair,
		Analysis: map[docreview.Category]*docreview.CategoryFeedback{
			docreview.CategoryReadability: {
				Category:    docreview.CategoryReadability,
				Score:       docreview.ScoreFair,
				Issues:      []string{"Dense paragraphs"},
				Suggestions: []string{"Break up paragraphs"},
			},
		},
	}
}

func TestResultWriter_WriteResult(t *testing.T) {
	t.Parallel()

	t.Run("writes JSON that decodes back to the result", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewResultWriter(filepath.Join(dir, "results"))

		path, err := w.WriteResult(testResult())

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "results", "analysis_20260301_123045_1b4e28ba.json"), path)

		data, err := os.ReadFile(path)
		require.NoError(t, err)

		var decoded docreview.AnalysisResult
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, docreview.ScoreFair, decoded.OverallScore)
		assert.Equal(t, []string{"Dense paragraphs"}, decoded.Analysis[docreview.CategoryReadability].Issues)
	})

	t.Run("leaves no temporary files behind", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewResultWriter(dir)

		_, err := w.WriteResult(testResult())
		require.NoError(t, err)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("rejects nil result", func(t *testing.T) {
		t.Parallel()

		w := fs.NewResultWriter(t.TempDir())

		_, err := w.WriteResult(nil)

		assert.Equal(t, docreview.EINVALID, docreview.ErrorCode(err))
	})
}

func TestResultWriter_WriteRevision(t *testing.T) {
	t.Parallel()

	t.Run("writes content with frontmatter", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewResultWriter(dir)

		path, err := w.WriteRevision(testResult(), "# Install\n\nRun the installer.")

		require.NoError(t, err)
		assert.Equal(t, "revised_content_20260301_123045_1b4e28ba.txt", filepath.Base(path))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "---\nsource: https://example.com/docs/install\nanalyzed: 2026-03-01\noverall_score: Fair\n---\n\n# Install\n\nRun the installer.", string(data))
	})

	t.Run("rejects empty content", func(t *testing.T) {
		t.Parallel()

		w := fs.NewResultWriter(t.TempDir())

		_, err := w.WriteRevision(testResult(), "  \n")

		assert.Equal(t, docreview.EINVALID, docreview.ErrorCode(err))
	})
}
