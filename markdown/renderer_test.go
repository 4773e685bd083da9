package markdown_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/fwojciec/docreview"
	"github.com/fwojciec/docreview/markdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Render(t *testing.T) {
	t.Parallel()

	t.Run("writes summary table and sections", func(t *testing.T) {
		t.Parallel()

		result := &docreview.AnalysisResult{
			URL:              "https://docs.example.com/guide",
			Timestamp:        time.Date(2026, 3, 1, 12, 30, 45, 0, time.UTC),
			OverallScore:     docreview.ScorePoor,
			ExtractionMethod: docreview.MethodHeadlessRender,
			Analysis: map[docreview.Category]*docreview.CategoryFeedback{
				docreview.CategoryCompleteness: {
					Category:    docreview.CategoryCompleteness,
					Score:       docreview.ScorePoor,
					Issues:      []string{"No prerequisites"},
					Suggestions: []string{"List required versions"},
				},
			},
		}

		var buf bytes.Buffer
		err := markdown.NewRenderer().Render(&buf, result)

		require.NoError(t, err)
		out := buf.String()
		assert.Contains(t, out, "# Documentation Analysis")
		assert.Contains(t, out, "https://docs.example.com/guide")
		assert.Contains(t, out, "2026-03-01 12:30:45 UTC")
		assert.Contains(t, out, "**Poor**")
		assert.Contains(t, out, "[!CAUTION]")
		assert.Contains(t, out, "## Completeness: Poor")
		assert.Contains(t, out, "### Issues")
		assert.Contains(t, out, "No prerequisites")
		assert.Contains(t, out, "List required versions")
	})

	t.Run("nil result is invalid", func(t *testing.T) {
		t.Parallel()

		err := markdown.NewRenderer().Render(&bytes.Buffer{}, nil)

		assert.Equal(t, docreview.EINVALID, docreview.ErrorCode(err))
	})
}
