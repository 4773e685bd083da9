package lipgloss_test

import (
	"bytes"
	"testing"

	"github.com/fwojciec/docreview"
	"github.com/fwojciec/docreview/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testResult() *docreview.AnalysisResult {
	return &docreview.AnalysisResult{
		URL:              "https://docs.example.com/guide",
		OverallScore:     docreview.ScoreFair,
		ExtractionMethod: docreview.MethodSimpleFetch,
		Truncated:        true,
		Analysis: map[docreview.Category]*docreview.CategoryFeedback{
			docreview.CategoryStyle: {
				Category:    docreview.CategoryStyle,
				Score:       docreview.ScoreGood,
				Issues:      []string{"Inconsistent capitalization"},
				Suggestions: []string{"Use sentence case for headings"},
			},
			docreview.CategoryReadability: {
				Category:    docreview.CategoryReadability,
				Score:       docreview.ScoreFair,
				Issues:      []string{"Long sentences"},
				Suggestions: []string{"Split sentences"},
			},
		},
	}
}

func TestRenderer_Render(t *testing.T) {
	t.Parallel()

	t.Run("writes categories in display order", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		err := lipgloss.NewRenderer().Render(&buf, testResult())

		require.NoError(t, err)
		out := buf.String()
		assert.Contains(t, out, "URL: https://docs.example.com/guide")
		assert.Contains(t, out, "Overall Score: Fair")
		assert.Contains(t, out, "Extraction: simple_fetch")
		assert.Contains(t, out, "truncated")
		assert.Contains(t, out, "Style Guidelines: Good")
		assert.Contains(t, out, "    - Long sentences")
		assert.Less(t, bytes.Index(buf.Bytes(), []byte("Readability")), bytes.Index(buf.Bytes(), []byte("Style Guidelines")))
	})

	t.Run("nil result is invalid", func(t *testing.T) {
		t.Parallel()

		err := lipgloss.NewRenderer().Render(&bytes.Buffer{}, nil)

		assert.Equal(t, docreview.EINVALID, docreview.ErrorCode(err))
	})
}
