package docreview_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/fwojciec/docreview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feedback(c docreview.Category, s docreview.Score) *docreview.CategoryFeedback {
	return &docreview.CategoryFeedback{
		Category:    c,
		Score:       s,
		Issues:      []string{string(c) + " issue"},
		Suggestions: []string{string(c) + " suggestion"},
	}
}

func TestNewAnalysisResult(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("overall score is the worst category score", func(t *testing.T) {
		t.Parallel()

		req, err := docreview.NewAnalysisRequest("https://example.com/docs")
		require.NoError(t, err)

		result := docreview.NewAnalysisResult(req, nil, []*docreview.CategoryFeedback{
			feedback(docreview.CategoryReadability, docreview.ScoreGood),
			feedback(docreview.CategoryStructure, docreview.ScoreExcellent),
			feedback(docreview.CategoryCompleteness, docreview.ScoreFair),
			feedback(docreview.CategoryStyle, docreview.ScoreGood),
		}, now)

		assert.Equal(t, docreview.ScoreFair, result.OverallScore)
		assert.Equal(t, "https://example.com/docs", result.URL)
		assert.Equal(t, now, result.Timestamp)
		assert.NotEmpty(t, result.ID)
	})

	t.Run("contains exactly the requested categories", func(t *testing.T) {
		t.Parallel()

		req, err := docreview.NewAnalysisRequest("https://example.com/docs",
			docreview.CategoryReadability, docreview.CategoryStyle)
		require.NoError(t, err)

		result := docreview.NewAnalysisResult(req, nil, []*docreview.CategoryFeedback{
			feedback(docreview.CategoryReadability, docreview.ScoreGood),
			feedback(docreview.CategoryStructure, docreview.ScorePoor),
			feedback(docreview.CategoryStyle, docreview.ScoreExcellent),
		}, now)

		assert.Len(t, result.Analysis, 2)
		assert.Contains(t, result.Analysis, docreview.CategoryReadability)
		assert.Contains(t, result.Analysis, docreview.CategoryStyle)
		assert.Equal(t, docreview.ScoreGood, result.OverallScore)
	})

	t.Run("missing feedback degrades to poor with an issue", func(t *testing.T) {
		t.Parallel()

		req, err := docreview.NewAnalysisRequest("https://example.com/docs",
			docreview.CategoryReadability, docreview.CategoryCompleteness)
		require.NoError(t, err)

		result := docreview.NewAnalysisResult(req, nil, []*docreview.CategoryFeedback{
			feedback(docreview.CategoryReadability, docreview.ScoreGood),
			nil,
		}, now)

		fb := result.Analysis[docreview.CategoryCompleteness]
		require.NotNil(t, fb)
		assert.Equal(t, docreview.ScorePoor, fb.Score)
		assert.NotEmpty(t, fb.Issues)
		assert.Equal(t, docreview.ScorePoor, result.OverallScore)
	})

	t.Run("copies extraction details from the document", func(t *testing.T) {
		t.Parallel()

		req, err := docreview.NewAnalysisRequest("https://example.com/docs", docreview.CategoryStyle)
		require.NoError(t, err)
		doc := &docreview.ExtractedDocument{Method: docreview.MethodHeadlessRender, Truncated: true}

		result := docreview.NewAnalysisResult(req, doc, []*docreview.CategoryFeedback{
			feedback(docreview.CategoryStyle, docreview.ScoreGood),
		}, now)

		assert.Equal(t, docreview.MethodHeadlessRender, result.ExtractionMethod)
		assert.True(t, result.Truncated)
	})
}

func TestAnalysisResult_JSON(t *testing.T) {
	t.Parallel()

	t.Run("round trip preserves scores and ordering", func(t *testing.T) {
		t.Parallel()

		original := &docreview.AnalysisResult{
			ID:           "abc",
			URL:          "https://example.com/docs",
			Timestamp:    time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC),
			OverallScore: docreview.ScoreFair,
			Analysis: map[docreview.Category]*docreview.CategoryFeedback{
				docreview.CategoryReadability: {
					Category:    docreview.CategoryReadability,
					Score:       docreview.ScoreFair,
					Issues:      []string{"third", "first", "second"},
					Suggestions: []string{"b", "a"},
				},
				docreview.CategoryStyle: {
					Category:    docreview.CategoryStyle,
					Score:       docreview.ScoreExcellent,
					Issues:      []string{"none"},
					Suggestions: []string{"keep going"},
				},
			},
		}

		data, err := json.Marshal(original)
		require.NoError(t, err)

		var decoded docreview.AnalysisResult
		require.NoError(t, json.Unmarshal(data, &decoded))

		assert.Equal(t, original.URL, decoded.URL)
		assert.True(t, original.Timestamp.Equal(decoded.Timestamp))
		assert.Equal(t, original.OverallScore, decoded.OverallScore)
		assert.Equal(t, original.Analysis, decoded.Analysis)
	})

	t.Run("uses documented field names", func(t *testing.T) {
		t.Parallel()

		result := &docreview.AnalysisResult{
			URL:          "https://example.com/docs",
			Timestamp:    time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC),
			OverallScore: docreview.ScoreGood,
			Analysis: map[docreview.Category]*docreview.CategoryFeedback{
				docreview.CategoryStructure: feedback(docreview.CategoryStructure, docreview.ScoreGood),
			},
		}

		data, err := json.Marshal(result)
		require.NoError(t, err)

		assert.JSONEq(t, `{
			"url": "https://example.com/docs",
			"timestamp": "2026-03-01T12:30:00Z",
			"overall_score": "Good",
			"analysis": {
				"structure": {
					"score": "Good",
					"issues": ["structure issue"],
					"suggestions": ["structure suggestion"]
				}
			}
		}`, string(data))
	})

	t.Run("rejects invalid score on decode", func(t *testing.T) {
		t.Parallel()

		var decoded docreview.AnalysisResult
		err := json.Unmarshal([]byte(`{"url":"u","overall_score":"Great","analysis":{}}`), &decoded)

		require.Error(t, err)
	})
}
