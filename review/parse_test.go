package review_test

import (
	"testing"

	"github.com/fwojciec/docreview"
	"github.com/fwojciec/docreview/review"
	"github.com/stretchr/testify/assert"
)

func TestParseFeedback(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		text        string
		score       docreview.Score
		issues      []string
		suggestions []string
	}{
		{
			name:        "plain JSON",
			text:        `{"score": "Good", "issues": ["Long sentences"], "suggestions": ["Split paragraphs"]}`,
			score:       docreview.ScoreGood,
			issues:      []string{"Long sentences"},
			suggestions: []string{"Split paragraphs"},
		},
		{
			name:        "fenced JSON with prose",
			text:        "Here is my review:\n```json\n{\"score\": \"fair\", \"issues\": [\"a\"], \"suggestions\": [\"b\"]}\n```\nHope this helps.",
			score:       docreview.ScoreFair,
			issues:      []string{"a"},
			suggestions: []string{"b"},
		},
		{
			name:        "upper case keys and score",
			text:        `{"Score": "EXCELLENT", "ISSUES": ["x"], "Suggestions": ["y"]}`,
			score:       docreview.ScoreExcellent,
			issues:      []string{"x"},
			suggestions: []string{"y"},
		},
		{
			name:        "nested under category",
			text:        `{"readability": {"score": "Poor", "issues": ["jargon"], "suggestions": ["define terms"]}}`,
			score:       docreview.ScorePoor,
			issues:      []string{"jargon"},
			suggestions: []string{"define terms"},
		},
		{
			name:        "string fields",
			text:        `{"score": "Good", "issues": "one issue", "suggestions": "one fix"}`,
			score:       docreview.ScoreGood,
			issues:      []string{"one issue"},
			suggestions: []string{"one fix"},
		},
		{
			name:        "score with commentary",
			text:        `{"score": "Good (minor issues)", "issues": ["x"], "suggestions": ["y"]}`,
			score:       docreview.ScoreGood,
			issues:      []string{"x"},
			suggestions: []string{"y"},
		},
		{
			name:        "braces in trailing prose",
			text:        "{\"score\": \"Good\", \"issues\": [\"x\"], \"suggestions\": [\"y\"]}\nNote: placeholders such as {name} need explaining.",
			score:       docreview.ScoreGood,
			issues:      []string{"x"},
			suggestions: []string{"y"},
		},
		{
			name:        "braces in leading prose",
			text:        "Scores use the form {score}. Result:\n{\"score\": \"Good\", \"issues\": [\"x\"], \"suggestions\": [\"y\"]}",
			score:       docreview.ScoreGood,
			issues:      []string{"x"},
			suggestions: []string{"y"},
		},
		{
			name:        "object without score before the answer",
			text:        `Example: {"note": "ignore"} Answer: {"score": "Fair", "issues": ["x"], "suggestions": ["y"]}`,
			score:       docreview.ScoreFair,
			issues:      []string{"x"},
			suggestions: []string{"y"},
		},
		{
			name:        "empty lists get defaults",
			text:        `{"score": "Excellent", "issues": [], "suggestions": []}`,
			score:       docreview.ScoreExcellent,
			issues:      []string{docreview.DefaultIssue},
			suggestions: []string{docreview.DefaultSuggestion},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fb := review.ParseFeedback(docreview.CategoryReadability, tt.text)

			assert.Equal(t, docreview.CategoryReadability, fb.Category)
			assert.Equal(t, tt.score, fb.Score)
			assert.Equal(t, tt.issues, fb.Issues)
			assert.Equal(t, tt.suggestions, fb.Suggestions)
		})
	}
}

func TestParseFeedback_Degraded(t *testing.T) {
	t.Parallel()

	t.Run("not JSON", func(t *testing.T) {
		t.Parallel()

		fb := review.ParseFeedback(docreview.CategoryStyle, "I think the page is fine.")

		assert.Equal(t, docreview.ScorePoor, fb.Score)
		assert.Contains(t, fb.Issues[0], "could not parse response")
		assert.NotEmpty(t, fb.Suggestions)
	})

	t.Run("no score field", func(t *testing.T) {
		t.Parallel()

		fb := review.ParseFeedback(docreview.CategoryStyle, `{"issues": ["x"]}`)

		assert.Equal(t, docreview.ScorePoor, fb.Score)
		assert.Contains(t, fb.Issues[0], "could not parse response")
	})

	t.Run("unknown score label", func(t *testing.T) {
		t.Parallel()

		fb := review.ParseFeedback(docreview.CategoryStyle, `{"score": "Great", "issues": ["x"], "suggestions": ["y"]}`)

		assert.Equal(t, docreview.ScorePoor, fb.Score)
		assert.Contains(t, fb.Issues, "Model returned an invalid score")
	})
}
