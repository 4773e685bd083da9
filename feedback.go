package docreview

import (
	"context"
	"fmt"
)

// Default entries used when the model returns an empty list.
const (
	DefaultIssue      = "Content could not be properly analyzed"
	DefaultSuggestion = "Review and update the content with proper documentation"
)

// CategoryFeedback is the graded result for a single category.
// The category is implied by its key in AnalysisResult.Analysis and is
// therefore not serialized.
type CategoryFeedback struct {
	Category    Category `json:"-"`
	Score       Score    `json:"score"`
	Issues      []string `json:"issues"`
	Suggestions []string `json:"suggestions"`
}

// Normalize fills empty issue and suggestion lists with default entries
// and replaces an invalid score with ScorePoor.
func (f *CategoryFeedback) Normalize() {
	if !f.Score.Valid() {
		f.Score = ScorePoor
		f.Issues = append(f.Issues, "Model returned an invalid score")
	}
	if len(f.Issues) == 0 {
		f.Issues = []string{DefaultIssue}
	}
	if len(f.Suggestions) == 0 {
		f.Suggestions = []string{DefaultSuggestion}
	}
}

// DegradedFeedback returns Poor feedback recording why the category could not be graded.
func DegradedFeedback(category Category, format string, args ...any) *CategoryFeedback {
	return &CategoryFeedback{
		Category:    category,
		Score:       ScorePoor,
		Issues:      []string{fmt.Sprintf(format, args...)},
		Suggestions: []string{DefaultSuggestion},
	}
}

// Analyzer grades an extracted document for one category.
type Analyzer interface {
	// Analyze never fails: provider and parse errors are reported as
	// degraded feedback scored Poor with a diagnostic issue.
	Analyze(ctx context.Context, doc *ExtractedDocument, category Category) *CategoryFeedback
}

// Reviser rewrites document content using the feedback from an analysis.
type Reviser interface {
	Revise(ctx context.Context, doc *ExtractedDocument, result *AnalysisResult) (string, error)
}
