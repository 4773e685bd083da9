package docreview

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// AnalysisResult aggregates the feedback for every requested category.
type AnalysisResult struct {
	ID               string                         `json:"id,omitempty"`
	URL              string                         `json:"url"`
	Timestamp        time.Time                      `json:"timestamp"`
	OverallScore     Score                          `json:"overall_score"`
	Analysis         map[Category]*CategoryFeedback `json:"analysis"`
	ExtractionMethod ExtractionMethod               `json:"extraction_method,omitempty"`
	Truncated        bool                           `json:"truncated,omitempty"`
}

// NewAnalysisResult assembles a result for req from the collected feedback.
// Every requested category appears exactly once: missing feedback is
// recorded as degraded, and feedback for unrequested categories is dropped.
func NewAnalysisResult(req *AnalysisRequest, doc *ExtractedDocument, feedback []*CategoryFeedback, now time.Time) *AnalysisResult {
	byCategory := make(map[Category]*CategoryFeedback, len(feedback))
	for _, fb := range feedback {
		if fb != nil {
			byCategory[fb.Category] = fb
		}
	}

	analysis := make(map[Category]*CategoryFeedback, len(req.categories))
	for _, c := range req.categories {
		fb, ok := byCategory[c]
		if !ok {
			fb = DegradedFeedback(c, "No feedback was produced for %s", c)
		}
		fb.Normalize()
		analysis[c] = fb
	}

	result := &AnalysisResult{
		ID:        uuid.New().String(),
		URL:       req.url,
		Timestamp: now.UTC(),
		Analysis:  analysis,
	}
	if doc != nil {
		result.ExtractionMethod = doc.Method
		result.Truncated = doc.Truncated
	}
	result.OverallScore = result.Overall()
	return result
}

// Overall returns the worst score across all analyzed categories.
func (r *AnalysisResult) Overall() Score {
	scores := make([]Score, 0, len(r.Analysis))
	for _, fb := range r.Analysis {
		scores = append(scores, fb.Score)
	}
	return Worst(scores...)
}

// Categories returns the analyzed categories in display order.
func (r *AnalysisResult) Categories() []Category {
	categories := make([]Category, 0, len(r.Analysis))
	for _, c := range AllCategories() {
		if _, ok := r.Analysis[c]; ok {
			categories = append(categories, c)
		}
	}
	return categories
}

// UnmarshalJSON decodes a result and restores each feedback's category from its key.
func (r *AnalysisResult) UnmarshalJSON(data []byte) error {
	type alias AnalysisResult
	var decoded alias
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	for c, fb := range decoded.Analysis {
		if fb == nil {
			return Errorf(EINVALID, "missing feedback for category %q", string(c))
		}
		fb.Category = c
	}
	*r = AnalysisResult(decoded)
	return nil
}
