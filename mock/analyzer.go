package mock

import (
	"context"

	"github.com/fwojciec/docreview"
)

var _ docreview.Analyzer = (*Analyzer)(nil)

// Analyzer is a mock implementation of docreview.Analyzer.
type Analyzer struct {
	AnalyzeFn func(ctx context.Context, doc *docreview.ExtractedDocument, category docreview.Category) *docreview.CategoryFeedback
}

func (a *Analyzer) Analyze(ctx context.Context, doc *docreview.ExtractedDocument, category docreview.Category) *docreview.CategoryFeedback {
	return a.AnalyzeFn(ctx, doc, category)
}

var _ docreview.Reviser = (*Reviser)(nil)

// Reviser is a mock implementation of docreview.Reviser.
type Reviser struct {
	ReviseFn func(ctx context.Context, doc *docreview.ExtractedDocument, result *docreview.AnalysisResult) (string, error)
}

func (r *Reviser) Revise(ctx context.Context, doc *docreview.ExtractedDocument, result *docreview.AnalysisResult) (string, error) {
	return r.ReviseFn(ctx, doc, result)
}
