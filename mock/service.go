package mock

import (
	"context"

	"github.com/fwojciec/docreview"
)

var _ docreview.ReviewService = (*ReviewService)(nil)

// ReviewService is a mock implementation of docreview.ReviewService.
type ReviewService struct {
	ReviewFn         func(ctx context.Context, req *docreview.AnalysisRequest) (*docreview.AnalysisResult, error)
	ReviewDocumentFn func(ctx context.Context, req *docreview.AnalysisRequest) (*docreview.AnalysisResult, *docreview.ExtractedDocument, error)
}

func (s *ReviewService) Review(ctx context.Context, req *docreview.AnalysisRequest) (*docreview.AnalysisResult, error) {
	return s.ReviewFn(ctx, req)
}

func (s *ReviewService) ReviewDocument(ctx context.Context, req *docreview.AnalysisRequest) (*docreview.AnalysisResult, *docreview.ExtractedDocument, error) {
	return s.ReviewDocumentFn(ctx, req)
}
