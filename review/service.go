package review

import (
	"context"
	"time"

	"github.com/fwojciec/docreview"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of categories analyzed at once.
const DefaultConcurrency = 4

// Ensure Service implements docreview.ReviewService at compile time.
var _ docreview.ReviewService = (*Service)(nil)

// Service extracts a page and grades it in every requested category.
type Service struct {
	Extractor   docreview.DocumentExtractor
	Analyzer    docreview.Analyzer
	Concurrency int

	// Now returns the analysis timestamp. Defaults to time.Now.
	Now func() time.Time
}

// Review extracts req's page and analyzes it. Only validation and
// extraction failures are returned as errors; category failures are
// recorded in the result.
func (s *Service) Review(ctx context.Context, req *docreview.AnalysisRequest) (*docreview.AnalysisResult, error) {
	result, _, err := s.ReviewDocument(ctx, req)
	return result, err
}

// ReviewDocument is Review that also returns the extracted document.
func (s *Service) ReviewDocument(ctx context.Context, req *docreview.AnalysisRequest) (*docreview.AnalysisResult, *docreview.ExtractedDocument, error) {
	if req == nil {
		return nil, nil, docreview.Errorf(docreview.EINVALID, "analysis request required")
	}

	doc, err := s.Extractor.Extract(ctx, req.URL())
	if err != nil {
		return nil, nil, err
	}
	return s.Analyze(ctx, req, doc), doc, nil
}

// Analyze grades an already extracted document. Categories run concurrently
// and each writes only its own slot, so the result keeps request order.
func (s *Service) Analyze(ctx context.Context, req *docreview.AnalysisRequest, doc *docreview.ExtractedDocument) *docreview.AnalysisResult {
	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	categories := req.Categories()
	feedback := make([]*docreview.CategoryFeedback, len(categories))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, c := range categories {
		g.Go(func() error {
			fb := s.Analyzer.Analyze(gctx, doc, c)
			if fb != nil && fb.Category == "" {
				fb.Category = c
			}
			feedback[i] = fb
			return nil
		})
	}
	_ = g.Wait()

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	return docreview.NewAnalysisResult(req, doc, feedback, now())
}
