package docreview

import "context"

// ReviewService grades a documentation page end to end.
type ReviewService interface {
	// Review extracts and analyzes the requested page. Only EINVALID and
	// EEXTRACT failures are returned; category failures are recorded in
	// the result.
	Review(ctx context.Context, req *AnalysisRequest) (*AnalysisResult, error)

	// ReviewDocument is Review that also returns the extracted document,
	// for callers that go on to revise it.
	ReviewDocument(ctx context.Context, req *AnalysisRequest) (*AnalysisResult, *ExtractedDocument, error)
}
