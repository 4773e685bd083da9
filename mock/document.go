package mock

import (
	"context"

	"github.com/fwojciec/docreview"
)

var _ docreview.DocumentExtractor = (*DocumentExtractor)(nil)

// DocumentExtractor is a mock implementation of docreview.DocumentExtractor.
type DocumentExtractor struct {
	ExtractFn func(ctx context.Context, url string) (*docreview.ExtractedDocument, error)
}

func (e *DocumentExtractor) Extract(ctx context.Context, url string) (*docreview.ExtractedDocument, error) {
	return e.ExtractFn(ctx, url)
}
