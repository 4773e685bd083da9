package mock

import "github.com/fwojciec/docreview"

var _ docreview.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of docreview.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*docreview.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*docreview.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ docreview.FrameworkDetector = (*FrameworkDetector)(nil)

// FrameworkDetector is a mock implementation of docreview.FrameworkDetector.
type FrameworkDetector struct {
	DetectFn func(html string) docreview.Framework
}

func (d *FrameworkDetector) Detect(html string) docreview.Framework {
	return d.DetectFn(html)
}
