package mock

import "github.com/fwojciec/docreview"

var _ docreview.ResultWriter = (*ResultWriter)(nil)

// ResultWriter is a mock implementation of docreview.ResultWriter.
type ResultWriter struct {
	WriteResultFn   func(result *docreview.AnalysisResult) (string, error)
	WriteRevisionFn func(result *docreview.AnalysisResult, content string) (string, error)
}

func (w *ResultWriter) WriteResult(result *docreview.AnalysisResult) (string, error) {
	return w.WriteResultFn(result)
}

func (w *ResultWriter) WriteRevision(result *docreview.AnalysisResult, content string) (string, error) {
	return w.WriteRevisionFn(result, content)
}
