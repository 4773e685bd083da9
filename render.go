package docreview

import "io"

// Renderer writes an AnalysisResult in one output format.
type Renderer interface {
	Render(w io.Writer, result *AnalysisResult) error
}
