// Package json renders analysis results as indented JSON.
package json

import (
	"encoding/json"
	"io"

	"github.com/fwojciec/docreview"
)

// Ensure Renderer implements docreview.Renderer at compile time.
var _ docreview.Renderer = (*Renderer)(nil)

// Renderer writes the result's JSON encoding.
type Renderer struct{}

// NewRenderer creates a Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render writes result to w followed by a newline.
func (r *Renderer) Render(w io.Writer, result *docreview.AnalysisResult) error {
	if result == nil {
		return docreview.Errorf(docreview.EINVALID, "result required")
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
