package docreview

import "context"

// ExtractionMethod identifies the strategy that produced a document.
type ExtractionMethod string

// Extraction methods in the order they are attempted.
const (
	MethodSimpleFetch    ExtractionMethod = "simple_fetch"
	MethodHeadlessRender ExtractionMethod = "headless_render"
)

// ExtractedDocument is the cleaned text of a documentation page.
type ExtractedDocument struct {
	URL    string
	Title  string
	Text   string
	Method ExtractionMethod

	// Truncated reports that Text was cut to the character budget,
	// so feedback may only cover part of the page.
	Truncated bool
}

// DocumentExtractor turns a URL into an ExtractedDocument.
type DocumentExtractor interface {
	// Extract tries each extraction strategy in turn.
	// Returns EEXTRACT only if every strategy failed.
	Extract(ctx context.Context, url string) (*ExtractedDocument, error)
}
