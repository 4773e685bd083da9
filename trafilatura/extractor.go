package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/docreview"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements docreview.Extractor at compile time.
var _ docreview.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
// It is used when CSS selectors find no usable content region.
type Extractor struct {
	excludeTables bool
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithoutTables drops <table> content. Tables are kept by default because
// reference pages often carry their parameters in them.
func WithoutTables() Option {
	return func(e *Extractor) {
		e.excludeTables = true
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*docreview.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, docreview.Errorf(docreview.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback:  true,
		ExcludeComments: true,
		ExcludeTables:   e.excludeTables,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, docreview.Errorf(docreview.EEXTRACT, "trafilatura: %v", err)
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, docreview.Errorf(docreview.EINTERNAL, "render content: %v", err)
		}
	}

	return &docreview.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
		Text:        result.ContentText,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
