package readability

import (
	"net/url"
	"strings"

	"github.com/fwojciec/docreview"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements docreview.Extractor at compile time.
var _ docreview.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
// It is the last extractor tried and works best on article-like pages.
type Extractor struct {
	pageURL *url.URL
}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ForURL returns a copy of the extractor that resolves relative links
// against pageURL.
func (e *Extractor) ForURL(pageURL *url.URL) *Extractor {
	return &Extractor{pageURL: pageURL}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*docreview.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, docreview.Errorf(docreview.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), e.pageURL)
	if err != nil {
		return nil, docreview.Errorf(docreview.EEXTRACT, "readability: %v", err)
	}

	return &docreview.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
		Text:        article.TextContent,
	}, nil
}
