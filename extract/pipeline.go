package extract

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/docreview"
)

// Default text limits.
const (
	DefaultMinChars = 100
	DefaultMaxChars = 50000
)

// Content is the cleaned text produced from one HTML page.
type Content struct {
	Title     string
	Text      string
	Truncated bool
}

// Pipeline turns raw HTML into cleaned text. Extractors are tried in order
// and the first one whose cleaned text is longer than MinChars wins. When a
// Converter is set, the region HTML is converted to Markdown so headings
// and lists survive; the extractor's plain text is used if conversion fails.
type Pipeline struct {
	Extractors []docreview.Extractor
	Converter  docreview.Converter

	// MinChars is the length cleaned text must exceed. Zero uses DefaultMinChars.
	MinChars int

	// MaxChars is the character budget. Zero uses DefaultMaxChars;
	// negative disables truncation.
	MaxChars int
}

// Process extracts, cleans, and truncates the content of html.
func (p *Pipeline) Process(html string) (*Content, error) {
	if len(p.Extractors) == 0 {
		return nil, docreview.Errorf(docreview.EINTERNAL, "no extractors configured")
	}

	minChars := p.MinChars
	if minChars <= 0 {
		minChars = DefaultMinChars
	}
	maxChars := p.MaxChars
	if maxChars == 0 {
		maxChars = DefaultMaxChars
	}

	var title string
	var reasons []string
	for i, ext := range p.Extractors {
		res, err := ext.Extract(html)
		if err != nil {
			reasons = append(reasons, fmt.Sprintf("extractor %d: %s", i+1, docreview.ErrorMessage(err)))
			continue
		}
		if title == "" {
			title = strings.TrimSpace(res.Title)
		}

		text := Clean(p.text(res))
		if n := utf8.RuneCountInString(text); n <= minChars {
			reasons = append(reasons, fmt.Sprintf("extractor %d: content too short (%d chars)", i+1, n))
			continue
		}

		text, truncated := Truncate(text, maxChars)
		return &Content{Title: title, Text: text, Truncated: truncated}, nil
	}

	return nil, docreview.Errorf(docreview.EEXTRACT, "no usable content: %s", strings.Join(reasons, "; "))
}

func (p *Pipeline) text(res *docreview.ExtractResult) string {
	if p.Converter != nil && strings.TrimSpace(res.ContentHTML) != "" {
		if md, err := p.Converter.Convert(res.ContentHTML); err == nil && strings.TrimSpace(md) != "" {
			return md
		}
	}
	return res.Text
}
