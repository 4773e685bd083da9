package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docreview"
)

var _ docreview.Extractor = (*ContentExtractor)(nil)

// boilerplate lists elements removed before a content region is chosen.
const boilerplate = "script, style, nav, footer, header, aside, noscript, iframe, svg, form"

// blocks are elements whose end marks a line break in the plain text.
const blocks = "p, div, section, article, li, dt, dd, tr, pre, blockquote, br, hr, h1, h2, h3, h4, h5, h6, table, ul, ol"

// ContentExtractor selects the main content region of a page with CSS
// selectors, falling back to <body> when no selector matches.
type ContentExtractor struct {
	registry docreview.ContentSelectorRegistry
}

// NewContentExtractor creates a ContentExtractor that asks registry for the
// selectors to try on each page.
func NewContentExtractor(registry docreview.ContentSelectorRegistry) *ContentExtractor {
	return &ContentExtractor{registry: registry}
}

// Extract parses rawHTML, strips boilerplate, and returns the first
// non-empty region matched by the registry's selectors.
func (e *ContentExtractor) Extract(rawHTML string) (*docreview.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, docreview.Errorf(docreview.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, docreview.Errorf(docreview.EINVALID, "failed to parse HTML: %v", err)
	}

	title := pageTitle(doc)
	doc.Find(boilerplate).Remove()

	region := e.region(doc, rawHTML)
	if region.Length() == 0 {
		return nil, docreview.Errorf(docreview.EEXTRACT, "no content region found")
	}

	contentHTML, err := goquery.OuterHtml(region)
	if err != nil {
		return nil, docreview.Errorf(docreview.EINTERNAL, "failed to render content region: %v", err)
	}

	return &docreview.ExtractResult{
		Title:       title,
		ContentHTML: contentHTML,
		Text:        Text(region),
	}, nil
}

func (e *ContentExtractor) region(doc *goquery.Document, rawHTML string) *goquery.Selection {
	var selectors docreview.ContentSelectors
	if e.registry != nil {
		selectors = e.registry.GetForHTML(rawHTML)
	} else {
		selectors = GenericSelectors
	}

	for _, sel := range selectors {
		match := doc.Find(sel).First()
		if match.Length() > 0 && strings.TrimSpace(match.Text()) != "" {
			return match
		}
	}
	return doc.Find("body").First()
}

// pageTitle prefers og:title, then <title>, then the first <h1>.
func pageTitle(doc *goquery.Document) string {
	if og, ok := doc.Find("meta[property='og:title']").Attr("content"); ok && strings.TrimSpace(og) != "" {
		return strings.TrimSpace(og)
	}
	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		return title
	}
	return strings.TrimSpace(doc.Find("h1").First().Text())
}

// Text returns the visible text of sel with a line break after every block
// element, so paragraphs and list items stay on separate lines.
// The selection is modified in place.
func Text(sel *goquery.Selection) string {
	sel.Find(blocks).AfterHtml("\n")
	return sel.Text()
}
